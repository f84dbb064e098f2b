package dialog

import (
	"strings"
)

// DialogConfig describes one file browser invocation. It is consumed
// read-only for the session's duration.
type DialogConfig struct {
	Mode                Mode
	Title               string
	InitialPath         string // starting directory; validated, may be ""
	InitialFilename     string // pre-filled filename (Save mode)
	Filters             []FileFilter
	SelectedFilterIndex int
	ShowHiddenFiles     bool
	AllowCreateFolder   bool
	TouchMode           bool
	Scale               float64 // effective UI scale; <= 0 keeps the current scale
}

// FileBrowserDialog is a touch-friendly file browser session. One instance
// is reused across sessions: Open starts a session, Render drives it once
// per frame, and the session reaches Selected or Cancelled exactly once.
//
// All state transitions are plain synchronous methods so the machine is
// fully testable without a renderer.
type FileBrowserDialog struct {
	Scalable

	config DialogConfig
	isOpen bool
	result Result

	currentPath         string
	entries             []FileEntry
	selectedIndex       int
	selectedPath        string
	selectedFilterIndex int
	sortOrder           SortOrder

	filename      string
	newFolderName string

	showNewFolderPopup   bool
	showOverwriteConfirm bool
	overwritePath        string
	newFolderFailed      bool

	// One-shot deferred-action slots. Activation and scroll requests made
	// while the entry list is being traversed are applied strictly after
	// the traversal completes, because applying them mid-pass could
	// replace the list out from under the iterator.
	pendingActivateIndex int
	pendingScrollToIndex int

	drives  []string
	metrics Metrics

	pathMemory *PathMemory

	onFileSelected func(path string)
	onCancelled    func()

	ui *browserUI
}

// NewFileBrowserDialog creates a file browser with an in-memory path
// memory. Call SetPathMemory to persist the last browsed directory across
// process runs.
func NewFileBrowserDialog() *FileBrowserDialog {
	fb := &FileBrowserDialog{
		selectedIndex:        -1,
		pendingActivateIndex: -1,
		pendingScrollToIndex: -1,
		pathMemory:           NewPathMemory(nil),
	}
	fb.drives = GetDrives()
	fb.metrics = ComputeMetrics(false, fb.Scale())
	return fb
}

// SetPathMemory injects the last-path persistence used by this instance.
func (fb *FileBrowserDialog) SetPathMemory(pm *PathMemory) {
	if pm != nil {
		fb.pathMemory = pm
	}
}

// SetOnFileSelected sets the callback fired once per successful selection.
func (fb *FileBrowserDialog) SetOnFileSelected(callback func(path string)) {
	fb.onFileSelected = callback
}

// SetOnCancelled sets the callback fired once when a session is cancelled.
func (fb *FileBrowserDialog) SetOnCancelled(callback func()) {
	fb.onCancelled = callback
}

// Open starts a new session, fully resetting session state regardless of
// any prior terminal state.
func (fb *FileBrowserDialog) Open(config DialogConfig) {
	fb.config = config
	fb.isOpen = true
	fb.result = ResultNone
	fb.selectedIndex = -1
	fb.selectedPath = ""
	fb.selectedFilterIndex = config.SelectedFilterIndex
	if fb.selectedFilterIndex < 0 || fb.selectedFilterIndex >= len(config.Filters) {
		fb.selectedFilterIndex = 0
	}
	fb.sortOrder = SortNameAsc
	fb.showNewFolderPopup = false
	fb.showOverwriteConfirm = false
	fb.overwritePath = ""
	fb.newFolderFailed = false
	fb.pendingActivateIndex = -1
	fb.pendingScrollToIndex = -1
	fb.filename = config.InitialFilename
	fb.newFolderName = ""

	fb.SetScale(config.Scale) // <= 0 keeps the current scale

	// Initial path priority: explicit config path, then the persisted
	// last path, then Documents. Both overrides may reference directories
	// that no longer exist, so each is validated before use.
	switch {
	case config.InitialPath != "" && IsDirectory(config.InitialPath):
		fb.currentPath = config.InitialPath
	case fb.pathMemory.Get() != "":
		fb.currentPath = fb.pathMemory.Get()
	default:
		fb.currentPath = GetDocumentsDirectory()
	}

	fb.drives = GetDrives()
	fb.UpdateSizing()
	fb.RefreshDirectory()
	fb.ui = nil // layout rebuilt on next render
}

// Close cancels the session. Further calls on a closed session are no-ops.
func (fb *FileBrowserDialog) Close() {
	if !fb.isOpen {
		return
	}
	fb.isOpen = false
	fb.result = ResultCancelled
	if fb.onCancelled != nil {
		fb.onCancelled()
	}
}

// IsOpen reports whether a session is active.
func (fb *FileBrowserDialog) IsOpen() bool { return fb.isOpen }

// Result returns the session outcome: None while open, then Selected or
// Cancelled.
func (fb *FileBrowserDialog) Result() Result { return fb.result }

// SelectedPath returns the full path chosen by the most recent Selected
// outcome, or "" when there is none.
func (fb *FileBrowserDialog) SelectedPath() string { return fb.selectedPath }

// SelectedFilterIndex returns the index of the active filter.
func (fb *FileBrowserDialog) SelectedFilterIndex() int { return fb.selectedFilterIndex }

// CurrentPath returns the directory the session is browsing.
func (fb *FileBrowserDialog) CurrentPath() string { return fb.currentPath }

// Entries returns the current listing. The slice is replaced wholesale on
// every refresh; callers must not retain it across navigation.
func (fb *FileBrowserDialog) Entries() []FileEntry { return fb.entries }

// SelectedIndex returns the selected row index, or -1 when none.
func (fb *FileBrowserDialog) SelectedIndex() int { return fb.selectedIndex }

// SortOrder returns the active sort order.
func (fb *FileBrowserDialog) SortOrder() SortOrder { return fb.sortOrder }

// SetSortOrder changes the sort order and refreshes the listing.
func (fb *FileBrowserDialog) SetSortOrder(order SortOrder) {
	fb.sortOrder = order
	fb.RefreshDirectory()
}

// Filename returns the filename input buffer.
func (fb *FileBrowserDialog) Filename() string { return fb.filename }

// Metrics returns the current size-derived layout quantities.
func (fb *FileBrowserDialog) Metrics() Metrics { return fb.metrics }

// Drives returns the cached filesystem roots shown in the toolbar.
func (fb *FileBrowserDialog) Drives() []string { return fb.drives }

// UpdateSizing recomputes every size-derived quantity from the base
// constants, touch mode and the current scale.
func (fb *FileBrowserDialog) UpdateSizing() {
	fb.metrics = ComputeMetrics(fb.config.TouchMode, fb.Scale())
}

// NavigateTo switches the session to path if it is currently a directory,
// clearing the selection and refreshing the listing. Anything else is
// ignored.
func (fb *FileBrowserDialog) NavigateTo(path string) {
	if !IsDirectory(path) {
		return
	}
	fb.currentPath = path
	fb.selectedIndex = -1
	fb.RefreshDirectory()
}

// NavigateUp moves to the parent directory. At a filesystem root the
// parent equals the current directory and the call is a no-op.
func (fb *FileBrowserDialog) NavigateUp() {
	parent := GetParentDirectory(fb.currentPath)
	if parent != fb.currentPath {
		fb.NavigateTo(parent)
	}
}

// RefreshDirectory re-lists the current directory, applying the active
// extension filter and the hidden-file setting. The previous selection
// index is meaningless against the fresh list, so it is always cleared.
func (fb *FileBrowserDialog) RefreshDirectory() {
	extensions := fb.currentExtensions()

	if fb.config.Mode == ModeSelectFolder || len(extensions) == 0 {
		fb.entries = ListDirectory(fb.currentPath, fb.sortOrder)
	} else {
		fb.entries = ListDirectoryFiltered(fb.currentPath, extensions, fb.sortOrder)
	}

	if !fb.config.ShowHiddenFiles {
		visible := fb.entries[:0]
		for _, entry := range fb.entries {
			if !strings.HasPrefix(entry.Name, ".") {
				visible = append(visible, entry)
			}
		}
		fb.entries = visible
	}

	fb.selectedIndex = -1
}

// SelectEntry marks a row as the current selection. Selecting a file (in
// Open or Save mode) mirrors its name into the filename buffer so the
// displayed filename tracks the list selection.
func (fb *FileBrowserDialog) SelectEntry(index int) {
	if index < 0 || index >= len(fb.entries) {
		fb.selectedIndex = -1
		return
	}
	fb.selectedIndex = index
	entry := fb.entries[index]
	if !entry.IsDir && fb.config.Mode != ModeSelectFolder {
		fb.filename = entry.Name
	}
}

// ActivateEntry opens a directory entry, or in Open mode finalizes the
// session with a file entry's path. Never call this while traversing
// Entries; use RequestActivation and apply it after the pass.
func (fb *FileBrowserDialog) ActivateEntry(index int) {
	if index < 0 || index >= len(fb.entries) {
		return
	}
	entry := fb.entries[index]
	if entry.IsDir {
		fb.NavigateTo(entry.Path)
		return
	}
	if fb.config.Mode == ModeOpen {
		fb.finalize(entry.Path)
	}
}

// RequestActivation records a deferred activation for index, applied by
// the next ApplyPendingActivation call.
func (fb *FileBrowserDialog) RequestActivation(index int) {
	fb.pendingActivateIndex = index
}

// ApplyPendingActivation consumes the one-shot pending activation slot,
// if set. Callers invoke it strictly after the frame's entry-list
// traversal completes.
func (fb *FileBrowserDialog) ApplyPendingActivation() {
	if fb.pendingActivateIndex < 0 {
		return
	}
	index := fb.pendingActivateIndex
	fb.pendingActivateIndex = -1
	fb.ActivateEntry(index)
}

// ConsumePendingScroll returns the row the list container should scroll
// to, or -1. The slot is cleared on read so the scroll applies once.
func (fb *FileBrowserDialog) ConsumePendingScroll() int {
	index := fb.pendingScrollToIndex
	fb.pendingScrollToIndex = -1
	if index >= len(fb.entries) {
		return -1
	}
	return index
}

// SetFilename replaces the filename buffer. In Open mode a non-empty
// buffer drives incremental search: the selection jumps to the first entry
// whose name starts with the typed text, case-insensitively, and a
// deferred scroll targets it. No match leaves the selection unchanged.
func (fb *FileBrowserDialog) SetFilename(name string) {
	fb.filename = name
	if fb.config.Mode == ModeOpen && name != "" {
		if match := fb.FindMatchingEntryIndex(name); match >= 0 {
			fb.selectedIndex = match
			fb.pendingScrollToIndex = match
		}
	}
}

// FindMatchingEntryIndex returns the first entry whose name has prefix
// (case-insensitive), in list order, or -1. Linear scan, re-run per
// keystroke; entry lists are bounded by a visible directory's size.
func (fb *FileBrowserDialog) FindMatchingEntryIndex(prefix string) int {
	if prefix == "" {
		return -1
	}
	lower := strings.ToLower(prefix)
	for i, entry := range fb.entries {
		if strings.HasPrefix(strings.ToLower(entry.Name), lower) {
			return i
		}
	}
	return -1
}

// SelectFilter switches the active filter and refreshes the listing.
func (fb *FileBrowserDialog) SelectFilter(index int) {
	if index < 0 || index >= len(fb.config.Filters) {
		return
	}
	fb.selectedFilterIndex = index
	fb.RefreshDirectory()
}

func (fb *FileBrowserDialog) currentExtensions() []string {
	if len(fb.config.Filters) == 0 ||
		fb.selectedFilterIndex < 0 ||
		fb.selectedFilterIndex >= len(fb.config.Filters) {
		return nil
	}
	return fb.config.Filters[fb.selectedFilterIndex].GetExtensionList()
}

// IsValidSelection reports whether the confirm action is currently
// allowed: Open needs a selected file row, Save needs a filename, and
// SelectFolder is always valid (the current directory is the answer).
func (fb *FileBrowserDialog) IsValidSelection() bool {
	switch fb.config.Mode {
	case ModeOpen:
		return fb.selectedIndex >= 0 &&
			fb.selectedIndex < len(fb.entries) &&
			!fb.entries[fb.selectedIndex].IsDir
	case ModeSave:
		return fb.filename != ""
	case ModeSelectFolder:
		return true
	}
	return false
}

// BuildFullPath constructs the would-be selected path for the current
// mode. In Save mode, a filename whose extension is not among the active
// filter's extensions gets the filter's first extension appended.
func (fb *FileBrowserDialog) BuildFullPath() string {
	switch fb.config.Mode {
	case ModeOpen:
		if fb.selectedIndex >= 0 && fb.selectedIndex < len(fb.entries) {
			return fb.entries[fb.selectedIndex].Path
		}
	case ModeSave:
		filename := fb.filename
		if extensions := fb.currentExtensions(); len(extensions) > 0 {
			current := GetExtension(filename)
			valid := false
			for _, ext := range extensions {
				if current == ext {
					valid = true
					break
				}
			}
			if !valid {
				filename += extensions[0]
			}
		}
		return CombinePath(fb.currentPath, filename)
	case ModeSelectFolder:
		return fb.currentPath
	}
	return ""
}

// Confirm runs the confirm action. In Save mode, if the constructed path
// already exists as a regular file the session does not finalize; the
// overwrite sub-confirmation opens instead and only its Yes answer
// finalizes.
func (fb *FileBrowserDialog) Confirm() {
	if !fb.IsValidSelection() {
		return
	}
	fullPath := fb.BuildFullPath()
	if fullPath == "" {
		return
	}

	if fb.config.Mode == ModeSave && Exists(fullPath) && IsFile(fullPath) {
		fb.overwritePath = fullPath
		fb.showOverwriteConfirm = true
		return
	}

	fb.finalize(fullPath)
}

// IsOverwriteConfirmShown reports whether the overwrite sub-confirmation
// is open.
func (fb *FileBrowserDialog) IsOverwriteConfirmShown() bool { return fb.showOverwriteConfirm }

// OverwritePath returns the candidate path awaiting overwrite
// confirmation.
func (fb *FileBrowserDialog) OverwritePath() string { return fb.overwritePath }

// ConfirmOverwrite accepts the overwrite prompt and finalizes the session
// with the pending path.
func (fb *FileBrowserDialog) ConfirmOverwrite() {
	if !fb.showOverwriteConfirm {
		return
	}
	fb.showOverwriteConfirm = false
	fb.finalize(fb.overwritePath)
}

// DeclineOverwrite dismisses the overwrite prompt, returning to the open
// session unchanged.
func (fb *FileBrowserDialog) DeclineOverwrite() {
	fb.showOverwriteConfirm = false
	fb.overwritePath = ""
}

// IsNewFolderPopupShown reports whether the new-folder sub-dialog is open.
func (fb *FileBrowserDialog) IsNewFolderPopupShown() bool { return fb.showNewFolderPopup }

// OpenNewFolderPopup shows the new-folder sub-dialog with an empty name.
func (fb *FileBrowserDialog) OpenNewFolderPopup() {
	fb.showNewFolderPopup = true
	fb.newFolderName = ""
	fb.newFolderFailed = false
}

// CancelNewFolder dismisses the new-folder sub-dialog.
func (fb *FileBrowserDialog) CancelNewFolder() {
	fb.showNewFolderPopup = false
}

// SetNewFolderName updates the new-folder name buffer.
func (fb *FileBrowserDialog) SetNewFolderName(name string) {
	fb.newFolderName = name
	fb.newFolderFailed = false
}

// NewFolderName returns the new-folder name buffer.
func (fb *FileBrowserDialog) NewFolderName() string { return fb.newFolderName }

// CanCreateNewFolder reports whether creation is enabled (non-empty name).
func (fb *FileBrowserDialog) CanCreateNewFolder() bool { return fb.newFolderName != "" }

// CreateNewFolder creates the named directory (with any missing parents)
// under the current directory. On success the listing is refreshed and the
// popup closes; on failure the popup stays open with the failure flagged
// so the UI can mark the input, rather than failing silently.
func (fb *FileBrowserDialog) CreateNewFolder() bool {
	if !fb.CanCreateNewFolder() {
		return false
	}
	newPath := CombinePath(fb.currentPath, fb.newFolderName)
	if !CreateDirectory(newPath) {
		fb.newFolderFailed = true
		return false
	}
	fb.showNewFolderPopup = false
	fb.RefreshDirectory()
	return true
}

// NewFolderFailed reports whether the last create attempt failed.
func (fb *FileBrowserDialog) NewFolderFailed() bool { return fb.newFolderFailed }

// finalize records a Selected outcome: the result becomes terminal, the
// current directory is persisted for the next session, and the selected
// callback fires exactly once.
func (fb *FileBrowserDialog) finalize(path string) {
	fb.selectedPath = path
	fb.result = ResultSelected
	fb.isOpen = false
	fb.pathMemory.Set(fb.currentPath)
	if fb.onFileSelected != nil {
		fb.onFileSelected(path)
	}
}
