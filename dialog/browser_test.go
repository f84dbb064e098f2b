package dialog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// browserFixture builds a directory tree with a mix of files, a
// subdirectory and a hidden file.
func browserFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder"), 0o755))
	writeFile(t, dir, "apple.txt", "a")
	writeFile(t, dir, "Banana.txt", "b")
	writeFile(t, dir, "cherry.png", "c")
	writeFile(t, dir, ".hidden", "h")
	return dir
}

func openBrowser(t *testing.T, config DialogConfig) *FileBrowserDialog {
	t.Helper()
	fb := NewFileBrowserDialog()
	fb.Open(config)
	return fb
}

func TestOpenSession(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir})

	assert.True(t, fb.IsOpen())
	assert.Equal(t, ResultNone, fb.Result())
	assert.Equal(t, dir, fb.CurrentPath())
	assert.Equal(t, -1, fb.SelectedIndex())
	assert.Equal(t, SortNameAsc, fb.SortOrder())

	// Hidden file excluded by default; directory first.
	entries := fb.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "folder", entries[0].Name)
	assert.True(t, entries[0].IsDir)
}

func TestOpenInvalidInitialPathFallsBack(t *testing.T) {
	fb := openBrowser(t, DialogConfig{
		Mode:        ModeOpen,
		InitialPath: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	assert.True(t, IsDirectory(fb.CurrentPath()))
}

func TestOpenUsesRememberedPath(t *testing.T) {
	dir := browserFixture(t)
	fb := NewFileBrowserDialog()
	fb.pathMemory.Set(dir)

	fb.Open(DialogConfig{Mode: ModeOpen})
	assert.Equal(t, dir, fb.CurrentPath())
}

func TestShowHiddenFiles(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir, ShowHiddenFiles: true})
	assert.Len(t, fb.Entries(), 5)
}

func TestFilterIndexClamped(t *testing.T) {
	dir := browserFixture(t)
	filters := []FileFilter{{Description: "Text", Extensions: "*.txt"}}
	fb := openBrowser(t, DialogConfig{
		Mode:                ModeOpen,
		InitialPath:         dir,
		Filters:             filters,
		SelectedFilterIndex: 7,
	})
	assert.Equal(t, 0, fb.SelectedFilterIndex())
}

func TestFilteredListing(t *testing.T) {
	dir := browserFixture(t)
	filters := []FileFilter{
		{Description: "Text", Extensions: "*.txt"},
		{Description: "Images", Extensions: "*.png"},
	}
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir, Filters: filters})

	entries := fb.Entries()
	require.Len(t, entries, 3) // folder + two .txt files
	assert.Equal(t, "folder", entries[0].Name)
	assert.Equal(t, "apple.txt", entries[1].Name)
	assert.Equal(t, "Banana.txt", entries[2].Name)

	fb.SelectFilter(1)
	entries = fb.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "cherry.png", entries[1].Name)
}

func TestNavigation(t *testing.T) {
	dir := browserFixture(t)
	sub := filepath.Join(dir, "folder")
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir})

	fb.NavigateTo(sub)
	assert.Equal(t, sub, fb.CurrentPath())
	assert.Equal(t, -1, fb.SelectedIndex())

	fb.NavigateUp()
	assert.Equal(t, dir, fb.CurrentPath())

	// Navigating to a file is ignored
	fb.NavigateTo(filepath.Join(dir, "apple.txt"))
	assert.Equal(t, dir, fb.CurrentPath())
}

func TestNavigateUpAtRootIsNoOp(t *testing.T) {
	fb := NewFileBrowserDialog()
	fb.Open(DialogConfig{Mode: ModeOpen, InitialPath: "/"})
	require.Equal(t, "/", fb.CurrentPath())
	fb.NavigateUp()
	assert.Equal(t, "/", fb.CurrentPath())
	assert.True(t, fb.IsOpen())
}

func TestRefreshClearsSelection(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir})

	fb.SelectEntry(1)
	require.Equal(t, 1, fb.SelectedIndex())

	fb.RefreshDirectory()
	assert.Equal(t, -1, fb.SelectedIndex())
}

func TestSelectEntryMirrorsFilename(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir})

	entries := fb.Entries()
	for i, e := range entries {
		if e.Name == "apple.txt" {
			fb.SelectEntry(i)
		}
	}
	assert.Equal(t, "apple.txt", fb.Filename())

	// Selecting a directory leaves the filename untouched
	fb.SelectEntry(0)
	assert.Equal(t, "apple.txt", fb.Filename())
}

func TestDeferredActivation(t *testing.T) {
	dir := browserFixture(t)
	sub := filepath.Join(dir, "folder")
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir})

	fb.RequestActivation(0) // the directory row
	assert.Equal(t, dir, fb.CurrentPath(), "activation must not apply before ApplyPendingActivation")

	fb.ApplyPendingActivation()
	assert.Equal(t, sub, fb.CurrentPath())

	// The slot is one-shot
	fb.ApplyPendingActivation()
	assert.Equal(t, sub, fb.CurrentPath())
}

func TestActivateFileFinalizesOpenMode(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir})

	var selected []string
	fb.SetOnFileSelected(func(path string) { selected = append(selected, path) })

	entries := fb.Entries()
	var fileIndex int
	for i, e := range entries {
		if e.Name == "apple.txt" {
			fileIndex = i
		}
	}
	fb.ActivateEntry(fileIndex)

	assert.False(t, fb.IsOpen())
	assert.Equal(t, ResultSelected, fb.Result())
	assert.Equal(t, filepath.Join(dir, "apple.txt"), fb.SelectedPath())
	require.Len(t, selected, 1)
}

func TestIncrementalSearch(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir})

	fb.SetFilename("ban")

	entries := fb.Entries()
	require.GreaterOrEqual(t, fb.SelectedIndex(), 0)
	assert.Equal(t, "Banana.txt", entries[fb.SelectedIndex()].Name)

	// The scroll target is consumed exactly once
	assert.Equal(t, fb.SelectedIndex(), fb.ConsumePendingScroll())
	assert.Equal(t, -1, fb.ConsumePendingScroll())

	// No match leaves the selection unchanged
	previous := fb.SelectedIndex()
	fb.SetFilename("zzz")
	assert.Equal(t, previous, fb.SelectedIndex())
}

func TestSaveModeExtensionAppending(t *testing.T) {
	dir := t.TempDir()
	filters := []FileFilter{{Description: "Text", Extensions: "*.txt;*.md"}}
	fb := openBrowser(t, DialogConfig{Mode: ModeSave, InitialPath: dir, Filters: filters})

	fb.SetFilename("notes")
	assert.Equal(t, filepath.Join(dir, "notes.txt"), fb.BuildFullPath())

	fb.SetFilename("notes.md")
	assert.Equal(t, filepath.Join(dir, "notes.md"), fb.BuildFullPath())

	fb.SetFilename("notes.png")
	assert.Equal(t, filepath.Join(dir, "notes.png.txt"), fb.BuildFullPath())
}

func TestSaveModeOverwriteGate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "existing.txt", "x")
	fb := openBrowser(t, DialogConfig{Mode: ModeSave, InitialPath: dir})

	var selected []string
	fb.SetOnFileSelected(func(path string) { selected = append(selected, path) })

	fb.SetFilename("existing.txt")
	fb.Confirm()

	assert.True(t, fb.IsOpen(), "existing target must not finalize directly")
	assert.True(t, fb.IsOverwriteConfirmShown())
	assert.Equal(t, filepath.Join(dir, "existing.txt"), fb.OverwritePath())
	assert.Empty(t, selected)

	fb.DeclineOverwrite()
	assert.True(t, fb.IsOpen())
	assert.False(t, fb.IsOverwriteConfirmShown())

	fb.Confirm()
	fb.ConfirmOverwrite()
	assert.False(t, fb.IsOpen())
	assert.Equal(t, ResultSelected, fb.Result())
	require.Len(t, selected, 1)
	assert.Equal(t, filepath.Join(dir, "existing.txt"), selected[0])
}

func TestSaveModeFreshTargetFinalizes(t *testing.T) {
	dir := t.TempDir()
	fb := openBrowser(t, DialogConfig{Mode: ModeSave, InitialPath: dir})

	fb.SetFilename("new.txt")
	fb.Confirm()

	assert.False(t, fb.IsOverwriteConfirmShown())
	assert.Equal(t, ResultSelected, fb.Result())
	assert.Equal(t, filepath.Join(dir, "new.txt"), fb.SelectedPath())
}

func TestSelectFolderMode(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeSelectFolder, InitialPath: dir})

	assert.True(t, fb.IsValidSelection(), "current directory is always a valid answer")

	fb.Confirm()
	assert.Equal(t, ResultSelected, fb.Result())
	assert.Equal(t, dir, fb.SelectedPath())
}

func TestIsValidSelection(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir})

	assert.False(t, fb.IsValidSelection())

	fb.SelectEntry(0) // a directory
	assert.False(t, fb.IsValidSelection())

	fb.SelectEntry(1) // a file
	assert.True(t, fb.IsValidSelection())
}

func TestCancelSession(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir})

	cancelled := 0
	fb.SetOnCancelled(func() { cancelled++ })

	fb.Close()
	assert.False(t, fb.IsOpen())
	assert.Equal(t, ResultCancelled, fb.Result())
	assert.Equal(t, 1, cancelled)

	// Closing again is a no-op
	fb.Close()
	assert.Equal(t, 1, cancelled)

	// A cancelled session does not persist the browsed directory
	assert.Empty(t, fb.pathMemory.Get())
}

func TestFinalizePersistsLastPath(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeSelectFolder, InitialPath: dir})

	fb.Confirm()
	assert.Equal(t, dir, fb.pathMemory.Get())
}

func TestReopenAfterTerminalState(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeSelectFolder, InitialPath: dir})
	fb.Confirm()
	require.Equal(t, ResultSelected, fb.Result())

	fb.Open(DialogConfig{Mode: ModeOpen, InitialPath: dir})
	assert.True(t, fb.IsOpen())
	assert.Equal(t, ResultNone, fb.Result())
	assert.Empty(t, fb.SelectedPath())
}

func TestNewFolderCreation(t *testing.T) {
	dir := t.TempDir()
	fb := openBrowser(t, DialogConfig{Mode: ModeSelectFolder, InitialPath: dir, AllowCreateFolder: true})

	fb.OpenNewFolderPopup()
	assert.True(t, fb.IsNewFolderPopupShown())
	assert.False(t, fb.CanCreateNewFolder())

	fb.SetNewFolderName("reports")
	assert.True(t, fb.CanCreateNewFolder())
	assert.True(t, fb.CreateNewFolder())

	assert.False(t, fb.IsNewFolderPopupShown())
	assert.True(t, IsDirectory(filepath.Join(dir, "reports")))

	// The fresh listing contains the new directory
	found := false
	for _, e := range fb.Entries() {
		if e.Name == "reports" && e.IsDir {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNewFolderCreationFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "taken", "x")
	fb := openBrowser(t, DialogConfig{Mode: ModeSelectFolder, InitialPath: dir, AllowCreateFolder: true})

	fb.OpenNewFolderPopup()
	fb.SetNewFolderName("taken")
	assert.False(t, fb.CreateNewFolder())

	assert.True(t, fb.IsNewFolderPopupShown(), "popup stays open on failure")
	assert.True(t, fb.NewFolderFailed())

	// Editing the name clears the failure flag
	fb.SetNewFolderName("taken2")
	assert.False(t, fb.NewFolderFailed())
}

func TestSetSortOrderReorders(t *testing.T) {
	dir := browserFixture(t)
	fb := openBrowser(t, DialogConfig{Mode: ModeOpen, InitialPath: dir})

	fb.SetSortOrder(SortNameDesc)
	entries := fb.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "folder", entries[0].Name, "directories stay first")
	assert.Equal(t, "cherry.png", entries[1].Name)
}

func TestMetricsScaleWithTouchMode(t *testing.T) {
	desktop := ComputeMetrics(false, 1.0)
	touch := ComputeMetrics(true, 1.0)
	assert.Greater(t, touch.RowHeight, desktop.RowHeight)
	assert.Greater(t, touch.ButtonHeight, desktop.ButtonHeight)

	doubled := ComputeMetrics(false, 2.0)
	assert.InDelta(t, desktop.RowHeight*2, doubled.RowHeight, 0.001)
	assert.InDelta(t, desktop.DialogWidth*2, doubled.DialogWidth, 0.001)
}

func TestScalable(t *testing.T) {
	var s Scalable
	assert.Equal(t, 1.0, s.Scale())

	s.SetScale(0) // ignored
	assert.Equal(t, 1.0, s.Scale())

	s.SetScale(1.5)
	assert.Equal(t, 1.5, s.Scale())
	assert.True(t, s.HasScaleChanged())

	s.AcknowledgeScaleChange()
	assert.False(t, s.HasScaleChanged())
}
