package dialog

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const doubleClickWindow = 500 * time.Millisecond

// browserUI owns the widgets and per-frame layout of one browser session.
// It is rebuilt whenever the session restarts or the scale changes, so
// widget sizes never go stale against the metrics that produced them.
type browserUI struct {
	fb *FileBrowserDialog

	x, y          int
	width, height int

	upButton        *widgetButton
	homeButton      *widgetButton
	refreshButton   *widgetButton
	newFolderButton *widgetButton
	drivesDropdown  *widgetDropdown
	sortDropdown    *widgetDropdown
	filterDropdown  *widgetDropdown
	filenameInput   *widgetTextInput
	confirmButton   *widgetButton
	cancelButton    *widgetButton

	folderNameInput    *widgetTextInput
	folderCreateButton *widgetButton
	folderCancelButton *widgetButton
	overwriteYesButton *widgetButton
	overwriteNoButton  *widgetButton

	listBounds     image.Rectangle
	scrollOffset   int
	hoveredIndex   int
	lastClickTime  time.Time
	lastClickIndex int

	rowFont   font.Face
	titleFont font.Face

	crumbs []pathCrumb
}

type pathCrumb struct {
	label  string
	path   string
	bounds image.Rectangle
}

// Render drives one frame of the dialog: input first, then drawing. It
// returns the session result so callers can poll for the terminal state.
func (fb *FileBrowserDialog) Render(screen *ebiten.Image) Result {
	if !fb.isOpen {
		return fb.result
	}

	if fb.HasScaleChanged() {
		fb.AcknowledgeScaleChange()
		fb.UpdateSizing()
		fb.ui = nil
	}
	if fb.ui == nil {
		fb.ui = newBrowserUI(fb)
	}

	fb.ui.layout(screen)
	fb.ui.update()

	// The session may have reached a terminal state during input handling.
	if !fb.isOpen {
		return fb.result
	}

	fb.ui.draw(screen)
	return fb.result
}

func newBrowserUI(fb *FileBrowserDialog) *browserUI {
	m := fb.Metrics()
	ui := &browserUI{
		fb:             fb,
		hoveredIndex:   -1,
		lastClickIndex: -1,
		rowFont:        loadFont(m.FontSize),
		titleFont:      loadFont(m.FontSize + 2),
	}

	btnW := int(m.IconButtonWidth)
	btnH := int(m.ButtonHeight)

	ui.upButton = newWidgetButton("Up", 0, 0, btnW, btnH, m.FontSize, fb.NavigateUp)
	ui.homeButton = newWidgetButton("Home", 0, 0, btnW, btnH, m.FontSize, func() {
		fb.NavigateTo(GetHomeDirectory())
	})
	ui.refreshButton = newWidgetButton("Refresh", 0, 0, btnW, btnH, m.FontSize, fb.RefreshDirectory)
	ui.newFolderButton = newWidgetButton("New Folder", 0, 0, btnW*2, btnH, m.FontSize, func() {
		fb.OpenNewFolderPopup()
		ui.folderNameInput.SetValue("")
		ui.folderNameInput.Focused = true
	})

	ui.drivesDropdown = newWidgetDropdown(0, 0, int(m.DrivesComboWidth), btnH, m.FontSize, fb.Drives(), func(i int) {
		drives := fb.Drives()
		if i >= 0 && i < len(drives) {
			fb.NavigateTo(drives[i])
		}
	})

	sortLabels := make([]string, 0, 6)
	for order := SortNameAsc; order <= SortDateDesc; order++ {
		sortLabels = append(sortLabels, order.Label())
	}
	ui.sortDropdown = newWidgetDropdown(0, 0, int(m.DateColumnWidth), btnH, m.FontSize, sortLabels, func(i int) {
		fb.SetSortOrder(SortOrder(i))
		ui.scrollOffset = 0
	})

	if len(fb.config.Filters) > 0 {
		filterLabels := make([]string, len(fb.config.Filters))
		for i, f := range fb.config.Filters {
			filterLabels[i] = f.ToDisplayString()
		}
		ui.filterDropdown = newWidgetDropdown(0, 0, int(m.DrivesComboWidth*2), int(m.InputHeight), m.FontSize, filterLabels, func(i int) {
			fb.SelectFilter(i)
			ui.scrollOffset = 0
		})
		ui.filterDropdown.SetSelectedIndex(fb.SelectedFilterIndex())
	}

	ui.filenameInput = newWidgetTextInput("Filename", 0, 0, 100, int(m.InputHeight), m.FontSize)
	ui.filenameInput.SetValue(fb.Filename())
	ui.filenameInput.onChanged = fb.SetFilename
	ui.filenameInput.onSubmit = fb.Confirm

	ui.confirmButton = newWidgetButton(confirmLabel(fb.config.Mode), 0, 0, int(m.ButtonWidth), btnH, m.FontSize, fb.Confirm)
	ui.confirmButton.SetPrimaryStyle()
	ui.cancelButton = newWidgetButton("Cancel", 0, 0, int(m.ButtonWidth), btnH, m.FontSize, fb.Close)

	ui.folderNameInput = newWidgetTextInput("Folder name", 0, 0, int(m.PopupInputWidth), int(m.InputHeight), m.FontSize)
	ui.folderNameInput.onChanged = fb.SetNewFolderName
	ui.folderNameInput.onSubmit = func() { fb.CreateNewFolder() }
	ui.folderCreateButton = newWidgetButton("Create", 0, 0, int(m.ButtonWidth), btnH, m.FontSize, func() { fb.CreateNewFolder() })
	ui.folderCreateButton.SetPrimaryStyle()
	ui.folderCancelButton = newWidgetButton("Cancel", 0, 0, int(m.ButtonWidth), btnH, m.FontSize, fb.CancelNewFolder)

	ui.overwriteYesButton = newWidgetButton("Yes", 0, 0, int(m.ButtonWidth), btnH, m.FontSize, fb.ConfirmOverwrite)
	ui.overwriteYesButton.SetPrimaryStyle()
	ui.overwriteNoButton = newWidgetButton("No", 0, 0, int(m.ButtonWidth), btnH, m.FontSize, fb.DeclineOverwrite)

	return ui
}

func confirmLabel(mode Mode) string {
	switch mode {
	case ModeSave:
		return "Save"
	case ModeSelectFolder:
		return "Select"
	}
	return "Open"
}

func (ui *browserUI) title() string {
	if ui.fb.config.Title != "" {
		return ui.fb.config.Title
	}
	switch ui.fb.config.Mode {
	case ModeSave:
		return "Save File"
	case ModeSelectFolder:
		return "Select Folder"
	}
	return "Open File"
}

// layout recomputes widget positions from the screen size. The dialog is
// centered and shrinks to fit small screens, clamped to the minimum size.
func (ui *browserUI) layout(screen *ebiten.Image) {
	fb := ui.fb
	m := fb.Metrics()
	screenBounds := screen.Bounds()
	screenW, screenH := screenBounds.Dx(), screenBounds.Dy()

	ui.width = int(m.DialogWidth)
	ui.height = int(m.DialogHeight)
	if ui.width > screenW-20 {
		ui.width = screenW - 20
	}
	if ui.height > screenH-20 {
		ui.height = screenH - 20
	}
	if ui.width < int(m.DialogMinWidth) {
		ui.width = int(m.DialogMinWidth)
	}
	if ui.height < int(m.DialogMinHeight) {
		ui.height = int(m.DialogMinHeight)
	}
	ui.x = (screenW - ui.width) / 2
	ui.y = (screenH - ui.height) / 2

	pad := int(m.ButtonSpacing)
	titleH := int(m.PathBarHeight)
	toolbarY := ui.y + titleH + pad
	btnH := int(m.ButtonHeight)

	tx := ui.x + pad
	ui.upButton.SetPosition(tx, toolbarY)
	tx += ui.upButton.Width + pad
	ui.homeButton.SetPosition(tx, toolbarY)
	tx += ui.homeButton.Width + pad
	ui.drivesDropdown.SetPosition(tx, toolbarY)
	tx += ui.drivesDropdown.Width + pad
	ui.refreshButton.SetPosition(tx, toolbarY)
	tx += ui.refreshButton.Width + pad
	if fb.config.AllowCreateFolder {
		ui.newFolderButton.SetPosition(tx, toolbarY)
	}
	ui.sortDropdown.SetPosition(ui.x+ui.width-pad-ui.sortDropdown.Width, toolbarY)

	crumbY := toolbarY + btnH + pad
	crumbH := int(m.InputHeight)
	ui.layoutCrumbs(crumbY, crumbH)

	bottomRows := btnH + pad
	showFilenameRow := fb.config.Mode != ModeSelectFolder
	if showFilenameRow {
		bottomRows += int(m.InputHeight) + pad
	}

	listTop := crumbY + crumbH + pad
	listBottom := ui.y + ui.height - pad - bottomRows
	ui.listBounds = image.Rect(ui.x+pad, listTop, ui.x+ui.width-pad, listBottom)

	rowY := listBottom + pad
	if showFilenameRow {
		inputW := ui.width - pad*2
		if ui.filterDropdown != nil {
			inputW -= ui.filterDropdown.Width + pad
			ui.filterDropdown.SetPosition(ui.x+ui.width-pad-ui.filterDropdown.Width, rowY)
		}
		ui.filenameInput.SetPosition(ui.x+pad, rowY)
		ui.filenameInput.Width = inputW
		rowY += int(m.InputHeight) + pad
	}

	ui.cancelButton.SetPosition(ui.x+ui.width-pad-ui.cancelButton.Width, rowY)
	ui.confirmButton.SetPosition(ui.cancelButton.X-pad-ui.confirmButton.Width, rowY)

	dialogBounds := image.Rect(ui.x, ui.y, ui.x+ui.width, ui.y+ui.height)
	ui.drivesDropdown.SetContainerBounds(dialogBounds)
	ui.sortDropdown.SetContainerBounds(dialogBounds)
	if ui.filterDropdown != nil {
		ui.filterDropdown.SetContainerBounds(dialogBounds)
	}

	// Popup widget positions, centered on the dialog.
	popupW := int(m.PopupInputWidth) + pad*2
	popupH := int(m.InputHeight) + btnH + pad*4 + int(m.PathBarHeight)
	px := ui.x + (ui.width-popupW)/2
	py := ui.y + (ui.height-popupH)/2
	ui.folderNameInput.SetPosition(px+pad, py+int(m.PathBarHeight)+pad)
	ui.folderCancelButton.SetPosition(px+popupW-pad-ui.folderCancelButton.Width,
		py+popupH-pad-btnH)
	ui.folderCreateButton.SetPosition(ui.folderCancelButton.X-pad-ui.folderCreateButton.Width,
		ui.folderCancelButton.Y)
	ui.overwriteNoButton.SetPosition(ui.folderCancelButton.X, ui.folderCancelButton.Y)
	ui.overwriteYesButton.SetPosition(ui.folderCreateButton.X, ui.folderCreateButton.Y)

	// Keep the displayed filename in sync with selection-driven changes.
	if ui.filenameInput.Value != fb.Filename() {
		ui.filenameInput.SetValue(fb.Filename())
	}
	ui.folderNameInput.ErrorState = fb.NewFolderFailed()
	ui.folderCreateButton.SetEnabled(fb.CanCreateNewFolder())
	ui.confirmButton.SetEnabled(fb.IsValidSelection())
}

// layoutCrumbs rebuilds the clickable path segments for the current
// directory, truncating from the left when the path does not fit.
func (ui *browserUI) layoutCrumbs(y, h int) {
	fb := ui.fb
	m := fb.Metrics()
	pad := int(m.ButtonSpacing)

	var chain []string
	for p := fb.CurrentPath(); ; {
		chain = append(chain, p)
		parent := GetParentDirectory(p)
		if parent == p {
			break
		}
		p = parent
	}
	// chain is leaf-first; reverse into root-first display order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	ui.crumbs = ui.crumbs[:0]
	x := ui.x + pad
	maxX := ui.x + ui.width - pad
	for _, p := range chain {
		label := GetFilename(p)
		if label == "" {
			label = p
		}
		w := textWidth(label, ui.rowFont) + pad*2
		ui.crumbs = append(ui.crumbs, pathCrumb{
			label:  label,
			path:   p,
			bounds: image.Rect(x, y, x+w, y+h),
		})
		x += w + 2
	}

	// Drop leading crumbs until the tail fits.
	for len(ui.crumbs) > 1 && ui.crumbs[len(ui.crumbs)-1].bounds.Max.X > maxX {
		shift := ui.crumbs[1].bounds.Min.X - ui.crumbs[0].bounds.Min.X
		ui.crumbs = ui.crumbs[1:]
		for i := range ui.crumbs {
			ui.crumbs[i].bounds = ui.crumbs[i].bounds.Sub(image.Pt(shift, 0))
		}
	}
}

func (ui *browserUI) visibleRows() int {
	m := ui.fb.Metrics()
	rows := ui.listBounds.Dy() / int(m.RowHeight)
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (ui *browserUI) maxScroll() int {
	maxScroll := len(ui.fb.Entries()) - ui.visibleRows()
	if maxScroll < 0 {
		maxScroll = 0
	}
	return maxScroll
}

func (ui *browserUI) clampScroll() {
	if ui.scrollOffset > ui.maxScroll() {
		ui.scrollOffset = ui.maxScroll()
	}
	if ui.scrollOffset < 0 {
		ui.scrollOffset = 0
	}
}

func (ui *browserUI) scrollTo(index int) {
	if index < 0 {
		return
	}
	if index < ui.scrollOffset {
		ui.scrollOffset = index
	} else if index >= ui.scrollOffset+ui.visibleRows() {
		ui.scrollOffset = index - ui.visibleRows() + 1
	}
	ui.clampScroll()
}

func (ui *browserUI) update() {
	fb := ui.fb
	mx, my := ebiten.CursorPosition()

	if fb.IsOverwriteConfirmShown() {
		ui.overwriteYesButton.Update(mx, my)
		ui.overwriteNoButton.Update(mx, my)
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			fb.DeclineOverwrite()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			fb.ConfirmOverwrite()
		}
		return
	}

	if fb.IsNewFolderPopupShown() {
		ui.folderNameInput.Focused = true
		ui.folderNameInput.Update()
		ui.folderCreateButton.Update(mx, my)
		ui.folderCancelButton.Update(mx, my)
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			fb.CancelNewFolder()
		}
		return
	}

	// Open dropdown overlays take input priority over everything below.
	for _, dd := range ui.dropdowns() {
		if dd.IsOpen() {
			dd.Update(mx, my)
			return
		}
	}

	if ui.upButton.Update(mx, my) ||
		ui.homeButton.Update(mx, my) ||
		ui.refreshButton.Update(mx, my) ||
		(fb.config.AllowCreateFolder && ui.newFolderButton.Update(mx, my)) ||
		ui.confirmButton.Update(mx, my) ||
		ui.cancelButton.Update(mx, my) {
		ui.clampScroll()
		return
	}

	consumed := false
	for _, dd := range ui.dropdowns() {
		if dd.Update(mx, my) {
			consumed = true
			break
		}
	}
	if consumed {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for _, crumb := range ui.crumbs {
			if pointIn(crumb.bounds, mx, my) {
				fb.NavigateTo(crumb.path)
				ui.scrollOffset = 0
				return
			}
		}
	}

	ui.updateFilenameFocus(mx, my)
	if fb.config.Mode != ModeSelectFolder {
		ui.filenameInput.Update()
	}

	ui.updateList(mx, my)

	if !ui.filenameInput.Focused {
		ui.handleKeyboard()
	} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ui.filenameInput.Focused = false
	}

	if target := fb.ConsumePendingScroll(); target >= 0 {
		ui.scrollTo(target)
	}
}

func (ui *browserUI) dropdowns() []*widgetDropdown {
	dds := []*widgetDropdown{ui.drivesDropdown, ui.sortDropdown}
	if ui.filterDropdown != nil {
		dds = append(dds, ui.filterDropdown)
	}
	return dds
}

func (ui *browserUI) updateFilenameFocus(mx, my int) {
	if ui.fb.config.Mode == ModeSelectFolder {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ui.filenameInput.Focused = pointIn(ui.filenameInput.Bounds(), mx, my)
	}
}

// updateList handles hover, wheel scrolling, row clicks and activation.
// Activation requests made while walking the rows are deferred and applied
// after the walk, keeping the entry slice stable for the whole pass.
func (ui *browserUI) updateList(mx, my int) {
	fb := ui.fb
	m := fb.Metrics()
	rowH := int(m.RowHeight)
	ui.hoveredIndex = -1

	inList := pointIn(ui.listBounds, mx, my)
	if inList {
		_, wheelY := ebiten.Wheel()
		if wheelY != 0 {
			ui.scrollOffset -= int(wheelY * 3)
			ui.clampScroll()
		}
	}

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	entries := fb.Entries()
	visible := ui.visibleRows()

	for row := 0; row < visible; row++ {
		index := ui.scrollOffset + row
		if index >= len(entries) {
			break
		}
		rowTop := ui.listBounds.Min.Y + row*rowH
		rowBounds := image.Rect(ui.listBounds.Min.X, rowTop, ui.listBounds.Max.X-int(m.ScrollbarWidth), rowTop+rowH)
		if !pointIn(rowBounds, mx, my) {
			continue
		}
		ui.hoveredIndex = index
		if !clicked {
			continue
		}

		now := time.Now()
		isDoubleClick := index == ui.lastClickIndex && now.Sub(ui.lastClickTime) < doubleClickWindow
		ui.lastClickTime = now
		ui.lastClickIndex = index

		if fb.config.TouchMode || isDoubleClick {
			fb.RequestActivation(index)
		} else {
			fb.SelectEntry(index)
		}
	}

	fb.ApplyPendingActivation()
	ui.clampScroll()
	ui.updateScrollbar(mx, my, clicked)
}

func (ui *browserUI) updateScrollbar(mx, my int, clicked bool) {
	if !clicked || ui.maxScroll() == 0 {
		return
	}
	m := ui.fb.Metrics()
	track := image.Rect(ui.listBounds.Max.X-int(m.ScrollbarWidth), ui.listBounds.Min.Y,
		ui.listBounds.Max.X, ui.listBounds.Max.Y)
	if !pointIn(track, mx, my) {
		return
	}
	frac := float64(my-track.Min.Y) / float64(track.Dy())
	ui.scrollOffset = int(frac * float64(ui.maxScroll()+1))
	ui.clampScroll()
}

func (ui *browserUI) handleKeyboard() {
	fb := ui.fb

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		fb.Close()
		return
	}

	entries := fb.Entries()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && len(entries) > 0 {
		next := fb.SelectedIndex() + 1
		if next >= len(entries) {
			next = len(entries) - 1
		}
		fb.SelectEntry(next)
		ui.scrollTo(next)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && len(entries) > 0 {
		prev := fb.SelectedIndex() - 1
		if prev < 0 {
			prev = 0
		}
		fb.SelectEntry(prev)
		ui.scrollTo(prev)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		fb.NavigateUp()
		ui.scrollOffset = 0
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		selected := fb.SelectedIndex()
		if selected >= 0 && selected < len(entries) && entries[selected].IsDir {
			fb.RequestActivation(selected)
			fb.ApplyPendingActivation()
			ui.scrollOffset = 0
		} else {
			fb.Confirm()
		}
	}
}

func (ui *browserUI) draw(screen *ebiten.Image) {
	fb := ui.fb
	m := fb.Metrics()
	screenBounds := screen.Bounds()

	vector.DrawFilledRect(screen, 0, 0, float32(screenBounds.Dx()), float32(screenBounds.Dy()),
		dialogColors.Overlay, false)

	vector.DrawFilledRect(screen, float32(ui.x), float32(ui.y), float32(ui.width), float32(ui.height),
		dialogColors.PanelBackground, false)
	vector.StrokeRect(screen, float32(ui.x), float32(ui.y), float32(ui.width), float32(ui.height),
		2, dialogColors.BorderActive, false)

	titleH := int(m.PathBarHeight)
	vector.DrawFilledRect(screen, float32(ui.x), float32(ui.y), float32(ui.width), float32(titleH),
		dialogColors.TitleBar, false)
	drawText(screen, ui.title(), ui.titleFont, ui.x+int(m.ButtonSpacing), ui.y+titleH/2+5, dialogColors.Text)

	ui.upButton.Draw(screen)
	ui.homeButton.Draw(screen)
	ui.refreshButton.Draw(screen)
	if fb.config.AllowCreateFolder {
		ui.newFolderButton.Draw(screen)
	}
	ui.drivesDropdown.Draw(screen)
	ui.sortDropdown.Draw(screen)

	ui.drawCrumbs(screen)
	ui.drawList(screen)

	if fb.config.Mode != ModeSelectFolder {
		ui.filenameInput.Draw(screen)
		if ui.filterDropdown != nil {
			ui.filterDropdown.Draw(screen)
		}
	}
	ui.confirmButton.Draw(screen)
	ui.cancelButton.Draw(screen)

	// Dropdown overlays float above the dialog content.
	for _, dd := range ui.dropdowns() {
		dd.DrawOverlay(screen)
	}

	if fb.IsNewFolderPopupShown() {
		ui.drawNewFolderPopup(screen)
	}
	if fb.IsOverwriteConfirmShown() {
		ui.drawOverwritePopup(screen)
	}
}

func (ui *browserUI) drawCrumbs(screen *ebiten.Image) {
	for i, crumb := range ui.crumbs {
		b := crumb.bounds
		vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()),
			dialogColors.Surface, false)
		clr := dialogColors.TextSecondary
		if i == len(ui.crumbs)-1 {
			clr = dialogColors.Text
		}
		drawTextCentered(screen, crumb.label, ui.rowFont, b, clr)
	}
}

func (ui *browserUI) drawList(screen *ebiten.Image) {
	fb := ui.fb
	m := fb.Metrics()
	rowH := int(m.RowHeight)
	lb := ui.listBounds

	vector.DrawFilledRect(screen, float32(lb.Min.X), float32(lb.Min.Y), float32(lb.Dx()), float32(lb.Dy()),
		dialogColors.ItemBackground, false)
	vector.StrokeRect(screen, float32(lb.Min.X), float32(lb.Min.Y), float32(lb.Dx()), float32(lb.Dy()),
		1, dialogColors.Border, false)

	entries := fb.Entries()
	visible := ui.visibleRows()
	nameW := lb.Dx() - int(m.SizeColumnWidth) - int(m.DateColumnWidth) - int(m.ScrollbarWidth)

	for row := 0; row < visible; row++ {
		index := ui.scrollOffset + row
		if index >= len(entries) {
			break
		}
		entry := entries[index]
		rowTop := lb.Min.Y + row*rowH

		if index == fb.SelectedIndex() {
			vector.DrawFilledRect(screen, float32(lb.Min.X), float32(rowTop),
				float32(lb.Dx()-int(m.ScrollbarWidth)), float32(rowH), dialogColors.ItemSelected, false)
		} else if index == ui.hoveredIndex {
			vector.DrawFilledRect(screen, float32(lb.Min.X), float32(rowTop),
				float32(lb.Dx()-int(m.ScrollbarWidth)), float32(rowH), dialogColors.ItemHover, false)
		}

		textY := rowTop + rowH/2 + 5
		name := entry.Name
		if entry.IsDir {
			name = "[" + name + "]"
		}
		name = truncateText(name, ui.rowFont, nameW-16)
		clr := dialogColors.Text
		if entry.IsDir {
			clr = dialogColors.BorderActive
		}
		drawText(screen, name, ui.rowFont, lb.Min.X+8, textY, clr)

		if !entry.IsDir {
			drawText(screen, FormatFileSize(entry.Size), ui.rowFont,
				lb.Min.X+nameW+8, textY, dialogColors.TextSecondary)
		}
		drawText(screen, FormatDate(entry.ModTime), ui.rowFont,
			lb.Min.X+nameW+int(m.SizeColumnWidth)+8, textY, dialogColors.TextSecondary)
	}

	ui.drawScrollbar(screen)
}

func (ui *browserUI) drawScrollbar(screen *ebiten.Image) {
	maxScroll := ui.maxScroll()
	if maxScroll == 0 {
		return
	}
	m := ui.fb.Metrics()
	lb := ui.listBounds
	trackX := lb.Max.X - int(m.ScrollbarWidth)

	vector.DrawFilledRect(screen, float32(trackX), float32(lb.Min.Y),
		float32(m.ScrollbarWidth), float32(lb.Dy()), dialogColors.Surface, false)

	total := len(ui.fb.Entries())
	thumbH := lb.Dy() * ui.visibleRows() / total
	if thumbH < 20 {
		thumbH = 20
	}
	thumbY := lb.Min.Y + (lb.Dy()-thumbH)*ui.scrollOffset/maxScroll
	vector.DrawFilledRect(screen, float32(trackX+2), float32(thumbY),
		float32(int(m.ScrollbarWidth)-4), float32(thumbH), dialogColors.Border, false)
}

func (ui *browserUI) drawPopupFrame(screen *ebiten.Image, title string, w, h int) (int, int) {
	m := ui.fb.Metrics()
	px := ui.x + (ui.width-w)/2
	py := ui.y + (ui.height-h)/2

	vector.DrawFilledRect(screen, float32(ui.x), float32(ui.y), float32(ui.width), float32(ui.height),
		dialogColors.Overlay, false)
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(w), float32(h),
		dialogColors.PanelBackground, false)
	vector.StrokeRect(screen, float32(px), float32(py), float32(w), float32(h),
		2, dialogColors.BorderActive, false)

	titleH := int(m.PathBarHeight)
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(w), float32(titleH),
		dialogColors.TitleBar, false)
	drawText(screen, title, ui.titleFont, px+int(m.ButtonSpacing), py+titleH/2+5, dialogColors.Text)

	return px, py
}

func (ui *browserUI) drawNewFolderPopup(screen *ebiten.Image) {
	m := ui.fb.Metrics()
	pad := int(m.ButtonSpacing)
	w := int(m.PopupInputWidth) + pad*2
	h := int(m.InputHeight) + int(m.ButtonHeight) + pad*4 + int(m.PathBarHeight)

	ui.drawPopupFrame(screen, "New Folder", w, h)
	ui.folderNameInput.Draw(screen)
	ui.folderCreateButton.Draw(screen)
	ui.folderCancelButton.Draw(screen)
}

func (ui *browserUI) drawOverwritePopup(screen *ebiten.Image) {
	fb := ui.fb
	m := fb.Metrics()
	pad := int(m.ButtonSpacing)
	w := int(m.PopupInputWidth) + pad*2
	h := int(m.InputHeight) + int(m.ButtonHeight) + pad*4 + int(m.PathBarHeight)

	px, py := ui.drawPopupFrame(screen, "Confirm Overwrite", w, h)

	message := GetFilename(fb.OverwritePath()) + " already exists. Overwrite?"
	message = truncateText(message, ui.rowFont, w-pad*2)
	drawText(screen, message, ui.rowFont, px+pad, py+int(m.PathBarHeight)+pad+int(m.InputHeight)/2,
		dialogColors.Text)

	ui.overwriteYesButton.Draw(screen)
	ui.overwriteNoButton.Draw(screen)
}

func pointIn(r image.Rectangle, x, y int) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

func textWidth(str string, face font.Face) int {
	return font.MeasureString(face, str).Ceil()
}
