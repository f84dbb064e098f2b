package dialog

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// confirmUI owns the widgets and layout of one confirmation session.
type confirmUI struct {
	cd *ConfirmationDialog

	x, y          int
	width, height int

	buttons      []*widgetButton
	messageLines []string
	detailLines  []string

	messageFont font.Face
	titleFont   font.Face
}

// Render drives one frame of the confirmation dialog and returns the
// clicked button, or ButtonNone while the dialog stays open.
func (cd *ConfirmationDialog) Render(screen *ebiten.Image) Button {
	if !cd.isShown {
		return cd.result
	}

	if cd.HasScaleChanged() {
		cd.AcknowledgeScaleChange()
		cd.UpdateSizing()
		cd.ui = nil
	}
	if cd.ui == nil {
		cd.ui = newConfirmUI(cd)
	}

	cd.ui.layout(screen)
	cd.ui.update()
	if !cd.isShown {
		return cd.result
	}

	cd.ui.draw(screen)
	return cd.result
}

func newConfirmUI(cd *ConfirmationDialog) *confirmUI {
	m := cd.Metrics()
	ui := &confirmUI{
		cd:          cd,
		messageFont: loadFont(m.FontSize),
		titleFont:   loadFont(m.FontSize + 2),
	}

	for _, kind := range cd.config.Buttons.Ordered() {
		kind := kind
		btn := newWidgetButton(kind.Label(), 0, 0, int(m.ButtonWidth), int(m.ButtonHeight), m.FontSize, func() {
			cd.HandleButtonClick(kind)
		})
		if kind == cd.config.DefaultButton {
			btn.SetPrimaryStyle()
		}
		ui.buttons = append(ui.buttons, btn)
	}

	return ui
}

// wrapText breaks a message into lines no wider than maxWidth pixels.
func wrapText(str string, face font.Face, maxWidth int) []string {
	var lines []string
	for _, paragraph := range strings.Split(str, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if textWidth(candidate, face) > maxWidth {
				lines = append(lines, line)
				line = word
			} else {
				line = candidate
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func (ui *confirmUI) layout(screen *ebiten.Image) {
	cd := ui.cd
	m := cd.Metrics()
	scale := cd.Scale()
	pad := int(m.ButtonSpacing)

	minW := int(cd.config.MinWidth * scale)
	maxW := int(cd.config.MaxWidth * scale)

	// Width grows to fit the single-line message or the button row,
	// clamped to the configured bounds.
	iconW := 0
	if cd.config.Icon != IconNone {
		iconW = int(m.ConfirmIconSize) + pad
	}
	wantW := textWidth(cd.config.Message, ui.messageFont) + iconW + pad*4
	buttonRowW := len(ui.buttons)*(int(m.ButtonWidth)+pad) + pad
	if buttonRowW > wantW {
		wantW = buttonRowW
	}
	ui.width = wantW
	if ui.width < minW {
		ui.width = minW
	}
	if ui.width > maxW {
		ui.width = maxW
	}

	contentW := ui.width - pad*2 - iconW
	ui.messageLines = wrapText(cd.config.Message, ui.messageFont, contentW)
	ui.detailLines = nil
	if cd.config.DetailMessage != "" {
		ui.detailLines = wrapText(cd.config.DetailMessage, ui.messageFont, contentW)
	}

	lineH := int(m.FontSize) + 6
	textH := (len(ui.messageLines) + len(ui.detailLines)) * lineH
	minTextH := int(m.ConfirmIconSize)
	if textH < minTextH && cd.config.Icon != IconNone {
		textH = minTextH
	}
	ui.height = int(m.PathBarHeight) + pad + textH + pad*2 + int(m.ButtonHeight) + pad

	screenBounds := screen.Bounds()
	ui.x = (screenBounds.Dx() - ui.width) / 2
	ui.y = (screenBounds.Dy() - ui.height) / 2

	bx := ui.x + ui.width - pad
	by := ui.y + ui.height - pad - int(m.ButtonHeight)
	for i := len(ui.buttons) - 1; i >= 0; i-- {
		bx -= ui.buttons[i].Width
		ui.buttons[i].SetPosition(bx, by)
		bx -= pad
	}
}

func (ui *confirmUI) update() {
	mx, my := ebiten.CursorPosition()
	for _, btn := range ui.buttons {
		if btn.Update(mx, my) {
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ui.cd.HandleEscape()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		ui.cd.HandleEnter()
	}
}

func iconColor(icon Icon) color.RGBA {
	switch icon {
	case IconWarning:
		return color.RGBA{255, 193, 7, 255}
	case IconError:
		return color.RGBA{220, 53, 69, 255}
	case IconQuestion:
		return color.RGBA{70, 130, 255, 255}
	}
	return color.RGBA{100, 150, 255, 255}
}

func iconGlyph(icon Icon) string {
	switch icon {
	case IconWarning:
		return "!"
	case IconError:
		return "x"
	case IconQuestion:
		return "?"
	}
	return "i"
}

func (ui *confirmUI) draw(screen *ebiten.Image) {
	cd := ui.cd
	m := cd.Metrics()
	pad := int(m.ButtonSpacing)
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
	drawText(screen, cd.config.Title, ui.titleFont, ui.x+pad, ui.y+titleH/2+5, dialogColors.Text)

	textX := ui.x + pad
	textY := ui.y + titleH + pad

	if cd.config.Icon != IconNone {
		iconSize := float32(m.ConfirmIconSize)
		cx := float32(textX) + iconSize/2
		cy := float32(textY) + iconSize/2
		vector.DrawFilledCircle(screen, cx, cy, iconSize/2, iconColor(cd.config.Icon), true)
		glyph := iconGlyph(cd.config.Icon)
		gw := textWidth(glyph, ui.titleFont)
		drawText(screen, glyph, ui.titleFont, int(cx)-gw/2, int(cy)+5, dialogColors.Text)
		textX += int(m.ConfirmIconSize) + pad
	}

	lineH := int(m.FontSize) + 6
	y := textY + lineH - 4
	for _, line := range ui.messageLines {
		drawText(screen, line, ui.messageFont, textX, y, dialogColors.Text)
		y += lineH
	}
	for _, line := range ui.detailLines {
		drawText(screen, line, ui.messageFont, textX, y, dialogColors.TextSecondary)
		y += lineH
	}

	for _, btn := range ui.buttons {
		btn.Draw(screen)
	}
}
