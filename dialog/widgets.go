package dialog

import (
	"image"
	"image/color"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/font"
)

// dialogColors is the shared palette for the dialog widgets
var dialogColors = struct {
	Overlay         color.RGBA
	PanelBackground color.RGBA
	Surface         color.RGBA
	TitleBar        color.RGBA
	Text            color.RGBA
	TextSecondary   color.RGBA
	TextPlaceholder color.RGBA
	Border          color.RGBA
	BorderActive    color.RGBA
	BorderError     color.RGBA
	Button          color.RGBA
	ButtonHover     color.RGBA
	ButtonActive    color.RGBA
	ButtonPrimary   color.RGBA
	ItemBackground  color.RGBA
	ItemHover       color.RGBA
	ItemSelected    color.RGBA
	Selection       color.RGBA
}{
	Overlay:         color.RGBA{0, 0, 0, 150},
	PanelBackground: color.RGBA{30, 30, 45, 255},
	Surface:         color.RGBA{40, 40, 50, 255},
	TitleBar:        color.RGBA{45, 45, 65, 255},
	Text:            color.RGBA{255, 255, 255, 255},
	TextSecondary:   color.RGBA{200, 200, 200, 255},
	TextPlaceholder: color.RGBA{120, 120, 120, 255},
	Border:          color.RGBA{80, 80, 90, 255},
	BorderActive:    color.RGBA{100, 150, 255, 255},
	BorderError:     color.RGBA{220, 53, 69, 255},
	Button:          color.RGBA{55, 55, 75, 255},
	ButtonHover:     color.RGBA{75, 75, 100, 255},
	ButtonActive:    color.RGBA{45, 45, 60, 255},
	ButtonPrimary:   color.RGBA{70, 130, 255, 255},
	ItemBackground:  color.RGBA{40, 40, 40, 255},
	ItemHover:       color.RGBA{60, 60, 60, 255},
	ItemSelected:    color.RGBA{80, 80, 120, 255},
	Selection:       color.RGBA{65, 105, 225, 128},
}

// drawText draws a string with a small vertical offset so different face
// sizes align the same way inside rows and buttons.
func drawText(screen *ebiten.Image, str string, face font.Face, x, y int, clr color.Color) {
	offset := 0
	if metrics := face.Metrics(); metrics.Height.Ceil() > 20 {
		offset = 1
	}
	text.Draw(screen, str, face, x, y+offset, clr)
}

// drawTextCentered draws a string centered inside the given rectangle.
func drawTextCentered(screen *ebiten.Image, str string, face font.Face, bounds image.Rectangle, clr color.Color) {
	sb := text.BoundString(face, str)
	x := bounds.Min.X + (bounds.Dx()-sb.Dx())/2
	y := bounds.Min.Y + (bounds.Dy()+sb.Dy())/2 - 2
	text.Draw(screen, str, face, x, y, clr)
}

// truncateText shortens a string with an ellipsis so it fits maxWidth pixels.
func truncateText(str string, face font.Face, maxWidth int) string {
	if text.BoundString(face, str).Dx() <= maxWidth {
		return str
	}
	for len(str) > 1 {
		str = str[:len(str)-1]
		if text.BoundString(face, str+"...").Dx() <= maxWidth {
			return str + "..."
		}
	}
	return str
}

// widgetButton is a styled clickable button
type widgetButton struct {
	X, Y    int
	Width   int
	Height  int
	Text    string
	OnClick func()
	enabled bool
	hovered bool
	pressed bool
	font    font.Face

	backgroundColor *color.RGBA
	hoverColor      *color.RGBA
	textColor       *color.RGBA
}

func newWidgetButton(label string, x, y, width, height int, fontSize float64, onClick func()) *widgetButton {
	return &widgetButton{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Text:    label,
		OnClick: onClick,
		enabled: true,
		font:    loadFont(fontSize),
	}
}

func (b *widgetButton) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}

func (b *widgetButton) SetEnabled(enabled bool) {
	b.enabled = enabled
}

func (b *widgetButton) SetPrimaryStyle() {
	bg := dialogColors.ButtonPrimary
	hover := color.RGBA{90, 150, 255, 255}
	b.backgroundColor = &bg
	b.hoverColor = &hover
}

func (b *widgetButton) Bounds() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Update handles hover and click. Returns true when the button consumed a click.
func (b *widgetButton) Update(mx, my int) bool {
	if !b.enabled {
		b.hovered = false
		b.pressed = false
		return false
	}

	bounds := b.Bounds()
	b.hovered = mx >= bounds.Min.X && mx < bounds.Max.X && my >= bounds.Min.Y && my < bounds.Max.Y

	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		b.pressed = false
	}

	return false
}

func (b *widgetButton) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	switch {
	case !b.enabled:
		bgColor = color.RGBA{40, 40, 40, 255}
	case b.pressed:
		bgColor = dialogColors.ButtonActive
	case b.hovered:
		if b.hoverColor != nil {
			bgColor = *b.hoverColor
		} else {
			bgColor = dialogColors.ButtonHover
		}
	default:
		if b.backgroundColor != nil {
			bgColor = *b.backgroundColor
		} else {
			bgColor = dialogColors.Button
		}
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), bgColor, false)

	borderColor := dialogColors.Border
	if b.enabled && (b.hovered || b.pressed) {
		borderColor = dialogColors.BorderActive
	}
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, borderColor, false)

	if b.font != nil && b.Text != "" {
		textColor := dialogColors.Text
		if b.textColor != nil {
			textColor = *b.textColor
		} else if !b.enabled {
			textColor = dialogColors.TextSecondary
		}
		drawTextCentered(screen, b.Text, b.font, b.Bounds(), textColor)
	}
}

// widgetTextInput is a single line text field with cursor, selection and
// clipboard support.
type widgetTextInput struct {
	Value       string
	Placeholder string
	X, Y        int
	Width       int
	Height      int
	MaxLength   int
	Focused     bool
	ErrorState  bool

	cursorBlink    time.Time
	cursorPos      int
	selStart       int
	selEnd         int
	backspaceTimer time.Time
	font           font.Face
	onChanged      func(string)
	onSubmit       func()
	allowPathChars bool
}

func newWidgetTextInput(placeholder string, x, y, width, height int, fontSize float64) *widgetTextInput {
	return &widgetTextInput{
		Placeholder: placeholder,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		MaxLength:   255,
		cursorBlink: time.Now(),
		selStart:    -1,
		selEnd:      -1,
		font:        loadFont(fontSize),
	}
}

func (t *widgetTextInput) SetPosition(x, y int) {
	t.X = x
	t.Y = y
}

func (t *widgetTextInput) SetValue(value string) {
	t.Value = value
	t.cursorPos = len(value)
	t.selStart = -1
	t.selEnd = -1
}

func (t *widgetTextInput) Bounds() image.Rectangle {
	return image.Rect(t.X, t.Y, t.X+t.Width, t.Y+t.Height)
}

func (t *widgetTextInput) hasSelection() bool {
	return t.selStart != -1 && t.selEnd != -1 && t.selStart != t.selEnd
}

func (t *widgetTextInput) orderedSelection() (int, int) {
	if t.selStart <= t.selEnd {
		return t.selStart, t.selEnd
	}
	return t.selEnd, t.selStart
}

func (t *widgetTextInput) deleteSelection() {
	if !t.hasSelection() {
		return
	}
	start, end := t.orderedSelection()
	if start < 0 {
		start = 0
	}
	if end > len(t.Value) {
		end = len(t.Value)
	}
	t.Value = t.Value[:start] + t.Value[end:]
	t.cursorPos = start
	t.selStart = -1
	t.selEnd = -1
}

func (t *widgetTextInput) clampCursor() {
	if t.cursorPos < 0 {
		t.cursorPos = 0
	}
	if t.cursorPos > len(t.Value) {
		t.cursorPos = len(t.Value)
	}
}

// acceptRune reports whether a typed rune is allowed in the field. Path
// separators are rejected in filename fields.
func (t *widgetTextInput) acceptRune(r rune) bool {
	if r < 32 || r == 127 {
		return false
	}
	if t.allowPathChars {
		return true
	}
	switch r {
	case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
		return false
	}
	return true
}

// Update processes keyboard input when focused. Returns true when the value
// changed this frame.
func (t *widgetTextInput) Update() bool {
	if !t.Focused {
		return false
	}

	changed := false

	chars := ebiten.AppendInputChars(nil)
	if len(chars) > 0 {
		if t.hasSelection() {
			t.deleteSelection()
			changed = true
		}
		for _, r := range chars {
			if !t.acceptRune(r) {
				continue
			}
			if t.MaxLength > 0 && len(t.Value) >= t.MaxLength {
				continue
			}
			t.clampCursor()
			t.Value = t.Value[:t.cursorPos] + string(r) + t.Value[t.cursorPos:]
			t.cursorPos++
			changed = true
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		if inpututil.IsKeyJustPressed(ebiten.KeyA) {
			t.selStart = 0
			t.selEnd = len(t.Value)
			t.cursorPos = t.selEnd
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyC) && t.hasSelection() && runtime.GOOS != "js" {
			start, end := t.orderedSelection()
			if start >= 0 && end <= len(t.Value) {
				clipboard.Write(clipboard.FmtText, []byte(t.Value[start:end]))
			}
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyV) && runtime.GOOS != "js" {
			if clipData := clipboard.Read(clipboard.FmtText); clipData != nil {
				if t.hasSelection() {
					t.deleteSelection()
					changed = true
				}
				pasted := ""
				for _, r := range string(clipData) {
					if t.acceptRune(r) {
						pasted += string(r)
					}
				}
				if pasted != "" && (t.MaxLength == 0 || len(t.Value)+len(pasted) <= t.MaxLength) {
					t.clampCursor()
					t.Value = t.Value[:t.cursorPos] + pasted + t.Value[t.cursorPos:]
					t.cursorPos += len(pasted)
					changed = true
				}
			}
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyX) && t.hasSelection() && runtime.GOOS != "js" {
			start, end := t.orderedSelection()
			if start >= 0 && end <= len(t.Value) {
				clipboard.Write(clipboard.FmtText, []byte(t.Value[start:end]))
				t.deleteSelection()
				changed = true
			}
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyBackspace) {
		shouldDelete := false
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			shouldDelete = true
			t.backspaceTimer = time.Now()
		} else if time.Since(t.backspaceTimer) > 500*time.Millisecond {
			if time.Since(t.backspaceTimer).Milliseconds()%50 < 16 {
				shouldDelete = true
			}
		}
		if shouldDelete {
			if t.hasSelection() {
				t.deleteSelection()
				changed = true
			} else if t.cursorPos > 0 {
				t.clampCursor()
				if t.cursorPos > 0 {
					t.Value = t.Value[:t.cursorPos-1] + t.Value[t.cursorPos:]
					t.cursorPos--
					changed = true
				}
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		if t.hasSelection() {
			t.deleteSelection()
			changed = true
		} else if t.cursorPos < len(t.Value) {
			t.Value = t.Value[:t.cursorPos] + t.Value[t.cursorPos+1:]
			changed = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && !ebiten.IsKeyPressed(ebiten.KeyControl) {
		if t.cursorPos > 0 {
			t.moveCursor(t.cursorPos - 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && !ebiten.IsKeyPressed(ebiten.KeyControl) {
		if t.cursorPos < len(t.Value) {
			t.moveCursor(t.cursorPos + 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		t.moveCursor(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		t.moveCursor(len(t.Value))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if t.onSubmit != nil {
			t.onSubmit()
		}
	}

	if changed && t.onChanged != nil {
		t.onChanged(t.Value)
	}

	return changed
}

func (t *widgetTextInput) moveCursor(pos int) {
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		if t.selStart == -1 {
			t.selStart = t.cursorPos
		}
		t.cursorPos = pos
		t.selEnd = t.cursorPos
	} else {
		t.selStart = -1
		t.selEnd = -1
		t.cursorPos = pos
	}
}

func (t *widgetTextInput) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height), dialogColors.Surface, false)

	borderColor := dialogColors.Border
	if t.ErrorState {
		borderColor = dialogColors.BorderError
	} else if t.Focused {
		borderColor = dialogColors.BorderActive
	}
	vector.StrokeRect(screen, float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height), 1, borderColor, false)

	textX := t.X + 8
	textY := t.Y + t.Height/2 + 5

	if t.Value == "" && t.Placeholder != "" && !t.Focused {
		drawText(screen, t.Placeholder, t.font, textX, textY, dialogColors.TextPlaceholder)
		return
	}

	display := truncateText(t.Value, t.font, t.Width-16)

	if t.hasSelection() && display == t.Value {
		start, end := t.orderedSelection()
		preWidth := text.BoundString(t.font, t.Value[:start]).Dx()
		selWidth := text.BoundString(t.font, t.Value[start:end]).Dx()
		vector.DrawFilledRect(screen, float32(textX+preWidth), float32(t.Y+4),
			float32(selWidth), float32(t.Height-8), dialogColors.Selection, false)
	}

	drawText(screen, display, t.font, textX, textY, dialogColors.Text)

	if t.Focused && display == t.Value {
		if (time.Since(t.cursorBlink).Milliseconds()/500)%2 == 0 {
			t.clampCursor()
			cursorX := textX + text.BoundString(t.font, t.Value[:t.cursorPos]).Dx() + 1
			vector.DrawFilledRect(screen, float32(cursorX), float32(t.Y+4), 1, float32(t.Height-8), dialogColors.Text, false)
		}
	}
}

// widgetDropdown is a closed list box that expands on click
type widgetDropdown struct {
	X, Y          int
	Width, Height int
	options       []string
	selectedIndex int
	isOpen        bool
	onSelected    func(int)

	hoveredIndex    int
	maxVisibleItems int
	containerBounds image.Rectangle
	openUpward      bool
	font            font.Face
}

func newWidgetDropdown(x, y, width, height int, fontSize float64, options []string, onSelected func(int)) *widgetDropdown {
	return &widgetDropdown{
		X:               x,
		Y:               y,
		Width:           width,
		Height:          height,
		options:         options,
		onSelected:      onSelected,
		hoveredIndex:    -1,
		maxVisibleItems: 8,
		font:            loadFont(fontSize),
	}
}

func (d *widgetDropdown) SetPosition(x, y int) {
	d.X = x
	d.Y = y
}

func (d *widgetDropdown) SetContainerBounds(bounds image.Rectangle) {
	d.containerBounds = bounds
}

func (d *widgetDropdown) SetSelectedIndex(index int) {
	if index >= 0 && index < len(d.options) {
		d.selectedIndex = index
	}
}

func (d *widgetDropdown) SelectedIndex() int {
	return d.selectedIndex
}

func (d *widgetDropdown) IsOpen() bool {
	return d.isOpen
}

func (d *widgetDropdown) Close() {
	d.isOpen = false
}

func (d *widgetDropdown) SetOptions(options []string) {
	d.options = options
	if d.selectedIndex >= len(options) {
		d.selectedIndex = 0
	}
	d.isOpen = false
}

func (d *widgetDropdown) visibleCount() int {
	visible := len(d.options)
	if visible > d.maxVisibleItems {
		visible = d.maxVisibleItems
	}
	return visible
}

func (d *widgetDropdown) calculateOpenDirection() {
	if d.containerBounds.Empty() {
		d.openUpward = false
		return
	}
	required := d.visibleCount() * d.Height
	spaceBelow := d.containerBounds.Max.Y - (d.Y + d.Height)
	spaceAbove := d.Y - d.containerBounds.Min.Y

	if spaceBelow >= required {
		d.openUpward = false
	} else if spaceAbove >= required {
		d.openUpward = true
	} else {
		d.openUpward = spaceAbove > spaceBelow
	}
}

func (d *widgetDropdown) itemY(i int) int {
	if d.openUpward {
		return d.Y - (d.visibleCount()-i)*d.Height
	}
	return d.Y + d.Height + i*d.Height
}

// Update handles input. Returns true when the dropdown consumed the click.
func (d *widgetDropdown) Update(mx, my int) bool {
	d.hoveredIndex = -1

	headerBounds := image.Rect(d.X, d.Y, d.X+d.Width, d.Y+d.Height)
	mouseOverHeader := mx >= headerBounds.Min.X && mx < headerBounds.Max.X &&
		my >= headerBounds.Min.Y && my < headerBounds.Max.Y

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if mouseOverHeader {
			d.calculateOpenDirection()
			d.isOpen = !d.isOpen
			return true
		}

		if d.isOpen {
			for i := 0; i < d.visibleCount(); i++ {
				iy := d.itemY(i)
				if mx >= d.X && mx < d.X+d.Width && my >= iy && my < iy+d.Height {
					d.selectedIndex = i
					d.isOpen = false
					if d.onSelected != nil {
						d.onSelected(i)
					}
					return true
				}
			}
			d.isOpen = false
			return true
		}
	}

	if d.isOpen {
		for i := 0; i < d.visibleCount(); i++ {
			iy := d.itemY(i)
			if mx >= d.X && mx < d.X+d.Width && my >= iy && my < iy+d.Height {
				d.hoveredIndex = i
				break
			}
		}
	}

	return false
}

func (d *widgetDropdown) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height), dialogColors.Surface, false)
	vector.StrokeRect(screen, float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height), 1, dialogColors.Border, false)

	if d.selectedIndex >= 0 && d.selectedIndex < len(d.options) {
		label := truncateText(d.options[d.selectedIndex], d.font, d.Width-28)
		drawText(screen, label, d.font, d.X+8, d.Y+d.Height/2+4, dialogColors.Text)
	}

	arrow := "v"
	if d.isOpen {
		arrow = "^"
	}
	drawText(screen, arrow, d.font, d.X+d.Width-16, d.Y+d.Height/2+3, dialogColors.TextSecondary)
}

// DrawOverlay draws the expanded item list. Call after everything else so
// the list sits above the dialog content.
func (d *widgetDropdown) DrawOverlay(screen *ebiten.Image) {
	if !d.isOpen {
		return
	}

	visible := d.visibleCount()
	startY := d.Y + d.Height
	if d.openUpward {
		startY = d.Y - visible*d.Height
	}
	totalHeight := visible * d.Height

	vector.DrawFilledRect(screen, float32(d.X), float32(startY), float32(d.Width), float32(totalHeight), dialogColors.Surface, false)
	vector.StrokeRect(screen, float32(d.X), float32(startY), float32(d.Width), float32(totalHeight), 1, dialogColors.Border, false)

	for i := 0; i < visible; i++ {
		iy := startY + i*d.Height
		if i == d.hoveredIndex {
			vector.DrawFilledRect(screen, float32(d.X), float32(iy), float32(d.Width), float32(d.Height), dialogColors.ItemHover, false)
		}
		if i == d.selectedIndex {
			vector.DrawFilledRect(screen, float32(d.X), float32(iy), float32(d.Width), float32(d.Height), color.RGBA{100, 150, 255, 100}, false)
		}
		label := truncateText(d.options[i], d.font, d.Width-16)
		drawText(screen, label, d.font, d.X+8, iy+d.Height/2+4, dialogColors.Text)
	}
}
