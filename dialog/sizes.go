package dialog

// Base size constants at 1.0x scale. Every on-screen quantity is derived
// from these via Metrics; scaled values are never stored independently so
// they cannot drift from the scale that produced them.
const (
	baseDialogWidth     = 650.0
	baseDialogHeight    = 450.0
	baseDialogMinWidth  = 400.0
	baseDialogMinHeight = 300.0

	baseRowHeight       = 24.0
	baseButtonHeight    = 28.0
	baseButtonWidth     = 80.0
	baseIconSize        = 18.0
	baseFontSize        = 14.0
	basePathBarHeight   = 32.0
	baseInputHeight     = 26.0
	baseIconButtonWidth = 32.0

	baseTouchRowHeight       = 52.0
	baseTouchButtonHeight    = 48.0
	baseTouchButtonWidth     = 120.0
	baseTouchIconSize        = 28.0
	baseTouchFontSize        = 16.0
	baseTouchPathBarHeight   = 56.0
	baseTouchInputHeight     = 48.0
	baseTouchIconButtonWidth = 100.0

	baseSizeColumnWidth      = 80.0
	baseDateColumnWidth      = 120.0
	baseTouchSizeColumnWidth = 100.0
	baseTouchDateColumnWidth = 150.0

	baseConfirmMinWidth      = 300.0
	baseConfirmMaxWidth      = 500.0
	baseConfirmIconSize      = 32.0
	baseTouchConfirmIconSize = 48.0

	baseButtonSpacing         = 8.0
	baseDrivesComboWidth      = 90.0
	baseTouchDrivesComboWidth = 130.0
	basePopupInputWidth       = 300.0

	baseScrollbarWidth      = 16.0
	baseTouchScrollbarWidth = 40.0
)

// Metrics holds every size-derived layout quantity for one dialog,
// recomputed as a pure function of touch mode and the effective scale.
type Metrics struct {
	RowHeight       float64
	ButtonHeight    float64
	ButtonWidth     float64
	IconSize        float64
	FontSize        float64
	PathBarHeight   float64
	InputHeight     float64
	IconButtonWidth float64

	DialogWidth     float64
	DialogHeight    float64
	DialogMinWidth  float64
	DialogMinHeight float64

	SizeColumnWidth float64
	DateColumnWidth float64

	ConfirmIconSize float64

	ButtonSpacing    float64
	DrivesComboWidth float64
	PopupInputWidth  float64
	ScrollbarWidth   float64
}

// ComputeMetrics derives all layout sizes from base constants, touch mode
// and scale.
func ComputeMetrics(touchMode bool, scale float64) Metrics {
	if touchMode {
		return Metrics{
			RowHeight:        baseTouchRowHeight * scale,
			ButtonHeight:     baseTouchButtonHeight * scale,
			ButtonWidth:      baseTouchButtonWidth * scale,
			IconSize:         baseTouchIconSize * scale,
			FontSize:         baseTouchFontSize * scale,
			PathBarHeight:    baseTouchPathBarHeight * scale,
			InputHeight:      baseTouchInputHeight * scale,
			IconButtonWidth:  baseTouchIconButtonWidth * scale,
			DialogWidth:      baseDialogWidth * scale,
			DialogHeight:     baseDialogHeight * scale,
			DialogMinWidth:   baseDialogMinWidth * scale,
			DialogMinHeight:  baseDialogMinHeight * scale,
			SizeColumnWidth:  baseTouchSizeColumnWidth * scale,
			DateColumnWidth:  baseTouchDateColumnWidth * scale,
			ConfirmIconSize:  baseTouchConfirmIconSize * scale,
			ButtonSpacing:    baseButtonSpacing * scale,
			DrivesComboWidth: baseTouchDrivesComboWidth * scale,
			PopupInputWidth:  basePopupInputWidth * scale,
			ScrollbarWidth:   baseTouchScrollbarWidth * scale,
		}
	}
	return Metrics{
		RowHeight:        baseRowHeight * scale,
		ButtonHeight:     baseButtonHeight * scale,
		ButtonWidth:      baseButtonWidth * scale,
		IconSize:         baseIconSize * scale,
		FontSize:         baseFontSize * scale,
		PathBarHeight:    basePathBarHeight * scale,
		InputHeight:      baseInputHeight * scale,
		IconButtonWidth:  baseIconButtonWidth * scale,
		DialogWidth:      baseDialogWidth * scale,
		DialogHeight:     baseDialogHeight * scale,
		DialogMinWidth:   baseDialogMinWidth * scale,
		DialogMinHeight:  baseDialogMinHeight * scale,
		SizeColumnWidth:  baseSizeColumnWidth * scale,
		DateColumnWidth:  baseDateColumnWidth * scale,
		ConfirmIconSize:  baseConfirmIconSize * scale,
		ButtonSpacing:    baseButtonSpacing * scale,
		DrivesComboWidth: baseDrivesComboWidth * scale,
		PopupInputWidth:  basePopupInputWidth * scale,
		ScrollbarWidth:   baseScrollbarWidth * scale,
	}
}
