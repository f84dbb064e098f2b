package dialog

// ConfirmationConfig describes one confirmation dialog invocation.
type ConfirmationConfig struct {
	Title         string
	Message       string
	DetailMessage string // optional secondary line, drawn dimmed
	Buttons       ButtonSet
	DefaultButton Button // highlighted and triggered by Enter
	Icon          Icon
	TouchMode     bool
	MinWidth      float64 // base units; defaults applied when 0
	MaxWidth      float64
	Scale         float64 // <= 0 keeps the current scale
}

// ConfirmationDialog is a generic modal prompt. Show starts a session,
// Render drives it each frame, and clicking any button finalizes the
// session with that button exactly once.
type ConfirmationDialog struct {
	Scalable

	config  ConfirmationConfig
	isShown bool
	result  Button

	metrics Metrics

	onResult func(result Button)

	ui *confirmUI
}

// NewConfirmationDialog creates an idle confirmation dialog.
func NewConfirmationDialog() *ConfirmationDialog {
	cd := &ConfirmationDialog{}
	cd.metrics = ComputeMetrics(false, cd.Scale())
	return cd
}

// SetOnResult sets the callback fired once with the clicked button.
func (cd *ConfirmationDialog) SetOnResult(callback func(result Button)) {
	cd.onResult = callback
}

// Show starts a session, resetting any prior result.
func (cd *ConfirmationDialog) Show(config ConfirmationConfig) {
	if config.MinWidth <= 0 {
		config.MinWidth = baseConfirmMinWidth
	}
	if config.MaxWidth <= 0 {
		config.MaxWidth = baseConfirmMaxWidth
	}
	if len(config.Buttons) == 0 {
		config.Buttons = ButtonsOkCancel()
	}
	if config.DefaultButton == ButtonNone || !config.Buttons.Has(config.DefaultButton) {
		config.DefaultButton = config.Buttons.Ordered()[0]
	}
	cd.config = config
	cd.isShown = true
	cd.result = ButtonNone

	cd.SetScale(config.Scale)
	cd.UpdateSizing()
	cd.ui = nil
}

// Hide dismisses the dialog without a result.
func (cd *ConfirmationDialog) Hide() {
	cd.isShown = false
	cd.result = ButtonNone
}

// IsShown reports whether the dialog is active.
func (cd *ConfirmationDialog) IsShown() bool { return cd.isShown }

// Result returns the clicked button, or ButtonNone while the dialog is
// open or after Hide.
func (cd *ConfirmationDialog) Result() Button { return cd.result }

// Config returns the active configuration.
func (cd *ConfirmationDialog) Config() ConfirmationConfig { return cd.config }

// Metrics returns the current size-derived layout quantities.
func (cd *ConfirmationDialog) Metrics() Metrics { return cd.metrics }

// UpdateSizing recomputes size-derived quantities for the current mode and
// scale.
func (cd *ConfirmationDialog) UpdateSizing() {
	cd.metrics = ComputeMetrics(cd.config.TouchMode, cd.Scale())
}

// HandleButtonClick finalizes the session with button, firing the result
// notification once. ButtonNone and non-member buttons are ignored.
func (cd *ConfirmationDialog) HandleButtonClick(button Button) {
	if !cd.isShown || button == ButtonNone || !cd.config.Buttons.Has(button) {
		return
	}
	cd.result = button
	cd.isShown = false
	if cd.onResult != nil {
		cd.onResult(button)
	}
}

// HandleEscape applies the Escape binding: Cancel when present, else No,
// else nothing.
func (cd *ConfirmationDialog) HandleEscape() {
	switch {
	case cd.config.Buttons.Has(ButtonCancel):
		cd.HandleButtonClick(ButtonCancel)
	case cd.config.Buttons.Has(ButtonNo):
		cd.HandleButtonClick(ButtonNo)
	}
}

// HandleEnter triggers the default button.
func (cd *ConfirmationDialog) HandleEnter() {
	cd.HandleButtonClick(cd.config.DefaultButton)
}
