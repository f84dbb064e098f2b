package dialog

// Scalable tracks the effective UI scale for one dialog and whether a
// change has been acknowledged since the last render pass. Embedded by
// both dialogs.
type Scalable struct {
	scale             float64
	acknowledgedScale float64
}

// SetScale sets the effective scale factor. Values <= 0 are ignored so a
// zero config value preserves the previously set scale.
func (s *Scalable) SetScale(scale float64) {
	if scale <= 0 {
		return
	}
	s.scale = scale
}

// Scale returns the current effective scale, defaulting to 1.0 when never
// set.
func (s *Scalable) Scale() float64 {
	if s.scale <= 0 {
		return 1.0
	}
	return s.scale
}

// HasScaleChanged reports whether the scale differs from the last
// acknowledged value, meaning size-derived quantities need recomputation.
func (s *Scalable) HasScaleChanged() bool {
	return s.Scale() != s.acknowledgedScale
}

// AcknowledgeScaleChange records the current scale as seen, suppressing
// redundant recomputation on later frames at the same scale.
func (s *Scalable) AcknowledgeScaleChange() {
	s.acknowledgedScale = s.Scale()
}
