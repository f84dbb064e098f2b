package dialog

// Mode selects what kind of file browser session is opened.
type Mode int

const (
	ModeOpen Mode = iota
	ModeSave
	ModeSelectFolder
)

// Result reports the outcome of a file browser session.
type Result int

const (
	ResultNone Result = iota // session still open (or never opened)
	ResultSelected
	ResultCancelled
)

// SortOrder selects how directory listings are ordered. Directories always
// sort before files regardless of the chosen key.
type SortOrder int

const (
	SortNameAsc SortOrder = iota
	SortNameDesc
	SortSizeAsc
	SortSizeDesc
	SortDateAsc
	SortDateDesc
)

// Label returns the toolbar label for the sort order.
func (s SortOrder) Label() string {
	switch s {
	case SortNameAsc:
		return "Name (a-z)"
	case SortNameDesc:
		return "Name (z-a)"
	case SortSizeAsc:
		return "Size (smallest)"
	case SortSizeDesc:
		return "Size (largest)"
	case SortDateAsc:
		return "Date (oldest)"
	case SortDateDesc:
		return "Date (newest)"
	}
	return ""
}

// Button identifies one confirmation dialog button kind.
type Button int

const (
	ButtonNone Button = iota
	ButtonSave
	ButtonOk
	ButtonYes
	ButtonRetry
	ButtonNo
	ButtonDontSave
	ButtonCancel
)

// buttonOrder is the fixed left-to-right layout order, affirmative first.
// Declaration order in a ButtonSet never changes on-screen placement.
var buttonOrder = []Button{
	ButtonSave, ButtonOk, ButtonYes, ButtonRetry, ButtonNo, ButtonDontSave, ButtonCancel,
}

// Label returns the on-screen text for the button.
func (b Button) Label() string {
	switch b {
	case ButtonOk:
		return "OK"
	case ButtonCancel:
		return "Cancel"
	case ButtonYes:
		return "Yes"
	case ButtonNo:
		return "No"
	case ButtonSave:
		return "Save"
	case ButtonDontSave:
		return "Don't Save"
	case ButtonRetry:
		return "Retry"
	}
	return ""
}

// ButtonSet is an unordered membership set of confirmation buttons.
type ButtonSet map[Button]bool

// Buttons builds a ButtonSet from the given members.
func Buttons(members ...Button) ButtonSet {
	set := make(ButtonSet, len(members))
	for _, b := range members {
		set[b] = true
	}
	return set
}

// Has reports whether the set contains the button.
func (s ButtonSet) Has(b Button) bool {
	return s[b]
}

// Ordered returns the set's members in the fixed layout order.
func (s ButtonSet) Ordered() []Button {
	ordered := make([]Button, 0, len(s))
	for _, b := range buttonOrder {
		if s[b] {
			ordered = append(ordered, b)
		}
	}
	return ordered
}

// Common button combinations.
func ButtonsOkCancel() ButtonSet    { return Buttons(ButtonOk, ButtonCancel) }
func ButtonsYesNo() ButtonSet       { return Buttons(ButtonYes, ButtonNo) }
func ButtonsYesNoCancel() ButtonSet { return Buttons(ButtonYes, ButtonNo, ButtonCancel) }
func ButtonsSaveDontSaveCancel() ButtonSet {
	return Buttons(ButtonSave, ButtonDontSave, ButtonCancel)
}

// Icon selects the glyph drawn beside a confirmation message.
type Icon int

const (
	IconNone Icon = iota
	IconInfo
	IconWarning
	IconError
	IconQuestion
)
