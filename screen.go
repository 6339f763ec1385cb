package furrow

// Screen indicates which screen is currently displayed
type Screen int

const (
	ListScreen Screen = iota
	DetailScreen
	FilterScreen
	WizardScreen
)

func (screen Screen) String() string {
	switch screen {
	case DetailScreen:
		return "detail"
	case FilterScreen:
		return "filter"
	case WizardScreen:
		return "wizard"
	}
	return "list"
}
