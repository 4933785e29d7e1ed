package state

// State represents the current phase of the startup flow
type State int

const (
	StateLoadingScreen State = iota
	StateMainMenu
	StateSession
)

// String returns the string representation of the flow state
func (s State) String() string {
	switch s {
	case StateLoadingScreen:
		return "LoadingScreen"
	case StateMainMenu:
		return "MainMenu"
	case StateSession:
		return "Session"
	default:
		return "Unknown"
	}
}
