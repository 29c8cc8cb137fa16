package tui

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneEMI
	SceneLumpsum
	SceneRetirement
	SceneTax
	SceneHelp
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneEMI:
		return "EMI Calculator"
	case SceneLumpsum:
		return "Lumpsum Growth"
	case SceneRetirement:
		return "Retirement Planner"
	case SceneTax:
		return "Income Tax"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// QuitMsg signals the application should exit
type QuitMsg struct{}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
