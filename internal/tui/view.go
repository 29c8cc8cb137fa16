package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "Bandhu - Personal Finance Calculators"

// chromeHeight is the rows taken by the title block and status bar.
const chromeHeight = 4

// View renders the title, the active scene and the status bar.
func (m Model) View() string {
	body := m.sceneView()
	if m.err != nil {
		body = BorderStyle.Render(ErrorStyle.Render("Error: "+m.err.Error()) +
			"\n\nPress any key to continue...")
	}

	height := max(1, m.height-chromeHeight)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		lipgloss.NewStyle().Height(height).Render(body),
		m.statusBar(),
	)
}

func (m Model) sceneView() string {
	switch m.currentScene {
	case SceneHome:
		return m.homeModel.View()
	case SceneEMI:
		return m.emiModel.View()
	case SceneLumpsum:
		return m.lumpsumModel.View()
	case SceneRetirement:
		return m.retirementModel.View()
	case SceneTax:
		return m.taxModel.View()
	case SceneHelp:
		return m.helpModel.View()
	}
	return "Unknown scene"
}

// header shows the app title and a breadcrumb to the active scene.
func (m Model) header() string {
	crumbs := SceneHome.String()
	if m.currentScene != SceneHome {
		crumbs += " › " + m.currentScene.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(appTitle),
		SubtitleStyle.Render(crumbs),
	)
}

// statusBar shows the short key help on the left and the default tax
// regime on the right.
func (m Model) statusBar() string {
	keys := m.helpModel.ShortHelpView()
	regime := SubtitleStyle.Render("tax default: " + m.prefs.Tax.DefaultRegime.Title())
	gap := m.width - lipgloss.Width(keys) - lipgloss.Width(regime) - 4
	return StatusBarStyle.Width(m.width).Render(keys + strings.Repeat(" ", max(0, gap)) + regime)
}
