package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/budgetbandhu/bandhu/internal/tui/scenes"
	"github.com/budgetbandhu/bandhu/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeScenes()
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.CalculatorSelectedMsg:
		return m, navigate(sceneFor(msg.Calculator))
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	keys := scenes.GlobalKeys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		return m, navigate(SceneHelp)

	case key.Matches(msg, keys.Back):
		if m.currentScene != SceneHome {
			back := SceneHome
			if m.currentScene == SceneHelp && m.previousScene != SceneHelp {
				back = m.previousScene
			}
			return m, navigate(back)
		}
		return m, nil

	case key.Matches(msg, keys.Home):
		if m.currentScene != SceneHome {
			return m, navigate(SceneHome)
		}
		return m, nil

	case key.Matches(msg, keys.EMI):
		return m, navigate(SceneEMI)

	case key.Matches(msg, keys.Lumpsum):
		return m, navigate(SceneLumpsum)

	case key.Matches(msg, keys.Retirement):
		return m, navigate(SceneRetirement)

	case key.Matches(msg, keys.Tax):
		return m, navigate(SceneTax)
	}

	// Let the current scene handle other keys
	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneEMI:
		m.emiModel, cmd = m.emiModel.Update(msg)
	case SceneLumpsum:
		m.lumpsumModel, cmd = m.lumpsumModel.Update(msg)
	case SceneRetirement:
		m.retirementModel, cmd = m.retirementModel.Update(msg)
	case SceneTax:
		m.taxModel, cmd = m.taxModel.Update(msg)
	case SceneHelp:
		m.helpModel, cmd = m.helpModel.Update(msg)
	}
	return m, cmd
}
