package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetbandhu/bandhu/internal/config"
	"github.com/budgetbandhu/bandhu/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the model and then every message produced by the
// returned commands, stopping at quit.
func send(t *testing.T, m Model, msg tea.Msg) (Model, bool) {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	for cmd != nil {
		next := cmd()
		if _, ok := next.(tea.QuitMsg); ok {
			return m, true
		}
		updated, cmd = m.Update(next)
		m = updated.(Model)
	}
	return m, false
}

func TestNewModelStartsAtHome(t *testing.T) {
	m := NewModel(config.DefaultPreferences())
	assert.Equal(t, SceneHome, m.CurrentScene())
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "Bandhu - Personal Finance Calculators")
}

func TestNumberKeysNavigate(t *testing.T) {
	tests := []struct {
		key  string
		want Scene
	}{
		{"1", SceneEMI},
		{"2", SceneLumpsum},
		{"3", SceneRetirement},
		{"4", SceneTax},
		{"?", SceneHelp},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, quit := send(t, NewModel(config.DefaultPreferences()), runes(tt.key))
			assert.False(t, quit)
			assert.Equal(t, tt.want, m.CurrentScene())
		})
	}
}

func TestHomeMenuSelection(t *testing.T) {
	m := NewModel(config.DefaultPreferences())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, SceneRetirement, m.CurrentScene())
}

func TestEscapeAndHomeKeys(t *testing.T) {
	m := NewModel(config.DefaultPreferences())
	m, _ = send(t, m, runes("4"))
	m, _ = send(t, m, runes("?"))
	require.Equal(t, SceneHelp, m.CurrentScene())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, SceneTax, m.CurrentScene(), "esc from help returns to the previous scene")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, SceneHome, m.CurrentScene())

	m, _ = send(t, m, runes("1"))
	m, _ = send(t, m, runes("h"))
	assert.Equal(t, SceneHome, m.CurrentScene())
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, quit := send(t, NewModel(config.DefaultPreferences()), msg)
		assert.True(t, quit, msg.String())
	}

	_, quit := send(t, NewModel(config.DefaultPreferences()), QuitMsg{})
	assert.True(t, quit)
}

func TestScenesReceiveKeys(t *testing.T) {
	m := NewModel(config.DefaultPreferences())
	m, _ = send(t, m, runes("1"))
	before := m.EMI().Result().MonthlyInstallment

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, m.EMI().Result().MonthlyInstallment.GreaterThan(before))
}

func TestTaxSceneUsesDefaultRegime(t *testing.T) {
	prefs := config.DefaultPreferences()
	prefs.Tax.DefaultRegime = domain.RegimeOld
	m := NewModel(prefs)
	assert.Equal(t, domain.RegimeOld, m.Tax().Regime())
}

func TestErrorIsShownAndDismissed(t *testing.T) {
	m := NewModel(config.DefaultPreferences())
	m, _ = send(t, m, ErrorMsg{Err: errors.New("boom")})
	require.Error(t, m.Err())
	assert.Contains(t, m.View(), "boom")

	m, _ = send(t, m, runes("1"))
	assert.NoError(t, m.Err())
	assert.Equal(t, SceneHome, m.CurrentScene(), "the dismissing key is swallowed")
}

func TestWindowResize(t *testing.T) {
	m := NewModel(config.DefaultPreferences())
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	for _, key := range []string{"1", "2", "3", "4", "?"} {
		m, _ = send(t, m, runes(key))
		assert.NotEmpty(t, m.View())
	}
}
