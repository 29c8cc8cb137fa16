package scenes

import (
	"strings"

	"github.com/budgetbandhu/bandhu/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// panelKeys are the bindings shared by every calculator input panel.
var panelKeys = struct {
	Up, Down, Dec, Inc key.Binding
}{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous input")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next input")),
	Dec:  key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←/-", "decrease")),
	Inc:  key.NewBinding(key.WithKeys("right", "+", "="), key.WithHelp("→/+", "increase")),
}

// SliderPanel is a vertical list of sliders with a single focused entry.
// Hidden sliders are skipped by navigation and rendering.
type SliderPanel struct {
	sliders []*components.ParameterSlider
	focused int
}

// NewSliderPanel focuses the first slider.
func NewSliderPanel(sliders ...*components.ParameterSlider) *SliderPanel {
	p := &SliderPanel{sliders: sliders}
	p.refocus()
	return p
}

// Focused returns the focused slider, or nil if every slider is hidden.
func (p *SliderPanel) Focused() *components.ParameterSlider {
	if p.focused < 0 || p.focused >= len(p.sliders) || p.sliders[p.focused].Hidden {
		return nil
	}
	return p.sliders[p.focused]
}

// FocusedIndex returns the index of the focused slider.
func (p *SliderPanel) FocusedIndex() int { return p.focused }

// HandleKey applies navigation and adjustment keys. It reports whether a
// slider value changed.
func (p *SliderPanel) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, panelKeys.Up):
		p.move(-1)
	case key.Matches(msg, panelKeys.Down):
		p.move(1)
	case key.Matches(msg, panelKeys.Dec):
		if s := p.Focused(); s != nil {
			return s.Decrement()
		}
	case key.Matches(msg, panelKeys.Inc):
		if s := p.Focused(); s != nil {
			return s.Increment()
		}
	}
	return false
}

func (p *SliderPanel) move(delta int) {
	n := len(p.sliders)
	if n == 0 {
		return
	}
	for i := 1; i <= n; i++ {
		next := p.focused + delta*i
		if next < 0 || next >= n {
			return
		}
		if !p.sliders[next].Hidden {
			p.setFocus(next)
			return
		}
	}
}

func (p *SliderPanel) setFocus(idx int) {
	for i, s := range p.sliders {
		s.SetFocused(i == idx)
	}
	p.focused = idx
}

// refocus moves focus off a hidden slider onto the first visible one.
func (p *SliderPanel) refocus() {
	if s := p.Focused(); s != nil {
		p.setFocus(p.focused)
		return
	}
	for i, s := range p.sliders {
		if !s.Hidden {
			p.setFocus(i)
			return
		}
	}
	p.setFocus(-1)
}

// View renders the visible sliders.
func (p *SliderPanel) View() string {
	var parts []string
	for _, s := range p.sliders {
		if s.Hidden {
			continue
		}
		parts = append(parts, s.Render())
	}
	return strings.Join(parts, "\n\n")
}

// PanelHelp lists the panel key bindings.
func PanelHelp() []key.Binding {
	return []key.Binding{panelKeys.Up, panelKeys.Down, panelKeys.Dec, panelKeys.Inc}
}
