package scenes

import (
	"fmt"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/tui/tuimsg"
	"github.com/budgetbandhu/bandhu/internal/tui/tuistyles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	calculator tuimsg.Calculator
	shortcut   string
	title      string
	desc       string
}

var menuItems = []menuItem{
	{tuimsg.CalculatorEMI, "1", "EMI Calculator", "Monthly installment and amortization of a loan"},
	{tuimsg.CalculatorLumpsum, "2", "Lumpsum Growth", "Future value of a one-time investment"},
	{tuimsg.CalculatorRetirement, "3", "Retirement Planner", "Corpus needed and the SIP that closes the gap"},
	{tuimsg.CalculatorTax, "4", "Income Tax", "New vs Old regime with itemized deductions"},
}

var homeKeys = struct {
	Up, Down, Select key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter", " ")),
}

// HomeModel is the calculator menu.
type HomeModel struct {
	cursor int
	width  int
	height int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the calculator under the cursor.
func (m *HomeModel) Selected() tuimsg.Calculator {
	return menuItems[m.cursor].calculator
}

// Update handles messages for the home scene
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, homeKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, homeKeys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, homeKeys.Select):
		selected := m.Selected()
		return m, func() tea.Msg {
			return tuimsg.CalculatorSelectedMsg{Calculator: selected}
		}
	}
	return m, nil
}

// View renders the calculator menu
func (m *HomeModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.SectionStyle.Render("Calculators"))
	content.WriteString("\n\n")

	for i, item := range menuItems {
		pointer := "  "
		titleStyle := tuistyles.UnselectedItemStyle
		if i == m.cursor {
			pointer = "▸ "
			titleStyle = tuistyles.SelectedItemStyle
		}
		content.WriteString(pointer)
		content.WriteString(tuistyles.HelpKeyStyle.Render(item.shortcut))
		content.WriteString("  ")
		content.WriteString(titleStyle.Render(item.title))
		content.WriteString("\n    ")
		content.WriteString(tuistyles.HelpDescStyle.Render(item.desc))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.HintStyle.Render(fmt.Sprintf("↑↓ to choose • enter to open • %s-%s to jump • ? for help",
		menuItems[0].shortcut, menuItems[len(menuItems)-1].shortcut)))

	return tuistyles.BorderStyle.Render(content.String())
}
