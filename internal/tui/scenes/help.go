package scenes

import (
	"strings"

	"github.com/budgetbandhu/bandhu/internal/tui/tuistyles"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpModel lists every key binding.
type HelpModel struct {
	help   help.Model
	width  int
	height int
}

// NewHelpModel creates a new help scene model
func NewHelpModel() *HelpModel {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = tuistyles.HelpKeyStyle
	h.Styles.FullDesc = tuistyles.HelpDescStyle
	h.Styles.ShortKey = tuistyles.StatusKeyStyle
	h.Styles.ShortDesc = tuistyles.HelpDescStyle
	return &HelpModel{help: h}
}

// SetSize updates the scene dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Update handles messages for the help scene
func (m *HelpModel) Update(msg tea.Msg) (*HelpModel, tea.Cmd) {
	return m, nil
}

// View renders the help scene
func (m *HelpModel) View() string {
	var content strings.Builder
	content.WriteString(tuistyles.SectionStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n\n")
	content.WriteString(m.help.View(GlobalKeys))
	content.WriteString("\n\n")
	content.WriteString(tuistyles.HintStyle.Render("Results recalculate as soon as an input changes."))
	content.WriteString("\n")
	content.WriteString(tuistyles.HintStyle.Render("Amounts use Indian grouping; L = lakh, Cr = crore."))
	return tuistyles.BorderStyle.Render(content.String())
}

// ShortHelpView renders the one-line help used by the status bar.
func (m *HelpModel) ShortHelpView() string {
	short := m.help
	short.ShowAll = false
	return short.View(GlobalKeys)
}
