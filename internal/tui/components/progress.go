package components

import (
	"fmt"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/tui/tuistyles"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// FundedBar shows how much of a target amount is already covered, e.g.
// projected savings against a required retirement corpus.
type FundedBar struct {
	Label  string
	Funded decimal.Decimal
	Target decimal.Decimal
	Width  int
}

// NewFundedBar creates a new funded bar
func NewFundedBar(label string, funded, target decimal.Decimal) *FundedBar {
	return &FundedBar{
		Label:  label,
		Funded: funded,
		Target: target,
		Width:  40,
	}
}

// WithWidth sets the bar width
func (f *FundedBar) WithWidth(width int) *FundedBar {
	f.Width = width
	return f
}

// Ratio returns Funded/Target capped to [0, 1]. A non-positive target
// counts as fully funded.
func (f *FundedBar) Ratio() decimal.Decimal {
	if !f.Target.IsPositive() {
		return decimal.NewFromInt(1)
	}
	ratio := f.Funded.Div(f.Target)
	return decimal.Max(decimal.Zero, decimal.Min(decimal.NewFromInt(1), ratio))
}

// IsComplete reports whether the target is covered.
func (f *FundedBar) IsComplete() bool {
	return f.Ratio().Equal(decimal.NewFromInt(1))
}

// Render returns the styled bar
func (f *FundedBar) Render() string {
	var content strings.Builder

	if f.Label != "" {
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground).
			Bold(true)
		content.WriteString(labelStyle.Render(f.Label))
		content.WriteString("\n")
	}

	ratio, _ := f.Ratio().Float64()
	filled := int(float64(f.Width) * ratio)
	if filled > f.Width {
		filled = f.Width
	}

	fillColor := tuistyles.ColorDanger
	switch {
	case f.IsComplete():
		fillColor = tuistyles.ColorSuccess
	case ratio >= 0.5:
		fillColor = tuistyles.ColorPrimary
	}
	filledStyle := lipgloss.NewStyle().Foreground(fillColor)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	content.WriteString(emptyStyle.Render(strings.Repeat("░", f.Width-filled)))
	content.WriteString(fmt.Sprintf(" %.0f%% funded", ratio*100))

	return content.String()
}
