package components

import (
	"fmt"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/compare"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/budgetbandhu/bandhu/internal/tui/tuistyles"
	"github.com/charmbracelet/lipgloss"
)

// RegimeCard summarises one regime's result inside a side-by-side comparison.
type RegimeCard struct {
	Result      *domain.TaxResult
	Recommended bool
	Selected    bool // the regime currently being edited
	Width       int
}

// NewRegimeCard creates a new regime card
func NewRegimeCard(result *domain.TaxResult) *RegimeCard {
	return &RegimeCard{
		Result: result,
		Width:  30,
	}
}

// WithRecommended marks the card as the cheaper regime
func (r *RegimeCard) WithRecommended(recommended bool) *RegimeCard {
	r.Recommended = recommended
	return r
}

// WithSelected marks the card as the active regime
func (r *RegimeCard) WithSelected(selected bool) *RegimeCard {
	r.Selected = selected
	return r
}

// WithWidth sets the card width
func (r *RegimeCard) WithWidth(width int) *RegimeCard {
	r.Width = width
	return r
}

// Render returns the styled regime card
func (r *RegimeCard) Render() string {
	if r.Result == nil {
		return ""
	}

	var content strings.Builder

	title := r.Result.Regime.Title()
	if r.Selected {
		title = "▸ " + title
	}
	content.WriteString(tuistyles.TitleStyle.Render(title))
	if r.Recommended {
		content.WriteString(" ")
		content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render("★"))
	}
	content.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Deductions", output.FormatRupeesWhole(r.Result.StandardDeduction.Add(r.Result.TotalDeductions))},
		{"Taxable", output.FormatRupeesWhole(r.Result.TaxableIncome)},
		{"Rebate", output.FormatRupeesWhole(r.Result.RebateApplied)},
		{"Total Tax", output.FormatRupeesWhole(r.Result.TotalTax)},
		{"Take-Home", output.FormatRupeesWhole(r.Result.TakeHomeIncome)},
		{"Effective", output.FormatPercentage(r.Result.EffectiveRatePercent())},
	}
	for _, row := range rows {
		content.WriteString(fmt.Sprintf("%s %s\n",
			tuistyles.MetricLabelStyle.Render(fmt.Sprintf("%-11s", row.label)),
			tuistyles.MetricValueStyle.Render(row.value)))
	}

	borderColor := tuistyles.ColorBorder
	if r.Recommended {
		borderColor = tuistyles.ColorSuccess
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(r.Width)

	return cardStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// RenderRegimeComparison lays out both regimes side by side, followed by
// the savings line.
func RenderRegimeComparison(rc *compare.RegimeComparison, active domain.TaxRegime) string {
	if rc == nil {
		return ""
	}
	newCard := NewRegimeCard(rc.New).
		WithRecommended(rc.Recommended == domain.RegimeNew).
		WithSelected(active == domain.RegimeNew)
	oldCard := NewRegimeCard(rc.Old).
		WithRecommended(rc.Recommended == domain.RegimeOld).
		WithSelected(active == domain.RegimeOld)

	cards := lipgloss.JoinHorizontal(lipgloss.Top, newCard.Render(), " ", oldCard.Render())

	var summary string
	if rc.Savings.IsZero() {
		summary = "Both regimes cost the same; the New Regime is the default"
	} else {
		summary = fmt.Sprintf("The %s saves %s per year", rc.Recommended.Title(), output.FormatRupeesWhole(rc.Savings))
	}

	return cards + "\n" + lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render(summary)
}
