package compare

import (
	"fmt"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing a base and its what-ifs
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("INCOME TAX WHAT-IF COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base: %s\n", compSet.BaseName))
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 17

	sb.WriteString(fmt.Sprintf("%-*s %-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		10, "Regime",
		numWidth, "Total Tax",
		numWidth, "Take-Home",
		8, "Eff. %"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Name))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}
			sb.WriteString(fmt.Sprintf("  Tax Impact:       %s\n", tf.formatDelta(alt.TaxDiffFromBase)))
			sb.WriteString(fmt.Sprintf("  Take-Home Impact: %s\n", tf.formatDelta(alt.TakeHomeDiffFromBase)))
		}
		sb.WriteString("\n")
	}

	tf.writeRecommendations(&sb, compSet.Recommendations)

	return sb.String()
}

// FormatRegimes renders both regimes side by side.
func (tf *TableFormatter) FormatRegimes(rc *RegimeComparison) string {
	var sb strings.Builder

	sb.WriteString("NEW vs OLD REGIME\n")
	sb.WriteString(strings.Repeat("=", 64) + "\n")
	sb.WriteString(fmt.Sprintf("Gross Income: %s\n\n", output.FormatRupees(rc.Income)))

	sb.WriteString(fmt.Sprintf("%-22s %20s %20s\n", "", domain.RegimeNew.Title(), domain.RegimeOld.Title()))
	sb.WriteString(strings.Repeat("-", 64) + "\n")

	rows := []struct {
		label string
		pick  func(*domain.TaxResult) decimal.Decimal
	}{
		{"Standard Deduction", func(r *domain.TaxResult) decimal.Decimal { return r.StandardDeduction }},
		{"Total Deductions", func(r *domain.TaxResult) decimal.Decimal { return r.TotalDeductions }},
		{"Taxable Income", func(r *domain.TaxResult) decimal.Decimal { return r.TaxableIncome }},
		{"Tax Before Rebate", func(r *domain.TaxResult) decimal.Decimal { return r.TaxBeforeRebate }},
		{"Rebate", func(r *domain.TaxResult) decimal.Decimal { return r.RebateApplied }},
		{"Cess", func(r *domain.TaxResult) decimal.Decimal { return r.Cess }},
		{"Total Tax", func(r *domain.TaxResult) decimal.Decimal { return r.TotalTax }},
		{"Take-Home", func(r *domain.TaxResult) decimal.Decimal { return r.TakeHomeIncome }},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-22s %20s %20s\n", row.label,
			output.FormatRupees(row.pick(rc.New)), output.FormatRupees(row.pick(rc.Old))))
	}
	sb.WriteString(fmt.Sprintf("%-22s %20s %20s\n", "Effective Rate",
		output.FormatPercentage(rc.New.EffectiveRatePercent()), output.FormatPercentage(rc.Old.EffectiveRatePercent())))
	sb.WriteString(strings.Repeat("=", 64) + "\n")

	sb.WriteString(fmt.Sprintf("Recommended: %s (saves %s)\n", rc.Recommended.Title(), output.FormatRupees(rc.Savings)))
	sb.WriteString("\n")

	tf.writeRecommendations(&sb, rc.Recommendations)

	return sb.String()
}

func (tf *TableFormatter) writeRecommendations(sb *strings.Builder, recs []string) {
	if len(recs) == 0 {
		return
	}
	sb.WriteString("RECOMMENDATIONS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, rec := range recs {
		sb.WriteString(fmt.Sprintf("• %s\n", rec))
	}
	sb.WriteString("\n")
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Name
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %-*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		10, string(result.Regime),
		numWidth, output.FormatRupees(result.TotalTax),
		numWidth, output.FormatRupees(result.TakeHome),
		8, result.EffectiveRate.StringFixed(2))
}

// formatDelta prefixes increases with + and leaves zero as "no change"
func (tf *TableFormatter) formatDelta(delta decimal.Decimal) string {
	switch {
	case delta.IsZero():
		return "no change"
	case delta.IsPositive():
		return "+" + output.FormatRupees(delta)
	default:
		return output.FormatRupees(delta)
	}
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each alternative
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(fmt.Sprintf("%s: tax %s", alt.Name, tf.formatDelta(alt.TaxDiffFromBase)))
	}

	return sb.String()
}
