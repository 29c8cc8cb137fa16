package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/output"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted report for one solver result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 64) + "\n")
	sb.WriteString(fmt.Sprintf("Target:      %s\n", result.Request.Target))
	sb.WriteString(fmt.Sprintf("Status:      %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:  %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence: %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	switch result.Request.Target {
	case TargetDeductionBreakEven:
		sb.WriteString("DEDUCTION BREAK-EVEN\n")
		sb.WriteString(strings.Repeat("-", 64) + "\n")
		sb.WriteString(fmt.Sprintf("Gross Income:          %s\n", output.FormatRupees(result.Request.GrossIncome)))
		sb.WriteString(fmt.Sprintf("Deductions Needed:     %s\n", output.FormatRupees(result.Value)))
		if a := result.Allocation; a != nil {
			sb.WriteString(fmt.Sprintf("  Section 80C:         %s\n", output.FormatRupees(a.Section80C)))
			sb.WriteString(fmt.Sprintf("  Home Loan Interest:  %s\n", output.FormatRupees(a.HomeLoanInterest)))
			sb.WriteString(fmt.Sprintf("  HRA / Other:         %s\n", output.FormatRupees(a.HRAExemption)))
		}
		sb.WriteString(fmt.Sprintf("New Regime Tax:        %s\n", output.FormatRupees(result.NewRegimeTax)))
		sb.WriteString(fmt.Sprintf("Old Regime Tax:        %s\n", output.FormatRupees(result.OldRegimeTax)))
	case TargetAffordablePrincipal:
		sb.WriteString("AFFORDABLE LOAN\n")
		sb.WriteString(strings.Repeat("-", 64) + "\n")
		sb.WriteString(fmt.Sprintf("Monthly Budget:        %s\n", output.FormatRupees(result.Request.MonthlyBudget)))
		sb.WriteString(fmt.Sprintf("Interest Rate:         %s%%\n", result.Request.AnnualInterestRatePercent.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("Tenure:                %d years\n", result.Request.TenureYears))
		sb.WriteString(fmt.Sprintf("Maximum Principal:     %s (%s)\n",
			output.FormatRupees(result.Value), output.FormatRupeesCompact(result.Value)))
		sb.WriteString(fmt.Sprintf("EMI at Maximum:        %s\n", output.FormatRupees(result.MonthlyInstallment)))
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatLadder formats break-even points across several incomes
func (tf *TableFormatter) FormatLadder(ladder *LadderResult) string {
	var sb strings.Builder

	sb.WriteString("DEDUCTION BREAK-EVEN BY INCOME\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("%-18s %18s %16s %16s\n", "Gross Income", "Deductions Needed", "New Tax", "Old Tax"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	for _, r := range ladder.Results {
		sb.WriteString(fmt.Sprintf("%-18s %18s %16s %16s\n",
			output.FormatRupeesWhole(r.Request.GrossIncome),
			output.FormatRupeesWhole(r.Value),
			output.FormatRupeesWhole(r.NewRegimeTax),
			output.FormatRupeesWhole(r.OldRegimeTax)))
	}
	sb.WriteString("\n")

	if len(ladder.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, rec := range ladder.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	rounded := roundResult(*result)
	return jf.marshal(&rounded)
}

// FormatLadder formats a ladder as JSON
func (jf *JSONFormatter) FormatLadder(ladder *LadderResult) (string, error) {
	rounded := LadderResult{Recommendations: ladder.Recommendations}
	for _, r := range ladder.Results {
		rounded.Results = append(rounded.Results, roundResult(r))
	}
	return jf.marshal(&rounded)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

func roundResult(r Result) Result {
	r.Value = r.Value.Round(2)
	r.NewRegimeTax = r.NewRegimeTax.Round(2)
	r.OldRegimeTax = r.OldRegimeTax.Round(2)
	r.MonthlyInstallment = r.MonthlyInstallment.Round(2)
	if r.Allocation != nil {
		a := Allocation{
			Section80C:       r.Allocation.Section80C.Round(2),
			HomeLoanInterest: r.Allocation.HomeLoanInterest.Round(2),
			HRAExemption:     r.Allocation.HRAExemption.Round(2),
		}
		r.Allocation = &a
	}
	return r
}

// Helper methods

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}
