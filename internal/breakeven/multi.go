package breakeven

import (
	"context"
	"fmt"

	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/shopspring/decimal"
)

// LadderResult holds deduction break-even points across several incomes
type LadderResult struct {
	Results         []Result `json:"results"`
	Recommendations []string `json:"recommendations"`
}

// SolveIncomeLadder runs the deduction break-even for each income. An
// income that fails to solve aborts the whole ladder.
func (s *Solver) SolveIncomeLadder(ctx context.Context, incomes []decimal.Decimal) (*LadderResult, error) {
	if len(incomes) == 0 {
		return nil, &BreakEvenError{
			Operation: "solve_income_ladder",
			Message:   "at least one income is required",
		}
	}

	ladder := &LadderResult{Results: make([]Result, 0, len(incomes))}
	for _, income := range incomes {
		result, err := s.Solve(ctx, Request{Target: TargetDeductionBreakEven, GrossIncome: income})
		if err != nil {
			return nil, &BreakEvenError{
				Operation: "solve_income_ladder",
				Message:   "income " + output.FormatRupees(income),
				Cause:     err,
			}
		}
		ladder.Results = append(ladder.Results, *result)
	}

	ladder.Recommendations = ladderRecommendations(ladder.Results)
	return ladder, nil
}

// ladderRecommendations summarises where the old regime is within reach
func ladderRecommendations(results []Result) []string {
	var recommendations []string

	for _, r := range results {
		income := output.FormatRupees(r.Request.GrossIncome)
		if r.Value.IsZero() {
			recommendations = append(recommendations,
				fmt.Sprintf("At %s the Old Regime costs no more even without deductions", income))
			continue
		}
		share := r.Value.Div(r.Request.GrossIncome).Mul(decimal.NewFromInt(100))
		recommendations = append(recommendations,
			fmt.Sprintf("At %s the Old Regime needs %s of deductions (%s of income)",
				income, output.FormatRupees(r.Value), output.FormatPercentage(share)))
	}

	// Cheapest break-even relative to income
	var best *Result
	for i := range results {
		r := &results[i]
		if r.Value.IsZero() {
			continue
		}
		if best == nil || r.Value.Div(r.Request.GrossIncome).LessThan(best.Value.Div(best.Request.GrossIncome)) {
			best = r
		}
	}
	if best != nil && len(results) > 1 {
		recommendations = append(recommendations,
			fmt.Sprintf("⭐ The Old Regime is easiest to justify at %s", output.FormatRupees(best.Request.GrossIncome)))
	}

	return recommendations
}
