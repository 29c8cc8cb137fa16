package breakeven

import (
	"context"
	"fmt"

	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/pkg/money"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds break-even points by bisection over monotonic calculators
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve runs the search named by req.Target
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	switch req.Target {
	case TargetDeductionBreakEven:
		return s.solveDeductionBreakEven(ctx, req)
	case TargetAffordablePrincipal:
		return s.solveAffordablePrincipal(ctx, req)
	default:
		return nil, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("unsupported target: %s", req.Target),
		}
	}
}

// solveDeductionBreakEven bisects over [0, income]. Old regime tax never
// rises as deductions grow, so the first point where it reaches the new
// regime tax is well defined.
func (s *Solver) solveDeductionBreakEven(ctx context.Context, req Request) (*Result, error) {
	const op = "solve_deduction_break_even"
	gross := req.GrossIncome
	rules := s.oldRules()

	newResult, err := s.CalcEngine.CalculateTax(domain.TaxTerms{GrossAnnualIncome: gross, Regime: domain.RegimeNew})
	if err != nil {
		return nil, &BreakEvenError{Operation: op, Message: "failed to calculate new regime tax", Cause: err}
	}
	target := newResult.TotalTax

	oldTax := func(total decimal.Decimal) (decimal.Decimal, error) {
		alloc := allocate(total, rules)
		r, err := s.CalcEngine.CalculateTax(domain.TaxTerms{
			GrossAnnualIncome:    gross,
			Regime:               domain.RegimeOld,
			Section80CDeductions: alloc.Section80C,
			HomeLoanInterest:     alloc.HomeLoanInterest,
			HRAExemption:         alloc.HRAExemption,
		})
		if err != nil {
			return decimal.Zero, &BreakEvenError{Operation: op, Message: "failed to calculate old regime tax", Cause: err}
		}
		return r.TotalTax, nil
	}

	result := &Result{Request: req, NewRegimeTax: target}
	finish := func(value, tax decimal.Decimal) *Result {
		alloc := allocate(value, rules)
		result.Value = value
		result.OldRegimeTax = tax
		result.Allocation = &alloc
		return result
	}

	lowTax, err := oldTax(decimal.Zero)
	if err != nil {
		return nil, err
	}
	if lowTax.LessThanOrEqual(target) {
		result.Success = true
		result.ConvergenceInfo = "Old regime already costs no more without deductions"
		return finish(decimal.Zero, lowTax), nil
	}

	highTax, err := oldTax(gross)
	if err != nil {
		return nil, err
	}
	if highTax.GreaterThan(target) {
		return nil, &BreakEvenError{
			Operation: op,
			Message:   "old regime costs more than the new regime at any deduction level",
		}
	}

	lo, hi := decimal.Zero, gross
	for result.Iterations < req.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if hi.Sub(lo).LessThanOrEqual(req.Tolerance) {
			break
		}
		result.Iterations++

		mid := lo.Add(hi).Div(two)
		tax, err := oldTax(mid)
		if err != nil {
			return nil, err
		}
		if tax.LessThanOrEqual(target) {
			hi, highTax = mid, tax
		} else {
			lo = mid
		}
	}

	result.Success = hi.Sub(lo).LessThanOrEqual(req.Tolerance)
	if result.Success {
		result.ConvergenceInfo = fmt.Sprintf("Converged within %s", req.Tolerance.String())
	} else {
		result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
	}
	return finish(hi, highTax), nil
}

// solveAffordablePrincipal bisects over [0, budget × months]. At a
// non-negative rate the EMI of the upper bound is never below the budget.
func (s *Solver) solveAffordablePrincipal(ctx context.Context, req Request) (*Result, error) {
	const op = "solve_affordable_principal"
	terms := domain.LoanTerms{
		AnnualInterestRatePercent: req.AnnualInterestRatePercent,
		TenureYears:               req.TenureYears,
	}

	emi := func(principal decimal.Decimal) (decimal.Decimal, error) {
		t := terms
		t.Principal = principal
		r, err := calculation.ComputeEMI(t)
		if err != nil {
			return decimal.Zero, &BreakEvenError{Operation: op, Message: "failed to calculate EMI", Cause: err}
		}
		return r.MonthlyInstallment, nil
	}

	result := &Result{Request: req}
	hi := req.MonthlyBudget.Mul(decimal.NewFromInt(int64(terms.Months())))

	highEMI, err := emi(hi)
	if err != nil {
		return nil, err
	}
	if highEMI.LessThanOrEqual(req.MonthlyBudget) {
		result.Success = true
		result.ConvergenceInfo = "Interest-free: budget covers the full principal"
		result.Value = hi
		result.MonthlyInstallment = highEMI
		return result, nil
	}

	lo, lowEMI := decimal.Zero, decimal.Zero
	for result.Iterations < req.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if hi.Sub(lo).LessThanOrEqual(req.Tolerance) {
			break
		}
		result.Iterations++

		mid := lo.Add(hi).Div(two)
		installment, err := emi(mid)
		if err != nil {
			return nil, err
		}
		if installment.LessThanOrEqual(req.MonthlyBudget) {
			lo, lowEMI = mid, installment
		} else {
			hi = mid
		}
	}

	result.Success = hi.Sub(lo).LessThanOrEqual(req.Tolerance)
	if result.Success {
		result.ConvergenceInfo = fmt.Sprintf("Converged within %s", req.Tolerance.String())
	} else {
		result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
	}
	result.Value = lo
	result.MonthlyInstallment = lowEMI
	return result, nil
}

func (s *Solver) oldRules() domain.RegimeRules {
	if s.CalcEngine.TaxCalc != nil {
		return s.CalcEngine.TaxCalc.Rules.Old
	}
	return domain.DefaultOldRegimeRules()
}

// allocate fills 80C, then home loan interest, then HRA. Only the total
// matters to the old regime as long as each capped head stays in its cap.
func allocate(total decimal.Decimal, rules domain.RegimeRules) Allocation {
	var a Allocation
	remaining := total

	take := func(limit decimal.Decimal) decimal.Decimal {
		if !limit.IsPositive() {
			return decimal.Zero
		}
		amount := money.Clamp(remaining, decimal.Zero, limit)
		remaining = remaining.Sub(amount)
		return amount
	}

	a.Section80C = take(rules.Section80CCap)
	a.HomeLoanInterest = take(rules.HomeLoanInterestCap)
	a.HRAExemption = remaining
	return a
}
