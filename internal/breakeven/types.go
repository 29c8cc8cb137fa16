package breakeven

import (
	"github.com/shopspring/decimal"
)

// SolveTarget defines which unknown the solver searches for
type SolveTarget string

const (
	// TargetDeductionBreakEven finds the total itemized deduction at which
	// the old regime stops costing more than the new regime.
	TargetDeductionBreakEven SolveTarget = "deduction_break_even"
	// TargetAffordablePrincipal finds the largest loan whose EMI fits a budget.
	TargetAffordablePrincipal SolveTarget = "affordable_principal"
)

// Request defines the parameters for a solver run
type Request struct {
	Target SolveTarget `json:"target"`

	// Deduction break-even
	GrossIncome decimal.Decimal `json:"grossIncome,omitempty"`

	// Affordable principal
	MonthlyBudget             decimal.Decimal `json:"monthlyBudget,omitempty"`
	AnnualInterestRatePercent decimal.Decimal `json:"annualInterestRatePercent,omitempty"`
	TenureYears               int             `json:"tenureYears,omitempty"`

	MaxIterations int             `json:"-"` // Maximum solver iterations
	Tolerance     decimal.Decimal `json:"-"` // Convergence tolerance in rupees
}

// Result contains the outcome of a solver run
type Result struct {
	Request         Request `json:"request"`
	Success         bool    `json:"success"`
	Iterations      int     `json:"iterations"`
	ConvergenceInfo string  `json:"convergenceInfo"`

	// Value is the solved amount: a total deduction or a principal.
	Value decimal.Decimal `json:"value"`

	// Deduction break-even
	NewRegimeTax decimal.Decimal `json:"newRegimeTax,omitempty"`
	OldRegimeTax decimal.Decimal `json:"oldRegimeTax,omitempty"`
	Allocation   *Allocation     `json:"allocation,omitempty"`

	// Affordable principal
	MonthlyInstallment decimal.Decimal `json:"monthlyInstallment,omitempty"`
}

// Allocation splits a total deduction over the itemized heads, filling the
// capped heads first.
type Allocation struct {
	Section80C       decimal.Decimal `json:"section80C"`
	HomeLoanInterest decimal.Decimal `json:"homeLoanInterest"`
	HRAExemption     decimal.Decimal `json:"hraExemption"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance
	MaxIterations int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1), // ₹1 tolerance
		MaxIterations: 100,
	}
}

// Validate checks that the request carries what its target needs
func (r *Request) Validate() error {
	switch r.Target {
	case TargetDeductionBreakEven:
		if !r.GrossIncome.IsPositive() {
			return &BreakEvenError{
				Operation: "validate_request",
				Message:   "gross income must be positive",
			}
		}
	case TargetAffordablePrincipal:
		if !r.MonthlyBudget.IsPositive() {
			return &BreakEvenError{
				Operation: "validate_request",
				Message:   "monthly budget must be positive",
			}
		}
		if r.AnnualInterestRatePercent.IsNegative() {
			return &BreakEvenError{
				Operation: "validate_request",
				Message:   "annual interest rate cannot be negative",
			}
		}
		if r.TenureYears <= 0 {
			return &BreakEvenError{
				Operation: "validate_request",
				Message:   "tenure must be at least one year",
			}
		}
	default:
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "unsupported target: " + string(r.Target),
		}
	}

	if r.MaxIterations < 0 {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "max iterations cannot be negative",
		}
	}
	if r.Tolerance.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "tolerance cannot be negative",
		}
	}

	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
