package breakeven

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/shopspring/decimal"
)

func inRange(d decimal.Decimal, lo, hi string) bool {
	return d.GreaterThanOrEqual(decimal.RequireFromString(lo)) && d.LessThanOrEqual(decimal.RequireFromString(hi))
}

func TestNewSolver(t *testing.T) {
	calcEngine := calculation.NewCalculationEngine()
	options := DefaultSolverOptions()

	solver := NewSolver(calcEngine, options)

	if solver == nil {
		t.Fatal("Expected solver to be created, got nil")
	}
	if solver.CalcEngine != calcEngine {
		t.Error("Expected CalcEngine to match input")
	}
	if solver.Options.MaxIterations != options.MaxIterations || !solver.Options.Tolerance.Equal(options.Tolerance) {
		t.Error("Expected Options to match input")
	}
}

func TestNewDefaultSolver_NilEngine(t *testing.T) {
	solver := NewDefaultSolver(nil)

	if solver.CalcEngine == nil {
		t.Fatal("Expected a default calculation engine")
	}
	if solver.Options.MaxIterations != 100 {
		t.Errorf("Expected 100 max iterations, got %d", solver.Options.MaxIterations)
	}
}

func TestSolve_DeductionBreakEven(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.Solve(context.Background(), Request{
		Target:      TargetDeductionBreakEven,
		GrossIncome: decimal.NewFromInt(1500000),
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !result.Success {
		t.Errorf("Expected convergence, got: %s", result.ConvergenceInfo)
	}
	// Old slab tax must fall to 93,750, i.e. taxable 9,06,250
	if !inRange(result.Value, "543750", "543751") {
		t.Errorf("Expected break-even near 543750, got %s", result.Value)
	}
	if !result.NewRegimeTax.Equal(decimal.NewFromInt(97500)) {
		t.Errorf("Expected new regime tax 97500, got %s", result.NewRegimeTax)
	}
	if result.OldRegimeTax.GreaterThan(result.NewRegimeTax) {
		t.Errorf("Old regime tax %s exceeds new regime tax %s at break-even", result.OldRegimeTax, result.NewRegimeTax)
	}

	a := result.Allocation
	if a == nil {
		t.Fatal("Expected an allocation")
	}
	if !a.Section80C.Equal(decimal.NewFromInt(150000)) || !a.HomeLoanInterest.Equal(decimal.NewFromInt(200000)) {
		t.Errorf("Expected capped heads filled first, got %+v", a)
	}
	if !a.Section80C.Add(a.HomeLoanInterest).Add(a.HRAExemption).Equal(result.Value) {
		t.Error("Expected allocation to add up to the solved value")
	}
}

func TestSolve_DeductionBreakEven_RebateBoundary(t *testing.T) {
	result, err := NewDefaultSolver(nil).Solve(context.Background(), Request{
		Target:      TargetDeductionBreakEven,
		GrossIncome: decimal.NewFromInt(600000),
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// New regime owes nothing; old regime only matches once taxable income reaches the rebate threshold
	if !inRange(result.Value, "50000", "50001") {
		t.Errorf("Expected break-even near 50000, got %s", result.Value)
	}
	if !result.OldRegimeTax.IsZero() {
		t.Errorf("Expected zero old regime tax, got %s", result.OldRegimeTax)
	}
}

func TestSolve_DeductionBreakEven_AlreadyEven(t *testing.T) {
	result, err := NewDefaultSolver(nil).Solve(context.Background(), Request{
		Target:      TargetDeductionBreakEven,
		GrossIncome: decimal.NewFromInt(400000),
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !result.Value.IsZero() {
		t.Errorf("Expected zero deductions, got %s", result.Value)
	}
	if result.Iterations != 0 {
		t.Errorf("Expected no iterations, got %d", result.Iterations)
	}
	if !result.Success {
		t.Error("Expected success")
	}
}

func TestSolve_DeductionBreakEven_MaxIterations(t *testing.T) {
	result, err := NewDefaultSolver(nil).Solve(context.Background(), Request{
		Target:        TargetDeductionBreakEven,
		GrossIncome:   decimal.NewFromInt(1500000),
		MaxIterations: 3,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if result.Success {
		t.Error("Expected no convergence in 3 iterations")
	}
	if result.Iterations != 3 {
		t.Errorf("Expected 3 iterations, got %d", result.Iterations)
	}
	if result.ConvergenceInfo != "Max iterations (3) reached" {
		t.Errorf("Unexpected convergence info: %s", result.ConvergenceInfo)
	}
	// The upper bracket always satisfies the target
	if result.OldRegimeTax.GreaterThan(result.NewRegimeTax) {
		t.Error("Expected the reported point to satisfy old <= new")
	}
}

func TestSolve_AffordablePrincipal(t *testing.T) {
	result, err := NewDefaultSolver(nil).Solve(context.Background(), Request{
		Target:                    TargetAffordablePrincipal,
		MonthlyBudget:             decimal.NewFromInt(10000),
		AnnualInterestRatePercent: decimal.RequireFromString("8.5"),
		TenureYears:               20,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !result.Success {
		t.Errorf("Expected convergence, got: %s", result.ConvergenceInfo)
	}
	if !inRange(result.Value, "1152307.39", "1152308.40") {
		t.Errorf("Expected principal near 1152308.40, got %s", result.Value)
	}
	if result.MonthlyInstallment.GreaterThan(decimal.NewFromInt(10000)) {
		t.Errorf("EMI %s exceeds budget", result.MonthlyInstallment)
	}
}

func TestSolve_AffordablePrincipal_ZeroRate(t *testing.T) {
	result, err := NewDefaultSolver(nil).Solve(context.Background(), Request{
		Target:        TargetAffordablePrincipal,
		MonthlyBudget: decimal.NewFromInt(10000),
		TenureYears:   20,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !result.Value.Equal(decimal.NewFromInt(2400000)) {
		t.Errorf("Expected 2400000, got %s", result.Value)
	}
	if result.Iterations != 0 {
		t.Errorf("Expected no iterations, got %d", result.Iterations)
	}
}

func TestSolve_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDefaultSolver(nil).Solve(ctx, Request{
		Target:      TargetDeductionBreakEven,
		GrossIncome: decimal.NewFromInt(1500000),
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestSolve_InvalidRequests(t *testing.T) {
	solver := NewDefaultSolver(nil)

	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"unknown target", Request{Target: "retire_early"}, "unsupported target"},
		{"zero income", Request{Target: TargetDeductionBreakEven}, "gross income must be positive"},
		{"zero budget", Request{Target: TargetAffordablePrincipal, TenureYears: 10}, "monthly budget must be positive"},
		{"negative rate", Request{Target: TargetAffordablePrincipal, MonthlyBudget: decimal.NewFromInt(1), AnnualInterestRatePercent: decimal.NewFromInt(-1), TenureYears: 10}, "rate cannot be negative"},
		{"zero tenure", Request{Target: TargetAffordablePrincipal, MonthlyBudget: decimal.NewFromInt(1)}, "tenure must be at least one year"},
		{"negative tolerance", Request{Target: TargetDeductionBreakEven, GrossIncome: decimal.NewFromInt(1), Tolerance: decimal.NewFromInt(-1)}, "tolerance cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := solver.Solve(context.Background(), tt.req)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			var be *BreakEvenError
			if !errors.As(err, &be) {
				t.Fatalf("Expected BreakEvenError, got %T", err)
			}
			if be.Operation != "validate_request" {
				t.Errorf("Expected validate_request operation, got %s", be.Operation)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error to contain %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestBreakEvenError(t *testing.T) {
	cause := errors.New("boom")
	err := &BreakEvenError{Operation: "solve", Message: "failed", Cause: cause}

	if err.Error() != "solve: failed: boom" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected Unwrap to expose the cause")
	}

	plain := &BreakEvenError{Operation: "solve", Message: "failed"}
	if plain.Error() != "solve: failed" {
		t.Errorf("Unexpected message: %s", plain.Error())
	}
}

func TestSolveIncomeLadder(t *testing.T) {
	ladder, err := NewDefaultSolver(nil).SolveIncomeLadder(context.Background(), []decimal.Decimal{
		decimal.NewFromInt(400000),
		decimal.NewFromInt(1500000),
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(ladder.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(ladder.Results))
	}
	if len(ladder.Recommendations) != 3 {
		t.Fatalf("Expected 3 recommendations, got %v", ladder.Recommendations)
	}
	if ladder.Recommendations[0] != "At ₹4,00,000.00 the Old Regime costs no more even without deductions" {
		t.Errorf("Unexpected recommendation: %s", ladder.Recommendations[0])
	}
	if !strings.HasPrefix(ladder.Recommendations[1], "At ₹15,00,000.00 the Old Regime needs ₹5,43,75") {
		t.Errorf("Unexpected recommendation: %s", ladder.Recommendations[1])
	}
	if !strings.HasSuffix(ladder.Recommendations[1], "(36.25% of income)") {
		t.Errorf("Unexpected recommendation: %s", ladder.Recommendations[1])
	}
	if ladder.Recommendations[2] != "⭐ The Old Regime is easiest to justify at ₹15,00,000.00" {
		t.Errorf("Unexpected recommendation: %s", ladder.Recommendations[2])
	}
}

func TestSolveIncomeLadder_Errors(t *testing.T) {
	solver := NewDefaultSolver(nil)

	if _, err := solver.SolveIncomeLadder(context.Background(), nil); err == nil {
		t.Error("Expected error for empty ladder")
	}

	_, err := solver.SolveIncomeLadder(context.Background(), []decimal.Decimal{decimal.NewFromInt(-5)})
	if err == nil || !strings.Contains(err.Error(), "gross income must be positive") {
		t.Errorf("Expected wrapped validation error, got %v", err)
	}
}
