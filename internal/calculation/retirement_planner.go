package calculation

import (
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/pkg/money"
	"github.com/shopspring/decimal"
)

const retirementCalculator = "retirement"

var minusHundred = decimal.NewFromInt(-100)

// ComputeRetirementPlan sizes the corpus needed at retirement with the 4%
// rule and the monthly SIP that closes the gap left by current savings.
func ComputeRetirementPlan(terms domain.RetirementTerms) (*domain.RetirementResult, error) {
	if err := ValidateRetirementTerms(terms); err != nil {
		return nil, err
	}

	years := terms.RetirementAge - terms.CurrentAge

	inflationFactor := compoundFactor(annualRate(terms.ExpectedInflationPercent), years)
	futureMonthlyExpenses := terms.CurrentMonthlyExpenses.Mul(inflationFactor)
	requiredCorpus := futureMonthlyExpenses.Mul(twelve).Mul(decimal.NewFromInt(domain.CorpusMultiple))

	returnFactor := compoundFactor(annualRate(terms.ExpectedReturnPercent), years)
	projectedSavings := terms.CurrentSavings.Mul(returnFactor)

	shortfall := money.NonNegative(requiredCorpus.Sub(projectedSavings))

	return &domain.RetirementResult{
		Label:                   terms.Label,
		YearsToRetirement:       years,
		AssumedLifespanAge:      domain.AssumedLifespanAge,
		RetirementDurationYears: domain.AssumedLifespanAge - terms.RetirementAge,
		FutureMonthlyExpenses:   futureMonthlyExpenses,
		RequiredCorpus:          requiredCorpus,
		ProjectedFutureSavings:  projectedSavings,
		Shortfall:               shortfall,
		RequiredMonthlySIP:      requiredMonthlySIP(shortfall, terms.ExpectedReturnPercent, years*12),
		FirstYearWithdrawal:     requiredCorpus.Mul(domain.SafeWithdrawalRate),
	}, nil
}

// requiredMonthlySIP solves for the level contribution P paid at the start of
// each month (annuity due) that grows to exactly shortfall:
//
//	P = shortfall / ( ((1+r)^n - 1) / r * (1+r) )
func requiredMonthlySIP(shortfall, returnPercent decimal.Decimal, months int) decimal.Decimal {
	if shortfall.IsZero() || months <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(months))
	r := monthlyRate(returnPercent)
	if r.IsZero() {
		return shortfall.DivRound(n, powPrecision)
	}
	factor := compoundFactor(r, months)
	annuityDue := factor.Sub(one).DivRound(r, powPrecision).Mul(one.Add(r))
	return shortfall.DivRound(annuityDue, powPrecision)
}

// ValidateRetirementTerms reports the first invalid field of a retirement plan.
func ValidateRetirementTerms(terms domain.RetirementTerms) error {
	if terms.CurrentAge < 0 {
		return invalidInput(retirementCalculator, "current age", "cannot be negative, got %d", terms.CurrentAge)
	}
	if terms.RetirementAge <= terms.CurrentAge {
		return invalidInput(retirementCalculator, "retirement age",
			"must be greater than current age %d, got %d", terms.CurrentAge, terms.RetirementAge)
	}
	if terms.CurrentSavings.IsNegative() {
		return invalidInput(retirementCalculator, "current savings", "cannot be negative, got %s", terms.CurrentSavings)
	}
	if terms.CurrentMonthlyExpenses.IsNegative() {
		return invalidInput(retirementCalculator, "monthly expenses", "cannot be negative, got %s", terms.CurrentMonthlyExpenses)
	}
	if terms.ExpectedInflationPercent.LessThanOrEqual(minusHundred) {
		return invalidInput(retirementCalculator, "inflation", "must be above -100%%, got %s%%", terms.ExpectedInflationPercent)
	}
	if terms.ExpectedReturnPercent.LessThanOrEqual(minusHundred) {
		return invalidInput(retirementCalculator, "expected return", "must be above -100%%, got %s%%", terms.ExpectedReturnPercent)
	}
	return nil
}
