package calculation

import (
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
)

const lumpsumCalculator = "lumpsum"

// ComputeLumpsum projects a one-time investment with annual compounding:
// futureValue = principal * (1 + rate/100)^years.
func ComputeLumpsum(terms domain.LumpsumTerms) (*domain.LumpsumResult, error) {
	if err := ValidateLumpsumTerms(terms); err != nil {
		return nil, err
	}

	growth := one.Add(annualRate(terms.AnnualReturnRatePercent))
	schedule := make([]domain.LumpsumYear, 0, terms.Years)
	factor := one
	value := terms.Principal

	for year := 1; year <= terms.Years; year++ {
		factor = factor.Mul(growth).Round(powPrecision)
		value = terms.Principal.Mul(factor)
		schedule = append(schedule, domain.LumpsumYear{
			Year:      year,
			Value:     value,
			GainSoFar: value.Sub(terms.Principal),
		})
	}

	return &domain.LumpsumResult{
		Label:          terms.Label,
		Principal:      terms.Principal,
		FutureValue:    value,
		TotalGain:      value.Sub(terms.Principal),
		YearlySchedule: schedule,
	}, nil
}

// ValidateLumpsumTerms reports the first invalid field of a lumpsum investment.
func ValidateLumpsumTerms(terms domain.LumpsumTerms) error {
	if !terms.Principal.IsPositive() {
		return invalidInput(lumpsumCalculator, "principal", "must be positive, got %s", terms.Principal)
	}
	if terms.AnnualReturnRatePercent.LessThan(decimal.Zero) {
		return invalidInput(lumpsumCalculator, "annual return rate", "cannot be negative, got %s%%", terms.AnnualReturnRatePercent)
	}
	if terms.Years <= 0 {
		return invalidInput(lumpsumCalculator, "years", "must be at least one, got %d", terms.Years)
	}
	return nil
}
