package calculation

import (
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
)

const emiCalculator = "emi"

// ComputeEMI computes the equated monthly installment for a loan and its
// year-by-year amortization schedule.
//
//	r   = annualRatePercent / 1200
//	n   = tenureYears * 12
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1), or P / n when r == 0
func ComputeEMI(terms domain.LoanTerms) (*domain.AmortizationResult, error) {
	if err := ValidateLoanTerms(terms); err != nil {
		return nil, err
	}

	months := terms.Months()
	r := monthlyRate(terms.AnnualInterestRatePercent)
	emi := monthlyInstallment(terms.Principal, r, months)
	totalPayable := emi.Mul(decimal.NewFromInt(int64(months)))

	return &domain.AmortizationResult{
		Label:              terms.Label,
		Principal:          terms.Principal,
		MonthlyInstallment: emi,
		TotalPayable:       totalPayable,
		TotalInterest:      totalPayable.Sub(terms.Principal),
		YearlySchedule:     amortize(terms.Principal, r, emi, terms.TenureYears),
	}, nil
}

// ValidateLoanTerms reports the first invalid field of a loan as an *InputError.
func ValidateLoanTerms(terms domain.LoanTerms) error {
	if !terms.Principal.IsPositive() {
		return invalidInput(emiCalculator, "principal", "must be positive, got %s", terms.Principal)
	}
	if terms.AnnualInterestRatePercent.IsNegative() {
		return invalidInput(emiCalculator, "annual interest rate", "cannot be negative, got %s%%", terms.AnnualInterestRatePercent)
	}
	if terms.TenureYears <= 0 {
		return invalidInput(emiCalculator, "tenure", "must be at least one year, got %d", terms.TenureYears)
	}
	return nil
}

// monthlyInstallment applies the annuity formula. The zero-rate case is 0/0
// in the formula and degenerates to an even split.
func monthlyInstallment(principal, r decimal.Decimal, months int) decimal.Decimal {
	n := decimal.NewFromInt(int64(months))
	if r.IsZero() {
		return principal.Div(n)
	}
	factor := compoundFactor(r, months)
	return principal.Mul(r).Mul(factor).DivRound(factor.Sub(one), powPrecision)
}

// amortize walks the loan month by month and folds each 12-month block into
// one row. The final balance is clamped to zero to drop rounding residue.
func amortize(principal, r, emi decimal.Decimal, years int) []domain.AmortizationYear {
	schedule := make([]domain.AmortizationYear, 0, years)
	balance := principal

	for year := 1; year <= years; year++ {
		principalPaid := decimal.Zero
		interestPaid := decimal.Zero

		for month := 0; month < 12; month++ {
			interest := balance.Mul(r).Round(powPrecision)
			principalPart := emi.Sub(interest)
			balance = balance.Sub(principalPart)
			principalPaid = principalPaid.Add(principalPart)
			interestPaid = interestPaid.Add(interest)
		}

		if year == years || balance.IsNegative() {
			balance = decimal.Zero
		}

		schedule = append(schedule, domain.AmortizationYear{
			Year:             year,
			PrincipalPaid:    principalPaid,
			InterestPaid:     interestPaid,
			RemainingBalance: balance,
		})
	}

	return schedule
}
