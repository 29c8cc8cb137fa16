package domain

import "github.com/shopspring/decimal"

// LoanTerms describes a fixed-installment loan.
type LoanTerms struct {
	Label                     string          `yaml:"label,omitempty" json:"label,omitempty" toml:"label,omitempty"`
	Principal                 decimal.Decimal `yaml:"principal" json:"principal" toml:"principal"`
	AnnualInterestRatePercent decimal.Decimal `yaml:"annual_interest_rate_percent" json:"annualInterestRatePercent" toml:"annual_interest_rate_percent"`
	TenureYears               int             `yaml:"tenure_years" json:"tenureYears" toml:"tenure_years"`
}

// Months returns the number of monthly installments.
func (lt LoanTerms) Months() int {
	return lt.TenureYears * 12
}

// AmortizationYear is one 12-month block of an amortization schedule.
type AmortizationYear struct {
	Year             int             `yaml:"year" json:"year"`
	PrincipalPaid    decimal.Decimal `yaml:"principal_paid" json:"principalPaidThisYear"`
	InterestPaid     decimal.Decimal `yaml:"interest_paid" json:"interestPaidThisYear"`
	RemainingBalance decimal.Decimal `yaml:"remaining_balance" json:"remainingBalance"`
}

// AmortizationResult is the output of the EMI calculator.
type AmortizationResult struct {
	Label              string             `yaml:"label,omitempty" json:"label,omitempty"`
	Principal          decimal.Decimal    `yaml:"principal" json:"principal"`
	MonthlyInstallment decimal.Decimal    `yaml:"monthly_installment" json:"monthlyInstallment"`
	TotalPayable       decimal.Decimal    `yaml:"total_payable" json:"totalPayable"`
	TotalInterest      decimal.Decimal    `yaml:"total_interest" json:"totalInterest"`
	YearlySchedule     []AmortizationYear `yaml:"yearly_schedule" json:"yearlySchedule"`
}

// InterestShare returns total interest as a percentage of the total payable.
func (ar *AmortizationResult) InterestShare() decimal.Decimal {
	if ar.TotalPayable.IsZero() {
		return decimal.Zero
	}
	return ar.TotalInterest.Div(ar.TotalPayable).Mul(decimal.NewFromInt(100))
}
