package domain

import "github.com/shopspring/decimal"

// Retirement planning constants.
const (
	// AssumedLifespanAge is the age the corpus must last until.
	AssumedLifespanAge = 85
	// CorpusMultiple is the reciprocal of the safe withdrawal rate.
	CorpusMultiple = 25
)

// SafeWithdrawalRate is the 4% rule.
var SafeWithdrawalRate = decimal.RequireFromString("0.04")

// RetirementTerms describes a household's retirement inputs.
type RetirementTerms struct {
	Label                    string          `yaml:"label,omitempty" json:"label,omitempty" toml:"label,omitempty"`
	CurrentAge               int             `yaml:"current_age" json:"currentAge" toml:"current_age"`
	RetirementAge            int             `yaml:"retirement_age" json:"retirementAge" toml:"retirement_age"`
	CurrentSavings           decimal.Decimal `yaml:"current_savings" json:"currentSavings" toml:"current_savings"`
	CurrentMonthlyExpenses   decimal.Decimal `yaml:"current_monthly_expenses" json:"currentMonthlyExpenses" toml:"current_monthly_expenses"`
	ExpectedInflationPercent decimal.Decimal `yaml:"expected_inflation_percent" json:"expectedInflationPercent" toml:"expected_inflation_percent"`
	ExpectedReturnPercent    decimal.Decimal `yaml:"expected_return_percent" json:"expectedReturnPercent" toml:"expected_return_percent"`
}

// RetirementResult is the output of the retirement planner.
type RetirementResult struct {
	Label                   string          `yaml:"label,omitempty" json:"label,omitempty"`
	YearsToRetirement       int             `yaml:"years_to_retirement" json:"yearsToRetirement"`
	AssumedLifespanAge      int             `yaml:"assumed_lifespan_age" json:"assumedLifespanAge"`
	RetirementDurationYears int             `yaml:"retirement_duration_years" json:"retirementDurationYears"`
	FutureMonthlyExpenses   decimal.Decimal `yaml:"future_monthly_expenses" json:"futureMonthlyExpenses"`
	RequiredCorpus          decimal.Decimal `yaml:"required_corpus" json:"requiredCorpus"`
	ProjectedFutureSavings  decimal.Decimal `yaml:"projected_future_savings" json:"projectedFutureSavings"`
	Shortfall               decimal.Decimal `yaml:"shortfall" json:"shortfall"`
	RequiredMonthlySIP      decimal.Decimal `yaml:"required_monthly_sip" json:"requiredMonthlySIP"`
	FirstYearWithdrawal     decimal.Decimal `yaml:"first_year_withdrawal" json:"firstYearWithdrawal"`
}

// OnTrack reports whether current savings alone cover the required corpus.
func (rr *RetirementResult) OnTrack() bool {
	return rr.Shortfall.IsZero()
}
