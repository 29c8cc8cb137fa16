package domain

import "github.com/shopspring/decimal"

// LumpsumTerms describes a one-time investment.
type LumpsumTerms struct {
	Label                   string          `yaml:"label,omitempty" json:"label,omitempty" toml:"label,omitempty"`
	Principal               decimal.Decimal `yaml:"principal" json:"principal" toml:"principal"`
	AnnualReturnRatePercent decimal.Decimal `yaml:"annual_return_rate_percent" json:"annualReturnRatePercent" toml:"annual_return_rate_percent"`
	Years                   int             `yaml:"years" json:"years" toml:"years"`
}

// LumpsumYear is the value of the investment at the end of a year.
type LumpsumYear struct {
	Year      int             `yaml:"year" json:"year"`
	Value     decimal.Decimal `yaml:"value" json:"value"`
	GainSoFar decimal.Decimal `yaml:"gain_so_far" json:"gainSoFar"`
}

// LumpsumResult is the output of the lumpsum growth calculator. The schedule
// covers every year; presentation decides how many rows to show.
type LumpsumResult struct {
	Label          string          `yaml:"label,omitempty" json:"label,omitempty"`
	Principal      decimal.Decimal `yaml:"principal" json:"principal"`
	FutureValue    decimal.Decimal `yaml:"future_value" json:"futureValue"`
	TotalGain      decimal.Decimal `yaml:"total_gain" json:"totalGain"`
	YearlySchedule []LumpsumYear   `yaml:"yearly_schedule" json:"yearlySchedule"`
}

// GrowthMultiple is futureValue / principal.
func (lr *LumpsumResult) GrowthMultiple() decimal.Decimal {
	if lr.Principal.IsZero() {
		return decimal.Zero
	}
	return lr.FutureValue.Div(lr.Principal)
}

// AbsoluteReturnPercent is (futureValue - principal) / principal * 100.
func (lr *LumpsumResult) AbsoluteReturnPercent() decimal.Decimal {
	if lr.Principal.IsZero() {
		return decimal.Zero
	}
	return lr.TotalGain.Div(lr.Principal).Mul(decimal.NewFromInt(100))
}
