package calculation

import "github.com/shopspring/decimal"

// powPrecision bounds the scale of intermediate products so repeated
// compounding stays cheap and deterministic.
const powPrecision = 24

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// powInt raises base to a non-negative integer power by squaring.
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	result := one
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(powPrecision)
		}
		base = base.Mul(base).Round(powPrecision)
		exp >>= 1
	}
	return result
}

// annualRate converts a percentage (12 for 12%) to a decimal rate.
func annualRate(percent decimal.Decimal) decimal.Decimal {
	return percent.DivRound(hundred, powPrecision)
}

// monthlyRate converts an annual percentage to a monthly decimal rate (r = pct / 1200).
func monthlyRate(percent decimal.Decimal) decimal.Decimal {
	return percent.DivRound(decimal.NewFromInt(1200), powPrecision)
}

// compoundFactor returns (1 + rate)^periods.
func compoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	return powInt(one.Add(rate), periods)
}
