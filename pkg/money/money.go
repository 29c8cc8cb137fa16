// Package money holds the decimal helpers shared by the calculators and
// their presentation layers.
package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrNotFinite is returned when a float input is NaN or infinite.
var ErrNotFinite = errors.New("value is not a finite number")

// Hundred is used for percent conversions.
var Hundred = decimal.NewFromInt(100)

// FromFloat converts a float64 into a decimal, rejecting NaN and Inf.
// decimal.NewFromFloat panics on those, so every float boundary goes through here.
func FromFloat(value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, ErrNotFinite
	}
	return decimal.NewFromFloat(value), nil
}

// MustFromFloat is FromFloat for literals known to be finite.
func MustFromFloat(value float64) decimal.Decimal {
	d, err := FromFloat(value)
	if err != nil {
		panic(err)
	}
	return d
}

// Round2 rounds to paise/cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Clamp limits d to [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// NonNegative returns d, or zero when d is negative.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// PercentToRate converts a percentage such as 8.5 into 0.085.
func PercentToRate(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(Hundred)
}

// Monthly converts an annual amount to monthly.
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(decimal.NewFromInt(12))
}

// Annual converts a monthly amount to annual.
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(decimal.NewFromInt(12))
}

// WithinTolerance reports whether a and b differ by at most tol.
func WithinTolerance(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tol)
}
