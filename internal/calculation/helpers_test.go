package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimalNear(t *testing.T, expected, actual decimal.Decimal, tolerance string, msgAndArgs ...interface{}) {
	t.Helper()
	diff := expected.Sub(actual).Abs()
	assert.True(t, diff.LessThanOrEqual(dec(tolerance)),
		append([]interface{}{"expected %s, got %s (diff %s)", expected.String(), actual.String(), diff.String()}, msgAndArgs...)...)
}

// assertWithinPercent checks actual is within pct percent of expected.
func assertWithinPercent(t *testing.T, expected, actual decimal.Decimal, pct string) {
	t.Helper()
	allowed := expected.Abs().Mul(dec(pct)).Div(decimal.NewFromInt(100))
	diff := expected.Sub(actual).Abs()
	assert.True(t, diff.LessThanOrEqual(allowed), "expected %s within %s%%, got %s", expected.String(), pct, actual.String())
}
