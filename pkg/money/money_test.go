package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloat(t *testing.T) {
	d, err := FromFloat(8.5)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("8.5")))

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FromFloat(v)
		assert.ErrorIs(t, err, ErrNotFinite, "value %v", v)
	}
}

func TestMustFromFloatPanicsOnNaN(t *testing.T) {
	assert.Panics(t, func() { MustFromFloat(math.NaN()) })
	assert.NotPanics(t, func() { MustFromFloat(1.5) })
}

func TestClampAndNonNegative(t *testing.T) {
	lo := decimal.Zero
	hi := decimal.NewFromInt(150000)

	assert.True(t, Clamp(decimal.NewFromInt(200000), lo, hi).Equal(hi))
	assert.True(t, Clamp(decimal.NewFromInt(-5), lo, hi).Equal(lo))
	assert.True(t, Clamp(decimal.NewFromInt(1000), lo, hi).Equal(decimal.NewFromInt(1000)))

	assert.True(t, NonNegative(decimal.NewFromInt(-1)).IsZero())
	assert.True(t, NonNegative(decimal.NewFromInt(3)).Equal(decimal.NewFromInt(3)))
}

func TestConversions(t *testing.T) {
	assert.Equal(t, "0.085", PercentToRate(decimal.RequireFromString("8.5")).String())
	assert.Equal(t, "1200", Annual(decimal.NewFromInt(100)).String())
	assert.Equal(t, "100", Monthly(decimal.NewFromInt(1200)).String())
	assert.Equal(t, "2.35", Round2(decimal.RequireFromString("2.345")).String())
}

func TestWithinTolerance(t *testing.T) {
	one := decimal.NewFromInt(1)
	assert.True(t, WithinTolerance(decimal.NewFromInt(100), decimal.RequireFromString("100.5"), one))
	assert.False(t, WithinTolerance(decimal.NewFromInt(100), decimal.NewFromInt(102), one))
}
