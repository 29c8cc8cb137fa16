package compare

import (
	"context"
	"testing"

	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/internal/transform"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertAmount(t *testing.T, want int64, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s: want %d, got %s", msg, want, got)
}

func TestCompareRegimes_NewWins(t *testing.T) {
	rc, err := CompareRegimes(calculation.NewCalculationEngine(), dec(1500000), dec(150000), decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assertAmount(t, 97500, rc.New.TotalTax, "new total")
	assertAmount(t, 210600, rc.Old.TotalTax, "old total")
	assert.Equal(t, domain.RegimeNew, rc.Recommended)
	assertAmount(t, 113100, rc.Savings, "savings")

	require.Len(t, rc.Recommendations, 1)
	assert.Equal(t, "The New Regime saves ₹1,13,100.00 per year over the Old Regime", rc.Recommendations[0])
}

func TestCompareRegimes_OldWins(t *testing.T) {
	rc, err := CompareRegimes(nil, dec(1000000), dec(150000), dec(300000), dec(200000))
	require.NoError(t, err)

	assertAmount(t, 33800, rc.New.TotalTax, "new total")
	assertAmount(t, 0, rc.Old.TotalTax, "old total")
	assert.Equal(t, domain.RegimeOld, rc.Recommended)
	assertAmount(t, 33800, rc.Savings, "savings")

	assert.Equal(t, []string{
		"The Old Regime saves ₹33,800.00 per year over the New Regime",
		"Taxable income under the Old Regime is within the rebate limit of ₹5,00,000.00",
	}, rc.Recommendations)
}

func TestCompareRegimes_TieGoesToNew(t *testing.T) {
	rc, err := CompareRegimes(nil, dec(400000), decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, rc.New.TotalTax.IsZero())
	assert.True(t, rc.Old.TotalTax.IsZero())
	assert.Equal(t, domain.RegimeNew, rc.Recommended)
	assert.True(t, rc.Savings.IsZero())
	assert.Equal(t, "Both regimes cost ₹0.00; choose the New Regime", rc.Recommendations[0])
	assert.Contains(t, rc.Recommendations, "₹1,50,000.00 of Section 80C room is unused; claiming it brings Old Regime tax to ₹0.00")
}

func TestCompareRegimes_Unused80CFlipsWinner(t *testing.T) {
	rc, err := CompareRegimes(nil, dec(1000000), decimal.Zero, dec(100000), dec(200000))
	require.NoError(t, err)

	assertAmount(t, 44200, rc.Old.TotalTax, "old total")
	assert.Equal(t, domain.RegimeNew, rc.Recommended)
	assertAmount(t, 10400, rc.Savings, "savings")
	assert.Equal(t, []string{
		"The New Regime saves ₹10,400.00 per year over the Old Regime",
		"₹1,50,000.00 of Section 80C room is unused; claiming it brings Old Regime tax to ₹0.00, below the New Regime",
	}, rc.Recommendations)
}

func TestCompareRegimes_IgnoresRegimeAndKeepsItIndependent(t *testing.T) {
	ce := NewCompareEngine(nil)
	rc, err := ce.CompareRegimes(domain.TaxTerms{
		GrossAnnualIncome:    dec(1500000),
		Regime:               domain.RegimeOld,
		Section80CDeductions: dec(150000),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RegimeNew, rc.New.Regime)
	assert.Equal(t, domain.RegimeOld, rc.Old.Regime)
	assertAmount(t, 75000, rc.New.TotalDeductions, "new regime ignores itemized deductions")
	assert.Same(t, rc.Old, rc.Result(domain.RegimeOld))
}

func TestCompareRegimes_InvalidInput(t *testing.T) {
	_, err := CompareRegimes(nil, dec(-1), decimal.Zero, decimal.Zero, decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, calculation.ErrInvalidInput)
	assert.Contains(t, err.Error(), "new regime")
}

func TestCompareEngine_Compare(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	base := domain.TaxTerms{
		Label:                "salary",
		GrossAnnualIncome:    dec(1500000),
		Regime:               domain.RegimeOld,
		Section80CDeductions: dec(50000),
	}

	set, err := ce.Compare(context.Background(), base, CompareOptions{
		Templates:  []string{"max_80c", "raise_10pct"},
		Transforms: []transform.TaxTransform{&transform.SetRegime{Regime: domain.RegimeNew}},
	})
	require.NoError(t, err)

	assert.Equal(t, "salary", set.BaseName)
	assertAmount(t, 241800, set.BaseResult.TotalTax, "base total")
	require.Len(t, set.AlternativeResults, 3)

	maxed := set.AlternativeResults[0]
	assert.Equal(t, "max_80c", maxed.Name)
	assertAmount(t, 210600, maxed.TotalTax, "max_80c total")
	assertAmount(t, -31200, maxed.TaxDiffFromBase, "max_80c tax diff")
	assertAmount(t, 31200, maxed.TakeHomeDiffFromBase, "max_80c take-home diff")

	raise := set.AlternativeResults[1]
	assertAmount(t, 288600, raise.TotalTax, "raise total")
	assertAmount(t, 46800, raise.TaxDiffFromBase, "raise tax diff")
	assertAmount(t, 103200, raise.TakeHomeDiffFromBase, "raise take-home diff")

	custom := set.AlternativeResults[2]
	assert.Equal(t, "custom", custom.Name)
	assert.Equal(t, domain.RegimeNew, custom.Regime)
	assertAmount(t, 97500, custom.TotalTax, "custom total")
	assert.Equal(t, "Switch to the New Regime", custom.Description)

	// base terms are untouched
	assert.Equal(t, domain.RegimeOld, base.Regime)
	assertAmount(t, 50000, base.Section80CDeductions, "base 80C")

	// custom has both the lowest tax and the highest take-home
	assert.Equal(t, []string{"Lowest Tax: custom saves ₹1,44,300.00 per year"}, set.Recommendations)
}

func TestCompareEngine_Compare_Errors(t *testing.T) {
	ce := NewCompareEngine(nil)
	base := domain.TaxTerms{GrossAnnualIncome: dec(1000000), Regime: domain.RegimeNew}

	_, err := ce.Compare(context.Background(), base, CompareOptions{Templates: []string{"nope"}})
	assert.EqualError(t, err, "template nope not found")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ce.Compare(ctx, base, CompareOptions{Templates: []string{"max_80c"}})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = ce.Compare(context.Background(), domain.TaxTerms{GrossAnnualIncome: dec(1)}, CompareOptions{})
	assert.ErrorContains(t, err, "failed to calculate base")
}

func TestGenerateRecommendations_NoAlternatives(t *testing.T) {
	set := &ComparisonSet{BaseName: "base", BaseResult: &ComparisonResult{Name: "base"}}
	assert.Empty(t, GenerateRecommendations(set))
}

func TestGenerateRecommendations_TakeHomeDiffersFromLowestTax(t *testing.T) {
	set := &ComparisonSet{
		BaseName:   "base",
		BaseResult: &ComparisonResult{Name: "base", TotalTax: dec(100), TakeHome: dec(900)},
		AlternativeResults: []ComparisonResult{
			{Name: "max_80c", TotalTax: dec(60), TakeHome: dec(940)},
			{Name: "raise_10pct", TotalTax: dec(130), TakeHome: dec(970)},
		},
	}
	assert.Equal(t, []string{
		"Lowest Tax: max_80c saves ₹40.00 per year",
		"Best Take-Home: raise_10pct leaves ₹70.00 more per year",
	}, GenerateRecommendations(set))
}

func TestGenerateRecommendations_BaseIsBest(t *testing.T) {
	set := &ComparisonSet{
		BaseName:   "base",
		BaseResult: &ComparisonResult{Name: "base", TotalTax: dec(100), TakeHome: dec(900)},
		AlternativeResults: []ComparisonResult{
			{Name: "worse", TotalTax: dec(200), TakeHome: dec(800)},
		},
	}
	assert.Equal(t, []string{"Lowest Tax: no alternative beats base"}, GenerateRecommendations(set))
}
