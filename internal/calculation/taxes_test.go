package calculation

import (
	"errors"
	"testing"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTax_NewRegimeExample(t *testing.T) {
	result, err := ComputeTax(domain.TaxTerms{GrossAnnualIncome: dec("1200000"), Regime: domain.RegimeNew})
	require.NoError(t, err)

	assert.True(t, result.StandardDeduction.Equal(dec("75000")))
	assert.True(t, result.TaxableIncome.Equal(dec("1125000")))
	assert.True(t, result.TaxBeforeRebate.Equal(dec("52500")), "got %s", result.TaxBeforeRebate)
	assert.True(t, result.RebateApplied.IsZero())
	assert.True(t, result.Cess.Equal(dec("2100")))
	assert.True(t, result.TotalTax.Equal(dec("54600")))
	assert.True(t, result.TakeHomeIncome.Equal(dec("1145400")))

	require.Len(t, result.Slabs, 3)
	assert.True(t, result.Slabs[0].Tax.IsZero())
	assert.True(t, result.Slabs[1].Tax.Equal(dec("20000")))
	assert.True(t, result.Slabs[2].TaxableAmount.Equal(dec("325000")))
	assert.True(t, result.Slabs[2].Tax.Equal(dec("32500")))
}

func TestComputeTax_SlabTableCumulativeAmounts(t *testing.T) {
	tests := []struct {
		name     string
		regime   domain.TaxRegime
		taxable  string
		expected string
	}{
		{"new at 400k", domain.RegimeNew, "400000", "0"},
		{"new at 800k", domain.RegimeNew, "800000", "20000"},
		{"new at 1.2m", domain.RegimeNew, "1200000", "60000"},
		{"new at 1.6m", domain.RegimeNew, "1600000", "120000"},
		{"new above 1.6m", domain.RegimeNew, "2000000", "200000"},
		{"old at 250k", domain.RegimeOld, "250000", "0"},
		{"old at 500k", domain.RegimeOld, "500000", "12500"},
		{"old at 1m", domain.RegimeOld, "1000000", "112500"},
		{"old above 1m", domain.RegimeOld, "1500000", "262500"},
	}

	rules := domain.DefaultTaxRules()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, _ := rules.ForRegime(tt.regime).SlabTax(dec(tt.taxable))
			assert.True(t, tax.Equal(dec(tt.expected)), "got %s want %s", tax, tt.expected)
		})
	}
}

func TestComputeTax_NewRegimeRebateBoundary(t *testing.T) {
	// 775,000 gross leaves exactly 700,000 taxable.
	atThreshold, err := ComputeTax(domain.TaxTerms{GrossAnnualIncome: dec("775000"), Regime: domain.RegimeNew})
	require.NoError(t, err)
	assert.True(t, atThreshold.TaxableIncome.Equal(dec("700000")))
	assert.True(t, atThreshold.TaxBeforeRebate.Equal(dec("15000")))
	assert.True(t, atThreshold.RebateApplied.Equal(dec("15000")))
	assert.True(t, atThreshold.TotalTax.IsZero())
	assert.True(t, atThreshold.TakeHomeIncome.Equal(dec("775000")))

	justAbove, err := ComputeTax(domain.TaxTerms{GrossAnnualIncome: dec("775001"), Regime: domain.RegimeNew})
	require.NoError(t, err)
	assert.True(t, justAbove.RebateApplied.IsZero())
	assert.True(t, justAbove.TotalTax.Equal(dec("15600.052")), "got %s", justAbove.TotalTax)
}

func TestComputeTax_RebateIsCapped(t *testing.T) {
	calc := NewProgressiveTaxCalculatorWithRules(&domain.TaxRules{
		New: domain.RegimeRules{RebateThreshold: dec("1000000")},
	})
	result, err := calc.Calculate(domain.TaxTerms{GrossAnnualIncome: dec("1075000"), Regime: domain.RegimeNew})
	require.NoError(t, err)

	assert.True(t, result.TaxBeforeRebate.Equal(dec("40000")))
	assert.True(t, result.RebateApplied.Equal(dec("25000")), "rebate caps at 25,000")
	assert.True(t, result.TaxAfterRebate.Equal(dec("15000")))
}

func TestComputeTax_OldRegimeDeductions(t *testing.T) {
	result, err := ComputeTax(domain.TaxTerms{
		GrossAnnualIncome:    dec("1500000"),
		Regime:               domain.RegimeOld,
		Section80CDeductions: dec("200000"),
		HRAExemption:         dec("240000"),
		HomeLoanInterest:     dec("350000"),
	})
	require.NoError(t, err)

	// 50,000 standard + 150,000 (80C cap) + 240,000 HRA + 200,000 (home loan cap)
	assert.True(t, result.TotalDeductions.Equal(dec("640000")), "got %s", result.TotalDeductions)
	assert.True(t, result.TaxableIncome.Equal(dec("860000")))
	assert.True(t, result.TaxBeforeRebate.Equal(dec("84500")), "got %s", result.TaxBeforeRebate)
	assert.True(t, result.TotalTax.Equal(dec("87880")))
}

func TestComputeTax_OldRegimeRebate(t *testing.T) {
	result, err := ComputeTax(domain.TaxTerms{GrossAnnualIncome: dec("550000"), Regime: domain.RegimeOld})
	require.NoError(t, err)

	assert.True(t, result.TaxableIncome.Equal(dec("500000")))
	assert.True(t, result.TaxBeforeRebate.Equal(dec("12500")))
	assert.True(t, result.TotalTax.IsZero())
}

func TestComputeTax_NewRegimeIgnoresItemizedDeductions(t *testing.T) {
	plain, err := ComputeTax(domain.TaxTerms{GrossAnnualIncome: dec("1800000"), Regime: domain.RegimeNew})
	require.NoError(t, err)
	withDeductions, err := ComputeTax(domain.TaxTerms{
		GrossAnnualIncome:    dec("1800000"),
		Regime:               domain.RegimeNew,
		Section80CDeductions: dec("150000"),
		HRAExemption:         dec("300000"),
		HomeLoanInterest:     dec("200000"),
	})
	require.NoError(t, err)

	assert.True(t, plain.TotalTax.Equal(withDeductions.TotalTax))
	assert.True(t, plain.TotalDeductions.Equal(dec("75000")))
}

func TestComputeTax_StandardDeductionNeverExceedsIncome(t *testing.T) {
	result, err := ComputeTax(domain.TaxTerms{GrossAnnualIncome: dec("30000"), Regime: domain.RegimeNew})
	require.NoError(t, err)
	assert.True(t, result.StandardDeduction.Equal(dec("30000")))
	assert.True(t, result.TaxableIncome.IsZero())

	zero, err := ComputeTax(domain.TaxTerms{Regime: domain.RegimeOld})
	require.NoError(t, err)
	assert.True(t, zero.TotalTax.IsZero())
	assert.True(t, zero.TakeHomeIncome.IsZero())
	assert.Empty(t, zero.Slabs)
}

func TestComputeTax_RegimeIndependence(t *testing.T) {
	calc := NewProgressiveTaxCalculator()
	terms := domain.TaxTerms{
		GrossAnnualIncome:    dec("1400000"),
		Section80CDeductions: dec("150000"),
	}

	terms.Regime = domain.RegimeNew
	firstNew, err := calc.Calculate(terms)
	require.NoError(t, err)

	terms.Regime = domain.RegimeOld
	old, err := calc.Calculate(terms)
	require.NoError(t, err)

	terms.Regime = domain.RegimeNew
	secondNew, err := calc.Calculate(terms)
	require.NoError(t, err)

	assert.Equal(t, firstNew, secondNew, "repeated calls must be identical")
	assert.Equal(t, domain.RegimeOld, old.Regime)
	assert.False(t, old.TotalTax.Equal(firstNew.TotalTax))
}

func TestComputeTax_TotalTaxNeverDecreases(t *testing.T) {
	calc := NewProgressiveTaxCalculator()
	for _, regime := range []domain.TaxRegime{domain.RegimeNew, domain.RegimeOld} {
		previous := decimal.Zero
		for income := int64(0); income <= 5000000; income += 25000 {
			result, err := calc.Calculate(domain.TaxTerms{GrossAnnualIncome: decimal.NewFromInt(income), Regime: regime})
			require.NoError(t, err)
			assert.True(t, result.TotalTax.GreaterThanOrEqual(previous), "%s regime at %d", regime, income)
			previous = result.TotalTax
		}
	}
}

func TestComputeTax_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		terms domain.TaxTerms
		field string
	}{
		{"negative income", domain.TaxTerms{GrossAnnualIncome: dec("-1"), Regime: domain.RegimeNew}, "gross income"},
		{"negative 80C", domain.TaxTerms{Regime: domain.RegimeOld, Section80CDeductions: dec("-5")}, "section 80C deductions"},
		{"negative HRA", domain.TaxTerms{Regime: domain.RegimeOld, HRAExemption: dec("-5")}, "HRA exemption"},
		{"negative home loan", domain.TaxTerms{Regime: domain.RegimeOld, HomeLoanInterest: dec("-5")}, "home loan interest"},
		{"missing regime", domain.TaxTerms{GrossAnnualIncome: dec("100")}, "regime"},
		{"unknown regime", domain.TaxTerms{GrossAnnualIncome: dec("100"), Regime: "flat"}, "regime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTax(tt.terms)
			require.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestNewProgressiveTaxCalculatorWithRules_FallsBackToDefaults(t *testing.T) {
	calc := NewProgressiveTaxCalculatorWithRules(&domain.TaxRules{
		Old: domain.RegimeRules{StandardDeduction: dec("75000")},
	})

	assert.True(t, calc.Rules.Old.StandardDeduction.Equal(dec("75000")))
	assert.True(t, calc.Rules.Old.Section80CCap.Equal(dec("150000")))
	assert.Len(t, calc.Rules.Old.Slabs, 4)
	assert.True(t, calc.Rules.New.StandardDeduction.Equal(dec("75000")))
	assert.True(t, calc.Rules.CessRate.Equal(dec("0.04")))

	nilRules := NewProgressiveTaxCalculatorWithRules(nil)
	assert.Equal(t, domain.DefaultTaxRules(), nilRules.Rules)
}
