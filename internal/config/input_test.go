package config

import (
	"errors"
	"testing"

	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func validWorksheet() *domain.Worksheet {
	return &domain.Worksheet{
		Name: "household",
		Loans: []domain.LoanTerms{
			{Label: "home", Principal: d("3000000"), AnnualInterestRatePercent: d("8.5"), TenureYears: 20},
		},
		Lumpsums: []domain.LumpsumTerms{
			{Principal: d("100000"), AnnualReturnRatePercent: d("12"), Years: 10},
		},
		Retirements: []domain.RetirementTerms{
			{CurrentAge: 30, RetirementAge: 60, CurrentSavings: d("500000"), CurrentMonthlyExpenses: d("50000"),
				ExpectedInflationPercent: d("6"), ExpectedReturnPercent: d("12")},
		},
		Taxes: []domain.TaxTerms{
			{GrossAnnualIncome: d("1200000"), Regime: domain.RegimeOld, Section80CDeductions: d("150000")},
		},
	}
}

func TestValidateWorksheet_Valid(t *testing.T) {
	parser := NewInputParser()
	err := parser.ValidateWorksheet(validWorksheet())
	if err != nil {
		t.Errorf("Expected valid worksheet but got error: %s", err.Error())
	}
}

func TestValidateWorksheet_Empty(t *testing.T) {
	parser := NewInputParser()
	err := parser.ValidateWorksheet(&domain.Worksheet{Name: "empty"})
	assert.EqualError(t, err, "no calculations provided")
}

func TestValidateWorksheet_InvalidItems(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(ws *domain.Worksheet)
		wantErr string
	}{
		{
			name:    "loan without principal",
			mutate:  func(ws *domain.Worksheet) { ws.Loans[0].Principal = decimal.Zero },
			wantErr: "loan 1 (home): emi: invalid principal",
		},
		{
			name:    "lumpsum with zero years",
			mutate:  func(ws *domain.Worksheet) { ws.Lumpsums[0].Years = 0 },
			wantErr: "lumpsum 1: lumpsum: invalid years",
		},
		{
			name: "retirement age not after current age",
			mutate: func(ws *domain.Worksheet) {
				ws.Retirements[0].Label = "early"
				ws.Retirements[0].RetirementAge = 30
			},
			wantErr: "retirement 1 (early): retirement: invalid retirement age",
		},
		{
			name:    "tax without regime",
			mutate:  func(ws *domain.Worksheet) { ws.Taxes[0].Regime = "" },
			wantErr: "tax 1: tax: invalid regime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := validWorksheet()
			tt.mutate(ws)

			err := NewInputParser().ValidateWorksheet(ws)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, calculation.ErrInvalidInput), "Should wrap the input error")
		})
	}
}

func TestValidateTaxRules(t *testing.T) {
	tests := []struct {
		name    string
		rules   domain.TaxRules
		wantErr string
	}{
		{
			name:  "defaults",
			rules: domain.DefaultTaxRules(),
		},
		{
			name:  "partial override",
			rules: domain.TaxRules{New: domain.RegimeRules{StandardDeduction: d("100000")}},
		},
		{
			name:    "cess above one",
			rules:   domain.TaxRules{CessRate: d("4")},
			wantErr: "cess rate must be between 0 and 1",
		},
		{
			name:    "negative rebate cap",
			rules:   domain.TaxRules{Old: domain.RegimeRules{RebateCap: d("-1")}},
			wantErr: "old regime: rebate cap cannot be negative",
		},
		{
			name: "slabs not starting at zero",
			rules: domain.TaxRules{New: domain.RegimeRules{Slabs: []domain.TaxSlab{
				{From: d("100"), Rate: d("0.1")},
			}}},
			wantErr: "new regime: first slab must start at 0",
		},
		{
			name: "gap between slabs",
			rules: domain.TaxRules{New: domain.RegimeRules{Slabs: []domain.TaxSlab{
				{From: d("0"), To: dp("300000"), Rate: d("0")},
				{From: d("400000"), Rate: d("0.1")},
			}}},
			wantErr: "slab 2 must start at 300000",
		},
		{
			name: "bounded last slab",
			rules: domain.TaxRules{Old: domain.RegimeRules{Slabs: []domain.TaxSlab{
				{From: d("0"), To: dp("300000"), Rate: d("0")},
			}}},
			wantErr: "last slab must be unbounded",
		},
		{
			name: "unbounded slab in the middle",
			rules: domain.TaxRules{Old: domain.RegimeRules{Slabs: []domain.TaxSlab{
				{From: d("0"), Rate: d("0")},
				{From: d("300000"), Rate: d("0.1")},
			}}},
			wantErr: "slab 1 is unbounded but is not the last slab",
		},
		{
			name: "rate out of range",
			rules: domain.TaxRules{Old: domain.RegimeRules{Slabs: []domain.TaxSlab{
				{From: d("0"), Rate: d("1.5")},
			}}},
			wantErr: "slab 1 rate must be between 0 and 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInputParser().ValidateTaxRules(&tt.rules)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, "yaml", FormatFromPath("plan.yaml"))
	assert.Equal(t, "yaml", FormatFromPath("plan.YML"))
	assert.Equal(t, "toml", FormatFromPath("/tmp/plan.toml"))
	assert.Equal(t, "json", FormatFromPath("plan.json"))
	assert.Equal(t, "xml", FormatFromPath("plan.xml"))
}
