package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TaxRegime selects one of the two slab tables.
type TaxRegime string

const (
	RegimeNew TaxRegime = "new"
	RegimeOld TaxRegime = "old"
)

// ParseTaxRegime accepts "new"/"old" in any case.
func ParseTaxRegime(s string) (TaxRegime, error) {
	switch TaxRegime(strings.ToLower(strings.TrimSpace(s))) {
	case RegimeNew:
		return RegimeNew, nil
	case RegimeOld:
		return RegimeOld, nil
	default:
		return "", fmt.Errorf("unknown tax regime %q (valid: new, old)", s)
	}
}

// UnmarshalText lets YAML, TOML and JSON accept NEW/Old/new.
func (r *TaxRegime) UnmarshalText(text []byte) error {
	parsed, err := ParseTaxRegime(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r TaxRegime) String() string { return string(r) }

// Title returns the display name of the regime.
func (r TaxRegime) Title() string {
	switch r {
	case RegimeNew:
		return "New Regime"
	case RegimeOld:
		return "Old Regime"
	default:
		return string(r)
	}
}

// TaxTerms are the inputs to the income tax calculator. Itemized deductions
// are only honoured under the old regime.
type TaxTerms struct {
	Label                string          `yaml:"label,omitempty" json:"label,omitempty" toml:"label,omitempty"`
	GrossAnnualIncome    decimal.Decimal `yaml:"gross_annual_income" json:"grossAnnualIncome" toml:"gross_annual_income"`
	Regime               TaxRegime       `yaml:"regime" json:"regime" toml:"regime"`
	Section80CDeductions decimal.Decimal `yaml:"section_80c,omitempty" json:"section80CDeductions" toml:"section_80c,omitempty"`
	HRAExemption         decimal.Decimal `yaml:"hra_exemption,omitempty" json:"hraExemption" toml:"hra_exemption,omitempty"`
	HomeLoanInterest     decimal.Decimal `yaml:"home_loan_interest,omitempty" json:"homeLoanInterest" toml:"home_loan_interest,omitempty"`
}

// SlabTax is the tax charged within a single slab.
type SlabTax struct {
	From          decimal.Decimal  `yaml:"from" json:"from"`
	To            *decimal.Decimal `yaml:"to,omitempty" json:"to,omitempty"`
	Rate          decimal.Decimal  `yaml:"rate" json:"rate"`
	TaxableAmount decimal.Decimal  `yaml:"taxable_amount" json:"taxableAmount"`
	Tax           decimal.Decimal  `yaml:"tax" json:"tax"`
}

// TaxResult is the output of the income tax calculator.
type TaxResult struct {
	Label             string          `yaml:"label,omitempty" json:"label,omitempty"`
	Regime            TaxRegime       `yaml:"regime" json:"regime"`
	GrossIncome       decimal.Decimal `yaml:"gross_income" json:"grossIncome"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standardDeduction"`
	TotalDeductions   decimal.Decimal `yaml:"total_deductions" json:"totalDeductions"`
	TaxableIncome     decimal.Decimal `yaml:"taxable_income" json:"taxableIncome"`
	TaxBeforeRebate   decimal.Decimal `yaml:"tax_before_rebate" json:"taxBeforeRebate"`
	RebateApplied     decimal.Decimal `yaml:"rebate_applied" json:"rebateApplied"`
	TaxAfterRebate    decimal.Decimal `yaml:"tax_after_rebate" json:"taxAfterRebate"`
	Cess              decimal.Decimal `yaml:"cess" json:"cess"`
	TotalTax          decimal.Decimal `yaml:"total_tax" json:"totalTax"`
	TakeHomeIncome    decimal.Decimal `yaml:"take_home_income" json:"takeHomeIncome"`
	Slabs             []SlabTax       `yaml:"slabs" json:"slabs"`
}

// EffectiveRatePercent is total tax as a percentage of gross income.
func (tr *TaxResult) EffectiveRatePercent() decimal.Decimal {
	if tr.GrossIncome.IsZero() {
		return decimal.Zero
	}
	return tr.TotalTax.Div(tr.GrossIncome).Mul(decimal.NewFromInt(100))
}

// MonthlyTakeHome is the take-home income spread over twelve months.
func (tr *TaxResult) MonthlyTakeHome() decimal.Decimal {
	return tr.TakeHomeIncome.Div(decimal.NewFromInt(12))
}
