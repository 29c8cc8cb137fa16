package calculation

import (
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/pkg/money"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Slabs are applied to taxable income, i.e. gross income minus the
//    standard deduction and (old regime only) itemized deductions.
//
// 2. The rebate is all-or-nothing at the threshold: at or below it the slab
//    tax is reduced by min(cap, tax); above it there is no marginal relief.
//
// 3. Cess is a flat 4% on tax after rebate. Surcharge is not modelled.
//
// 4. Section 80C and home-loan interest are clamped to their caps here even
//    if the caller already clamped them. HRA exemption is taken as given.

const taxCalculator = "tax"

// ProgressiveTaxCalculator computes income tax under either regime.
type ProgressiveTaxCalculator struct {
	Rules domain.TaxRules
}

// NewProgressiveTaxCalculator creates a calculator with the built-in tables.
func NewProgressiveTaxCalculator() *ProgressiveTaxCalculator {
	return &ProgressiveTaxCalculator{Rules: domain.DefaultTaxRules()}
}

// NewProgressiveTaxCalculatorWithRules creates a calculator whose rules
// override the built-in tables; anything left unset falls back to them.
func NewProgressiveTaxCalculatorWithRules(rules *domain.TaxRules) *ProgressiveTaxCalculator {
	return &ProgressiveTaxCalculator{Rules: domain.MergeTaxRules(rules)}
}

// ComputeTax computes income tax with the built-in tables.
func ComputeTax(terms domain.TaxTerms) (*domain.TaxResult, error) {
	return NewProgressiveTaxCalculator().Calculate(terms)
}

// Calculate computes the tax liability and take-home income for terms.
func (ptc *ProgressiveTaxCalculator) Calculate(terms domain.TaxTerms) (*domain.TaxResult, error) {
	if err := ValidateTaxTerms(terms); err != nil {
		return nil, err
	}
	rules := ptc.Rules.ForRegime(terms.Regime)
	if rules == nil {
		return nil, invalidInput(taxCalculator, "regime", "unknown regime %q", terms.Regime)
	}

	gross := terms.GrossAnnualIncome
	standard := decimal.Min(rules.StandardDeduction, gross)
	totalDeductions := standard
	if terms.Regime == domain.RegimeOld {
		totalDeductions = totalDeductions.Add(itemizedDeductions(rules, terms))
	}

	taxable := money.NonNegative(gross.Sub(totalDeductions))
	beforeRebate, slabs := rules.SlabTax(taxable)

	rebate := decimal.Zero
	if taxable.LessThanOrEqual(rules.RebateThreshold) {
		rebate = decimal.Min(rules.RebateCap, beforeRebate)
	}
	afterRebate := beforeRebate.Sub(rebate)
	cess := afterRebate.Mul(ptc.Rules.CessRate)
	totalTax := afterRebate.Add(cess)

	return &domain.TaxResult{
		Label:             terms.Label,
		Regime:            terms.Regime,
		GrossIncome:       gross,
		StandardDeduction: standard,
		TotalDeductions:   totalDeductions,
		TaxableIncome:     taxable,
		TaxBeforeRebate:   beforeRebate,
		RebateApplied:     rebate,
		TaxAfterRebate:    afterRebate,
		Cess:              cess,
		TotalTax:          totalTax,
		TakeHomeIncome:    gross.Sub(totalTax),
		Slabs:             slabs,
	}, nil
}

// itemizedDeductions sums the old-regime deductions after applying caps.
// A zero cap means the deduction is uncapped.
func itemizedDeductions(rules *domain.RegimeRules, terms domain.TaxTerms) decimal.Decimal {
	section80C := terms.Section80CDeductions
	if rules.Section80CCap.IsPositive() {
		section80C = decimal.Min(section80C, rules.Section80CCap)
	}
	homeLoan := terms.HomeLoanInterest
	if rules.HomeLoanInterestCap.IsPositive() {
		homeLoan = decimal.Min(homeLoan, rules.HomeLoanInterestCap)
	}
	return section80C.Add(terms.HRAExemption).Add(homeLoan)
}

// ValidateTaxTerms reports the first invalid field of a tax calculation.
func ValidateTaxTerms(terms domain.TaxTerms) error {
	if terms.GrossAnnualIncome.IsNegative() {
		return invalidInput(taxCalculator, "gross income", "cannot be negative, got %s", terms.GrossAnnualIncome)
	}
	if terms.Section80CDeductions.IsNegative() {
		return invalidInput(taxCalculator, "section 80C deductions", "cannot be negative, got %s", terms.Section80CDeductions)
	}
	if terms.HRAExemption.IsNegative() {
		return invalidInput(taxCalculator, "HRA exemption", "cannot be negative, got %s", terms.HRAExemption)
	}
	if terms.HomeLoanInterest.IsNegative() {
		return invalidInput(taxCalculator, "home loan interest", "cannot be negative, got %s", terms.HomeLoanInterest)
	}
	switch terms.Regime {
	case domain.RegimeNew, domain.RegimeOld:
	default:
		return invalidInput(taxCalculator, "regime", "must be %q or %q, got %q", domain.RegimeNew, domain.RegimeOld, terms.Regime)
	}
	return nil
}
