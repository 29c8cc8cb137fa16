package transform

import (
	"fmt"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
)

// DeductionKind names one of the itemized old-regime deductions.
type DeductionKind string

const (
	Deduction80C      DeductionKind = "80c"
	DeductionHRA      DeductionKind = "hra"
	DeductionHomeLoan DeductionKind = "home_loan"
)

// ParseDeductionKind accepts 80c, hra and home_loan (or home-loan) in any case.
func ParseDeductionKind(s string) (DeductionKind, error) {
	k := DeductionKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	switch k {
	case Deduction80C, DeductionHRA, DeductionHomeLoan:
		return k, nil
	default:
		return "", fmt.Errorf("unknown deduction %q (valid: 80c, hra, home_loan)", s)
	}
}

func (k DeductionKind) get(t *domain.TaxTerms) decimal.Decimal {
	switch k {
	case Deduction80C:
		return t.Section80CDeductions
	case DeductionHRA:
		return t.HRAExemption
	default:
		return t.HomeLoanInterest
	}
}

func (k DeductionKind) set(t *domain.TaxTerms, v decimal.Decimal) {
	switch k {
	case Deduction80C:
		t.Section80CDeductions = v
	case DeductionHRA:
		t.HRAExemption = v
	default:
		t.HomeLoanInterest = v
	}
}

// limit returns the statutory cap for a deduction, or false when uncapped.
func (k DeductionKind) limit(rules domain.RegimeRules) (decimal.Decimal, bool) {
	switch k {
	case Deduction80C:
		return rules.Section80CCap, rules.Section80CCap.IsPositive()
	case DeductionHomeLoan:
		return rules.HomeLoanInterestCap, rules.HomeLoanInterestCap.IsPositive()
	default:
		return decimal.Zero, false
	}
}

// SetRegime switches the terms to a regime.
type SetRegime struct {
	Regime domain.TaxRegime
}

func (sr *SetRegime) Name() string { return "set_regime" }

func (sr *SetRegime) Description() string {
	return fmt.Sprintf("Switch to the %s", sr.Regime.Title())
}

func (sr *SetRegime) Validate(base *domain.TaxTerms) error {
	if base == nil {
		return NewTransformError(sr.Name(), "validate", "base terms cannot be nil", nil)
	}
	if _, err := domain.ParseTaxRegime(string(sr.Regime)); err != nil {
		return NewTransformError(sr.Name(), "validate", "invalid regime", err)
	}
	return nil
}

func (sr *SetRegime) Apply(base *domain.TaxTerms) (*domain.TaxTerms, error) {
	modified := *base
	modified.Regime = sr.Regime
	return &modified, nil
}

// SetDeduction sets one itemized deduction to an absolute amount.
type SetDeduction struct {
	Kind   DeductionKind
	Amount decimal.Decimal
}

func (sd *SetDeduction) Name() string { return "set_deduction" }

func (sd *SetDeduction) Description() string {
	return fmt.Sprintf("Set %s deduction to %s", sd.Kind, sd.Amount.StringFixed(0))
}

func (sd *SetDeduction) Validate(base *domain.TaxTerms) error {
	if base == nil {
		return NewTransformError(sd.Name(), "validate", "base terms cannot be nil", nil)
	}
	if _, err := ParseDeductionKind(string(sd.Kind)); err != nil {
		return NewTransformError(sd.Name(), "validate", "invalid deduction", err)
	}
	if sd.Amount.IsNegative() {
		return NewTransformError(sd.Name(), "validate", fmt.Sprintf("amount must be non-negative, got %s", sd.Amount), nil)
	}
	return nil
}

func (sd *SetDeduction) Apply(base *domain.TaxTerms) (*domain.TaxTerms, error) {
	modified := *base
	sd.Kind.set(&modified, sd.Amount)
	return &modified, nil
}

// MaxDeduction raises a capped deduction to its statutory limit under the
// old regime rules.
type MaxDeduction struct {
	Kind  DeductionKind
	Rules domain.RegimeRules
}

// NewMaxDeduction uses the built-in old regime caps.
func NewMaxDeduction(kind DeductionKind) *MaxDeduction {
	return &MaxDeduction{Kind: kind, Rules: domain.DefaultOldRegimeRules()}
}

func (md *MaxDeduction) Name() string { return "max_deduction" }

func (md *MaxDeduction) Description() string {
	if limit, ok := md.Kind.limit(md.Rules); ok {
		return fmt.Sprintf("Claim the full %s limit of %s", md.Kind, limit.StringFixed(0))
	}
	return fmt.Sprintf("Claim the full %s limit", md.Kind)
}

func (md *MaxDeduction) Validate(base *domain.TaxTerms) error {
	if base == nil {
		return NewTransformError(md.Name(), "validate", "base terms cannot be nil", nil)
	}
	if _, ok := md.Kind.limit(md.Rules); !ok {
		return NewTransformError(md.Name(), "validate", fmt.Sprintf("%s has no statutory limit", md.Kind), nil)
	}
	return nil
}

func (md *MaxDeduction) Apply(base *domain.TaxTerms) (*domain.TaxTerms, error) {
	limit, _ := md.Kind.limit(md.Rules)
	modified := *base
	if md.Kind.get(&modified).LessThan(limit) {
		md.Kind.set(&modified, limit)
	}
	return &modified, nil
}

// AdjustIncome changes gross income by Percent (10 for a 10% raise) and
// then by a flat Amount, which may be negative.
type AdjustIncome struct {
	Percent decimal.Decimal
	Amount  decimal.Decimal
}

func (ai *AdjustIncome) Name() string { return "adjust_income" }

func (ai *AdjustIncome) Description() string {
	var parts []string
	switch {
	case ai.Percent.IsNegative():
		parts = append(parts, fmt.Sprintf("Reduce income by %s%%", ai.Percent.Neg().String()))
	case ai.Percent.IsPositive():
		parts = append(parts, fmt.Sprintf("Raise income by %s%%", ai.Percent.String()))
	}
	switch {
	case ai.Amount.IsNegative():
		parts = append(parts, fmt.Sprintf("Reduce income by %s", ai.Amount.Neg().StringFixed(0)))
	case ai.Amount.IsPositive():
		parts = append(parts, fmt.Sprintf("Add %s to income", ai.Amount.StringFixed(0)))
	}
	if len(parts) == 0 {
		return "Keep income unchanged"
	}
	return strings.Join(parts, ", then ")
}

func (ai *AdjustIncome) Validate(base *domain.TaxTerms) error {
	if base == nil {
		return NewTransformError(ai.Name(), "validate", "base terms cannot be nil", nil)
	}
	if ai.Percent.LessThan(decimal.NewFromInt(-100)) {
		return NewTransformError(ai.Name(), "validate", fmt.Sprintf("percent must be at least -100, got %s", ai.Percent), nil)
	}
	if ai.adjusted(base.GrossAnnualIncome).IsNegative() {
		return NewTransformError(ai.Name(), "validate", "income cannot go below zero", nil)
	}
	return nil
}

func (ai *AdjustIncome) Apply(base *domain.TaxTerms) (*domain.TaxTerms, error) {
	modified := *base
	modified.GrossAnnualIncome = ai.adjusted(base.GrossAnnualIncome)
	return &modified, nil
}

func (ai *AdjustIncome) adjusted(income decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(ai.Percent.Div(decimal.NewFromInt(100)))
	return income.Mul(factor).Add(ai.Amount)
}
