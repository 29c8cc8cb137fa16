package domain

import "github.com/shopspring/decimal"

// TaxSlab is one bracket of a progressive slab table. A nil To means the
// slab is unbounded above.
type TaxSlab struct {
	From decimal.Decimal  `yaml:"from" json:"from" toml:"from"`
	To   *decimal.Decimal `yaml:"to,omitempty" json:"to,omitempty" toml:"to,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate" toml:"rate"`
}

// RegimeRules holds the deduction and rebate parameters of one regime.
type RegimeRules struct {
	StandardDeduction   decimal.Decimal `yaml:"standard_deduction" json:"standardDeduction" toml:"standard_deduction"`
	RebateThreshold     decimal.Decimal `yaml:"rebate_threshold" json:"rebateThreshold" toml:"rebate_threshold"`
	RebateCap           decimal.Decimal `yaml:"rebate_cap" json:"rebateCap" toml:"rebate_cap"`
	Section80CCap       decimal.Decimal `yaml:"section_80c_cap,omitempty" json:"section80CCap,omitempty" toml:"section_80c_cap,omitempty"`
	HomeLoanInterestCap decimal.Decimal `yaml:"home_loan_interest_cap,omitempty" json:"homeLoanInterestCap,omitempty" toml:"home_loan_interest_cap,omitempty"`
	Slabs               []TaxSlab       `yaml:"slabs" json:"slabs" toml:"slabs"`
}

// TaxRules bundles both regimes and the flat cess.
type TaxRules struct {
	New      RegimeRules     `yaml:"new" json:"new" toml:"new"`
	Old      RegimeRules     `yaml:"old" json:"old" toml:"old"`
	CessRate decimal.Decimal `yaml:"cess_rate" json:"cessRate" toml:"cess_rate"`
}

// ForRegime returns the rules for a regime, or nil for an unknown regime.
func (tr *TaxRules) ForRegime(regime TaxRegime) *RegimeRules {
	switch regime {
	case RegimeNew:
		return &tr.New
	case RegimeOld:
		return &tr.Old
	default:
		return nil
	}
}

func slab(from, to int64, rate string) TaxSlab {
	upper := decimal.NewFromInt(to)
	return TaxSlab{From: decimal.NewFromInt(from), To: &upper, Rate: decimal.RequireFromString(rate)}
}

func topSlab(from int64, rate string) TaxSlab {
	return TaxSlab{From: decimal.NewFromInt(from), Rate: decimal.RequireFromString(rate)}
}

// DefaultNewRegimeRules returns the new regime table.
func DefaultNewRegimeRules() RegimeRules {
	return RegimeRules{
		StandardDeduction: decimal.NewFromInt(75000),
		RebateThreshold:   decimal.NewFromInt(700000),
		RebateCap:         decimal.NewFromInt(25000),
		Slabs: []TaxSlab{
			slab(0, 400000, "0"),
			slab(400000, 800000, "0.05"),
			slab(800000, 1200000, "0.10"),
			slab(1200000, 1600000, "0.15"),
			topSlab(1600000, "0.20"),
		},
	}
}

// DefaultOldRegimeRules returns the old regime table.
func DefaultOldRegimeRules() RegimeRules {
	return RegimeRules{
		StandardDeduction:   decimal.NewFromInt(50000),
		RebateThreshold:     decimal.NewFromInt(500000),
		RebateCap:           decimal.NewFromInt(12500),
		Section80CCap:       decimal.NewFromInt(150000),
		HomeLoanInterestCap: decimal.NewFromInt(200000),
		Slabs: []TaxSlab{
			slab(0, 250000, "0"),
			slab(250000, 500000, "0.05"),
			slab(500000, 1000000, "0.20"),
			topSlab(1000000, "0.30"),
		},
	}
}

// DefaultTaxRules returns both built-in regimes with a 4% cess.
func DefaultTaxRules() TaxRules {
	return TaxRules{
		New:      DefaultNewRegimeRules(),
		Old:      DefaultOldRegimeRules(),
		CessRate: decimal.RequireFromString("0.04"),
	}
}

// MergeTaxRules fills the zero-valued parts of override from the defaults.
// Slab tables are replaced wholesale, never merged slab by slab.
func MergeTaxRules(override *TaxRules) TaxRules {
	merged := DefaultTaxRules()
	if override == nil {
		return merged
	}
	mergeRegime(&merged.New, override.New)
	mergeRegime(&merged.Old, override.Old)
	if !override.CessRate.IsZero() {
		merged.CessRate = override.CessRate
	}
	return merged
}

func mergeRegime(dst *RegimeRules, src RegimeRules) {
	if !src.StandardDeduction.IsZero() {
		dst.StandardDeduction = src.StandardDeduction
	}
	if !src.RebateThreshold.IsZero() {
		dst.RebateThreshold = src.RebateThreshold
	}
	if !src.RebateCap.IsZero() {
		dst.RebateCap = src.RebateCap
	}
	if !src.Section80CCap.IsZero() {
		dst.Section80CCap = src.Section80CCap
	}
	if !src.HomeLoanInterestCap.IsZero() {
		dst.HomeLoanInterestCap = src.HomeLoanInterestCap
	}
	if len(src.Slabs) > 0 {
		dst.Slabs = append([]TaxSlab(nil), src.Slabs...)
	}
}

// SlabTax walks the slab table for an already-reduced taxable income and
// returns the total slab tax with its per-slab breakdown.
func (rr *RegimeRules) SlabTax(taxableIncome decimal.Decimal) (decimal.Decimal, []SlabTax) {
	total := decimal.Zero
	breakdown := make([]SlabTax, 0, len(rr.Slabs))

	for _, s := range rr.Slabs {
		if taxableIncome.LessThanOrEqual(s.From) {
			break
		}
		upper := taxableIncome
		if s.To != nil && s.To.LessThan(taxableIncome) {
			upper = *s.To
		}
		amount := upper.Sub(s.From)
		tax := amount.Mul(s.Rate)
		total = total.Add(tax)
		breakdown = append(breakdown, SlabTax{
			From:          s.From,
			To:            s.To,
			Rate:          s.Rate,
			TaxableAmount: amount,
			Tax:           tax,
		})
	}

	return total, breakdown
}
