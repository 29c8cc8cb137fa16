package compare

import (
	"fmt"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single tax what-if with calculated metrics
type ComparisonResult struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Regime      domain.TaxRegime  `json:"regime"`
	Result      *domain.TaxResult `json:"result,omitempty"`

	// Key Metrics
	TotalTax      decimal.Decimal `json:"totalTax"`
	TakeHome      decimal.Decimal `json:"takeHome"`
	EffectiveRate decimal.Decimal `json:"effectiveRatePercent"`

	// Comparison to Base
	TaxDiffFromBase      decimal.Decimal `json:"taxDiffFromBase"`
	TakeHomeDiffFromBase decimal.Decimal `json:"takeHomeDiffFromBase"`
}

// ComparisonSet represents a base calculation and its what-if alternatives
type ComparisonSet struct {
	BaseName           string             `json:"baseName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
}

// RegimeComparison is the same income evaluated under both regimes.
type RegimeComparison struct {
	Income          decimal.Decimal   `json:"income"`
	New             *domain.TaxResult `json:"new"`
	Old             *domain.TaxResult `json:"old"`
	Recommended     domain.TaxRegime  `json:"recommended"`
	Savings         decimal.Decimal   `json:"savings"`
	Recommendations []string          `json:"recommendations"`
}

// Result returns the result for a regime.
func (rc *RegimeComparison) Result(regime domain.TaxRegime) *domain.TaxResult {
	if regime == domain.RegimeOld {
		return rc.Old
	}
	return rc.New
}

// ToComparisonSet presents the comparison with the new regime as base.
func (rc *RegimeComparison) ToComparisonSet() *ComparisonSet {
	mc := NewMetricsCalculator()
	base := mc.CalculateMetrics(domain.RegimeNew.Title(), rc.New)
	alt := mc.CalculateComparison(mc.CalculateMetrics(domain.RegimeOld.Title(), rc.Old), base)

	return &ComparisonSet{
		BaseName:           base.Name,
		BaseResult:         &base,
		AlternativeResults: []ComparisonResult{alt},
		Recommendations:    rc.Recommendations,
	}
}

// MetricsCalculator extracts key metrics from tax results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for a tax result
func (mc *MetricsCalculator) CalculateMetrics(name string, result *domain.TaxResult) ComparisonResult {
	return ComparisonResult{
		Name:          name,
		Regime:        result.Regime,
		Result:        result,
		TotalTax:      result.TotalTax,
		TakeHome:      result.TakeHomeIncome,
		EffectiveRate: result.EffectiveRatePercent(),
	}
}

// CalculateComparison computes the deltas between a what-if and its base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.TaxDiffFromBase = scenario.TotalTax.Sub(base.TotalTax)
	scenario.TakeHomeDiffFromBase = scenario.TakeHome.Sub(base.TakeHome)
	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Lowest tax
	lowestTax := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalTax.LessThan(lowestTax.TotalTax) {
			lowestTax = alt
		}
	}

	if lowestTax != compSet.BaseResult {
		savings := compSet.BaseResult.TotalTax.Sub(lowestTax.TotalTax)
		recommendations = append(recommendations,
			"Lowest Tax: "+lowestTax.Name+" saves "+output.FormatRupees(savings)+" per year")
	} else {
		recommendations = append(recommendations,
			"Lowest Tax: no alternative beats "+compSet.BaseName)
	}

	// Highest take-home, which differs from lowest tax when income changes
	bestTakeHome := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TakeHome.GreaterThan(bestTakeHome.TakeHome) {
			bestTakeHome = alt
		}
	}

	if bestTakeHome != compSet.BaseResult && bestTakeHome != lowestTax {
		gain := bestTakeHome.TakeHome.Sub(compSet.BaseResult.TakeHome)
		recommendations = append(recommendations,
			fmt.Sprintf("Best Take-Home: %s leaves %s more per year", bestTakeHome.Name, output.FormatRupees(gain)))
	}

	return recommendations
}

// regimeRecommendations explains a regime comparison in plain language.
func regimeRecommendations(rc *RegimeComparison, terms domain.TaxTerms, rules domain.TaxRules, maxed80C *domain.TaxResult) []string {
	recs := []string{}

	if rc.Savings.IsZero() {
		recs = append(recs, fmt.Sprintf("Both regimes cost %s; choose the New Regime",
			output.FormatRupees(rc.New.TotalTax)))
	} else {
		other := domain.RegimeOld
		if rc.Recommended == domain.RegimeOld {
			other = domain.RegimeNew
		}
		recs = append(recs, fmt.Sprintf("The %s saves %s per year over the %s",
			rc.Recommended.Title(), output.FormatRupees(rc.Savings), other.Title()))
	}

	if limit := rules.Old.Section80CCap; limit.IsPositive() && terms.Section80CDeductions.LessThan(limit) {
		room := limit.Sub(terms.Section80CDeductions)
		msg := fmt.Sprintf("%s of Section 80C room is unused", output.FormatRupees(room))
		if maxed80C != nil {
			msg += fmt.Sprintf("; claiming it brings Old Regime tax to %s", output.FormatRupees(maxed80C.TotalTax))
			if maxed80C.TotalTax.LessThan(rc.New.TotalTax) && rc.Recommended == domain.RegimeNew {
				msg += ", below the New Regime"
			}
		}
		recs = append(recs, msg)
	}

	for _, r := range []*domain.TaxResult{rc.New, rc.Old} {
		if r.RebateApplied.IsPositive() {
			recs = append(recs, fmt.Sprintf("Taxable income under the %s is within the rebate limit of %s",
				r.Regime.Title(), output.FormatRupees(rules.ForRegime(r.Regime).RebateThreshold)))
		}
	}

	return recs
}
