package compare

import (
	"encoding/csv"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	rows := [][]string{{
		"Scenario",
		"Type",
		"Regime",
		"Taxable Income",
		"Total Tax",
		"Take-Home",
		"Effective Rate %",
		"Tax Diff from Base",
		"Take-Home Diff from Base",
	}}

	if compSet.BaseResult != nil {
		rows = append(rows, cf.formatRow(compSet.BaseResult, "base"))
	}
	for i := range compSet.AlternativeResults {
		rows = append(rows, cf.formatRow(&compSet.AlternativeResults[i], "alternative"))
	}

	return writeAll(rows)
}

// FormatRegimes writes one row per metric with a column per regime.
func (cf *CSVFormatter) FormatRegimes(rc *RegimeComparison) (string, error) {
	rows := [][]string{{"Metric", string(domain.RegimeNew), string(domain.RegimeOld)}}

	add := func(metric string, n, o decimal.Decimal) {
		rows = append(rows, []string{metric, n.StringFixed(2), o.StringFixed(2)})
	}
	add("gross_income", rc.New.GrossIncome, rc.Old.GrossIncome)
	add("standard_deduction", rc.New.StandardDeduction, rc.Old.StandardDeduction)
	add("total_deductions", rc.New.TotalDeductions, rc.Old.TotalDeductions)
	add("taxable_income", rc.New.TaxableIncome, rc.Old.TaxableIncome)
	add("tax_before_rebate", rc.New.TaxBeforeRebate, rc.Old.TaxBeforeRebate)
	add("rebate_applied", rc.New.RebateApplied, rc.Old.RebateApplied)
	add("tax_after_rebate", rc.New.TaxAfterRebate, rc.Old.TaxAfterRebate)
	add("cess", rc.New.Cess, rc.Old.Cess)
	add("total_tax", rc.New.TotalTax, rc.Old.TotalTax)
	add("take_home_income", rc.New.TakeHomeIncome, rc.Old.TakeHomeIncome)
	add("effective_rate_percent", rc.New.EffectiveRatePercent(), rc.Old.EffectiveRatePercent())
	rows = append(rows,
		[]string{"recommended", string(rc.Recommended), ""},
		[]string{"savings", rc.Savings.StringFixed(2), ""},
	)

	return writeAll(rows)
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	taxable := decimal.Zero
	if result.Result != nil {
		taxable = result.Result.TaxableIncome
	}
	return []string{
		result.Name,
		scenarioType,
		string(result.Regime),
		taxable.StringFixed(2),
		result.TotalTax.StringFixed(2),
		result.TakeHome.StringFixed(2),
		result.EffectiveRate.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
		result.TakeHomeDiffFromBase.StringFixed(2),
	}
}

func writeAll(rows [][]string) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)
	if err := writer.WriteAll(rows); err != nil {
		return "", err
	}
	return sb.String(), nil
}
