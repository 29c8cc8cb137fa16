package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter exports results in long form: one row per metric, with the
// schedule year filled in for schedule rows and left blank for totals.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{"Calculation", "Label", "Year", "Metric", "Value"}

func (c CSVFormatter) Format(results *domain.WorksheetResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	rows := [][]string{}
	add := func(calc, label string, year int, metric string, value decimal.Decimal) {
		y := ""
		if year > 0 {
			y = strconv.Itoa(year)
		}
		rows = append(rows, []string{calc, label, y, metric, value.StringFixed(2)})
	}

	for _, l := range results.Loans {
		add("loan", l.Label, 0, "principal", l.Principal)
		add("loan", l.Label, 0, "monthly_installment", l.MonthlyInstallment)
		add("loan", l.Label, 0, "total_interest", l.TotalInterest)
		add("loan", l.Label, 0, "total_payable", l.TotalPayable)
		for _, y := range l.YearlySchedule {
			add("loan", l.Label, y.Year, "principal_paid", y.PrincipalPaid)
			add("loan", l.Label, y.Year, "interest_paid", y.InterestPaid)
			add("loan", l.Label, y.Year, "remaining_balance", y.RemainingBalance)
		}
	}

	for _, ls := range results.Lumpsums {
		add("lumpsum", ls.Label, 0, "principal", ls.Principal)
		add("lumpsum", ls.Label, 0, "future_value", ls.FutureValue)
		add("lumpsum", ls.Label, 0, "total_gain", ls.TotalGain)
		for _, y := range ls.YearlySchedule {
			add("lumpsum", ls.Label, y.Year, "value", y.Value)
			add("lumpsum", ls.Label, y.Year, "gain_so_far", y.GainSoFar)
		}
	}

	for _, r := range results.Retirements {
		add("retirement", r.Label, 0, "years_to_retirement", decimal.NewFromInt(int64(r.YearsToRetirement)))
		add("retirement", r.Label, 0, "future_monthly_expenses", r.FutureMonthlyExpenses)
		add("retirement", r.Label, 0, "required_corpus", r.RequiredCorpus)
		add("retirement", r.Label, 0, "projected_future_savings", r.ProjectedFutureSavings)
		add("retirement", r.Label, 0, "shortfall", r.Shortfall)
		add("retirement", r.Label, 0, "required_monthly_sip", r.RequiredMonthlySIP)
		add("retirement", r.Label, 0, "first_year_withdrawal", r.FirstYearWithdrawal)
	}

	for _, t := range results.Taxes {
		calc := "tax_" + t.Regime.String()
		add(calc, t.Label, 0, "gross_income", t.GrossIncome)
		add(calc, t.Label, 0, "total_deductions", t.TotalDeductions)
		add(calc, t.Label, 0, "taxable_income", t.TaxableIncome)
		add(calc, t.Label, 0, "tax_before_rebate", t.TaxBeforeRebate)
		add(calc, t.Label, 0, "rebate", t.RebateApplied)
		add(calc, t.Label, 0, "cess", t.Cess)
		add(calc, t.Label, 0, "total_tax", t.TotalTax)
		add(calc, t.Label, 0, "take_home_income", t.TakeHomeIncome)
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
