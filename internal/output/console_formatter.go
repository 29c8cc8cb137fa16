package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a human-readable report. Schedules are cut to
// ScheduleRows rows; amounts use CurrencySymbol with Indian grouping.
type ConsoleFormatter struct {
	ScheduleRows   int
	CurrencySymbol string
}

func (c ConsoleFormatter) Name() string { return "console" }

// WithOptions returns a copy of the formatter using opts.
func (c ConsoleFormatter) WithOptions(opts Options) Formatter {
	c.ScheduleRows = opts.ScheduleRows
	c.CurrencySymbol = opts.CurrencySymbol
	return c
}

func (c ConsoleFormatter) money(d decimal.Decimal) string {
	symbol := c.CurrencySymbol
	if symbol == "" {
		symbol = RupeeSymbol
	}
	return FormatAmount(d, symbol)
}

func (c ConsoleFormatter) rows() int {
	if c.ScheduleRows == 0 {
		return DefaultScheduleRows
	}
	return c.ScheduleRows
}

func (c ConsoleFormatter) Format(results *domain.WorksheetResult) ([]byte, error) {
	var buf bytes.Buffer

	title := "BUDGET BANDHU REPORT"
	if results.Name != "" {
		title += ": " + strings.ToUpper(results.Name)
	}
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", 72))

	if results.IsEmpty() {
		fmt.Fprintln(&buf, "No calculations.")
		return buf.Bytes(), nil
	}

	for i := range results.Loans {
		c.writeLoan(&buf, i+1, &results.Loans[i])
	}
	for i := range results.Lumpsums {
		c.writeLumpsum(&buf, i+1, &results.Lumpsums[i])
	}
	for i := range results.Retirements {
		c.writeRetirement(&buf, i+1, &results.Retirements[i])
	}
	for i := range results.Taxes {
		c.writeTax(&buf, i+1, &results.Taxes[i])
	}

	return buf.Bytes(), nil
}

func heading(w io.Writer, kind string, index int, label string) {
	fmt.Fprintln(w)
	h := fmt.Sprintf("%s %d", kind, index)
	if label != "" {
		h += ": " + label
	}
	fmt.Fprintln(w, h)
	fmt.Fprintln(w, strings.Repeat("-", 50))
}

func line(w io.Writer, name, value string) {
	fmt.Fprintf(w, "  %-28s %s\n", name+":", value)
}

func hiddenRows(w io.Writer, hidden int) {
	if hidden > 0 {
		fmt.Fprintf(w, "  ... %d more years not shown\n", hidden)
	}
}

func (c ConsoleFormatter) writeLoan(w io.Writer, index int, r *domain.AmortizationResult) {
	heading(w, "LOAN", index, r.Label)
	line(w, "Principal", c.money(r.Principal))
	line(w, "Monthly EMI", c.money(r.MonthlyInstallment))
	line(w, "Total Interest", c.money(r.TotalInterest))
	line(w, "Total Payable", c.money(r.TotalPayable))
	line(w, "Interest Share", FormatPercentage(r.InterestShare()))
	fmt.Fprintln(w)

	rows, hidden := TruncateSchedule(r.YearlySchedule, c.rows())
	fmt.Fprintf(w, "  %-6s %20s %20s %20s\n", "Year", "Principal Paid", "Interest Paid", "Balance")
	for _, y := range rows {
		fmt.Fprintf(w, "  %-6d %20s %20s %20s\n", y.Year, c.money(y.PrincipalPaid), c.money(y.InterestPaid), c.money(y.RemainingBalance))
	}
	hiddenRows(w, hidden)
}

func (c ConsoleFormatter) writeLumpsum(w io.Writer, index int, r *domain.LumpsumResult) {
	heading(w, "LUMPSUM", index, r.Label)
	line(w, "Invested", c.money(r.Principal))
	line(w, "Future Value", c.money(r.FutureValue))
	line(w, "Total Gain", c.money(r.TotalGain))
	line(w, "Growth Multiple", r.GrowthMultiple().StringFixed(2)+"x")
	line(w, "Absolute Return", FormatPercentage(r.AbsoluteReturnPercent()))
	fmt.Fprintln(w)

	rows, hidden := TruncateSchedule(r.YearlySchedule, c.rows())
	fmt.Fprintf(w, "  %-6s %20s %20s\n", "Year", "Value", "Gain So Far")
	for _, y := range rows {
		fmt.Fprintf(w, "  %-6d %20s %20s\n", y.Year, c.money(y.Value), c.money(y.GainSoFar))
	}
	hiddenRows(w, hidden)
}

func (c ConsoleFormatter) writeRetirement(w io.Writer, index int, r *domain.RetirementResult) {
	heading(w, "RETIREMENT PLAN", index, r.Label)
	line(w, "Years To Retirement", fmt.Sprintf("%d", r.YearsToRetirement))
	line(w, "Retirement Duration", fmt.Sprintf("%d years (to age %d)", r.RetirementDurationYears, r.AssumedLifespanAge))
	line(w, "Future Monthly Expenses", c.money(r.FutureMonthlyExpenses))
	line(w, "Required Corpus", c.money(r.RequiredCorpus))
	line(w, "Projected Savings", c.money(r.ProjectedFutureSavings))
	line(w, "Shortfall", c.money(r.Shortfall))
	line(w, "Required Monthly SIP", c.money(r.RequiredMonthlySIP))
	line(w, "First Year Withdrawal", c.money(r.FirstYearWithdrawal))
	if r.RetirementDurationYears <= 0 {
		fmt.Fprintln(w, "  WARNING: retirement age is at or beyond the assumed lifespan")
	}
	if r.OnTrack() {
		fmt.Fprintln(w, "  STATUS: on track, current savings cover the corpus")
	}
}

func (c ConsoleFormatter) writeTax(w io.Writer, index int, r *domain.TaxResult) {
	heading(w, "INCOME TAX", index, r.Label)
	line(w, "Regime", r.Regime.Title())
	line(w, "Gross Income", c.money(r.GrossIncome))
	line(w, "Standard Deduction", c.money(r.StandardDeduction))
	line(w, "Total Deductions", c.money(r.TotalDeductions))
	line(w, "Taxable Income", c.money(r.TaxableIncome))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-34s %8s %20s\n", "Slab", "Rate", "Tax")
	for _, s := range r.Slabs {
		fmt.Fprintf(w, "  %-34s %8s %20s\n", c.slabRange(s), FormatRate(s.Rate), c.money(s.Tax))
	}
	fmt.Fprintln(w)

	line(w, "Tax Before Rebate", c.money(r.TaxBeforeRebate))
	line(w, "Rebate", c.money(r.RebateApplied))
	line(w, "Cess (4%)", c.money(r.Cess))
	line(w, "Total Tax", c.money(r.TotalTax))
	line(w, "Effective Rate", FormatPercentage(r.EffectiveRatePercent()))
	line(w, "Take-Home (Annual)", c.money(r.TakeHomeIncome))
	line(w, "Take-Home (Monthly)", c.money(r.MonthlyTakeHome()))
}

func (c ConsoleFormatter) slabRange(s domain.SlabTax) string {
	if s.To == nil {
		return "above " + c.money(s.From)
	}
	return c.money(s.From) + " - " + c.money(*s.To)
}
