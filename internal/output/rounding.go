package output

import (
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
)

func r2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// RoundForDisplay returns a copy of results with every amount rounded to
// two decimals. The engine never rounds; serialized output does.
func RoundForDisplay(results *domain.WorksheetResult) *domain.WorksheetResult {
	out := &domain.WorksheetResult{Name: results.Name}

	for _, l := range results.Loans {
		rows := make([]domain.AmortizationYear, len(l.YearlySchedule))
		for i, y := range l.YearlySchedule {
			rows[i] = domain.AmortizationYear{
				Year:             y.Year,
				PrincipalPaid:    r2(y.PrincipalPaid),
				InterestPaid:     r2(y.InterestPaid),
				RemainingBalance: r2(y.RemainingBalance),
			}
		}
		out.Loans = append(out.Loans, domain.AmortizationResult{
			Label:              l.Label,
			Principal:          r2(l.Principal),
			MonthlyInstallment: r2(l.MonthlyInstallment),
			TotalPayable:       r2(l.TotalPayable),
			TotalInterest:      r2(l.TotalInterest),
			YearlySchedule:     rows,
		})
	}

	for _, ls := range results.Lumpsums {
		rows := make([]domain.LumpsumYear, len(ls.YearlySchedule))
		for i, y := range ls.YearlySchedule {
			rows[i] = domain.LumpsumYear{Year: y.Year, Value: r2(y.Value), GainSoFar: r2(y.GainSoFar)}
		}
		out.Lumpsums = append(out.Lumpsums, domain.LumpsumResult{
			Label:          ls.Label,
			Principal:      r2(ls.Principal),
			FutureValue:    r2(ls.FutureValue),
			TotalGain:      r2(ls.TotalGain),
			YearlySchedule: rows,
		})
	}

	for _, rp := range results.Retirements {
		rounded := rp
		rounded.FutureMonthlyExpenses = r2(rp.FutureMonthlyExpenses)
		rounded.RequiredCorpus = r2(rp.RequiredCorpus)
		rounded.ProjectedFutureSavings = r2(rp.ProjectedFutureSavings)
		rounded.Shortfall = r2(rp.Shortfall)
		rounded.RequiredMonthlySIP = r2(rp.RequiredMonthlySIP)
		rounded.FirstYearWithdrawal = r2(rp.FirstYearWithdrawal)
		out.Retirements = append(out.Retirements, rounded)
	}

	for _, t := range results.Taxes {
		out.Taxes = append(out.Taxes, RoundTaxResult(t))
	}

	return out
}

// RoundTaxResult rounds every amount of a tax result to two decimals.
func RoundTaxResult(t domain.TaxResult) domain.TaxResult {
	slabs := make([]domain.SlabTax, len(t.Slabs))
	for i, s := range t.Slabs {
		slabs[i] = domain.SlabTax{
			From:          s.From,
			To:            s.To,
			Rate:          s.Rate,
			TaxableAmount: r2(s.TaxableAmount),
			Tax:           r2(s.Tax),
		}
	}
	t.GrossIncome = r2(t.GrossIncome)
	t.StandardDeduction = r2(t.StandardDeduction)
	t.TotalDeductions = r2(t.TotalDeductions)
	t.TaxableIncome = r2(t.TaxableIncome)
	t.TaxBeforeRebate = r2(t.TaxBeforeRebate)
	t.RebateApplied = r2(t.RebateApplied)
	t.TaxAfterRebate = r2(t.TaxAfterRebate)
	t.Cess = r2(t.Cess)
	t.TotalTax = r2(t.TotalTax)
	t.TakeHomeIncome = r2(t.TakeHomeIncome)
	t.Slabs = slabs
	return t
}
