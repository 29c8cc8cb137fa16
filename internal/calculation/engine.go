package calculation

import (
	"context"
	"fmt"

	"github.com/budgetbandhu/bandhu/internal/domain"
)

// CalculationEngine runs the calculators with a shared tax configuration
// and logger. The calculators themselves are pure; the engine only adds
// logging and batch execution.
type CalculationEngine struct {
	TaxCalc *ProgressiveTaxCalculator
	Logger  Logger
	Debug   bool // Enable debug output for detailed calculations
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxCalc: NewProgressiveTaxCalculator(),
		Logger:  NopLogger{},
	}
}

// NewCalculationEngineWithRules creates a calculation engine with configurable tax rules
func NewCalculationEngineWithRules(rules *domain.TaxRules) *CalculationEngine {
	return &CalculationEngine{
		TaxCalc: NewProgressiveTaxCalculatorWithRules(rules),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger; nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// CalculateEMI computes a loan's installment and amortization schedule.
func (ce *CalculationEngine) CalculateEMI(terms domain.LoanTerms) (*domain.AmortizationResult, error) {
	log := ce.logger()
	log.Debugf("emi: principal=%s rate=%s%% years=%d", terms.Principal, terms.AnnualInterestRatePercent, terms.TenureYears)
	result, err := ComputeEMI(terms)
	if err != nil {
		log.Warnf("emi rejected: %v", err)
		return nil, err
	}
	if ce.Debug {
		log.Debugf("emi: installment=%s total interest=%s", result.MonthlyInstallment.StringFixed(2), result.TotalInterest.StringFixed(2))
	}
	return result, nil
}

// CalculateLumpsum projects a one-time investment.
func (ce *CalculationEngine) CalculateLumpsum(terms domain.LumpsumTerms) (*domain.LumpsumResult, error) {
	log := ce.logger()
	log.Debugf("lumpsum: principal=%s rate=%s%% years=%d", terms.Principal, terms.AnnualReturnRatePercent, terms.Years)
	result, err := ComputeLumpsum(terms)
	if err != nil {
		log.Warnf("lumpsum rejected: %v", err)
		return nil, err
	}
	if ce.Debug {
		log.Debugf("lumpsum: future value=%s", result.FutureValue.StringFixed(2))
	}
	return result, nil
}

// CalculateRetirementPlan sizes a retirement corpus and the SIP that funds it.
func (ce *CalculationEngine) CalculateRetirementPlan(terms domain.RetirementTerms) (*domain.RetirementResult, error) {
	log := ce.logger()
	log.Debugf("retirement: age %d -> %d, savings=%s expenses=%s/month",
		terms.CurrentAge, terms.RetirementAge, terms.CurrentSavings, terms.CurrentMonthlyExpenses)
	result, err := ComputeRetirementPlan(terms)
	if err != nil {
		log.Warnf("retirement plan rejected: %v", err)
		return nil, err
	}
	if ce.Debug {
		log.Debugf("retirement: corpus=%s shortfall=%s sip=%s",
			result.RequiredCorpus.StringFixed(0), result.Shortfall.StringFixed(0), result.RequiredMonthlySIP.StringFixed(0))
	}
	return result, nil
}

// CalculateTax computes income tax with the engine's tax rules.
func (ce *CalculationEngine) CalculateTax(terms domain.TaxTerms) (*domain.TaxResult, error) {
	return ce.calculateTaxWith(ce.taxCalculator(), terms)
}

func (ce *CalculationEngine) taxCalculator() *ProgressiveTaxCalculator {
	if ce.TaxCalc == nil {
		return NewProgressiveTaxCalculator()
	}
	return ce.TaxCalc
}

func (ce *CalculationEngine) calculateTaxWith(calc *ProgressiveTaxCalculator, terms domain.TaxTerms) (*domain.TaxResult, error) {
	log := ce.logger()
	log.Debugf("tax: income=%s regime=%s", terms.GrossAnnualIncome, terms.Regime)
	result, err := calc.Calculate(terms)
	if err != nil {
		log.Warnf("tax rejected: %v", err)
		return nil, err
	}
	if ce.Debug {
		log.Debugf("tax: taxable=%s total=%s", result.TaxableIncome.StringFixed(2), result.TotalTax.StringFixed(2))
	}
	return result, nil
}

// RunWorksheet runs every calculation in a worksheet in order. It stops at
// the first invalid item and returns an error naming it. A worksheet that
// carries its own tax rules overrides the engine's for this run only.
func (ce *CalculationEngine) RunWorksheet(ctx context.Context, ws *domain.Worksheet) (*domain.WorksheetResult, error) {
	if ws == nil {
		return nil, fmt.Errorf("worksheet is nil")
	}
	log := ce.logger()
	log.Infof("running worksheet %q with %d calculations", ws.Name, ws.ItemCount())

	taxCalc := ce.taxCalculator()
	if ws.TaxRules != nil {
		taxCalc = NewProgressiveTaxCalculatorWithRules(ws.TaxRules)
	}

	result := &domain.WorksheetResult{Name: ws.Name}

	for i, terms := range ws.Loans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := ce.CalculateEMI(terms)
		if err != nil {
			return nil, fmt.Errorf("loan %d%s: %w", i+1, labelSuffix(terms.Label), err)
		}
		result.Loans = append(result.Loans, *r)
	}

	for i, terms := range ws.Lumpsums {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := ce.CalculateLumpsum(terms)
		if err != nil {
			return nil, fmt.Errorf("lumpsum %d%s: %w", i+1, labelSuffix(terms.Label), err)
		}
		result.Lumpsums = append(result.Lumpsums, *r)
	}

	for i, terms := range ws.Retirements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := ce.CalculateRetirementPlan(terms)
		if err != nil {
			return nil, fmt.Errorf("retirement %d%s: %w", i+1, labelSuffix(terms.Label), err)
		}
		result.Retirements = append(result.Retirements, *r)
	}

	for i, terms := range ws.Taxes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := ce.calculateTaxWith(taxCalc, terms)
		if err != nil {
			return nil, fmt.Errorf("tax %d%s: %w", i+1, labelSuffix(terms.Label), err)
		}
		result.Taxes = append(result.Taxes, *r)
	}

	log.Infof("worksheet %q complete", ws.Name)
	return result, nil
}

func labelSuffix(label string) string {
	if label == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", label)
}
