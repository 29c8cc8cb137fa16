package compare

import (
	"context"
	"fmt"

	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/internal/transform"
	"github.com/shopspring/decimal"
)

// CompareEngine orchestrates regime and what-if comparisons
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Templates  []string                 // Template names, each producing one alternative
	Transforms []transform.TaxTransform // Ad hoc transforms combined into one alternative
}

// CompareRegimes runs the same income and deductions through both regimes.
func CompareRegimes(engine *calculation.CalculationEngine, income, section80C, hra, homeLoan decimal.Decimal) (*RegimeComparison, error) {
	return NewCompareEngine(engine).CompareRegimes(domain.TaxTerms{
		GrossAnnualIncome:    income,
		Section80CDeductions: section80C,
		HRAExemption:         hra,
		HomeLoanInterest:     homeLoan,
	})
}

// CompareRegimes evaluates terms under each regime independently; the
// Regime field of terms is ignored.
func (ce *CompareEngine) CompareRegimes(terms domain.TaxTerms) (*RegimeComparison, error) {
	newTerms := terms
	newTerms.Regime = domain.RegimeNew
	newResult, err := ce.CalcEngine.CalculateTax(newTerms)
	if err != nil {
		return nil, fmt.Errorf("new regime: %w", err)
	}

	oldTerms := terms
	oldTerms.Regime = domain.RegimeOld
	oldResult, err := ce.CalcEngine.CalculateTax(oldTerms)
	if err != nil {
		return nil, fmt.Errorf("old regime: %w", err)
	}

	rc := &RegimeComparison{
		Income:      terms.GrossAnnualIncome,
		New:         newResult,
		Old:         oldResult,
		Recommended: domain.RegimeNew,
		Savings:     newResult.TotalTax.Sub(oldResult.TotalTax).Abs(),
	}
	if oldResult.TotalTax.LessThan(newResult.TotalTax) {
		rc.Recommended = domain.RegimeOld
	}

	rules := ce.rules()
	var maxed80C *domain.TaxResult
	if rules.Old.Section80CCap.IsPositive() && terms.Section80CDeductions.LessThan(rules.Old.Section80CCap) {
		maxed, err := transform.ApplyTransforms(&oldTerms, []transform.TaxTransform{
			&transform.MaxDeduction{Kind: transform.Deduction80C, Rules: rules.Old},
		})
		if err == nil {
			maxed80C, _ = ce.CalcEngine.CalculateTax(*maxed)
		}
	}
	rc.Recommendations = regimeRecommendations(rc, terms, rules, maxed80C)

	return rc, nil
}

// Compare evaluates base and one alternative per template, plus one for
// the combined ad hoc transforms.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	base domain.TaxTerms,
	options CompareOptions,
) (*ComparisonSet, error) {

	baseName := base.Label
	if baseName == "" {
		baseName = "base"
	}

	baseTax, err := ce.CalcEngine.CalculateTax(base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseName, baseTax)

	alternatives := []ComparisonResult{}

	evaluate := func(name, description string, transforms []transform.TaxTransform) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		modified, err := transform.ApplyTransforms(&base, transforms)
		if err != nil {
			return fmt.Errorf("failed to apply %s: %w", name, err)
		}
		modified.Label = name

		altTax, err := ce.CalcEngine.CalculateTax(*modified)
		if err != nil {
			return fmt.Errorf("failed to calculate %s: %w", name, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(name, altTax)
		altResult.Description = description
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
		return nil
	}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}
		if err := evaluate(template.Name, template.Description, template.Transforms); err != nil {
			return nil, err
		}
	}

	if len(options.Transforms) > 0 {
		description := ""
		for i, t := range options.Transforms {
			if i > 0 {
				description += "; "
			}
			description += t.Description()
		}
		if err := evaluate("custom", description, options.Transforms); err != nil {
			return nil, err
		}
	}

	compSet := &ComparisonSet{
		BaseName:           baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) rules() domain.TaxRules {
	if ce.CalcEngine.TaxCalc != nil {
		return ce.CalcEngine.TaxCalc.Rules
	}
	return domain.DefaultTaxRules()
}
