package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
)

// Template categories, in help order.
const (
	CategoryDeductions = "Deductions"
	CategoryIncome     = "Income"
	CategoryRegime     = "Regime"
	categoryOther      = "Other"
)

// Template is a named what-if made of one or more transforms.
type Template struct {
	Name        string
	Category    string
	Description string
	Transforms  []TaxTransform
}

// TemplateRegistry looks templates up by case-insensitive name.
type TemplateRegistry struct {
	templates map[string]Template
}

func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: map[string]Template{}}
}

func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns template names in sorted order.
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func raise(percent int64) []TaxTransform {
	return []TaxTransform{&AdjustIncome{Percent: decimal.NewFromInt(percent)}}
}

// CreateBuiltInTemplates returns the common household what-ifs.
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()
	for _, t := range []Template{
		{"max_80c", CategoryDeductions, "Invest the full Section 80C limit",
			[]TaxTransform{NewMaxDeduction(Deduction80C)}},
		{"max_home_loan", CategoryDeductions, "Claim the full home loan interest limit",
			[]TaxTransform{NewMaxDeduction(DeductionHomeLoan)}},
		{"max_80c_and_home_loan", CategoryDeductions, "Claim both the 80C and home loan interest limits",
			[]TaxTransform{NewMaxDeduction(Deduction80C), NewMaxDeduction(DeductionHomeLoan)}},
		{"raise_10pct", CategoryIncome, "Gross income rises by 10%", raise(10)},
		{"raise_25pct", CategoryIncome, "Gross income rises by 25%", raise(25)},
		{"switch_new", CategoryRegime, "Same inputs under the new regime",
			[]TaxTransform{&SetRegime{Regime: domain.RegimeNew}}},
		{"switch_old", CategoryRegime, "Same inputs under the old regime",
			[]TaxTransform{&SetRegime{Regime: domain.RegimeOld}}},
	} {
		registry.Register(t)
	}
	return registry
}

// ApplyTemplate runs a template's transforms over base.
func ApplyTemplate(base *domain.TaxTerms, template Template) (*domain.TaxTerms, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList splits "a, b,c" into names, dropping blanks.
func ParseTemplateList(templateList string) []string {
	var names []string
	for _, part := range strings.Split(templateList, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// GetTemplateHelp lists templates grouped by category, with usage examples.
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	grouped := map[string][]Template{}
	for _, name := range registry.List() {
		t := registry.templates[name]
		category := t.Category
		if category == "" {
			category = categoryOther
		}
		grouped[category] = append(grouped[category], t)
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")
	for _, category := range []string{CategoryDeductions, CategoryIncome, CategoryRegime, categoryOther} {
		if len(grouped[category]) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s:\n", category)
		for _, t := range grouped[category] {
			fmt.Fprintf(&sb, "  %-24s %s\n", t.Name, t.Description)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Usage:\n")
	sb.WriteString("  bandhu compare --income 1500000 --template max_80c,raise_10pct\n")
	sb.WriteString("  bandhu compare --income 1500000 --transform set_deduction:kind=hra,amount=200000\n")
	return sb.String()
}
