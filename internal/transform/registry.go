package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformFactory builds a transform from key=value parameters.
type TransformFactory func(params map[string]string) (TaxTransform, error)

// TransformRegistry maps transform names to factories so what-ifs can be
// given on the command line.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// NewTransformRegistry returns a registry holding the built-in transforms.
func NewTransformRegistry() *TransformRegistry {
	r := &TransformRegistry{factories: map[string]TransformFactory{}}
	r.Register("set_regime", newSetRegime)
	r.Register("set_deduction", newSetDeduction)
	r.Register("max_deduction", newMaxDeduction)
	r.Register("adjust_income", newAdjustIncome)
	return r
}

// Register adds or replaces a factory.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create builds the named transform.
func (r *TransformRegistry) Create(name string, params map[string]string) (TaxTransform, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform %q (available: %s)", name, strings.Join(r.List(), ", "))
	}
	return factory(params)
}

// List returns the registered names in sorted order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec builds a transform from "name:key=value,key=value",
// e.g. "set_deduction:kind=80c,amount=150000".
func (r *TransformRegistry) ParseTransformSpec(spec string) (TaxTransform, error) {
	name, rest, found := strings.Cut(spec, ":")
	if !found {
		return nil, fmt.Errorf("expected name:key=value,... but got %q", spec)
	}

	params := map[string]string{}
	if rest = strings.TrimSpace(rest); rest != "" {
		for _, pair := range strings.Split(rest, ",") {
			k, v, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("expected key=value but got %q", pair)
			}
			params[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	return r.Create(strings.TrimSpace(name), params)
}

// params wraps factory arguments with typed, named lookups.
type params struct {
	transform string
	values    map[string]string
}

func (p params) required(key string) (string, error) {
	v, ok := p.values[key]
	if !ok || v == "" {
		return "", fmt.Errorf("%s requires %q", p.transform, key)
	}
	return v, nil
}

func (p params) decimal(key string) (decimal.Decimal, bool, error) {
	v, ok := p.values[key]
	if !ok {
		return decimal.Zero, false, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, true, fmt.Errorf("%s: %s is not a number: %q", p.transform, key, v)
	}
	return d, true, nil
}

func (p params) kind() (DeductionKind, error) {
	v, err := p.required("kind")
	if err != nil {
		return "", err
	}
	return ParseDeductionKind(v)
}

func newSetRegime(values map[string]string) (TaxTransform, error) {
	v, err := params{"set_regime", values}.required("regime")
	if err != nil {
		return nil, err
	}
	regime, err := domain.ParseTaxRegime(v)
	if err != nil {
		return nil, err
	}
	return &SetRegime{Regime: regime}, nil
}

func newSetDeduction(values map[string]string) (TaxTransform, error) {
	p := params{"set_deduction", values}
	kind, err := p.kind()
	if err != nil {
		return nil, err
	}
	amount, ok, err := p.decimal("amount")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("set_deduction requires %q", "amount")
	}
	return &SetDeduction{Kind: kind, Amount: amount}, nil
}

func newMaxDeduction(values map[string]string) (TaxTransform, error) {
	kind, err := params{"max_deduction", values}.kind()
	if err != nil {
		return nil, err
	}
	return NewMaxDeduction(kind), nil
}

func newAdjustIncome(values map[string]string) (TaxTransform, error) {
	p := params{"adjust_income", values}
	percent, hasPercent, err := p.decimal("percent")
	if err != nil {
		return nil, err
	}
	amount, hasAmount, err := p.decimal("amount")
	if err != nil {
		return nil, err
	}
	if !hasPercent && !hasAmount {
		return nil, fmt.Errorf("adjust_income requires %q or %q", "percent", "amount")
	}
	return &AdjustIncome{Percent: percent, Amount: amount}, nil
}
