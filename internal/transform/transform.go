package transform

import (
	"fmt"

	"github.com/budgetbandhu/bandhu/internal/domain"
)

// TaxTransform is one what-if change to a set of tax terms: claim more 80C,
// switch regime, take a raise. Transforms compose; the compare engine chains
// them to build alternatives and the break-even solver uses the same terms.
type TaxTransform interface {
	// Apply returns changed terms. The argument is never modified.
	Apply(base *domain.TaxTerms) (*domain.TaxTerms, error)
	// Name is the registry key, e.g. "max_deduction".
	Name() string
	// Description is shown next to the alternative in comparisons.
	Description() string
	// Validate reports whether Apply would succeed on base.
	Validate(base *domain.TaxTerms) error
}

// ApplyTransforms runs transforms left to right over a copy of base, each
// seeing the previous one's output. The first failure stops the chain.
func ApplyTransforms(base *domain.TaxTerms, transforms []TaxTransform) (*domain.TaxTerms, error) {
	if base == nil {
		return nil, fmt.Errorf("base terms cannot be nil")
	}

	terms := *base
	for i, t := range transforms {
		if t == nil {
			return nil, fmt.Errorf("transform %d of %d is nil", i+1, len(transforms))
		}
		if err := t.Validate(&terms); err != nil {
			return nil, fmt.Errorf("step %d (%s) rejected: %w", i+1, t.Name(), err)
		}
		changed, err := t.Apply(&terms)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s) failed: %w", i+1, t.Name(), err)
		}
		terms = *changed
	}
	return &terms, nil
}

// TransformError names the transform and stage that rejected the terms.
type TransformError struct {
	TransformName string
	Stage         string // "validate", "apply" or "parse"
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	msg := e.TransformName + ": " + e.Reason
	if e.Stage != "" {
		msg = fmt.Sprintf("%s [%s]: %s", e.TransformName, e.Stage, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransformError) Unwrap() error { return e.Err }

// NewTransformError builds a *TransformError.
func NewTransformError(transformName, stage, reason string, err error) error {
	return &TransformError{TransformName: transformName, Stage: stage, Reason: reason, Err: err}
}
