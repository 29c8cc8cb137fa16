package calculation

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every input validation failure.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which field of which calculator was rejected.
type InputError struct {
	Calculator string
	Field      string
	Message    string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Calculator, e.Field, e.Message)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalidInput(calculator, field, format string, args ...any) error {
	return &InputError{
		Calculator: calculator,
		Field:      field,
		Message:    fmt.Sprintf(format, args...),
	}
}
