// Package tuimsg holds the messages scenes send to the root model. It lives
// apart from package tui so that scenes can emit them without an import cycle.
package tuimsg

// Calculator identifies one of the calculator scenes.
type Calculator string

const (
	CalculatorEMI        Calculator = "emi"
	CalculatorLumpsum    Calculator = "lumpsum"
	CalculatorRetirement Calculator = "retirement"
	CalculatorTax        Calculator = "tax"
)

// CalculatorSelectedMsg signals a calculator was picked on the home screen
type CalculatorSelectedMsg struct {
	Calculator Calculator
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
