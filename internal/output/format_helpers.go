package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// RupeeSymbol prefixes formatted amounts by default.
	RupeeSymbol = "₹"
	// DefaultScheduleRows caps schedule tables unless configured otherwise.
	DefaultScheduleRows = 20
)

var (
	lakh  = decimal.NewFromInt(100000)
	crore = decimal.NewFromInt(10000000)
)

// FormatRupees formats an amount with the rupee symbol and Indian digit
// grouping, e.g. ₹12,34,567.89.
func FormatRupees(amount decimal.Decimal) string {
	return FormatAmount(amount, RupeeSymbol)
}

// FormatAmount formats an amount to two decimals with Indian digit grouping
// (last three digits, then pairs) behind symbol.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	rounded := amount.Round(2)
	fixed := rounded.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + symbol + groupIndian(whole) + "." + frac
}

// FormatRupeesWhole formats an amount rounded to whole rupees.
func FormatRupeesWhole(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + RupeeSymbol + groupIndian(rounded.Abs().StringFixed(0))
}

// FormatRupeesCompact abbreviates large amounts in lakhs and crores,
// e.g. ₹8.62 Cr or ₹2.87 L.
func FormatRupeesCompact(amount decimal.Decimal) string {
	abs := amount.Abs()
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(crore):
		return sign + RupeeSymbol + abs.Div(crore).StringFixed(2) + " Cr"
	case abs.GreaterThanOrEqual(lakh):
		return sign + RupeeSymbol + abs.Div(lakh).StringFixed(2) + " L"
	default:
		return FormatRupeesWhole(amount)
	}
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.05) as a percentage (5.00%).
func FormatRate(rate decimal.Decimal) string {
	return FormatPercentage(rate.Mul(decimal.NewFromInt(100)))
}

// TruncateSchedule caps rows at max for display and reports how many rows
// were hidden. A max of zero or less shows every row.
func TruncateSchedule[T any](rows []T, max int) ([]T, int) {
	if max <= 0 || len(rows) <= max {
		return rows, 0
	}
	return rows[:max], len(rows) - max
}
