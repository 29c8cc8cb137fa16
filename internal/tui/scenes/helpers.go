package scenes

import (
	"strings"

	"github.com/budgetbandhu/bandhu/internal/tui/tuistyles"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func whole(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// layout places the input panel left of the results, or above them on a
// narrow terminal.
func layout(width int, inputs, results string) string {
	left := tuistyles.BorderStyle.Render(inputs)
	if width > 0 && width < lipgloss.Width(left)+lipgloss.Width(results)+2 {
		return lipgloss.JoinVertical(lipgloss.Left, left, results)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", results)
}

func section(title string, body ...string) string {
	return tuistyles.SectionStyle.Render(title) + "\n" + strings.Join(body, "\n")
}

func renderErr(err error) string {
	return tuistyles.ErrorStyle.Render("✗ " + err.Error())
}
