package components

import (
	"strconv"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/budgetbandhu/bandhu/internal/tui/tuistyles"
	"github.com/charmbracelet/bubbles/table"
)

// AmortizationTable builds a read-only table of yearly amortization rows.
// At most maxRows rows are included; zero means all.
func AmortizationTable(schedule []domain.AmortizationYear, maxRows int) table.Model {
	rows, _ := output.TruncateSchedule(schedule, maxRows)

	columns := []table.Column{
		{Title: "Year", Width: 5},
		{Title: "Principal", Width: 16},
		{Title: "Interest", Width: 16},
		{Title: "Balance", Width: 16},
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, y := range rows {
		tableRows = append(tableRows, table.Row{
			strconv.Itoa(y.Year),
			output.FormatRupeesWhole(y.PrincipalPaid),
			output.FormatRupeesWhole(y.InterestPaid),
			output.FormatRupeesWhole(y.RemainingBalance),
		})
	}

	height := len(tableRows) + 1
	if height > 12 {
		height = 12
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithHeight(height),
		table.WithFocused(false),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(tuistyles.ColorPrimary).
		BorderForeground(tuistyles.ColorBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Cell
	t.SetStyles(styles)

	return t
}
