package components

import (
	"fmt"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/budgetbandhu/bandhu/internal/tui/tuistyles"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// BarPoint is one bar of a BarChart.
type BarPoint struct {
	Label string
	Value decimal.Decimal
}

// BarChart draws horizontal bars scaled to the largest value, one row per
// point, with values in lakhs/crores.
type BarChart struct {
	Title   string
	Points  []BarPoint
	Width   int
	MaxRows int // 0 means all rows
}

// NewBarChart creates a new bar chart
func NewBarChart(title string, points []BarPoint) *BarChart {
	return &BarChart{
		Title:  title,
		Points: points,
		Width:  40,
	}
}

// WithWidth sets the bar width
func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

// WithMaxRows limits how many bars are drawn. When points are dropped the
// first and last are always kept and the rest are sampled evenly.
func (c *BarChart) WithMaxRows(rows int) *BarChart {
	c.MaxRows = rows
	return c
}

func (c *BarChart) visiblePoints() []BarPoint {
	n := len(c.Points)
	if c.MaxRows <= 0 || n <= c.MaxRows {
		return c.Points
	}
	if c.MaxRows == 1 {
		return c.Points[n-1:]
	}
	out := make([]BarPoint, 0, c.MaxRows)
	for i := 0; i < c.MaxRows; i++ {
		idx := i * (n - 1) / (c.MaxRows - 1)
		out = append(out, c.Points[idx])
	}
	return out
}

// Render returns the chart
func (c *BarChart) Render() string {
	points := c.visiblePoints()
	if len(points) == 0 {
		return tuistyles.HintStyle.Render("No data")
	}

	max := decimal.Zero
	labelWidth := 0
	for _, p := range points {
		max = decimal.Max(max, p.Value)
		if w := lipgloss.Width(p.Label); w > labelWidth {
			labelWidth = w
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSecondary)
	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(tuistyles.SectionStyle.Render(c.Title))
		b.WriteString("\n")
	}
	for i, p := range points {
		length := 0
		if max.IsPositive() && p.Value.IsPositive() {
			ratio, _ := p.Value.Div(max).Float64()
			length = int(ratio*float64(c.Width) + 0.5)
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, p.Label)))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(strings.Repeat("█", length)))
		b.WriteString(" ")
		b.WriteString(output.FormatRupeesCompact(p.Value))
		if i < len(points)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
