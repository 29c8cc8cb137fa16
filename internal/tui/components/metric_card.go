package components

import (
	"fmt"

	"github.com/budgetbandhu/bandhu/internal/tui/tuistyles"
	"github.com/charmbracelet/lipgloss"
)

// Tone colours a metric value.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneBad
)

// MetricCard displays a single result figure with a label and an optional
// trend line underneath.
type MetricCard struct {
	Label       string
	Value       string
	Tone        Tone
	Trend       *Trend
	Description string
	Width       int
}

// Trend describes how a figure compares with an alternative. Good decides
// the colour; Up decides the arrow.
type Trend struct {
	Up     bool
	Good   bool
	Change string // e.g. "₹1,13,100.00 vs New Regime"
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 24,
	}
}

// WithTone sets the value colour
func (m *MetricCard) WithTone(tone Tone) *MetricCard {
	m.Tone = tone
	return m
}

// WithTrend adds a trend indicator to the metric card
func (m *MetricCard) WithTrend(up, good bool, change string) *MetricCard {
	m.Trend = &Trend{Up: up, Good: good, Change: change}
	return m
}

// WithDescription adds a description/subtitle
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

func (m *MetricCard) valueStyle() lipgloss.Style {
	switch m.Tone {
	case ToneGood:
		return tuistyles.MetricValueStyle.Foreground(tuistyles.ColorSuccess)
	case ToneBad:
		return tuistyles.MetricValueStyle.Foreground(tuistyles.ColorDanger)
	default:
		return tuistyles.MetricValueStyle
	}
}

func (m *MetricCard) trendLine() string {
	if m.Trend == nil {
		return ""
	}
	arrow := tuistyles.TrendIndicator(m.Trend.Up)
	return tuistyles.MetricTrendStyle(m.Trend.Good).Render(fmt.Sprintf("%s %s", arrow, m.Trend.Change))
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + m.valueStyle().Render(m.Value)
	if trend := m.trendLine(); trend != "" {
		content += "\n" + trend
	}
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(content)
}

// RenderCompact returns a compact inline version without border
func (m *MetricCard) RenderCompact() string {
	out := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + m.valueStyle().Render(m.Value)
	if trend := m.trendLine(); trend != "" {
		out += " " + trend
	}
	return out
}

// MetricGrid renders metric cards in rows of the given width.
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows, current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
