package components

import (
	"fmt"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/budgetbandhu/bandhu/internal/tui/tuistyles"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// ParameterSlider displays an adjustable calculator input with a visual slider.
// Values are decimals so that rupee amounts never pass through float64.
type ParameterSlider struct {
	Label       string
	Value       decimal.Decimal
	Min         decimal.Decimal
	Max         decimal.Decimal
	Step        decimal.Decimal
	Unit        string // e.g. "%", " yrs"
	Places      int32  // decimal places shown for non-rupee values
	Rupees      bool   // render the value as a rupee amount
	Width       int    // total width of slider bar
	IsFocused   bool
	Hidden      bool
	Description string
}

// NewParameterSlider creates a new parameter slider
func NewParameterSlider(label string, value, min, max, step decimal.Decimal) *ParameterSlider {
	p := &ParameterSlider{
		Label: label,
		Min:   min,
		Max:   max,
		Step:  step,
		Width: 30,
	}
	p.SetValue(value)
	return p
}

// NewRupeeSlider creates a slider whose value is a rupee amount.
func NewRupeeSlider(label string, value, min, max, step int64) *ParameterSlider {
	p := NewParameterSlider(label,
		decimal.NewFromInt(value), decimal.NewFromInt(min),
		decimal.NewFromInt(max), decimal.NewFromInt(step))
	p.Rupees = true
	return p
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithPlaces sets the number of decimal places shown
func (p *ParameterSlider) WithPlaces(places int32) *ParameterSlider {
	p.Places = places
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// WithDescription adds a description/help text
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Increment raises the value by one step, stopping at Max. It reports
// whether the value changed.
func (p *ParameterSlider) Increment() bool {
	return p.SetValue(p.Value.Add(p.Step))
}

// Decrement lowers the value by one step, stopping at Min. It reports
// whether the value changed.
func (p *ParameterSlider) Decrement() bool {
	return p.SetValue(p.Value.Sub(p.Step))
}

// SetValue sets the value directly, clamping to min/max, and reports
// whether the value changed.
func (p *ParameterSlider) SetValue(value decimal.Decimal) bool {
	clamped := decimal.Max(p.Min, decimal.Min(p.Max, value))
	if clamped.Equal(p.Value) {
		return false
	}
	p.Value = clamped
	return true
}

// SetMin moves the lower bound and pulls the value up if needed.
func (p *ParameterSlider) SetMin(min decimal.Decimal) {
	p.Min = min
	if p.Max.LessThan(min) {
		p.Max = min
	}
	p.SetValue(p.Value)
}

// SetMax moves the upper bound and pulls the value down if needed.
func (p *ParameterSlider) SetMax(max decimal.Decimal) {
	p.Max = max
	if p.Min.GreaterThan(max) {
		p.Min = max
	}
	p.SetValue(p.Value)
}

// IntValue returns the value truncated to an int.
func (p *ParameterSlider) IntValue() int {
	return int(p.Value.IntPart())
}

// Percentage returns the value as a fraction of the range
func (p *ParameterSlider) Percentage() float64 {
	span := p.Max.Sub(p.Min)
	if span.IsZero() {
		return 0
	}
	f, _ := p.Value.Sub(p.Min).Div(span).Float64()
	return f
}

func (p *ParameterSlider) format(v decimal.Decimal) string {
	if p.Rupees {
		return output.FormatRupeesCompact(v)
	}
	return v.StringFixed(p.Places) + p.Unit
}

// Render returns the styled parameter slider
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("  ")
	content.WriteString(valueStyle.Render(p.format(p.Value)))
	content.WriteString("\n")

	content.WriteString(p.renderSliderBar(p.Width))

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(" ")
	content.WriteString(rangeStyle.Render(fmt.Sprintf("%s ─ %s", p.format(p.Min), p.format(p.Max))))

	if p.Description != "" && p.IsFocused {
		content.WriteString("\n")
		content.WriteString(tuistyles.HintStyle.Render(p.Description))
	}

	return content.String()
}

// RenderCompact returns a compact single-line version
func (p *ParameterSlider) RenderCompact() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(p.Label+":"),
		valueStyle.Render(p.format(p.Value)),
		p.renderSliderBar(10))
}

func (p *ParameterSlider) renderSliderBar(width int) string {
	if width < 1 {
		width = 1
	}
	thumb := int(p.Percentage()*float64(width-1) + 0.5)

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}
	trackStyle := tuistyles.SliderTrackStyle

	var bar strings.Builder
	bar.WriteString("[")
	if thumb > 0 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", thumb)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if rest := width - thumb - 1; rest > 0 {
		bar.WriteString(trackStyle.Render(strings.Repeat("─", rest)))
	}
	bar.WriteString("]")
	return bar.String()
}
