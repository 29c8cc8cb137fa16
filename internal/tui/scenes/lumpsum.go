package scenes

import (
	"fmt"

	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/budgetbandhu/bandhu/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// LumpsumModel is the one-time investment scene.
type LumpsumModel struct {
	engine    *calculation.CalculationEngine
	panel     *SliderPanel
	principal *components.ParameterSlider
	rate      *components.ParameterSlider
	years     *components.ParameterSlider

	result *domain.LumpsumResult
	err    error

	width  int
	height int
}

// NewLumpsumModel creates the scene with ₹1 L at 12% for 10 years.
func NewLumpsumModel(engine *calculation.CalculationEngine) *LumpsumModel {
	m := &LumpsumModel{
		engine:    engine,
		principal: components.NewRupeeSlider("Investment", 100000, 10000, 10000000, 10000),
		rate: components.NewParameterSlider("Expected Return", whole(12), whole(0), whole(20), dec("0.5")).
			WithUnit("%").WithPlaces(1).
			WithDescription("Annual return, compounded yearly"),
		years: components.NewParameterSlider("Duration", whole(10), whole(1), whole(40), whole(1)).
			WithUnit(" yrs"),
	}
	m.panel = NewSliderPanel(m.principal, m.rate, m.years)
	m.recalculate()
	return m
}

// SetSize updates the scene dimensions
func (m *LumpsumModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Terms returns the investment described by the sliders.
func (m *LumpsumModel) Terms() domain.LumpsumTerms {
	return domain.LumpsumTerms{
		Principal:               m.principal.Value,
		AnnualReturnRatePercent: m.rate.Value,
		Years:                   m.years.IntValue(),
	}
}

// Result returns the latest calculation.
func (m *LumpsumModel) Result() *domain.LumpsumResult { return m.result }

func (m *LumpsumModel) recalculate() {
	m.result, m.err = m.engine.CalculateLumpsum(m.Terms())
}

// Update handles messages for the lumpsum scene
func (m *LumpsumModel) Update(msg tea.Msg) (*LumpsumModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.panel.HandleKey(keyMsg) {
		m.recalculate()
	}
	return m, nil
}

// View renders the lumpsum scene
func (m *LumpsumModel) View() string {
	return layout(m.width, m.panel.View(), m.renderResults())
}

func (m *LumpsumModel) renderResults() string {
	if m.err != nil {
		return renderErr(m.err)
	}
	r := m.result

	cards := []*components.MetricCard{
		components.NewMetricCard("Future Value", output.FormatRupeesCompact(r.FutureValue)).WithTone(components.ToneGood),
		components.NewMetricCard("Total Gain", output.FormatRupeesCompact(r.TotalGain)),
		components.NewMetricCard("Growth", r.GrowthMultiple().StringFixed(2)+"x"),
		components.NewMetricCard("Absolute Return", output.FormatPercentage(r.AbsoluteReturnPercent())),
	}

	points := make([]components.BarPoint, 0, len(r.YearlySchedule))
	for _, y := range r.YearlySchedule {
		points = append(points, components.BarPoint{Label: fmt.Sprintf("Y%d", y.Year), Value: y.Value})
	}
	chart := components.NewBarChart("Value by Year", points).WithWidth(30).WithMaxRows(10)

	return components.MetricGrid(cards, 2) + "\n" + chart.Render()
}
