package scenes

import (
	"fmt"

	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/budgetbandhu/bandhu/internal/tui/components"
	"github.com/budgetbandhu/bandhu/internal/tui/tuistyles"
	tea "github.com/charmbracelet/bubbletea"
)

// RetirementModel is the retirement planner scene. The retirement age
// slider never goes below current age + 1.
type RetirementModel struct {
	engine     *calculation.CalculationEngine
	panel      *SliderPanel
	currentAge *components.ParameterSlider
	retireAge  *components.ParameterSlider
	savings    *components.ParameterSlider
	expenses   *components.ParameterSlider
	inflation  *components.ParameterSlider
	returns    *components.ParameterSlider

	result *domain.RetirementResult
	err    error

	width  int
	height int
}

// NewRetirementModel creates the scene for a 30-year-old retiring at 60.
func NewRetirementModel(engine *calculation.CalculationEngine) *RetirementModel {
	m := &RetirementModel{
		engine:     engine,
		currentAge: components.NewParameterSlider("Current Age", whole(30), whole(18), whole(80), whole(1)).WithUnit(" yrs"),
		retireAge:  components.NewParameterSlider("Retirement Age", whole(60), whole(19), whole(90), whole(1)).WithUnit(" yrs"),
		savings: components.NewRupeeSlider("Current Savings", 500000, 0, 50000000, 50000).
			WithDescription("Corpus already invested for retirement"),
		expenses: components.NewRupeeSlider("Monthly Expenses", 50000, 5000, 500000, 5000).
			WithDescription("In today's rupees"),
		inflation: components.NewParameterSlider("Inflation", whole(6), whole(0), whole(15), dec("0.5")).
			WithUnit("%").WithPlaces(1),
		returns: components.NewParameterSlider("Expected Return", whole(12), whole(0), whole(20), dec("0.5")).
			WithUnit("%").WithPlaces(1),
	}
	m.panel = NewSliderPanel(m.currentAge, m.retireAge, m.savings, m.expenses, m.inflation, m.returns)
	m.syncAgeBounds()
	m.recalculate()
	return m
}

// SetSize updates the scene dimensions
func (m *RetirementModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Terms returns the plan described by the sliders.
func (m *RetirementModel) Terms() domain.RetirementTerms {
	return domain.RetirementTerms{
		CurrentAge:               m.currentAge.IntValue(),
		RetirementAge:            m.retireAge.IntValue(),
		CurrentSavings:           m.savings.Value,
		CurrentMonthlyExpenses:   m.expenses.Value,
		ExpectedInflationPercent: m.inflation.Value,
		ExpectedReturnPercent:    m.returns.Value,
	}
}

// Result returns the latest calculation.
func (m *RetirementModel) Result() *domain.RetirementResult { return m.result }

func (m *RetirementModel) syncAgeBounds() {
	m.retireAge.SetMin(m.currentAge.Value.Add(whole(1)))
}

func (m *RetirementModel) recalculate() {
	m.result, m.err = m.engine.CalculateRetirementPlan(m.Terms())
}

// Update handles messages for the retirement scene
func (m *RetirementModel) Update(msg tea.Msg) (*RetirementModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.panel.HandleKey(keyMsg) {
		m.syncAgeBounds()
		m.recalculate()
	}
	return m, nil
}

// View renders the retirement scene
func (m *RetirementModel) View() string {
	return layout(m.width, m.panel.View(), m.renderResults())
}

func (m *RetirementModel) renderResults() string {
	if m.err != nil {
		return renderErr(m.err)
	}
	r := m.result

	shortfall := components.NewMetricCard("Shortfall", output.FormatRupeesCompact(r.Shortfall))
	sip := components.NewMetricCard("Monthly SIP Needed", output.FormatRupeesWhole(r.RequiredMonthlySIP))
	if r.OnTrack() {
		shortfall.WithTone(components.ToneGood).WithDescription("On track")
		sip.WithTone(components.ToneGood)
	} else {
		shortfall.WithTone(components.ToneBad)
		sip.WithDescription(fmt.Sprintf("for %d years", r.YearsToRetirement))
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Required Corpus", output.FormatRupeesCompact(r.RequiredCorpus)),
		components.NewMetricCard("Projected Savings", output.FormatRupeesCompact(r.ProjectedFutureSavings)),
		shortfall,
		sip,
		components.NewMetricCard("Monthly Expenses Then", output.FormatRupeesWhole(r.FutureMonthlyExpenses)),
		components.NewMetricCard("First-Year Withdrawal", output.FormatRupeesCompact(r.FirstYearWithdrawal)),
	}

	bar := components.NewFundedBar("Corpus Funded by Current Savings", r.ProjectedFutureSavings, r.RequiredCorpus).WithWidth(36)

	duration := fmt.Sprintf("Retirement lasts %d years to an assumed age of %d", r.RetirementDurationYears, r.AssumedLifespanAge)
	if r.RetirementDurationYears <= 0 {
		duration = fmt.Sprintf("Retirement age is at or past the assumed lifespan of %d", r.AssumedLifespanAge)
	}

	return components.MetricGrid(cards, 2) + "\n" + bar.Render() + "\n" + tuistyles.HintStyle.Render(duration)
}
