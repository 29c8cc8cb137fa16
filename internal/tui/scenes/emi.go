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

// EMIModel is the loan calculator scene.
type EMIModel struct {
	engine       *calculation.CalculationEngine
	panel        *SliderPanel
	principal    *components.ParameterSlider
	rate         *components.ParameterSlider
	tenure       *components.ParameterSlider
	scheduleRows int

	result *domain.AmortizationResult
	err    error

	width  int
	height int
}

// NewEMIModel creates the scene with a ₹50 L loan at 8.5% over 20 years.
func NewEMIModel(engine *calculation.CalculationEngine, scheduleRows int) *EMIModel {
	m := &EMIModel{
		engine:       engine,
		scheduleRows: scheduleRows,
		principal: components.NewRupeeSlider("Loan Amount", 5000000, 50000, 50000000, 50000).
			WithDescription("Amount borrowed"),
		rate: components.NewParameterSlider("Interest Rate", dec("8.5"), whole(0), whole(20), dec("0.25")).
			WithUnit("%").WithPlaces(2).
			WithDescription("Annual rate, compounded monthly"),
		tenure: components.NewParameterSlider("Tenure", whole(20), whole(1), whole(30), whole(1)).
			WithUnit(" yrs"),
	}
	m.panel = NewSliderPanel(m.principal, m.rate, m.tenure)
	m.recalculate()
	return m
}

// SetSize updates the scene dimensions
func (m *EMIModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Terms returns the loan described by the sliders.
func (m *EMIModel) Terms() domain.LoanTerms {
	return domain.LoanTerms{
		Principal:                 m.principal.Value,
		AnnualInterestRatePercent: m.rate.Value,
		TenureYears:               m.tenure.IntValue(),
	}
}

// Result returns the latest calculation.
func (m *EMIModel) Result() *domain.AmortizationResult { return m.result }

func (m *EMIModel) recalculate() {
	m.result, m.err = m.engine.CalculateEMI(m.Terms())
}

// Update handles messages for the EMI scene
func (m *EMIModel) Update(msg tea.Msg) (*EMIModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.panel.HandleKey(keyMsg) {
		m.recalculate()
	}
	return m, nil
}

// View renders the EMI scene
func (m *EMIModel) View() string {
	return layout(m.width, m.panel.View(), m.renderResults())
}

func (m *EMIModel) renderResults() string {
	if m.err != nil {
		return renderErr(m.err)
	}
	r := m.result

	cards := []*components.MetricCard{
		components.NewMetricCard("Monthly EMI", output.FormatRupees(r.MonthlyInstallment)),
		components.NewMetricCard("Total Interest", output.FormatRupeesCompact(r.TotalInterest)).WithTone(components.ToneBad),
		components.NewMetricCard("Total Payable", output.FormatRupeesCompact(r.TotalPayable)),
		components.NewMetricCard("Interest Share", output.FormatPercentage(r.InterestShare())).
			WithDescription(fmt.Sprintf("over %d installments", m.Terms().Months())),
	}

	table := components.AmortizationTable(r.YearlySchedule, m.scheduleRows)
	schedule := table.View()
	if _, hidden := output.TruncateSchedule(r.YearlySchedule, m.scheduleRows); hidden > 0 {
		schedule += "\n" + tuistyles.HintStyle.Render(fmt.Sprintf("… %d more years", hidden))
	}

	return components.MetricGrid(cards, 2) + "\n" + section("Yearly Schedule", schedule)
}
