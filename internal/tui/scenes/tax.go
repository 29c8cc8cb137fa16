package scenes

import (
	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/budgetbandhu/bandhu/internal/compare"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/budgetbandhu/bandhu/internal/tui/components"
	"github.com/budgetbandhu/bandhu/internal/tui/tuistyles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var toggleRegimeKey = key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle regime"))

// TaxModel is the income tax scene. Itemized deduction sliders are only
// shown under the old regime, since the new regime ignores them.
type TaxModel struct {
	engine   *calculation.CalculationEngine
	compare  *compare.CompareEngine
	regime   domain.TaxRegime
	panel    *SliderPanel
	income   *components.ParameterSlider
	sec80C   *components.ParameterSlider
	hra      *components.ParameterSlider
	homeLoan *components.ParameterSlider

	result     *domain.TaxResult
	comparison *compare.RegimeComparison
	err        error

	width  int
	height int
}

// NewTaxModel creates the scene for a ₹15 L income under the given regime.
func NewTaxModel(engine *calculation.CalculationEngine, regime domain.TaxRegime) *TaxModel {
	if regime != domain.RegimeOld {
		regime = domain.RegimeNew
	}
	old := engine.TaxCalc.Rules.Old

	m := &TaxModel{
		engine:  engine,
		compare: compare.NewCompareEngine(engine),
		regime:  regime,
		income:  components.NewRupeeSlider("Gross Income", 1500000, 0, 10000000, 50000),
		sec80C: components.NewRupeeSlider("Section 80C", 0, 0, 150000, 10000).
			WithDescription("PPF, ELSS, EPF, life insurance"),
		hra: components.NewRupeeSlider("HRA Exemption", 0, 0, 1000000, 10000),
		homeLoan: components.NewRupeeSlider("Home Loan Interest", 0, 0, 200000, 10000).
			WithDescription("Section 24(b), self-occupied"),
	}
	if old.Section80CCap.IsPositive() {
		m.sec80C.SetMax(old.Section80CCap)
	}
	if old.HomeLoanInterestCap.IsPositive() {
		m.homeLoan.SetMax(old.HomeLoanInterestCap)
	}
	m.panel = NewSliderPanel(m.income, m.sec80C, m.hra, m.homeLoan)
	m.syncRegime()
	m.recalculate()
	return m
}

// SetSize updates the scene dimensions
func (m *TaxModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Regime returns the regime being edited.
func (m *TaxModel) Regime() domain.TaxRegime { return m.regime }

// Terms returns the tax inputs described by the sliders.
func (m *TaxModel) Terms() domain.TaxTerms {
	return domain.TaxTerms{
		GrossAnnualIncome:    m.income.Value,
		Regime:               m.regime,
		Section80CDeductions: m.sec80C.Value,
		HRAExemption:         m.hra.Value,
		HomeLoanInterest:     m.homeLoan.Value,
	}
}

// Result returns the latest result for the active regime.
func (m *TaxModel) Result() *domain.TaxResult { return m.result }

// Comparison returns the latest side-by-side comparison.
func (m *TaxModel) Comparison() *compare.RegimeComparison { return m.comparison }

func (m *TaxModel) syncRegime() {
	hidden := m.regime == domain.RegimeNew
	m.sec80C.Hidden = hidden
	m.hra.Hidden = hidden
	m.homeLoan.Hidden = hidden
	m.panel.refocus()
}

func (m *TaxModel) recalculate() {
	m.comparison, m.err = m.compare.CompareRegimes(m.Terms())
	if m.err != nil {
		m.result = nil
		return
	}
	m.result = m.comparison.Result(m.regime)
}

// Update handles messages for the tax scene
func (m *TaxModel) Update(msg tea.Msg) (*TaxModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, toggleRegimeKey) {
		if m.regime == domain.RegimeNew {
			m.regime = domain.RegimeOld
		} else {
			m.regime = domain.RegimeNew
		}
		m.syncRegime()
		m.recalculate()
		return m, nil
	}
	if m.panel.HandleKey(keyMsg) {
		m.recalculate()
	}
	return m, nil
}

// View renders the tax scene
func (m *TaxModel) View() string {
	inputs := tuistyles.TitleStyle.Render(m.regime.Title()) + "\n" +
		tuistyles.HintStyle.Render("t to switch regime") + "\n\n" + m.panel.View()
	if m.regime == domain.RegimeNew {
		inputs += "\n\n" + tuistyles.HintStyle.Render("Itemized deductions apply to the Old Regime only")
	}
	return layout(m.width, inputs, m.renderResults())
}

func (m *TaxModel) renderResults() string {
	if m.err != nil {
		return renderErr(m.err)
	}
	r := m.result

	cards := []*components.MetricCard{
		components.NewMetricCard("Total Tax", output.FormatRupeesWhole(r.TotalTax)),
		components.NewMetricCard("Take-Home", output.FormatRupeesCompact(r.TakeHomeIncome)).
			WithDescription(output.FormatRupeesWhole(r.MonthlyTakeHome()) + " / month"),
		components.NewMetricCard("Effective Rate", output.FormatPercentage(r.EffectiveRatePercent())),
		components.NewMetricCard("Cess", output.FormatRupeesWhole(r.Cess)),
	}

	var recs string
	for _, rec := range m.comparison.Recommendations {
		recs += "\n• " + rec
	}

	return components.MetricGrid(cards, 2) + "\n" +
		components.RenderRegimeComparison(m.comparison, m.regime) +
		tuistyles.InfoStyle.Render(recs)
}
