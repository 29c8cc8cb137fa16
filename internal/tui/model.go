package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/budgetbandhu/bandhu/internal/config"
	"github.com/budgetbandhu/bandhu/internal/tui/scenes"
	"github.com/budgetbandhu/bandhu/internal/tui/tuimsg"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	prefs      config.Preferences
	calcEngine *calculation.CalculationEngine

	homeModel       *scenes.HomeModel
	emiModel        *scenes.EMIModel
	lumpsumModel    *scenes.LumpsumModel
	retirementModel *scenes.RetirementModel
	taxModel        *scenes.TaxModel
	helpModel       *scenes.HelpModel

	// Error state
	err error
}

// NewModel creates a new application model using the default tax tables.
func NewModel(prefs config.Preferences) Model {
	return NewModelWithEngine(prefs, calculation.NewCalculationEngine())
}

// NewModelWithEngine creates a model around an existing engine, e.g. one
// built with overridden tax rules.
func NewModelWithEngine(prefs config.Preferences, engine *calculation.CalculationEngine) Model {
	return Model{
		currentScene:    SceneHome,
		prefs:           prefs,
		calcEngine:      engine,
		homeModel:       scenes.NewHomeModel(),
		emiModel:        scenes.NewEMIModel(engine, prefs.Display.ScheduleRows),
		lumpsumModel:    scenes.NewLumpsumModel(engine),
		retirementModel: scenes.NewRetirementModel(engine),
		taxModel:        scenes.NewTaxModel(engine, prefs.Tax.DefaultRegime),
		helpModel:       scenes.NewHelpModel(),
		width:           100,
		height:          30,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// CurrentScene returns the scene being shown.
func (m Model) CurrentScene() Scene { return m.currentScene }

// EMI returns the EMI scene model.
func (m Model) EMI() *scenes.EMIModel { return m.emiModel }

// Lumpsum returns the lumpsum scene model.
func (m Model) Lumpsum() *scenes.LumpsumModel { return m.lumpsumModel }

// Retirement returns the retirement scene model.
func (m Model) Retirement() *scenes.RetirementModel { return m.retirementModel }

// Tax returns the tax scene model.
func (m Model) Tax() *scenes.TaxModel { return m.taxModel }

// Err returns the error being displayed, if any.
func (m Model) Err() error { return m.err }

// sceneFor maps a home menu entry to its scene.
func sceneFor(c tuimsg.Calculator) Scene {
	switch c {
	case tuimsg.CalculatorEMI:
		return SceneEMI
	case tuimsg.CalculatorLumpsum:
		return SceneLumpsum
	case tuimsg.CalculatorRetirement:
		return SceneRetirement
	case tuimsg.CalculatorTax:
		return SceneTax
	default:
		return SceneHome
	}
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

func (m *Model) resizeScenes() {
	contentHeight := m.height - 4
	m.homeModel.SetSize(m.width, contentHeight)
	m.emiModel.SetSize(m.width, contentHeight)
	m.lumpsumModel.SetSize(m.width, contentHeight)
	m.retirementModel.SetSize(m.width, contentHeight)
	m.taxModel.SetSize(m.width, contentHeight)
	m.helpModel.SetSize(m.width, contentHeight)
}
