package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/budgetbandhu/bandhu/internal/config"
	"github.com/budgetbandhu/bandhu/internal/tui"
)

func main() {
	prefs, err := config.LoadPreferences()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	// An optional worksheet supplies tax rule overrides
	engine := calculation.NewCalculationEngine()
	if len(os.Args) > 1 {
		ws, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if ws.TaxRules != nil {
			engine = calculation.NewCalculationEngineWithRules(ws.TaxRules)
		}
	}

	model := tui.NewModelWithEngine(prefs, engine)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
