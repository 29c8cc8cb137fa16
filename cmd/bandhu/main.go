package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/budgetbandhu/bandhu/internal/calculation"
	"github.com/budgetbandhu/bandhu/internal/config"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/budgetbandhu/bandhu/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

// newRootCmd builds the full command tree. Each call returns fresh flag
// state, so tests can execute commands independently.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bandhu",
		Short: "Personal finance calculators for Indian households",
		Long: `Budget Bandhu computes loan EMIs, lumpsum growth, retirement corpus
requirements and income tax under the New and Old regimes.

Examples:
  bandhu emi --principal 5000000 --rate 8.5 --years 20
  bandhu tax --income 1500000 --regime old --80c 150000
  bandhu compare --income 1500000 --80c 150000 --home-loan 200000
  bandhu breakeven deductions --income 1500000
  bandhu calculate worksheet.yaml --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	root.AddCommand(
		emiCmd(),
		lumpsumCmd(),
		retirementCmd(),
		taxCmd(),
		compareCmd(),
		breakevenCmd(),
		calculateCmd(),
		validateCmd(),
		prefsCmd(),
		interactiveCmd(),
		versionCmd(),
	)
	return root
}

// newEngine returns a calculation engine, logging to stderr when --debug is set.
func newEngine(cmd *cobra.Command, rules *domain.TaxRules) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if rules != nil {
		engine = calculation.NewCalculationEngineWithRules(rules)
	}
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		log.SetOutput(cmd.ErrOrStderr())
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine
}

// loadPrefs reads user preferences, falling back to defaults with a warning.
func loadPrefs(cmd *cobra.Command) config.Preferences {
	prefs, err := config.LoadPreferences()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", err)
	}
	return prefs
}

// decimalFlag reads a float flag and converts it at the boundary.
func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := money.FromFloat(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}

// decimalFlags reads several float flags in order.
func decimalFlags(cmd *cobra.Command, names ...string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(names))
	for i, name := range names {
		d, err := decimalFlag(cmd, name)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// resultFormatter resolves --format, defaulting to the preferred format.
func resultFormatter(cmd *cobra.Command, prefs config.Preferences) (output.Formatter, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = prefs.Display.Format
	}
	return output.NewFormatter(format, output.Options{
		ScheduleRows:   prefs.Display.ScheduleRows,
		CurrencySymbol: prefs.Display.CurrencySymbol,
	})
}

// writeResults formats results and writes them to the command's output.
func writeResults(cmd *cobra.Command, prefs config.Preferences, results *domain.WorksheetResult) error {
	f, err := resultFormatter(cmd, prefs)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", f.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Output format (console, csv, html, json, yaml); defaults to display.format")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
