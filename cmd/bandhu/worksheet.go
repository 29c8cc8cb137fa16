package main

import (
	"fmt"

	"github.com/budgetbandhu/bandhu/internal/config"
	"github.com/budgetbandhu/bandhu/internal/output"
	"github.com/spf13/cobra"
)

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [worksheet-file]",
		Short: "Run every calculation in a worksheet file",
		Long: `Run every calculation in a YAML, TOML or JSON worksheet.

A worksheet lists loans, lumpsums, retirements and taxes. An optional
tax_rules section replaces the built-in slabs for that run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := loadPrefs(cmd)

			parser := config.NewInputParser()
			ws, err := parser.LoadFromFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to load worksheet: %w", err)
			}

			engine := newEngine(cmd, ws.TaxRules)
			results, err := engine.RunWorksheet(cmd.Context(), ws)
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}

			if err := writeResults(cmd, prefs, results); err != nil {
				return err
			}

			if save, _ := cmd.Flags().GetBool("save"); save {
				f, err := resultFormatter(cmd, prefs)
				if err != nil {
					return err
				}
				filename, err := output.WriteFormatted(f, results, output.Extension(f.Name()))
				if err != nil {
					return fmt.Errorf("failed to save report: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", filename)
			}
			return nil
		},
	}
	addFormatFlag(cmd)
	cmd.Flags().Bool("save", false, "Also write the report to a timestamped file in the current directory")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [worksheet-file]",
		Short: "Validate a worksheet file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			ws, err := parser.LoadFromFile(args[0])
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Worksheet %s is valid (%d calculations)\n", args[0], ws.ItemCount())
			return nil
		},
	}
}
