package main

import (
	"fmt"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/breakeven"
	"github.com/budgetbandhu/bandhu/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func breakevenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Solve for break-even deductions or the largest affordable loan",
		Long: `Break-even solvers search for the input that balances a calculation.

  deductions  smallest itemized deduction at which the Old Regime costs
              no more than the New Regime
  loan        largest principal whose EMI fits a monthly budget`,
	}
	cmd.PersistentFlags().Int("max-iterations", 0, "Maximum solver iterations (default 100)")
	cmd.PersistentFlags().Float64("tolerance", 0, "Convergence tolerance in rupees (default 1)")
	cmd.PersistentFlags().StringP("format", "f", "table", "Output format (table, json)")

	cmd.AddCommand(breakevenDeductionsCmd(), breakevenLoanCmd())
	return cmd
}

func breakevenDeductionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deductions",
		Short: "Find the itemized deductions needed for the Old Regime to break even",
		Example: `  bandhu breakeven deductions --income 1500000
  bandhu breakeven deductions --income 1000000,1500000,2500000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			floats, _ := cmd.Flags().GetFloat64Slice("income")
			incomes := make([]decimal.Decimal, 0, len(floats))
			for _, f := range floats {
				d, err := money.FromFloat(f)
				if err != nil {
					return fmt.Errorf("--income: %w", err)
				}
				incomes = append(incomes, d)
			}

			solver, err := newSolver(cmd)
			if err != nil {
				return err
			}

			if len(incomes) == 1 {
				result, err := solver.Solve(cmd.Context(), breakeven.Request{
					Target:      breakeven.TargetDeductionBreakEven,
					GrossIncome: incomes[0],
				})
				if err != nil {
					return err
				}
				return writeBreakEven(cmd, result)
			}

			ladder, err := solver.SolveIncomeLadder(cmd.Context(), incomes)
			if err != nil {
				return err
			}
			return writeLadder(cmd, ladder)
		},
	}
	cmd.Flags().Float64Slice("income", nil, "Gross annual income; repeat or comma-separate for several (required)")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

func breakevenLoanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "loan",
		Short:   "Find the largest loan whose EMI fits a monthly budget",
		Example: `  bandhu breakeven loan --budget 40000 --rate 8.5 --years 20`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := decimalFlags(cmd, "budget", "rate")
			if err != nil {
				return err
			}
			years, _ := cmd.Flags().GetInt("years")

			solver, err := newSolver(cmd)
			if err != nil {
				return err
			}
			result, err := solver.Solve(cmd.Context(), breakeven.Request{
				Target:                    breakeven.TargetAffordablePrincipal,
				MonthlyBudget:             values[0],
				AnnualInterestRatePercent: values[1],
				TenureYears:               years,
			})
			if err != nil {
				return err
			}
			return writeBreakEven(cmd, result)
		},
	}
	cmd.Flags().Float64("budget", 0, "Monthly EMI budget in rupees (required)")
	cmd.Flags().Float64("rate", 0, "Annual interest rate in percent")
	cmd.Flags().Int("years", 0, "Tenure in years (required)")
	_ = cmd.MarkFlagRequired("budget")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}

func newSolver(cmd *cobra.Command) (*breakeven.Solver, error) {
	options := breakeven.DefaultSolverOptions()
	if n, _ := cmd.Flags().GetInt("max-iterations"); n > 0 {
		options.MaxIterations = n
	}
	if cmd.Flags().Changed("tolerance") {
		tol, err := decimalFlag(cmd, "tolerance")
		if err != nil {
			return nil, err
		}
		if !tol.IsPositive() {
			return nil, fmt.Errorf("--tolerance must be positive")
		}
		options.Tolerance = tol
	}
	return breakeven.NewSolver(newEngine(cmd, nil), options), nil
}

func writeBreakEven(cmd *cobra.Command, result *breakeven.Result) error {
	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "json":
		text, err := (&breakeven.JSONFormatter{Pretty: true}).Format(result)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
	case "table", "console", "":
		fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).Format(result))
	default:
		return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
	}
	return nil
}

func writeLadder(cmd *cobra.Command, ladder *breakeven.LadderResult) error {
	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "json":
		text, err := (&breakeven.JSONFormatter{Pretty: true}).FormatLadder(ladder)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
	case "table", "console", "":
		fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).FormatLadder(ladder))
	default:
		return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
	}
	return nil
}
