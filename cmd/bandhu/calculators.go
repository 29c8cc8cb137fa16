package main

import (
	"github.com/budgetbandhu/bandhu/internal/config"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/spf13/cobra"
)

func emiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Calculate a loan's monthly installment and amortization schedule",
		Example: `  bandhu emi --principal 5000000 --rate 8.5 --years 20
  bandhu emi --principal 800000 --rate 9.25 --years 5 --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := decimalFlags(cmd, "principal", "rate")
			if err != nil {
				return err
			}
			years, _ := cmd.Flags().GetInt("years")
			label, _ := cmd.Flags().GetString("label")

			prefs := loadPrefs(cmd)
			result, err := newEngine(cmd, nil).CalculateEMI(domain.LoanTerms{
				Label:                     label,
				Principal:                 values[0],
				AnnualInterestRatePercent: values[1],
				TenureYears:               years,
			})
			if err != nil {
				return err
			}
			return writeResults(cmd, prefs, &domain.WorksheetResult{Name: "emi", Loans: []domain.AmortizationResult{*result}})
		},
	}
	cmd.Flags().Float64("principal", 0, "Loan amount in rupees (required)")
	cmd.Flags().Float64("rate", 0, "Annual interest rate in percent")
	cmd.Flags().Int("years", 0, "Tenure in years (required)")
	cmd.Flags().String("label", "", "Optional label for the loan")
	addFormatFlag(cmd)
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}

func lumpsumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lumpsum",
		Short:   "Project the growth of a one-time investment",
		Example: `  bandhu lumpsum --principal 100000 --rate 12 --years 10`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := decimalFlags(cmd, "principal", "rate")
			if err != nil {
				return err
			}
			years, _ := cmd.Flags().GetInt("years")
			label, _ := cmd.Flags().GetString("label")

			prefs := loadPrefs(cmd)
			result, err := newEngine(cmd, nil).CalculateLumpsum(domain.LumpsumTerms{
				Label:                   label,
				Principal:               values[0],
				AnnualReturnRatePercent: values[1],
				Years:                   years,
			})
			if err != nil {
				return err
			}
			return writeResults(cmd, prefs, &domain.WorksheetResult{Name: "lumpsum", Lumpsums: []domain.LumpsumResult{*result}})
		},
	}
	cmd.Flags().Float64("principal", 0, "Amount invested in rupees (required)")
	cmd.Flags().Float64("rate", 0, "Expected annual return in percent")
	cmd.Flags().Int("years", 0, "Investment horizon in years (required)")
	cmd.Flags().String("label", "", "Optional label for the investment")
	addFormatFlag(cmd)
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}

func retirementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Size a retirement corpus and the monthly SIP needed to reach it",
		Example: `  bandhu retirement --current-age 30 --retirement-age 60 --savings 500000 \
    --expenses 50000 --inflation 6 --return 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := decimalFlags(cmd, "savings", "expenses", "inflation", "return")
			if err != nil {
				return err
			}
			currentAge, _ := cmd.Flags().GetInt("current-age")
			retirementAge, _ := cmd.Flags().GetInt("retirement-age")
			label, _ := cmd.Flags().GetString("label")

			prefs := loadPrefs(cmd)
			result, err := newEngine(cmd, nil).CalculateRetirementPlan(domain.RetirementTerms{
				Label:                    label,
				CurrentAge:               currentAge,
				RetirementAge:            retirementAge,
				CurrentSavings:           values[0],
				CurrentMonthlyExpenses:   values[1],
				ExpectedInflationPercent: values[2],
				ExpectedReturnPercent:    values[3],
			})
			if err != nil {
				return err
			}
			return writeResults(cmd, prefs, &domain.WorksheetResult{Name: "retirement", Retirements: []domain.RetirementResult{*result}})
		},
	}
	cmd.Flags().Int("current-age", 0, "Current age in years (required)")
	cmd.Flags().Int("retirement-age", 0, "Planned retirement age (required)")
	cmd.Flags().Float64("savings", 0, "Current retirement savings in rupees")
	cmd.Flags().Float64("expenses", 0, "Current monthly expenses in rupees (required)")
	cmd.Flags().Float64("inflation", 6, "Expected annual inflation in percent")
	cmd.Flags().Float64("return", 12, "Expected annual return in percent")
	cmd.Flags().String("label", "", "Optional label for the plan")
	addFormatFlag(cmd)
	_ = cmd.MarkFlagRequired("current-age")
	_ = cmd.MarkFlagRequired("retirement-age")
	_ = cmd.MarkFlagRequired("expenses")
	return cmd
}

func taxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Calculate income tax under the New or Old regime",
		Example: `  bandhu tax --income 1500000
  bandhu tax --income 1500000 --regime old --80c 150000 --hra 120000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := loadPrefs(cmd)
			terms, err := taxTermsFromFlags(cmd, prefs)
			if err != nil {
				return err
			}
			result, err := newEngine(cmd, nil).CalculateTax(terms)
			if err != nil {
				return err
			}
			return writeResults(cmd, prefs, &domain.WorksheetResult{Name: "income tax", Taxes: []domain.TaxResult{*result}})
		},
	}
	addTaxFlags(cmd)
	cmd.Flags().String("label", "", "Optional label for the calculation")
	addFormatFlag(cmd)
	return cmd
}

func addTaxFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("income", 0, "Gross annual income in rupees (required)")
	cmd.Flags().String("regime", "", "Tax regime (new, old); defaults to tax.default_regime")
	cmd.Flags().Float64("80c", 0, "Section 80C investments (old regime only)")
	cmd.Flags().Float64("hra", 0, "HRA exemption (old regime only)")
	cmd.Flags().Float64("home-loan", 0, "Home loan interest (old regime only)")
	_ = cmd.MarkFlagRequired("income")
}

// taxTermsFromFlags builds tax terms from the shared tax flags.
func taxTermsFromFlags(cmd *cobra.Command, prefs config.Preferences) (domain.TaxTerms, error) {
	values, err := decimalFlags(cmd, "income", "80c", "hra", "home-loan")
	if err != nil {
		return domain.TaxTerms{}, err
	}

	regime := prefs.Tax.DefaultRegime
	if s, _ := cmd.Flags().GetString("regime"); s != "" {
		if regime, err = domain.ParseTaxRegime(s); err != nil {
			return domain.TaxTerms{}, err
		}
	}
	label, _ := cmd.Flags().GetString("label")

	return domain.TaxTerms{
		Label:                label,
		GrossAnnualIncome:    values[0],
		Regime:               regime,
		Section80CDeductions: values[1],
		HRAExemption:         values[2],
		HomeLoanInterest:     values[3],
	}, nil
}
