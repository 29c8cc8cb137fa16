package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/config"
	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// promptField is one input of the interactive form.
type promptField struct {
	key         string
	title       string
	placeholder string
	integer     bool
	value       string
}

var promptFields = map[string][]promptField{
	"emi": {
		{key: "principal", title: "Loan amount (₹)", placeholder: "5000000"},
		{key: "rate", title: "Annual interest rate (%)", placeholder: "8.5"},
		{key: "years", title: "Tenure (years)", placeholder: "20", integer: true},
	},
	"lumpsum": {
		{key: "principal", title: "Amount invested (₹)", placeholder: "100000"},
		{key: "rate", title: "Expected annual return (%)", placeholder: "12"},
		{key: "years", title: "Years invested", placeholder: "10", integer: true},
	},
	"retirement": {
		{key: "current_age", title: "Current age", placeholder: "30", integer: true},
		{key: "retirement_age", title: "Retirement age", placeholder: "60", integer: true},
		{key: "savings", title: "Current savings (₹)", placeholder: "500000"},
		{key: "expenses", title: "Monthly expenses today (₹)", placeholder: "50000"},
		{key: "inflation", title: "Expected inflation (%)", placeholder: "6"},
		{key: "return", title: "Expected return (%)", placeholder: "12"},
	},
	"tax": {
		{key: "income", title: "Gross annual income (₹)", placeholder: "1500000"},
		{key: "80c", title: "Section 80C investments (₹, Old Regime)", placeholder: "0"},
		{key: "hra", title: "HRA exemption (₹, Old Regime)", placeholder: "0"},
		{key: "home_loan", title: "Home loan interest (₹, Old Regime)", placeholder: "0"},
	},
}

func interactiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Answer a few prompts and run a single calculation",
		Long: `Walk through a calculator with prompts instead of flags.

Use bandhu-tui for the full-screen interface with live sliders.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := loadPrefs(cmd)
			accessible, _ := cmd.Flags().GetBool("accessible")

			calculator := "emi"
			pick := huh.NewForm(huh.NewGroup(
				huh.NewSelect[string]().
					Title("Which calculator?").
					Options(
						huh.NewOption("EMI Calculator", "emi"),
						huh.NewOption("Lumpsum Growth", "lumpsum"),
						huh.NewOption("Retirement Planner", "retirement"),
						huh.NewOption("Income Tax", "tax"),
					).
					Value(&calculator),
			)).WithAccessible(accessible)
			if err := pick.RunWithContext(cmd.Context()); err != nil {
				return err
			}

			fields := make([]promptField, len(promptFields[calculator]))
			copy(fields, promptFields[calculator])

			inputs := make([]huh.Field, 0, len(fields)+1)
			regime := string(prefs.Tax.DefaultRegime)
			if calculator == "tax" {
				inputs = append(inputs, huh.NewSelect[string]().
					Title("Tax regime").
					Options(
						huh.NewOption("New Regime", string(domain.RegimeNew)),
						huh.NewOption("Old Regime", string(domain.RegimeOld)),
					).
					Value(&regime))
			}
			for i := range fields {
				f := &fields[i]
				inputs = append(inputs, huh.NewInput().
					Title(f.title).
					Placeholder(f.placeholder).
					Value(&f.value).
					Validate(func(s string) error {
						_, err := parsePromptValue(*f, s)
						return err
					}))
			}

			form := huh.NewForm(huh.NewGroup(inputs...)).WithAccessible(accessible)
			if err := form.RunWithContext(cmd.Context()); err != nil {
				return err
			}

			values := make(map[string]string, len(fields)+1)
			for _, f := range fields {
				values[f.key] = f.value
			}
			if calculator == "tax" {
				values["regime"] = regime
			}

			ws, err := buildInteractiveWorksheet(calculator, values, prefs.Tax.DefaultRegime)
			if err != nil {
				return err
			}
			if err := config.NewInputParser().ValidateWorksheet(ws); err != nil {
				return err
			}

			results, err := newEngine(cmd, nil).RunWorksheet(cmd.Context(), ws)
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}
			return writeResults(cmd, prefs, results)
		},
	}
	addFormatFlag(cmd)
	cmd.Flags().Bool("accessible", false, "Use plain prompts suited to screen readers")
	return cmd
}

// parsePromptValue parses a prompt answer. Blank answers mean zero for
// optional deductions and are rejected elsewhere by validation.
func parsePromptValue(f promptField, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		s = "0"
	}
	if f.integer {
		n, err := strconv.Atoi(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("enter a whole number")
		}
		return decimal.NewFromInt(int64(n)), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("enter a number")
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("cannot be negative")
	}
	return d, nil
}

// buildInteractiveWorksheet turns prompt answers into a single-calculation
// worksheet.
func buildInteractiveWorksheet(calculator string, values map[string]string, defaultRegime domain.TaxRegime) (*domain.Worksheet, error) {
	fields, ok := promptFields[calculator]
	if !ok {
		return nil, fmt.Errorf("unknown calculator %q (valid: emi, lumpsum, retirement, tax)", calculator)
	}

	parsed := make(map[string]decimal.Decimal, len(fields))
	for _, f := range fields {
		d, err := parsePromptValue(f, values[f.key])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.title, err)
		}
		parsed[f.key] = d
	}
	asInt := func(key string) int { return int(parsed[key].IntPart()) }

	ws := &domain.Worksheet{}
	switch calculator {
	case "emi":
		ws.Name = "emi"
		ws.Loans = []domain.LoanTerms{{
			Principal:                 parsed["principal"],
			AnnualInterestRatePercent: parsed["rate"],
			TenureYears:               asInt("years"),
		}}
	case "lumpsum":
		ws.Name = "lumpsum"
		ws.Lumpsums = []domain.LumpsumTerms{{
			Principal:               parsed["principal"],
			AnnualReturnRatePercent: parsed["rate"],
			Years:                   asInt("years"),
		}}
	case "retirement":
		ws.Name = "retirement"
		ws.Retirements = []domain.RetirementTerms{{
			CurrentAge:               asInt("current_age"),
			RetirementAge:            asInt("retirement_age"),
			CurrentSavings:           parsed["savings"],
			CurrentMonthlyExpenses:   parsed["expenses"],
			ExpectedInflationPercent: parsed["inflation"],
			ExpectedReturnPercent:    parsed["return"],
		}}
	case "tax":
		regime := defaultRegime
		if r := values["regime"]; r != "" {
			p, err := domain.ParseTaxRegime(r)
			if err != nil {
				return nil, err
			}
			regime = p
		}
		ws.Name = "income tax"
		ws.Taxes = []domain.TaxTerms{{
			GrossAnnualIncome:    parsed["income"],
			Regime:               regime,
			Section80CDeductions: parsed["80c"],
			HRAExemption:         parsed["hra"],
			HomeLoanInterest:     parsed["home_loan"],
		}}
	}
	return ws, nil
}
