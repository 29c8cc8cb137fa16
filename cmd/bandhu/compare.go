package main

import (
	"fmt"
	"strings"

	"github.com/budgetbandhu/bandhu/internal/compare"
	"github.com/budgetbandhu/bandhu/internal/transform"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the New and Old regimes, or what-if alternatives to a base case",
		Long: `Without --template or --transform, compare runs the same income and
deductions through both regimes and recommends the cheaper one.

With templates or transforms, the income and deductions under --regime
form the base case and each template becomes one alternative. All
--transform specs combine into a single "custom" alternative.

Examples:
  bandhu compare --income 1500000 --80c 150000 --home-loan 200000
  bandhu compare --income 1500000 --regime old --80c 50000 --template max_80c,raise_10pct
  bandhu compare --income 1500000 --transform set_regime:regime=old --transform max_deduction:kind=80c
  bandhu compare --list-templates`,
		Args: cobra.NoArgs,
		RunE: runCompare,
	}
	cmd.Flags().Float64("income", 0, "Gross annual income in rupees")
	cmd.Flags().String("regime", "", "Base regime for what-if comparisons; defaults to tax.default_regime")
	cmd.Flags().Float64("80c", 0, "Section 80C investments")
	cmd.Flags().Float64("hra", 0, "HRA exemption")
	cmd.Flags().Float64("home-loan", 0, "Home loan interest")
	cmd.Flags().String("label", "", "Name for the base case")
	cmd.Flags().String("template", "", "Comma-separated templates to compare against the base")
	cmd.Flags().StringArray("transform", nil, "Transform spec name:key=value,... (repeatable)")
	cmd.Flags().Bool("list-templates", false, "List the available templates")
	cmd.Flags().Bool("list-transforms", false, "List the available transforms")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if list, _ := cmd.Flags().GetBool("list-templates"); list {
		fmt.Fprint(out, transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
		return nil
	}
	if list, _ := cmd.Flags().GetBool("list-transforms"); list {
		fmt.Fprintln(out, "Available Transforms:")
		for _, name := range transform.NewTransformRegistry().List() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	}

	if !cmd.Flags().Changed("income") {
		return fmt.Errorf("--income is required (or use --list-templates)")
	}

	prefs := loadPrefs(cmd)
	base, err := taxTermsFromFlags(cmd, prefs)
	if err != nil {
		return err
	}

	templatesStr, _ := cmd.Flags().GetString("template")
	specs, _ := cmd.Flags().GetStringArray("transform")
	format, _ := cmd.Flags().GetString("format")

	registry := transform.NewTransformRegistry()
	transforms := make([]transform.TaxTransform, 0, len(specs))
	for _, spec := range specs {
		t, err := registry.ParseTransformSpec(spec)
		if err != nil {
			return fmt.Errorf("invalid transform %q: %w", spec, err)
		}
		transforms = append(transforms, t)
	}

	engine := compare.NewCompareEngine(newEngine(cmd, nil))

	templateNames := transform.ParseTemplateList(templatesStr)
	if len(templateNames) == 0 && len(transforms) == 0 {
		rc, err := engine.CompareRegimes(base)
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
		return writeRegimeComparison(cmd, rc, format)
	}

	set, err := engine.Compare(cmd.Context(), base, compare.CompareOptions{
		Templates:  templateNames,
		Transforms: transforms,
	})
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	return writeComparisonSet(cmd, set, format)
}

func writeRegimeComparison(cmd *cobra.Command, rc *compare.RegimeComparison, format string) error {
	var (
		text string
		err  error
	)
	switch strings.ToLower(format) {
	case "csv":
		text, err = (&compare.CSVFormatter{}).FormatRegimes(rc)
	case "json":
		text, err = (&compare.JSONFormatter{Pretty: true}).FormatRegimes(rc)
	case "table", "console", "":
		text = (&compare.TableFormatter{}).FormatRegimes(rc)
	default:
		return fmt.Errorf("unknown output format: %s (valid: table, csv, json)", format)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}

func writeComparisonSet(cmd *cobra.Command, set *compare.ComparisonSet, format string) error {
	var (
		text string
		err  error
	)
	switch strings.ToLower(format) {
	case "csv":
		text, err = (&compare.CSVFormatter{}).Format(set)
	case "json":
		text, err = (&compare.JSONFormatter{Pretty: true}).Format(set)
	case "compact":
		text = (&compare.TableFormatter{}).FormatCompact(set) + "\n"
	case "table", "console", "":
		text = (&compare.TableFormatter{}).Format(set)
	default:
		return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", format)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}
