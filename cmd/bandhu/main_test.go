package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with isolated preferences and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return executeInConfig(t, args...)
}

func executeInConfig(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "bandhu", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "bandhu emi --principal")
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{
		"emi", "lumpsum", "retirement", "tax", "compare", "breakeven",
		"calculate", "validate", "prefs", "interactive", "version",
	}

	registered := make(map[string]bool)
	for _, c := range newRootCmd().Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "expected command %q to be registered", name)
	}
}

func TestEMICommand(t *testing.T) {
	out, err := execute(t, "emi", "--principal", "5000000", "--rate", "8.5", "--years", "20")
	require.NoError(t, err)

	assert.Contains(t, out, "BUDGET BANDHU REPORT")
	assert.Contains(t, out, "₹43,391.16")
}

func TestEMICommand_RequiresPrincipal(t *testing.T) {
	_, err := execute(t, "emi", "--rate", "8.5", "--years", "20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "principal")
}

func TestEMICommand_RejectsNonFiniteInput(t *testing.T) {
	_, err := execute(t, "emi", "--principal", "NaN", "--rate", "8.5", "--years", "20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a finite number")
}

func TestEMICommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "emi", "--principal", "100000", "--rate", "10", "--years", "1", "--format", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestLumpsumCommand_JSON(t *testing.T) {
	out, err := execute(t, "lumpsum", "--principal", "100000", "--rate", "0", "--years", "5", "-f", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, out, "lumpsums")
}

func TestRetirementCommand(t *testing.T) {
	out, err := execute(t, "retirement",
		"--current-age", "30", "--retirement-age", "60",
		"--savings", "500000", "--expenses", "50000")
	require.NoError(t, err)
	assert.Contains(t, out, "BUDGET BANDHU REPORT")
}

func TestTaxCommand(t *testing.T) {
	t.Run("default regime is new", func(t *testing.T) {
		out, err := execute(t, "tax", "--income", "1500000")
		require.NoError(t, err)
		assert.Contains(t, out, "₹97,500.00")
	})

	t.Run("old regime with 80C", func(t *testing.T) {
		out, err := execute(t, "tax", "--income", "1500000", "--regime", "old", "--80c", "150000")
		require.NoError(t, err)
		assert.Contains(t, out, "₹2,10,600.00")
	})

	t.Run("invalid regime", func(t *testing.T) {
		_, err := execute(t, "tax", "--income", "1500000", "--regime", "flat")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown tax regime")
	})
}

func TestCompareCommand(t *testing.T) {
	t.Run("regimes", func(t *testing.T) {
		out, err := execute(t, "compare", "--income", "1500000", "--80c", "150000", "--home-loan", "200000")
		require.NoError(t, err)
		assert.Contains(t, out, "NEW vs OLD REGIME")
		assert.Contains(t, out, "Recommended: New Regime")
	})

	t.Run("templates", func(t *testing.T) {
		out, err := execute(t, "compare", "--income", "1500000", "--template", "max_80c")
		require.NoError(t, err)
		assert.Contains(t, out, "INCOME TAX WHAT-IF COMPARISON")
	})

	t.Run("list templates", func(t *testing.T) {
		out, err := execute(t, "compare", "--list-templates")
		require.NoError(t, err)
		assert.Contains(t, out, "max_80c")
	})

	t.Run("income required", func(t *testing.T) {
		_, err := execute(t, "compare")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--income is required")
	})

	t.Run("invalid transform", func(t *testing.T) {
		_, err := execute(t, "compare", "--income", "1500000", "--transform", "no_such_transform")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid transform")
	})
}

func TestBreakevenCommand(t *testing.T) {
	t.Run("single income", func(t *testing.T) {
		out, err := execute(t, "breakeven", "deductions", "--income", "1500000")
		require.NoError(t, err)
		assert.Contains(t, out, "BREAK-EVEN ANALYSIS")
		assert.Contains(t, out, "₹5,43,75")
	})

	t.Run("income ladder", func(t *testing.T) {
		out, err := execute(t, "breakeven", "deductions", "--income", "1000000,1500000,2500000")
		require.NoError(t, err)
		assert.Contains(t, out, "DEDUCTION BREAK-EVEN BY INCOME")
	})

	t.Run("loan", func(t *testing.T) {
		out, err := execute(t, "breakeven", "loan", "--budget", "10000", "--rate", "8.5", "--years", "20")
		require.NoError(t, err)
		assert.Contains(t, out, "₹11,52,30")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "breakeven", "loan", "--budget", "10000", "--rate", "8.5", "--years", "20", "-f", "json")
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	})

	t.Run("bad tolerance", func(t *testing.T) {
		_, err := execute(t, "breakeven", "loan", "--budget", "10000", "--rate", "8.5", "--years", "20", "--tolerance=-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--tolerance must be positive")
	})
}

const sampleWorksheet = `name: household
loans:
  - label: home
    principal: 5000000
    annual_interest_rate_percent: 8.5
    tenure_years: 20
taxes:
  - gross_annual_income: 1500000
    regime: old
    section_80c: 150000
`

func writeWorksheet(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCalculateCommand(t *testing.T) {
	path := writeWorksheet(t, "household.yaml", sampleWorksheet)

	out, err := execute(t, "calculate", path, "--format", "json")
	require.NoError(t, err)

	var result domain.WorksheetResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "household", result.Name)
	require.Len(t, result.Loans, 1)
	require.Len(t, result.Taxes, 1)
	assert.Equal(t, "210600", result.Taxes[0].TotalTax.String())
}

func TestCalculateCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "calculate", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load worksheet")
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeWorksheet(t, "household.yaml", sampleWorksheet)
		out, err := execute(t, "validate", path)
		require.NoError(t, err)
		assert.Contains(t, out, "is valid (2 calculations)")
	})

	t.Run("empty", func(t *testing.T) {
		path := writeWorksheet(t, "empty.yaml", "name: empty\n")
		_, err := execute(t, "validate", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no calculations provided")
	})
}

func TestPrefsCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := executeInConfig(t, "prefs", "set", "display.schedule_rows", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Set display.schedule_rows = 5")

	out, err = executeInConfig(t, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "schedule_rows = 5")

	_, err = executeInConfig(t, "prefs", "set", "display.colour", "on")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preference")
}

func TestPrefsCommand_DefaultRegimeAppliesToTax(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := executeInConfig(t, "prefs", "set", "tax.default_regime", "old")
	require.NoError(t, err)

	out, err := executeInConfig(t, "tax", "--income", "1500000", "--80c", "150000")
	require.NoError(t, err)
	assert.Contains(t, out, "₹2,10,600.00")
}

func TestBuildInteractiveWorksheet(t *testing.T) {
	t.Run("emi", func(t *testing.T) {
		ws, err := buildInteractiveWorksheet("emi", map[string]string{
			"principal": "50,00,000", "rate": "8.5", "years": "20",
		}, domain.RegimeNew)
		require.NoError(t, err)
		require.Len(t, ws.Loans, 1)
		assert.Equal(t, "5000000", ws.Loans[0].Principal.String())
		assert.Equal(t, 20, ws.Loans[0].TenureYears)
	})

	t.Run("tax falls back to default regime", func(t *testing.T) {
		ws, err := buildInteractiveWorksheet("tax", map[string]string{"income": "1500000"}, domain.RegimeOld)
		require.NoError(t, err)
		require.Len(t, ws.Taxes, 1)
		assert.Equal(t, domain.RegimeOld, ws.Taxes[0].Regime)
		assert.True(t, ws.Taxes[0].Section80CDeductions.IsZero())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := buildInteractiveWorksheet("retirement", map[string]string{"current_age": "thirty"}, domain.RegimeNew)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "whole number")
	})

	t.Run("unknown calculator", func(t *testing.T) {
		_, err := buildInteractiveWorksheet("sip", nil, domain.RegimeNew)
		require.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bandhu dev")
}
