package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/budgetbandhu/bandhu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPreferences_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)
}

func TestSavePreferences_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	prefs := DefaultPreferences()
	require.NoError(t, prefs.Set("display.schedule_rows", "10"))
	require.NoError(t, prefs.Set("tax.default_regime", "Old"))
	require.NoError(t, SavePreferences(prefs))

	assert.FileExists(t, filepath.Join(dir, "bandhu", "config.toml"))

	loaded, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Display.ScheduleRows)
	assert.Equal(t, domain.RegimeOld, loaded.Tax.DefaultRegime)
	assert.Equal(t, "₹", loaded.Display.CurrencySymbol)
}

func TestLoadPreferences_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bandhu"), 0o755))
	require.NoError(t, os.WriteFile(PreferencesPath(), []byte("[display]\nformat = \"json\"\n"), 0o600))

	prefs, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, "json", prefs.Display.Format)
	assert.Equal(t, 20, prefs.Display.ScheduleRows)
	assert.Equal(t, domain.RegimeNew, prefs.Tax.DefaultRegime)
}

func TestLoadPreferences_Invalid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bandhu"), 0o755))
	require.NoError(t, os.WriteFile(PreferencesPath(), []byte("[display]\nschedule_rows = -3\n"), 0o600))

	prefs, err := LoadPreferences()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule_rows cannot be negative")
	assert.Equal(t, DefaultPreferences(), prefs, "Should fall back to defaults")
}

func TestPreferences_Set(t *testing.T) {
	prefs := DefaultPreferences()

	assert.NoError(t, prefs.Set("display.format", "yaml"))
	assert.Equal(t, "yaml", prefs.Display.Format)

	assert.ErrorContains(t, prefs.Set("display.schedule_rows", "many"), "expected an integer")
	assert.ErrorContains(t, prefs.Set("tax.default_regime", "flat"), "unknown tax regime")
	assert.ErrorContains(t, prefs.Set("display.colour", "red"), "unknown preference")
	assert.ErrorContains(t, prefs.Set("display.format", ""), "display.format cannot be empty")
}

func TestPreferenceKeys(t *testing.T) {
	assert.Equal(t, []string{
		"display.currency_symbol",
		"display.format",
		"display.schedule_rows",
		"tax.default_regime",
	}, PreferenceKeys())
}

func TestConfigDir_FallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".config", "bandhu"), ConfigDir())
}
