package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/budgetbandhu/bandhu/internal/domain"
)

// Preferences holds user display and tax defaults.
type Preferences struct {
	Display DisplayPreferences `toml:"display"`
	Tax     TaxPreferences     `toml:"tax"`
}

// DisplayPreferences controls how results are rendered.
type DisplayPreferences struct {
	Format         string `toml:"format"`
	ScheduleRows   int    `toml:"schedule_rows"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// TaxPreferences holds the defaults for tax commands.
type TaxPreferences struct {
	DefaultRegime domain.TaxRegime `toml:"default_regime"`
}

// DefaultPreferences returns the default preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Display: DisplayPreferences{
			Format:         "console",
			ScheduleRows:   20,
			CurrencySymbol: "₹",
		},
		Tax: TaxPreferences{
			DefaultRegime: domain.RegimeNew,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bandhu")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bandhu")
}

// PreferencesPath returns the full path to the preferences file.
func PreferencesPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadPreferences reads the preferences file, returning defaults if it doesn't exist.
func LoadPreferences() (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(PreferencesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}
	if err := prefs.Validate(); err != nil {
		return DefaultPreferences(), fmt.Errorf("invalid preferences in %s: %w", PreferencesPath(), err)
	}

	return prefs, nil
}

// SavePreferences writes the preferences to disk.
func SavePreferences(prefs Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}

	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(PreferencesPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating preferences file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(prefs)
}

// Validate checks preference values.
func (p *Preferences) Validate() error {
	if p.Display.Format == "" {
		return fmt.Errorf("display.format cannot be empty")
	}
	if p.Display.ScheduleRows < 0 {
		return fmt.Errorf("display.schedule_rows cannot be negative, got %d", p.Display.ScheduleRows)
	}
	if _, err := domain.ParseTaxRegime(string(p.Tax.DefaultRegime)); err != nil {
		return fmt.Errorf("tax.default_regime: %w", err)
	}
	return nil
}

var preferenceKeys = map[string]func(p *Preferences, value string) error{
	"display.format": func(p *Preferences, value string) error {
		p.Display.Format = value
		return nil
	},
	"display.schedule_rows": func(p *Preferences, value string) error {
		rows, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", value)
		}
		p.Display.ScheduleRows = rows
		return nil
	},
	"display.currency_symbol": func(p *Preferences, value string) error {
		p.Display.CurrencySymbol = value
		return nil
	},
	"tax.default_regime": func(p *Preferences, value string) error {
		regime, err := domain.ParseTaxRegime(value)
		if err != nil {
			return err
		}
		p.Tax.DefaultRegime = regime
		return nil
	},
}

// Set updates a single preference by its dotted key.
func (p *Preferences) Set(key, value string) error {
	setter, ok := preferenceKeys[key]
	if !ok {
		return fmt.Errorf("unknown preference %q (valid: %v)", key, PreferenceKeys())
	}
	if err := setter(p, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return p.Validate()
}

// PreferenceKeys lists the keys accepted by Set.
func PreferenceKeys() []string {
	keys := make([]string, 0, len(preferenceKeys))
	for k := range preferenceKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
