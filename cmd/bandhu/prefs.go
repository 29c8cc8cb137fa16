package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/budgetbandhu/bandhu/internal/config"
	"github.com/spf13/cobra"
)

func prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change saved preferences",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current preferences as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := loadPrefs(cmd)
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(prefs)
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a single preference",
		Long: fmt.Sprintf(`Change a single preference and save it.

Valid keys: %s`, strings.Join(config.PreferenceKeys(), ", ")),
		Example: `  bandhu prefs set display.format json
  bandhu prefs set tax.default_regime old`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := loadPrefs(cmd)
			if err := prefs.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.SavePreferences(prefs); err != nil {
				return fmt.Errorf("failed to save preferences: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the preferences file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.PreferencesPath())
		},
	}

	cmd.AddCommand(show, set, path)
	return cmd
}
