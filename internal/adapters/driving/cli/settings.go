package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driven/config/file"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage configuration",
	Long: `View and change the TOML configuration at ~/.canopy/config.toml.

List values place "(not set)" against keys with no value; unset keys fall
back to built-in defaults at run time. API keys are never stored here:
remote providers read them from --api-key or their environment variable.`,
	RunE: runSettingsList,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting and persist it immediately.

List values are comma separated:
  canopy settings set extensions ".md,.markdown"

Keys:
  ` + settingsKeyHelp(),
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingsKeyHelp renders the known keys for the set command's help text.
func settingsKeyHelp() string {
	help := ""
	for _, key := range file.KnownKeys() {
		if help != "" {
			help += "\n  "
		}
		help += key
	}
	return help
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Configuration (%s)\n\n", configStore.Path())

	for _, key := range file.KnownKeys() {
		value, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %-26s (not set)\n", key)
			continue
		}
		cmd.Printf("  %-26s %v\n", key, value)
	}

	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]
	if !file.IsKnownKey(key) {
		return fmt.Errorf("unknown setting %q", key)
	}

	value, ok := configStore.Get(key)
	if !ok {
		cmd.Printf("%s is not set\n", key)
		return nil
	}

	cmd.Printf("%v\n", value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]
	value, err := file.ParseValue(key, args[1])
	if err != nil {
		return err
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}
