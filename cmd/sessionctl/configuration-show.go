package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cookie-session/pkg/config"
)

// configurationShowCmd represents the configuration show command
var configurationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configuration attributes and their sources",
	Long: `Show configuration attributes and their sources.

The values displayed by this command reflect the current state of the
configuration sources: defaults, the config file, and SESSION_* environment
variables. They may not reflect the values used by a running server.

Config file location: /etc/cookie-session/session.yml (or SESSION_CONFIG_PATH)

Example:
  sessionctl configuration show
  sessionctl configuration show --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		if err := showConfiguration(cmd.OutOrStdout(), output); err != nil {
			return fmt.Errorf("failed to show configuration: %w", err)
		}
		return nil
	},
}

func init() {
	configurationCmd.AddCommand(configurationShowCmd)
	configurationShowCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func showConfiguration(w io.Writer, output string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if output == "json" {
		jsonOutput, err := cfg.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, jsonOutput)
		return nil
	}

	fmt.Fprint(w, cfg.FormatText())
	return nil
}
