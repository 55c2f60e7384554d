package main

import (
	"github.com/spf13/cobra"
)

// configurationCmd represents the configuration command
var configurationCmd = &cobra.Command{
	Use:   "configuration",
	Short: "Inspect session configuration",
	Long:  `Inspect session configuration settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireSubcommand(cmd, "show")
	},
}

func init() {
	rootCmd.AddCommand(configurationCmd)
}
