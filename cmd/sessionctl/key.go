package main

import (
	"github.com/spf13/cobra"
)

// keyCmd represents the key command
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the session encryption key",
	Long:  `Manage the session encryption key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireSubcommand(cmd, "generate, verify")
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)
}
