package main

import (
	"github.com/spf13/cobra"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue and inspect session tokens",
	Long: `Issue and inspect session tokens with the server's key and settings.

These are operator tools for debugging; the tokens are identical to the
cookie values the server issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireSubcommand(cmd, "issue, inspect")
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
