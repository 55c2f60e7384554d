package main

import (
	"github.com/spf13/cobra"
)

// credentialsCmd represents the credentials command
var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Manage the login credentials file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireSubcommand(cmd, "hash")
	},
}

func init() {
	rootCmd.AddCommand(credentialsCmd)
}
