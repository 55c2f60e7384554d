package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cookie-session/pkg/key"
)

// keyVerifyCmd represents the key > verify command
var keyVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that AUTH_SECRET holds a usable key",
	Long: `Check that AUTH_SECRET holds a usable key.

Exits non-zero when the variable is missing, is not base64, or does not
decode to exactly 32 bytes. The server performs the same check at startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := key.FromEnv(key.DefaultEnv); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid 256-bit key\n", key.DefaultEnv)
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keyVerifyCmd)
}
