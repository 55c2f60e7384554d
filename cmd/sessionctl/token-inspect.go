package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cookie-session/pkg/session"
)

// tokenInspectCmd represents the token > inspect command
var tokenInspectCmd = &cobra.Command{
	Use:   "inspect <token>",
	Short: "Decrypt and validate a session token",
	Long: `Decrypt and validate a session token.

Unlike the server, which answers every failure with the same 401, this
command reports why a token was rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		manager, err := newManager(cfg)
		if err != nil {
			return err
		}

		rec, err := manager.ValidateString(args[0], time.Now())
		if err != nil {
			if kind, ok := session.KindOf(err); ok {
				return fmt.Errorf("token rejected (%s): %w", kind, err)
			}
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "subject:    %s\n", rec.Subject)
		fmt.Fprintf(out, "expires_at: %s\n", rec.Expires().UTC().Format(time.RFC3339))
		fmt.Fprintf(out, "csrf_token: %s\n", rec.CSRFToken)
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenInspectCmd)
}
