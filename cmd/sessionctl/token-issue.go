package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// tokenIssueCmd represents the token > issue command
var tokenIssueCmd = &cobra.Command{
	Use:   "issue <subject>",
	Short: "Issue a session token for a subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		manager, err := newManager(cfg)
		if err != nil {
			return err
		}

		rec, token, err := manager.Issue(args[0])
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "json" {
			data, err := json.MarshalIndent(map[string]interface{}{
				"token":      token,
				"subject":    rec.Subject,
				"csrf_token": rec.CSRFToken,
				"expires_at": rec.ExpiresAt,
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenIssueCmd)
	tokenIssueCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}
