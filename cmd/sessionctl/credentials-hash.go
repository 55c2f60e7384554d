package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/cookie-session/pkg/authenticator/static"
)

// credentialsHashCmd represents the credentials > hash command
var credentialsHashCmd = &cobra.Command{
	Use:   "hash [password]",
	Short: "Hash a password for the credentials file",
	Long: `Hash a password with bcrypt for the credentials file.

The password is read from the first line of stdin when no argument is given.
With --login the output is a ready-to-append YAML entry.

Example:
  sessionctl credentials hash --login alice s3cret >> credentials.yml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("no password given")
			}
			password = strings.TrimRight(line, "\r\n")
		}
		if password == "" {
			return errors.New("password is empty")
		}

		cost, _ := cmd.Flags().GetInt("cost")
		hash, err := static.HashPassword([]byte(password), cost)
		if err != nil {
			return err
		}

		login, _ := cmd.Flags().GetString("login")
		if login == "" {
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		}

		entry, err := yaml.Marshal(map[string]string{login: hash})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(entry))
		return nil
	},
}

func init() {
	credentialsCmd.AddCommand(credentialsHashCmd)
	credentialsHashCmd.Flags().String("login", "", "emit a YAML entry for this login")
	credentialsHashCmd.Flags().Int("cost", static.DefaultCost, "bcrypt cost")
}
