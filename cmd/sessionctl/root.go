package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sessionctl",
	Short: "Run and operate the encrypted session cookie service",
	Long: `Run and operate the encrypted session cookie service.

The session key is read from AUTH_SECRET. Variables may also be supplied in a
.env file, which is loaded before any command runs without overriding
variables already set in the environment.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("dotenv")
		return loadDotEnv(envFile)
	},
}

// loadDotEnv loads path into the environment. The default .env is optional;
// an explicitly named file must exist.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) && path == defaultDotEnv {
		return nil
	}
	return err
}

const defaultDotEnv = ".env"

func init() {
	rootCmd.PersistentFlags().String("dotenv", defaultDotEnv, "environment file to load before running")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
