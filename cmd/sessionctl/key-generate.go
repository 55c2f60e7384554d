package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cookie-session/pkg/key"
)

// keyGenerateCmd represents the key > generate command
var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a session encryption key",
	Long: `
Generate a session encryption key

Use this command to generate a new Base64-encoded 256 bit key. Place it in the
AUTH_SECRET environment variable of the server. Replacing the key invalidates
every outstanding session.

Example:

$ export AUTH_SECRET="$(sessionctl key generate)"
$ sessionctl key generate --env-file .env
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		encoded, err := key.Generate()
		if err != nil {
			return err
		}

		envFile, _ := cmd.Flags().GetString("env-file")
		if envFile == "" {
			fmt.Fprint(cmd.OutOrStdout(), encoded)
			return nil
		}
		if err := writeEnvKey(envFile, key.DefaultEnv, encoded); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", key.DefaultEnv, envFile)
		return nil
	},
}

// writeEnvKey sets name=value in the env file at path, keeping other entries.
func writeEnvKey(path, name, value string) error {
	env := map[string]string{}
	if _, err := os.Stat(path); err == nil {
		if env, err = godotenv.Read(path); err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	env[name] = value
	if err := godotenv.Write(env, path); err != nil {
		return err
	}
	return os.Chmod(path, 0o600)
}

func init() {
	keyCmd.AddCommand(keyGenerateCmd)
	keyGenerateCmd.Flags().String("env-file", "", "write AUTH_SECRET into this env file instead of printing it")
}
