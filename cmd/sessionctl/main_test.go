package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/doodlesbykumbi/cookie-session/pkg/key"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--dotenv="}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func setupEnv(t *testing.T) {
	t.Helper()

	t.Setenv("SESSION_CONFIG_PATH", t.TempDir())
	encoded, err := key.Generate()
	require.NoError(t, err)
	t.Setenv(key.DefaultEnv, encoded)
}

func TestKeyGenerate(t *testing.T) {
	out, err := run(t, "", "key", "generate", "--env-file", "")
	require.NoError(t, err)

	_, err = key.Load(out)
	assert.NoError(t, err)
}

func TestKeyGenerateEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OTHER=kept\n"), 0o600))

	out, err := run(t, "", "key", "generate", "--env-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote AUTH_SECRET")

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "kept", env["OTHER"])
	_, err = key.Load(env[key.DefaultEnv])
	assert.NoError(t, err)
}

func TestKeyVerify(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "key", "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "valid 256-bit key")

	t.Setenv(key.DefaultEnv, "c2hvcnQ=")
	_, err = run(t, "", "key", "verify")
	var cfgErr *key.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestTokenIssueAndInspect(t *testing.T) {
	setupEnv(t)

	token, err := run(t, "", "token", "issue", "-o", "text", "user-42")
	require.NoError(t, err)
	token = strings.TrimSpace(token)

	out, err := run(t, "", "token", "inspect", token)
	require.NoError(t, err)
	assert.Contains(t, out, "subject:    user-42")

	_, err = run(t, "", "token", "inspect", "AAAA")
	assert.ErrorContains(t, err, "token rejected (auth)")
}

func TestCredentialsHash(t *testing.T) {
	out, err := run(t, "", "credentials", "hash", "--cost", "4", "--login", "", "s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out)), []byte("s3cret")))

	out, err = run(t, "pw-from-stdin\n", "credentials", "hash", "--cost", "4", "--login", "alice")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "alice: "), out)
}

func TestConfigurationShow(t *testing.T) {
	setupEnv(t)
	t.Setenv("SESSION_COOKIE_NAME", "sid")

	out, err := run(t, "", "configuration", "show", "-o", "text")
	require.NoError(t, err)
	assert.Regexp(t, `cookie_name\s+sid\s+environment`, out)

	out, err = run(t, "", "configuration", "show", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"config_file"`)
}
