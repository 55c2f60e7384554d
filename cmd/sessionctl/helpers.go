package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cookie-session/pkg/config"
	"github.com/doodlesbykumbi/cookie-session/pkg/key"
	"github.com/doodlesbykumbi/cookie-session/pkg/seal"
	"github.com/doodlesbykumbi/cookie-session/pkg/session"
)

func requireSubcommand(cmd *cobra.Command, subcommands string) error {
	_ = cmd.Help()
	return fmt.Errorf("command '%s' requires a subcommand (%s)", cmd.Name(), subcommands)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.SessionConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newManager builds the session manager from AUTH_SECRET and cfg. The key is
// checked first so a bad key is reported before anything else.
func newManager(cfg *config.SessionConfig) (*session.Manager, error) {
	k, err := key.FromEnv(key.DefaultEnv)
	if err != nil {
		return nil, err
	}

	alg, err := cfg.Algorithm()
	if err != nil {
		return nil, err
	}
	cipher, err := seal.New(alg, k)
	if err != nil {
		return nil, fmt.Errorf("unable to initiate cipher: %w", err)
	}

	return session.NewManager(cipher, session.WithTTL(cfg.TTL()))
}
