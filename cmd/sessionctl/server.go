package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cookie-session/pkg/audit"
	"github.com/doodlesbykumbi/cookie-session/pkg/authenticator/static"
	"github.com/doodlesbykumbi/cookie-session/pkg/key"
	"github.com/doodlesbykumbi/cookie-session/pkg/logger"
	"github.com/doodlesbykumbi/cookie-session/pkg/server"
	"github.com/doodlesbykumbi/cookie-session/pkg/server/endpoints"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the session server",
	Long: `Run the session server

The server requires AUTH_SECRET and refuses to start when it is missing or is
not a base64-encoded 32-byte key. Logins are checked against the
credentials_file configuration attribute; without it POST /session is
disabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Fail fast on the key before touching anything else.
		if err := key.Verify(os.Getenv(key.DefaultEnv)); err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).WithComponent("server")

		manager, err := newManager(cfg)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")

		opts := []server.Option{
			server.WithLogger(log),
			server.WithRegistry(reg),
			server.WithAddress(host, port),
		}
		if cfg.AuditEnabled {
			opts = append(opts, server.WithAuditor(audit.NewLogger(os.Stdout, "cookie-session")))
		}
		if cfg.CredentialsFile != "" {
			authn, err := static.LoadFile(cfg.CredentialsFile)
			if err != nil {
				return err
			}
			opts = append(opts, server.WithAuthenticator(authn))
		} else {
			log.Warn("credentials_file is not set; logins are disabled")
		}

		s := server.NewServer(cfg, manager, opts...)
		endpoints.RegisterAll(s)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info(fmt.Sprintf("Running server at http://%s...", s.Addr()), logger.Fields("cipher", cfg.Cipher, "session_ttl", cfg.SessionTTL))
			errCh <- s.Start()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
}
