package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/doodlesbykumbi/cookie-session/pkg/audit"
	"github.com/doodlesbykumbi/cookie-session/pkg/authenticator"
	"github.com/doodlesbykumbi/cookie-session/pkg/config"
	"github.com/doodlesbykumbi/cookie-session/pkg/logger"
	"github.com/doodlesbykumbi/cookie-session/pkg/metrics"
	"github.com/doodlesbykumbi/cookie-session/pkg/server/middleware"
	"github.com/doodlesbykumbi/cookie-session/pkg/session"
)

type Server struct {
	Config        *config.SessionConfig
	Sessions      *middleware.Sessions
	Authenticator authenticator.Authenticator
	Auditor       audit.Auditor
	Metrics       metrics.Recorder
	Gatherer      prometheus.Gatherer
	Logger        *logger.Logger
	Router        *mux.Router

	accessLog io.Writer
	srv       *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithAuthenticator sets the login credential check behind POST /session.
func WithAuthenticator(a authenticator.Authenticator) Option {
	return func(s *Server) { s.Authenticator = a }
}

func WithAuditor(a audit.Auditor) Option {
	return func(s *Server) { s.Auditor = a }
}

// WithRegistry registers session metrics with reg and serves them on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.Metrics = metrics.NewCollector(reg)
		s.Gatherer = reg
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.Logger = l }
}

// WithAccessLog sets where the combined-format access log goes.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) { s.accessLog = w }
}

// WithAddress sets the listen address used by Start.
func WithAddress(host, port string) Option {
	return func(s *Server) { s.srv.Addr = host + ":" + port }
}

func NewServer(cfg *config.SessionConfig, manager *session.Manager, opts ...Option) *Server {
	router := mux.NewRouter()
	s := &Server{
		Config:    cfg,
		Auditor:   audit.Nop{},
		Metrics:   metrics.Nop{},
		Logger:    logger.Nop(),
		Router:    router,
		accessLog: os.Stdout,
		srv: &http.Server{
			Addr:              ":8080",
			WriteTimeout:      15 * time.Second,
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Sessions = middleware.NewSessions(manager, cfg, s.Auditor, s.Metrics)
	router.Use(middleware.RequestID(s.Logger))

	s.srv.Handler = s.Handler()
	return s
}

// Handler returns the router wrapped in access logging and panic recovery.
func (s *Server) Handler() http.Handler {
	return handlers.LoggingHandler(s.accessLog,
		handlers.RecoveryHandler(
			handlers.RecoveryLogger(recoveryLogger{s.Logger}),
			handlers.PrintRecoveryStack(false),
		)(s.Router),
	)
}

// recoveryLogger reports recovered panics through the structured logger.
type recoveryLogger struct {
	log *logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error(fmt.Sprint(v...), logger.Fields(logger.FieldComponent, "recovery"))
}

func (s *Server) Addr() string {
	return s.srv.Addr
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
