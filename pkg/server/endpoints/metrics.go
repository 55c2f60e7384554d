package endpoints

import (
	"github.com/doodlesbykumbi/cookie-session/pkg/metrics"
	"github.com/doodlesbykumbi/cookie-session/pkg/server"
)

// RegisterMetricsEndpoint serves Prometheus metrics on GET /metrics when the
// server has a registry.
func RegisterMetricsEndpoint(s *server.Server) {
	if s.Gatherer == nil {
		return
	}
	s.Router.Handle("/metrics", metrics.Handler(s.Gatherer)).Methods("GET")
}
