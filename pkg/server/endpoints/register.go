package endpoints

import "github.com/doodlesbykumbi/cookie-session/pkg/server"

// RegisterAll registers all endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterSessionEndpoints(srv)
	RegisterStatusEndpoints(srv)
	RegisterMetricsEndpoint(srv)
}
