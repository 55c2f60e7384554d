// Package endpoints registers the HTTP routes on a server.Server.
//
//   - POST /session: log in with form fields login and password
//   - GET /session: describe the current session
//   - DELETE /session: log out
//   - GET /session/meta: the CSRF token as an HTML meta tag
//   - GET /status: liveness and authenticator status
//   - GET /metrics: Prometheus metrics
package endpoints
