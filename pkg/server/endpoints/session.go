package endpoints

import (
	"net/http"
	"time"

	"github.com/doodlesbykumbi/cookie-session/pkg/audit"
	"github.com/doodlesbykumbi/cookie-session/pkg/authenticator"
	"github.com/doodlesbykumbi/cookie-session/pkg/logger"
	"github.com/doodlesbykumbi/cookie-session/pkg/server"
	"github.com/doodlesbykumbi/cookie-session/pkg/server/middleware"
	"github.com/doodlesbykumbi/cookie-session/pkg/session"
)

// SessionResponse describes the caller's session. The CSRF token is returned
// so single-page clients can echo it without reading the meta tag.
type SessionResponse struct {
	Subject   string    `json:"subject"`
	CSRFToken string    `json:"csrf_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newSessionResponse(rec session.Record) SessionResponse {
	return SessionResponse{
		Subject:   rec.Subject,
		CSRFToken: rec.CSRFToken,
		ExpiresAt: rec.Expires().UTC(),
	}
}

// RegisterSessionEndpoints registers login, whoami, logout and the CSRF meta tag
func RegisterSessionEndpoints(s *server.Server) {
	sessions := s.Sessions

	// POST /session - log in, no session required
	s.Router.Handle("/session", handleLogin(s)).Methods("POST")

	// GET /session - describe the current session
	s.Router.Handle("/session", sessions.RequireSession(handleWhoami())).Methods("GET")

	// DELETE /session - log out, CSRF-checked
	s.Router.Handle("/session", sessions.RequireSession(handleLogout(s))).Methods("DELETE")

	// GET /session/meta - CSRF meta tag for server-rendered pages
	s.Router.Handle("/session/meta", sessions.RequireSession(handleMeta())).Methods("GET")
}

func handleLogin(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context()).WithComponent("login")

		if s.Authenticator == nil {
			respondWithError(w, http.StatusNotImplemented, "login is not configured")
			return
		}

		if err := r.ParseForm(); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed form body")
			return
		}
		login := r.PostForm.Get("login")
		clientIP := middleware.ClientIP(r)

		subject, err := s.Authenticator.Authenticate(r.Context(), authenticator.AuthenticatorInput{
			Login:       login,
			Credentials: []byte(r.PostForm.Get("password")),
			ClientIP:    clientIP,
		})
		if err != nil {
			log.WithError(err).Info("login failed", logger.Fields(logger.FieldSubject, login))
			s.Auditor.Log(audit.LoginFailedEvent{
				Login:             login,
				ClientIP:          clientIP,
				AuthenticatorName: s.Authenticator.Name(),
				ErrorMessage:      err.Error(),
			})
			middleware.Unauthorized(w, err)
			return
		}

		rec, token, err := s.Sessions.Manager().Issue(subject)
		if err != nil {
			log.WithError(err).Error("issue session")
			respondWithError(w, http.StatusInternalServerError, "unable to issue session")
			return
		}

		s.Sessions.SetCookie(w, token, rec)
		s.Metrics.RecordIssued()
		s.Auditor.Log(audit.SessionIssuedEvent{
			Subject:           rec.Subject,
			ClientIP:          clientIP,
			AuthenticatorName: s.Authenticator.Name(),
			ExpiresAt:         rec.ExpiresAt,
		})
		log.Info("session issued", logger.Fields(logger.FieldSubject, rec.Subject))

		respondWithJSON(w, http.StatusCreated, newSessionResponse(rec))
	}
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := middleware.RecordFromContext(r.Context())
		if !ok {
			middleware.Unauthorized(w, nil)
			return
		}
		respondWithJSON(w, http.StatusOK, newSessionResponse(rec))
	}
}

func handleLogout(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := middleware.RecordFromContext(r.Context())
		if !ok {
			middleware.Unauthorized(w, nil)
			return
		}

		// The token itself stays valid until it expires; logout only
		// removes it from the browser.
		s.Sessions.ClearCookie(w)
		s.Metrics.RecordEnded()
		s.Auditor.Log(audit.SessionEndedEvent{
			Subject:  rec.Subject,
			ClientIP: middleware.ClientIP(r),
		})

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleMeta() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := middleware.RecordFromContext(r.Context())
		if !ok {
			middleware.Unauthorized(w, nil)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(rec.MetaTag()))
	}
}
