package middleware

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/doodlesbykumbi/cookie-session/pkg/audit"
	"github.com/doodlesbykumbi/cookie-session/pkg/config"
	"github.com/doodlesbykumbi/cookie-session/pkg/logger"
	"github.com/doodlesbykumbi/cookie-session/pkg/metrics"
	"github.com/doodlesbykumbi/cookie-session/pkg/session"
)

// CookieSettings controls how the session cookie is written.
type CookieSettings struct {
	Name     string
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// Sessions guards handlers with the session check and writes session cookies.
type Sessions struct {
	manager    *session.Manager
	cookie     CookieSettings
	csrfHeader string
	auditor    audit.Auditor
	metrics    metrics.Recorder
}

// NewSessions builds the middleware from cfg. A nil auditor or recorder
// disables that output.
func NewSessions(manager *session.Manager, cfg *config.SessionConfig, auditor audit.Auditor, recorder metrics.Recorder) *Sessions {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Sessions{
		manager: manager,
		cookie: CookieSettings{
			Name:     cfg.CookieName,
			Path:     cfg.CookiePath,
			Domain:   cfg.CookieDomain,
			Secure:   cfg.CookieSecure,
			SameSite: cfg.SameSite(),
		},
		csrfHeader: cfg.CSRFHeader,
		auditor:    auditor,
		metrics:    recorder,
	}
}

// Manager returns the session manager behind the middleware.
func (s *Sessions) Manager() *session.Manager {
	return s.manager
}

// CSRFHeader returns the header name mutating requests must carry.
func (s *Sessions) CSRFHeader() string {
	return s.csrfHeader
}

type recordKey struct{}

// RecordFromContext returns the session validated by RequireSession.
func RecordFromContext(ctx context.Context) (session.Record, bool) {
	rec, ok := ctx.Value(recordKey{}).(session.Record)
	return rec, ok
}

// RequireSession admits requests with a valid session. Mutating methods must
// also carry the session's CSRF token in the CSRF header.
func (s *Sessions) RequireSession(next http.Handler) http.Handler {
	return s.require(next, s.manager.Authenticate)
}

// RequireSessionWithoutCSRF admits requests with a valid session without
// checking the CSRF header. Register it only on routes that browsers cannot
// be tricked into calling, such as ones requiring a custom content type.
func (s *Sessions) RequireSessionWithoutCSRF(next http.Handler) http.Handler {
	return s.require(next, s.manager.AuthenticateWithoutCSRF)
}

type authenticateFunc func(session.Request) (session.Record, session.Outcome, error)

func (s *Sessions) require(next http.Handler, authenticate authenticateFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := session.Request{
			Method:     r.Method,
			CSRFHeader: r.Header.Get(s.csrfHeader),
		}
		if c, err := r.Cookie(s.cookie.Name); err == nil {
			req.Token = c.Value
		}

		rec, outcome, err := authenticate(req)
		if err != nil {
			s.reject(w, r, err)
			return
		}

		s.metrics.RecordAuthorized(outcome.String())
		ctx := context.WithValue(r.Context(), recordKey{}, rec)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Sessions) reject(w http.ResponseWriter, r *http.Request, err error) {
	reason := "unknown"
	if kind, ok := session.KindOf(err); ok {
		reason = kind.String()
	}

	logger.FromContext(r.Context()).WithError(err).Debug("session rejected", logger.Fields(
		logger.FieldReason, reason,
		logger.FieldMethod, r.Method,
		logger.FieldPath, r.URL.Path,
	))
	s.metrics.RecordRejected(reason)
	s.auditor.Log(audit.SessionRejectedEvent{
		Reason:   reason,
		Method:   r.Method,
		Path:     r.URL.Path,
		ClientIP: ClientIP(r),
	})

	Unauthorized(w, err)
}

// Unauthorized writes the single response every session failure gets.
func Unauthorized(w http.ResponseWriter, err error) {
	if err == nil {
		err = session.ErrUnauthorized
	}
	http.Error(w, session.Public(err).Error(), http.StatusUnauthorized)
}

// SetCookie writes token as the session cookie, expiring with rec.
func (s *Sessions) SetCookie(w http.ResponseWriter, token string, rec session.Record) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    token,
		Path:     s.cookie.Path,
		Domain:   s.cookie.Domain,
		Expires:  rec.Expires(),
		MaxAge:   int(s.manager.TTL().Seconds()),
		Secure:   s.cookie.Secure,
		HttpOnly: true,
		SameSite: s.cookie.SameSite,
	})
}

// ClearCookie tells the browser to drop the session cookie.
func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    "",
		Path:     s.cookie.Path,
		Domain:   s.cookie.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   s.cookie.Secure,
		HttpOnly: true,
		SameSite: s.cookie.SameSite,
	})
}

// ClientIP returns the host part of the request's remote address.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
