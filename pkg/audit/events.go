package audit

import "fmt"

// SessionIssuedEvent records a successful login that produced a session cookie
type SessionIssuedEvent struct {
	Subject           string
	ClientIP          string
	AuthenticatorName string
	ExpiresAt         int64
}

func (e SessionIssuedEvent) MessageID() string {
	return "session-issued"
}

func (e SessionIssuedEvent) Message() string {
	return fmt.Sprintf("%s successfully authenticated with authenticator %s", e.Subject, e.AuthenticatorName)
}

func (e SessionIssuedEvent) Severity() Severity {
	return SeverityInfo
}

func (e SessionIssuedEvent) Facility() int {
	return FacilityAuthPriv
}

func (e SessionIssuedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"authenticator": e.AuthenticatorName,
			"user":          e.Subject,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation":  "login",
			"result":     "success",
			"expires_at": fmt.Sprint(e.ExpiresAt),
		},
	}
}

// LoginFailedEvent records rejected login credentials
type LoginFailedEvent struct {
	Login             string
	ClientIP          string
	AuthenticatorName string
	ErrorMessage      string
}

func (e LoginFailedEvent) MessageID() string {
	return "login-failed"
}

func (e LoginFailedEvent) Message() string {
	msg := fmt.Sprintf("%s failed to authenticate with authenticator %s", e.Login, e.AuthenticatorName)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LoginFailedEvent) Severity() Severity {
	return SeverityWarning
}

func (e LoginFailedEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LoginFailedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"authenticator": e.AuthenticatorName,
			"user":          e.Login,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "login",
			"result":    "failure",
		},
	}
}

// SessionRejectedEvent records a request whose session check failed.
// Reason is the internal rejection kind; it never reaches the client.
type SessionRejectedEvent struct {
	Reason   string
	Method   string
	Path     string
	ClientIP string
}

func (e SessionRejectedEvent) MessageID() string {
	return "session-rejected"
}

func (e SessionRejectedEvent) Message() string {
	return fmt.Sprintf("session rejected for %s %s: %s", e.Method, e.Path, e.Reason)
}

func (e SessionRejectedEvent) Severity() Severity {
	if e.Reason == "missing" {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e SessionRejectedEvent) Facility() int {
	return FacilityAuthPriv
}

func (e SessionRejectedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "authenticate",
			"result":    "failure",
			"reason":    e.Reason,
			"method":    e.Method,
			"path":      e.Path,
		},
	}
}

// SessionEndedEvent records a logout
type SessionEndedEvent struct {
	Subject  string
	ClientIP string
}

func (e SessionEndedEvent) MessageID() string {
	return "session-ended"
}

func (e SessionEndedEvent) Message() string {
	return fmt.Sprintf("%s logged out", e.Subject)
}

func (e SessionEndedEvent) Severity() Severity {
	return SeverityInfo
}

func (e SessionEndedEvent) Facility() int {
	return FacilityAuthPriv
}

func (e SessionEndedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Subject,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "logout",
			"result":    "success",
		},
	}
}
