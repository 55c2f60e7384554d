package session

import (
	"crypto/rand"
	"fmt"
	"html/template"
	"math/big"
	"strings"
	"time"
)

const (
	// CSRFTokenLength is the number of characters in a session's CSRF token.
	CSRFTokenLength = 32

	csrfAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	maxSubjectLength = 1<<16 - 1
)

// Record is the state sealed into a session cookie.
//
// Records are built once at login and never updated; a new login yields a
// new Record with a new CSRF token.
type Record struct {
	// Subject identifies the authenticated principal.
	Subject string
	// ExpiresAt is the absolute expiry in Unix seconds.
	ExpiresAt int64
	// CSRFToken must accompany every mutating request made with this session.
	CSRFToken string
}

// Validate checks the record invariants.
func (r Record) Validate() error {
	if r.Subject == "" {
		return fmt.Errorf("%w: subject is empty", ErrInvalidRecord)
	}
	if len(r.Subject) > maxSubjectLength {
		return fmt.Errorf("%w: subject is %d bytes", ErrInvalidRecord, len(r.Subject))
	}
	if r.ExpiresAt <= 0 {
		return fmt.Errorf("%w: expiry is not set", ErrInvalidRecord)
	}
	if !isCSRFToken(r.CSRFToken) {
		return fmt.Errorf("%w: csrf token is malformed", ErrInvalidRecord)
	}
	return nil
}

// Expires returns ExpiresAt as a time.Time.
func (r Record) Expires() time.Time {
	return time.Unix(r.ExpiresAt, 0)
}

// ExpiredAt reports whether the session is past its expiry at now. A record
// is still valid during the second it expires.
func (r Record) ExpiredAt(now time.Time) bool {
	return r.ExpiresAt < now.Unix()
}

// MetaTag renders the CSRF token as a meta element for the page head, where
// client scripts can read it back into the CSRF header.
func (r Record) MetaTag() template.HTML {
	return template.HTML(`<meta name="csrf-token" content="` + template.HTMLEscapeString(r.CSRFToken) + `" />`)
}

// NewCSRFToken returns CSRFTokenLength characters drawn uniformly from
// [A-Za-z0-9] using crypto/rand.
func NewCSRFToken() (string, error) {
	var b strings.Builder
	b.Grow(CSRFTokenLength)

	max := big.NewInt(int64(len(csrfAlphabet)))
	for i := 0; i < CSRFTokenLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(csrfAlphabet[n.Int64()])
	}

	return b.String(), nil
}

func isCSRFToken(s string) bool {
	if len(s) != CSRFTokenLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
