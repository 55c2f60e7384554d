package session

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/doodlesbykumbi/cookie-session/pkg/seal"
)

// DefaultTTL is the lifetime of a session unless WithTTL says otherwise.
const DefaultTTL = 24 * time.Hour

// Manager issues and validates session tokens sealed with a single key.
// It holds no mutable state and is safe for concurrent use.
type Manager struct {
	cipher seal.Cipher
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager) error

// WithTTL sets the session lifetime. It must be at least one second, since
// expiry has second resolution.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) error {
		if ttl < time.Second {
			return fmt.Errorf("session ttl %s is shorter than one second", ttl)
		}
		m.ttl = ttl
		return nil
	}
}

// WithClock replaces time.Now as the source of creation time in Build.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		m.now = now
		return nil
	}
}

func NewManager(c seal.Cipher, opts ...Option) (*Manager, error) {
	if c == nil {
		return nil, errors.New("session manager requires a cipher")
	}

	m := &Manager{
		cipher: c,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Now returns the manager's current time.
func (m *Manager) Now() time.Time {
	return m.now()
}

// Build creates a record for subject expiring TTL from now, with a fresh
// CSRF token.
func (m *Manager) Build(subject string) (Record, error) {
	if subject == "" {
		return Record{}, fmt.Errorf("%w: subject is empty", ErrInvalidRecord)
	}

	csrfToken, err := NewCSRFToken()
	if err != nil {
		return Record{}, fmt.Errorf("generate csrf token: %w", err)
	}

	return Record{
		Subject:   subject,
		ExpiresAt: m.now().Add(m.ttl).Unix(),
		CSRFToken: csrfToken,
	}, nil
}

// Issue builds a record for subject and returns it with its token.
func (m *Manager) Issue(subject string) (Record, string, error) {
	rec, err := m.Build(subject)
	if err != nil {
		return Record{}, "", err
	}

	token, err := m.Encrypt(rec)
	if err != nil {
		return Record{}, "", err
	}
	return rec, token, nil
}

// Encrypt encodes and seals rec, returning the base64 token.
func (m *Manager) Encrypt(rec Record) (string, error) {
	plain, err := Encode(rec)
	if err != nil {
		return "", err
	}

	packed, err := m.cipher.Seal(plain)
	if err != nil {
		return "", fmt.Errorf("seal session: %w", err)
	}
	return base64.StdEncoding.EncodeToString(packed), nil
}

// Decrypt opens raw token bytes (nonce || ciphertext) and decodes the
// record. It does not check expiry.
func (m *Manager) Decrypt(packed []byte) (Record, error) {
	if len(packed) <= seal.NonceSize {
		return Record{}, reject(KindAuth, seal.ErrTooShort)
	}

	plain, err := m.cipher.Open(packed)
	if err != nil {
		return Record{}, reject(KindAuth, err)
	}

	rec, err := Decode(plain)
	if err != nil {
		return Record{}, reject(KindDecode, err)
	}
	return rec, nil
}

// Validate decrypts packed and checks that the session has not expired
// at now.
func (m *Manager) Validate(packed []byte, now time.Time) (Record, error) {
	rec, err := m.Decrypt(packed)
	if err != nil {
		return Record{}, err
	}
	if rec.ExpiredAt(now) {
		return Record{}, reject(KindExpired, fmt.Errorf("%w at %d", ErrExpired, rec.ExpiresAt))
	}
	return rec, nil
}

// ValidateString is Validate for a base64 token as carried in the cookie.
func (m *Manager) ValidateString(token string, now time.Time) (Record, error) {
	if token == "" {
		return Record{}, reject(KindMissing, ErrMissingToken)
	}

	packed, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Record{}, reject(KindAuth, fmt.Errorf("%w: %v", ErrMalformedToken, err))
	}
	return m.Validate(packed, now)
}

// Request is the part of an incoming request the session check needs.
type Request struct {
	// Token is the cookie value; empty when no cookie was sent.
	Token string
	// Method is the HTTP method.
	Method string
	// CSRFHeader is the value of the CSRF header, if any.
	CSRFHeader string
	// Now is the validation time. Zero means the manager's clock.
	Now time.Time
}

func (m *Manager) validateRequest(req Request) (Record, error) {
	now := req.Now
	if now.IsZero() {
		now = m.now()
	}
	return m.ValidateString(req.Token, now)
}

// Authenticate validates the session in req and enforces CSRF for mutating
// methods.
func (m *Manager) Authenticate(req Request) (Record, Outcome, error) {
	rec, err := m.validateRequest(req)
	if err != nil {
		return Record{}, OutcomeRejected, err
	}

	outcome, err := Authorize(rec, req.Method, req.CSRFHeader)
	if err != nil {
		return Record{}, OutcomeRejected, err
	}
	return rec, outcome, nil
}

// AuthenticateWithoutCSRF validates the session in req without a CSRF
// check. See AuthorizeWithoutCSRF.
func (m *Manager) AuthenticateWithoutCSRF(req Request) (Record, Outcome, error) {
	rec, err := m.validateRequest(req)
	if err != nil {
		return Record{}, OutcomeRejected, err
	}
	return rec, AuthorizeWithoutCSRF(rec, req.Method), nil
}
