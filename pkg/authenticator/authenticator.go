package authenticator

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned for any failed login, whether the login
// is unknown or the password is wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator defines the interface for login credential checks
type Authenticator interface {
	// Name returns the authenticator name used in audit records
	Name() string

	// Authenticate validates credentials and returns the session subject on success
	Authenticate(ctx context.Context, input AuthenticatorInput) (string, error)

	// Status checks if the authenticator is usable
	Status(ctx context.Context) error
}

// AuthenticatorInput contains the input for authentication
type AuthenticatorInput struct {
	Login       string
	Credentials []byte
	ClientIP    string
}
