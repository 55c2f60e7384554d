package static

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/cookie-session/pkg/authenticator"
)

const Name = "static"

// DefaultCost is the bcrypt cost used by HashPassword.
const DefaultCost = bcrypt.DefaultCost

// Authenticator checks logins against a fixed table of bcrypt hashes.
type Authenticator struct {
	hashes map[string][]byte

	dummyOnce sync.Once
	dummy     []byte
}

// New builds an authenticator from login to bcrypt hash pairs.
func New(hashes map[string]string) (*Authenticator, error) {
	a := &Authenticator{hashes: make(map[string][]byte, len(hashes))}
	for login, hash := range hashes {
		if login == "" {
			return nil, errors.New("credentials contain an empty login")
		}
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("credentials for %q: %w", login, err)
		}
		a.hashes[login] = []byte(hash)
	}
	return a, nil
}

// LoadFile reads a YAML mapping of login to bcrypt hash.
func LoadFile(path string) (*Authenticator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}

	var hashes map[string]string
	if err := yaml.Unmarshal(data, &hashes); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}
	return New(hashes)
}

// HashPassword returns a bcrypt hash suitable for the credentials file.
func HashPassword(password []byte, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Name returns the authenticator name
func (a *Authenticator) Name() string {
	return Name
}

// Authenticate returns the login as the subject when the password matches.
func (a *Authenticator) Authenticate(_ context.Context, input authenticator.AuthenticatorInput) (string, error) {
	if input.Login == "" {
		return "", authenticator.ErrInvalidCredentials
	}

	hash, ok := a.hashes[input.Login]
	if !ok {
		// Unknown logins still pay for one bcrypt comparison.
		_ = bcrypt.CompareHashAndPassword(a.dummyHash(), input.Credentials)
		return "", authenticator.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(hash, input.Credentials); err != nil {
		return "", authenticator.ErrInvalidCredentials
	}
	return input.Login, nil
}

// Status reports an error when no logins are configured.
func (a *Authenticator) Status(context.Context) error {
	if len(a.hashes) == 0 {
		return errors.New("no credentials configured")
	}
	return nil
}

func (a *Authenticator) dummyHash() []byte {
	a.dummyOnce.Do(func() {
		a.dummy, _ = bcrypt.GenerateFromPassword([]byte("unused"), DefaultCost)
	})
	return a.dummy
}
