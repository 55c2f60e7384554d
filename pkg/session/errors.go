package session

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is the only error callers outside this package should
	// show to clients. Every *Error matches it with errors.Is.
	ErrUnauthorized = errors.New("unauthorized")

	ErrMissingToken   = errors.New("no session token presented")
	ErrMalformedToken = errors.New("session token is not valid base64")
	ErrDecode         = errors.New("malformed session encoding")
	ErrInvalidRecord  = errors.New("invalid session record")
	ErrExpired        = errors.New("session expired")
	ErrCSRFMissing    = errors.New("csrf token not presented")
	ErrCSRFMismatch   = errors.New("csrf token mismatch")
)

// Error is a rejected session. Kind says why; Err carries the detail for
// logs. Neither should reach a client; see Public.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("session rejected (%s)", e.Kind)
	}
	return fmt.Sprintf("session rejected (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every rejection match ErrUnauthorized.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized
}

func reject(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the rejection kind carried by err.
func KindOf(err error) (Kind, bool) {
	var sErr *Error
	if errors.As(err, &sErr) {
		return sErr.Kind, true
	}
	return 0, false
}

// Public erases rejection detail. Any non-nil error becomes ErrUnauthorized
// so responses cannot be used to tell one failure from another.
func Public(err error) error {
	if err == nil {
		return nil
	}
	return ErrUnauthorized
}
