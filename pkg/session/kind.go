package session

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform snake -output kind.gen.go

// Kind classifies why a session was rejected.
type Kind int

const (
	// KindMissing: no token was presented.
	KindMissing Kind = iota
	// KindAuth: the token was malformed, too short, or failed authentication.
	KindAuth
	// KindDecode: the token authenticated but its plaintext did not decode.
	KindDecode
	// KindExpired: the token authenticated and decoded but is past expiry.
	KindExpired
	// KindCSRFMismatch: a valid session on a mutating request without the
	// matching CSRF token.
	KindCSRFMismatch
)

// IsAuth reports whether the kind belongs to the authentication family:
// everything that fails before a session is considered valid.
func (i Kind) IsAuth() bool {
	switch i {
	case KindAuth, KindDecode, KindExpired:
		return true
	}
	return false
}
