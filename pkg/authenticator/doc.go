// Package authenticator defines how login credentials are checked before a
// session is issued.
//
// # Authenticator Interface
//
//	type Authenticator interface {
//	    Name() string
//	    Authenticate(ctx context.Context, input AuthenticatorInput) (string, error)
//	    Status(ctx context.Context) error
//	}
//
// The returned string becomes the session subject.
//
// # Built-in Authenticators
//
//   - static: a YAML file of login to bcrypt hash, see [github.com/doodlesbykumbi/cookie-session/pkg/authenticator/static]
package authenticator
