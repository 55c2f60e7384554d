package key

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// Size is the length in bytes of a session key (AES-256 / ChaCha20-Poly1305).
const Size = 32

// DefaultEnv is the environment variable the key is read from.
const DefaultEnv = "AUTH_SECRET"

// Key is a 256-bit symmetric session key. It is a value type and never
// changes after Load returns it.
type Key [Size]byte

// Bytes returns a copy of the key material.
func (k Key) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, k[:])
	return b
}

// String never reveals key material.
func (k Key) String() string {
	return "key.Key(redacted)"
}

// ConfigError reports a missing or malformed key. It is a deployment defect
// and callers are expected to abort startup when they see one.
type ConfigError struct {
	Source string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("invalid session key from %s: %s", e.Source, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load decodes a standard base64 (padded) 256-bit key.
func Load(encoded string) (Key, error) {
	return load("configuration", encoded)
}

func load(source, encoded string) (Key, error) {
	var k Key
	if encoded == "" {
		return k, &ConfigError{Source: source, Reason: "value is empty"}
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return k, &ConfigError{Source: source, Reason: "value is not base64", Err: err}
	}
	if len(raw) != Size {
		return k, &ConfigError{
			Source: source,
			Reason: fmt.Sprintf("decoded length is %d bytes, expected %d", len(raw), Size),
		}
	}

	copy(k[:], raw)
	return k, nil
}

// FromEnv loads the key from the named environment variable. An empty name
// means DefaultEnv.
func FromEnv(name string) (Key, error) {
	if name == "" {
		name = DefaultEnv
	}
	encoded, ok := os.LookupEnv(name)
	if !ok {
		return Key{}, &ConfigError{
			Source: name,
			Reason: "environment variable not set; generate one with `sessionctl key generate`",
		}
	}
	return load(name, encoded)
}

// Verify checks an encoded key without returning it. Call it once at process
// start so a bad key never surfaces mid-request.
func Verify(encoded string) error {
	_, err := Load(encoded)
	return err
}

// Generate returns a fresh random key encoded as standard base64.
func Generate() (string, error) {
	raw := make([]byte, Size)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", err
	}
	return base64.StdEncoding.Strict().EncodeToString(raw), nil
}
