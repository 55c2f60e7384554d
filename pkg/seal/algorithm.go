package seal

import (
	"fmt"
	"strings"
)

// Algorithm names an AEAD construction. Both supported algorithms take a
// 256-bit key and a 96-bit nonce, so sealed values share one wire layout.
type Algorithm string

const (
	AES256GCM        Algorithm = "aes-256-gcm"
	ChaCha20Poly1305 Algorithm = "chacha20-poly1305"
)

// Algorithms lists the supported algorithms, default first.
func Algorithms() []Algorithm {
	return []Algorithm{AES256GCM, ChaCha20Poly1305}
}

// ParseAlgorithm maps a configuration value to an Algorithm. The empty
// string selects AES-256-GCM.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case "", AES256GCM:
		return AES256GCM, nil
	case ChaCha20Poly1305:
		return ChaCha20Poly1305, nil
	}
	return "", fmt.Errorf("unknown cipher algorithm %q (want one of %v)", s, Algorithms())
}
