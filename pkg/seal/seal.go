package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/doodlesbykumbi/cookie-session/pkg/key"
)

// NonceSize is the nonce prefix carried by every sealed value.
const NonceSize = 12

var (
	// ErrTooShort is returned by Open when the input cannot hold a nonce and
	// a non-empty ciphertext. The AEAD is not invoked.
	ErrTooShort = errors.New("sealed value too short")

	// ErrAuthentication is returned by Open for any AEAD failure, including
	// tag mismatch.
	ErrAuthentication = errors.New("message authentication failed")
)

// Cipher seals and opens byte strings in the nonce||ciphertext_with_tag
// layout.
type Cipher interface {
	Seal(plainText []byte) ([]byte, error)
	Open(packed []byte) ([]byte, error)
	Algorithm() Algorithm
}

// Symmetric is a Cipher backed by a 96-bit-nonce AEAD. It is safe for
// concurrent use.
type Symmetric struct {
	aead      cipher.AEAD
	algorithm Algorithm
}

// New builds a Cipher for the given algorithm.
func New(alg Algorithm, k key.Key) (*Symmetric, error) {
	switch alg {
	case AES256GCM:
		return NewAESGCM(k)
	case ChaCha20Poly1305:
		return NewChaCha20Poly1305(k)
	default:
		return nil, fmt.Errorf("unsupported cipher algorithm %q", string(alg))
	}
}

// NewAESGCM returns an AES-256-GCM cipher.
func NewAESGCM(k key.Key) (*Symmetric, error) {
	c, err := aes.NewCipher(k[:])
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, err
	}

	return &Symmetric{aead: aesgcm, algorithm: AES256GCM}, nil
}

// NewChaCha20Poly1305 returns a ChaCha20-Poly1305 cipher. It is the better
// choice on hardware without AES acceleration.
func NewChaCha20Poly1305(k key.Key) (*Symmetric, error) {
	aead, err := chacha20poly1305.New(k[:])
	if err != nil {
		return nil, err
	}

	return &Symmetric{aead: aead, algorithm: ChaCha20Poly1305}, nil
}

// Algorithm reports which AEAD backs the cipher.
func (s *Symmetric) Algorithm() Algorithm {
	return s.algorithm
}

// RandomNonce returns a fresh nonce from crypto/rand.
func RandomNonce() ([]byte, error) {
	// Never use more than 2^32 random nonces with a given key because of
	// the risk of a repeat.
	return RandomBytes(NonceSize)
}

// RandomBytes returns size bytes from crypto/rand.
func RandomBytes(size int) ([]byte, error) {
	value := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, value); err != nil {
		return nil, err
	}

	return value, nil
}

// Seal encrypts plainText under a fresh nonce and returns nonce||ciphertext.
func (s *Symmetric) Seal(plainText []byte) ([]byte, error) {
	nonce, err := RandomNonce()
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return s.seal(plainText, nonce)
}

func (s *Symmetric) seal(plainText, nonce []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, errors.New("nonce size is invalid")
	}

	cipherTextWithTag := s.aead.Seal(nil, nonce, plainText, nil)

	return PackCipherData(nonce, cipherTextWithTag), nil
}

// Open splits nonce||ciphertext and authenticates and decrypts it.
func (s *Symmetric) Open(packed []byte) ([]byte, error) {
	if len(packed) <= NonceSize {
		return nil, ErrTooShort
	}

	nonce, cipherText := UnpackCipherData(packed)

	plainText, err := s.aead.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plainText, nil
}

// PackCipherData concatenates a nonce and the AEAD output.
func PackCipherData(nonce, cipherTextWithTag []byte) []byte {
	data := make([]byte, 0, len(nonce)+len(cipherTextWithTag))
	data = append(data, nonce...)
	return append(data, cipherTextWithTag...)
}

// UnpackCipherData splits packed data at NonceSize. The caller must have
// checked the length.
func UnpackCipherData(packed []byte) (nonce, cipherTextWithTag []byte) {
	return packed[:NonceSize], packed[NonceSize:]
}
