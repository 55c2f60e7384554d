// Package seal provides the authenticated encryption used for session cookies.
//
// A sealed value is nonce(12 bytes) || AEAD ciphertext with tag. The nonce is
// drawn from crypto/rand on every Seal call:
//
//	c, err := seal.NewAESGCM(k)
//	packed, err := c.Seal(plainText)
//	plainText, err := c.Open(packed)
//
// Open never returns partial plaintext. Inputs no longer than the nonce fail
// with ErrTooShort before the AEAD runs; every other failure is
// ErrAuthentication.
package seal
