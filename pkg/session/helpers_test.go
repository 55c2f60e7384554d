package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/cookie-session/pkg/key"
	"github.com/doodlesbykumbi/cookie-session/pkg/seal"
)

var fixedNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestCipher(t *testing.T) *seal.Symmetric {
	t.Helper()

	encoded, err := key.Generate()
	require.NoError(t, err)
	k, err := key.Load(encoded)
	require.NoError(t, err)

	c, err := seal.NewAESGCM(k)
	require.NoError(t, err)
	return c
}

func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()

	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	m, err := NewManager(newTestCipher(t), opts...)
	require.NoError(t, err)
	return m
}

// countingCipher records how often the wrapped cipher is asked to open.
type countingCipher struct {
	seal.Cipher
	opens int
}

func (c *countingCipher) Open(packed []byte) ([]byte, error) {
	c.opens++
	return c.Cipher.Open(packed)
}

func testRecord() Record {
	return Record{
		Subject:   "user-42",
		ExpiresAt: fixedNow.Add(DefaultTTL).Unix(),
		CSRFToken: "abcdefghijklmnopqrstuvwxyz012345",
	}
}
