package session

import (
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireKind(t *testing.T, want Kind, err error) {
	t.Helper()

	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok, "expected a session error, got %v", err)
	assert.Equal(t, want, kind, "unexpected rejection: %v", err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestNewManager(t *testing.T) {
	m, err := NewManager(newTestCipher(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, m.TTL())

	_, err = NewManager(nil)
	assert.Error(t, err)

	_, err = NewManager(newTestCipher(t), WithTTL(500*time.Millisecond))
	assert.Error(t, err)

	_, err = NewManager(newTestCipher(t), WithClock(nil))
	assert.Error(t, err)

	m, err = NewManager(newTestCipher(t), WithTTL(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, m.TTL())
}

func TestBuild(t *testing.T) {
	m := newTestManager(t)

	rec, err := m.Build("user-42")
	require.NoError(t, err)

	assert.Equal(t, "user-42", rec.Subject)
	assert.Equal(t, fixedNow.Unix()+86400, rec.ExpiresAt)
	assert.Len(t, rec.CSRFToken, CSRFTokenLength)
	assert.Regexp(t, `^[A-Za-z0-9]{32}$`, rec.CSRFToken)

	other, err := m.Build("user-42")
	require.NoError(t, err)
	assert.NotEqual(t, rec.CSRFToken, other.CSRFToken, "csrf token must be fresh per session")

	_, err = m.Build("")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestBuildHonoursTTL(t *testing.T) {
	m := newTestManager(t, WithTTL(90*time.Minute))

	rec, err := m.Build("user-42")
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(90*time.Minute).Unix(), rec.ExpiresAt)
}

func TestIssueValidateRoundTrip(t *testing.T) {
	m := newTestManager(t)

	for _, subject := range []string{"user-42", "a", "host/ci:deploy", "ユーザー"} {
		t.Run(subject, func(t *testing.T) {
			rec, token, err := m.Issue(subject)
			require.NoError(t, err)

			got, err := m.ValidateString(token, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, rec, got)
			assert.Equal(t, subject, got.Subject)
		})
	}
}

func TestEncryptIsRandomized(t *testing.T) {
	m := newTestManager(t)
	rec := testRecord()

	first, err := m.Encrypt(rec)
	require.NoError(t, err)
	second, err := m.Encrypt(rec)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateRejectsTampering(t *testing.T) {
	m := newTestManager(t)

	_, token, err := m.Issue("user-42")
	require.NoError(t, err)
	packed, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)

	for i := range packed {
		for bit := 0; bit < 8; bit++ {
			tampered := append([]byte{}, packed...)
			tampered[i] ^= 1 << bit

			_, err := m.Validate(tampered, fixedNow)
			requireKind(t, KindAuth, err)
		}
	}
}

func TestValidateExpiry(t *testing.T) {
	m := newTestManager(t)

	t.Run("one second past expiry", func(t *testing.T) {
		rec := testRecord()
		rec.ExpiresAt = fixedNow.Unix() - 1

		token, err := m.Encrypt(rec)
		require.NoError(t, err)

		_, err = m.ValidateString(token, fixedNow)
		requireKind(t, KindExpired, err)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("expiring this second", func(t *testing.T) {
		rec := testRecord()
		rec.ExpiresAt = fixedNow.Unix()

		token, err := m.Encrypt(rec)
		require.NoError(t, err)

		got, err := m.ValidateString(token, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	})

	t.Run("after ttl", func(t *testing.T) {
		_, token, err := m.Issue("user-42")
		require.NoError(t, err)

		_, err = m.ValidateString(token, fixedNow.Add(DefaultTTL+time.Second))
		requireKind(t, KindExpired, err)
	})
}

func TestValidateShortTokenSkipsCipher(t *testing.T) {
	counting := &countingCipher{Cipher: newTestCipher(t)}
	m, err := NewManager(counting)
	require.NoError(t, err)

	for n := 1; n <= 12; n++ {
		_, err := m.Validate(make([]byte, n), fixedNow)
		requireKind(t, KindAuth, err)
	}
	assert.Zero(t, counting.opens)

	_, err = m.Validate(make([]byte, 13), fixedNow)
	requireKind(t, KindAuth, err)
	assert.Equal(t, 1, counting.opens)
}

func TestValidateWithDifferentKey(t *testing.T) {
	issuer := newTestManager(t)
	verifier := newTestManager(t)

	_, token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, err = verifier.ValidateString(token, fixedNow)
	requireKind(t, KindAuth, err)
}

func TestValidateStringRejections(t *testing.T) {
	m := newTestManager(t)

	_, err := m.ValidateString("", fixedNow)
	requireKind(t, KindMissing, err)

	_, err = m.ValidateString("not base64!", fixedNow)
	requireKind(t, KindAuth, err)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestValidateUndecodablePlaintext(t *testing.T) {
	c := newTestCipher(t)
	m, err := NewManager(c)
	require.NoError(t, err)

	packed, err := c.Seal([]byte("authentic but not a record"))
	require.NoError(t, err)

	_, err = m.Validate(packed, fixedNow)
	requireKind(t, KindDecode, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestAuthenticate(t *testing.T) {
	m := newTestManager(t)

	rec, token, err := m.Issue("user-42")
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     Request
		outcome Outcome
		kind    Kind
	}{
		{
			name:    "read without header",
			req:     Request{Token: token, Method: http.MethodGet},
			outcome: OutcomeAuthorizedForRead,
		},
		{
			name:    "mutation with matching header",
			req:     Request{Token: token, Method: http.MethodPost, CSRFHeader: rec.CSRFToken},
			outcome: OutcomeAuthorizedForMutation,
		},
		{
			name:    "mutation without header",
			req:     Request{Token: token, Method: http.MethodPost},
			outcome: OutcomeRejected,
			kind:    KindCSRFMismatch,
		},
		{
			name:    "mutation with wrong header",
			req:     Request{Token: token, Method: http.MethodDelete, CSRFHeader: "00000000000000000000000000000000"},
			outcome: OutcomeRejected,
			kind:    KindCSRFMismatch,
		},
		{
			name:    "no token",
			req:     Request{Method: http.MethodGet},
			outcome: OutcomeRejected,
			kind:    KindMissing,
		},
		{
			name:    "expired",
			req:     Request{Token: token, Method: http.MethodGet, Now: fixedNow.Add(48 * time.Hour)},
			outcome: OutcomeRejected,
			kind:    KindExpired,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, outcome, err := m.Authenticate(tc.req)
			assert.Equal(t, tc.outcome, outcome)

			if tc.outcome == OutcomeRejected {
				requireKind(t, tc.kind, err)
				assert.Equal(t, Record{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, rec, got)
		})
	}
}

func TestAuthenticateWithoutCSRF(t *testing.T) {
	m := newTestManager(t)

	rec, token, err := m.Issue("user-42")
	require.NoError(t, err)

	got, outcome, err := m.AuthenticateWithoutCSRF(Request{Token: token, Method: http.MethodPost})
	require.NoError(t, err)
	assert.Equal(t, OutcomeAuthorizedForMutation, outcome)
	assert.Equal(t, rec, got)

	packed, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	packed[len(packed)-1] ^= 0x01
	forged := base64.StdEncoding.EncodeToString(packed)

	_, outcome, err = m.AuthenticateWithoutCSRF(Request{Token: forged, Method: http.MethodPost})
	assert.Equal(t, OutcomeRejected, outcome)
	requireKind(t, KindAuth, err)
}
