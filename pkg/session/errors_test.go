package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesUnauthorized(t *testing.T) {
	for _, kind := range KindValues() {
		err := fmt.Errorf("wrapped: %w", reject(kind, errors.New("detail")))

		assert.ErrorIs(t, err, ErrUnauthorized, kind.String())
		got, ok := KindOf(err)
		assert.True(t, ok)
		assert.Equal(t, kind, got)
		assert.Equal(t, ErrUnauthorized, Public(err))
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := reject(KindExpired, ErrExpired)

	assert.ErrorIs(t, err, ErrExpired)
	assert.NotErrorIs(t, err, ErrDecode)
	assert.Equal(t, "session rejected (expired): session expired", err.Error())
	assert.Equal(t, "session rejected (missing)", reject(KindMissing, nil).Error())
}

func TestKindOfForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("boom"))
	assert.False(t, ok)
	assert.NoError(t, Public(nil))
	assert.Equal(t, ErrUnauthorized, Public(errors.New("boom")))
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, []string{"missing", "auth", "decode", "expired", "csrf_mismatch"}, KindStrings())

	kind, err := KindString("csrf_mismatch")
	assert.NoError(t, err)
	assert.Equal(t, KindCSRFMismatch, kind)

	_, err = KindString("nope")
	assert.Error(t, err)

	assert.True(t, KindExpired.IsAuth())
	assert.False(t, KindMissing.IsAuth())
	assert.False(t, KindCSRFMismatch.IsAuth())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestOutcomeNames(t *testing.T) {
	assert.Equal(t, []string{"rejected", "authorized_for_read", "authorized_for_mutation"}, OutcomeStrings())
}
