package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	s := NewStateSigner("secret", "resumeflow", 10*time.Minute)

	tok, err := s.Sign("nonce-1")
	require.NoError(t, err)

	nonce, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "nonce-1", nonce)
}

func TestVerifyRejects(t *testing.T) {
	s := NewStateSigner("secret", "resumeflow", 10*time.Minute)
	tok, err := s.Sign("n")
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		_, err := NewStateSigner("other", "resumeflow", time.Minute).Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("other issuer", func(t *testing.T) {
		_, err := NewStateSigner("secret", "someone-else", time.Minute).Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		late := NewStateSigner("secret", "resumeflow", 10*time.Minute)
		late.now = func() time.Time { return time.Now().Add(time.Hour) }
		_, err := late.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := s.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("empty nonce", func(t *testing.T) {
		empty, err := s.Sign("")
		require.NoError(t, err)
		_, err = s.Verify(empty)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
