package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestTokenRoundTrip(t *testing.T) {
	st, err := NewToken(testSecret, TokenAccess, "user-1", "a@b.com", "sess-1", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, st.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Minute), st.Exp, 5*time.Second)

	claims, err := VerifyToken(testSecret, st.Token, TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, TokenAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID) // jti
}

func TestTokenJTIUnique(t *testing.T) {
	st1, err := NewToken(testSecret, TokenRefresh, "u", "e@x.com", "s", time.Minute)
	require.NoError(t, err)
	st2, err := NewToken(testSecret, TokenRefresh, "u", "e@x.com", "s", time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, st1.Token, st2.Token)

	c1, err := VerifyToken(testSecret, st1.Token, TokenRefresh)
	require.NoError(t, err)
	c2, err := VerifyToken(testSecret, st2.Token, TokenRefresh)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestVerifyTokenWrongKind(t *testing.T) {
	st, err := NewToken(testSecret, TokenRefresh, "u", "e@x.com", "s", time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, st.Token, TokenAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestVerifyTokenExpired(t *testing.T) {
	st, err := NewToken(testSecret, TokenAccess, "u", "e@x.com", "s", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, st.Token, TokenAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenBadSignature(t *testing.T) {
	st, err := NewToken("other-secret", TokenAccess, "u", "e@x.com", "s", time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, st.Token, TokenAccess)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestVerifyTokenMalformed(t *testing.T) {
	_, err := VerifyToken(testSecret, "not.a.jwt", TokenAccess)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestHashTokenRaw(t *testing.T) {
	h := HashTokenRaw("some-token")
	assert.Len(t, h, 64) // hex-encoded SHA-256
	assert.Equal(t, h, HashTokenRaw("some-token"))
	assert.NotEqual(t, h, HashTokenRaw("some-token2"))
}
