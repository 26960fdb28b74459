package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, time.Hour, 42, "닉네임1")
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.MemberID)
	assert.Equal(t, "닉네임1", claims.Nickname)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(testSecret, -time.Minute, 1, "닉네임1")
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("other-secret", time.Hour, 1, "닉네임1")
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Tampered(t *testing.T) {
	token, err := GenerateToken(testSecret, time.Hour, 1, "닉네임1")
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = ParseToken(testSecret, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("kwak!6038")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("kwak!6038", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}
