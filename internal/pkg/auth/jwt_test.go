package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(JWTConfig{SecretKey: secret, TokenExp: time.Hour, TokenIssuer: "campusadmin"})
}

func TestTokenFlow(t *testing.T) {
	svc := newTestService("secret")

	token, expiresAt, err := svc.GenerateToken("admin", "sid-1", "Admin")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Subject)
	require.Equal(t, "sid-1", claims.SessionID)
	require.Equal(t, "Admin", claims.Role)
	require.NotEmpty(t, claims.ID)
}

func TestTokenRejections(t *testing.T) {
	svc := newTestService("secret")
	token, _, err := svc.GenerateToken("admin", "", "")
	require.NoError(t, err)

	_, err = newTestService("other").ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)
	_, err = svc.ValidateToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidFormat)

	other := NewJWTService(JWTConfig{SecretKey: "secret", TokenExp: time.Hour, TokenIssuer: "someone-else"})
	_, err = other.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpiry(t *testing.T) {
	svc := newTestService("secret")
	token, _, err := svc.GenerateToken("admin", "", "")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ExtractBearerToken("Basic Zm9vOmJhcg==")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHash(t *testing.T) {
	BcryptCost = 4
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.True(t, CheckPassword(hash, "admin123"))
	require.False(t, CheckPassword(hash, "admin124"))
}
