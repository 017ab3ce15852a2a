package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := JWTConfig{Secret: "secret", ExpiryHours: 1}
	userID := uuid.New()

	token, err := GenerateToken(cfg, userID, "MOVIES_MANAGER")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "MOVIES_MANAGER", claims.Role)
}

func TestTokenNoExpiry(t *testing.T) {
	t.Parallel()

	// Zero expiry issues a token without an exp claim
	cfg := JWTConfig{Secret: "secret"}

	token, err := GenerateToken(cfg, uuid.New(), "USER")
	require.NoError(t, err)

	_, err = ParseToken(cfg, token)
	require.NoError(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(JWTConfig{Secret: "secret-a", ExpiryHours: 1}, uuid.New(), "USER")
	require.NoError(t, err)

	_, err = ParseToken(JWTConfig{Secret: "secret-b"}, token)
	require.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	t.Parallel()

	cfg := JWTConfig{Secret: "secret"}

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := ParseToken(cfg, raw)
		require.Error(t, err)
	}
}
