package services

import (
	"testing"

	"github.com/mizuki-dev/kanban-api/internal/config"
	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.Config {
	return &config.Config{
		SecretKey:                "test-secret-key",
		JWTAudience:              "kanban:auth",
		AccessTokenExpireMinutes: 60,
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService(testTokenConfig())

	user := &models.User{
		ID:       1,
		Email:    "alice@example.com",
		Username: "alice",
	}

	token, err := svc.CreateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "alice@example.com", claims.Subject)
}

func TestTokenService_RejectsForeignSecret(t *testing.T) {
	svc := NewTokenService(testTokenConfig())

	otherCfg := testTokenConfig()
	otherCfg.SecretKey = "a-different-secret"
	other := NewTokenService(otherCfg)

	token, err := other.CreateAccessToken(&models.User{Email: "x@example.com", Username: "x"})
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsWrongAudience(t *testing.T) {
	svc := NewTokenService(testTokenConfig())

	otherCfg := testTokenConfig()
	otherCfg.JWTAudience = "other:audience"
	other := NewTokenService(otherCfg)

	token, err := other.CreateAccessToken(&models.User{Email: "x@example.com", Username: "x"})
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	expiredCfg := testTokenConfig()
	expiredCfg.AccessTokenExpireMinutes = -1
	expired := NewTokenService(expiredCfg)

	token, err := expired.CreateAccessToken(&models.User{Email: "x@example.com", Username: "x"})
	require.NoError(t, err)

	svc := NewTokenService(testTokenConfig())
	_, err = svc.ParseAccessToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := NewTokenService(testTokenConfig())

	_, err := svc.ParseAccessToken("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
