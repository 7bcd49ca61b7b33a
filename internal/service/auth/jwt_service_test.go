package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinboard/joinboard-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   "test-secret-that-is-at-least-32-chars-long",
		TokenLifetimeMinutes:        30,
		RefreshTokenLifetimeMinutes: 60 * 24,
	}
}

func newTestJWTService(t *testing.T) *hmacJWTService {
	t.Helper()

	service, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	return service.(*hmacJWTService)
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secrets", func(t *testing.T) {
		t.Parallel()

		cfg := testAuthConfig()
		cfg.JWTSecret = "too-short"
		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	service := newTestJWTService(t)
	accountID := uuid.New()

	token, err := service.GenerateToken(context.Background(), accountID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, tokenTypeAccess, claims.TokenType)
	assert.Equal(t, accountID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID, "tokens must carry a jti for the blacklist")
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	service := newTestJWTService(t)
	accountID := uuid.New()

	token, err := service.GenerateRefreshToken(context.Background(), accountID)
	require.NoError(t, err)

	claims, err := service.ValidateRefreshToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, tokenTypeRefresh, claims.TokenType)
}

func TestTokenTypeEnforcement(t *testing.T) {
	t.Parallel()

	service := newTestJWTService(t)
	accountID := uuid.New()

	access, err := service.GenerateToken(context.Background(), accountID)
	require.NoError(t, err)
	refresh, err := service.GenerateRefreshToken(context.Background(), accountID)
	require.NoError(t, err)

	_, err = service.ValidateToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = service.ValidateRefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()

	service := newTestJWTService(t)
	accountID := uuid.New()

	issued := time.Now()
	service.timeFunc = func() time.Time { return issued }

	token, err := service.GenerateToken(context.Background(), accountID)
	require.NoError(t, err)

	// Jump past the lifetime plus the clock skew allowance.
	service.timeFunc = func() time.Time {
		return issued.Add(service.tokenLifetime + service.clockSkew + time.Minute)
	}

	_, err = service.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestExpiredRefreshToken(t *testing.T) {
	t.Parallel()

	service := newTestJWTService(t)
	accountID := uuid.New()

	token, err := service.GenerateRefreshTokenWithExpiry(
		context.Background(), accountID, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = service.ValidateRefreshToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredRefreshToken)
}

func TestTamperedToken(t *testing.T) {
	t.Parallel()

	service := newTestJWTService(t)

	token, err := service.GenerateToken(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateToken(context.Background(), token+"x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDifferentSigningKeys(t *testing.T) {
	t.Parallel()

	serviceA := newTestJWTService(t)

	cfg := testAuthConfig()
	cfg.JWTSecret = "another-secret-that-is-at-least-32-chars"
	serviceB, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := serviceA.GenerateToken(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = serviceB.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
