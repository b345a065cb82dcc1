package auth

import (
	"testing"
	"time"

	"journal/config"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_signing_secret_very_long_for_testing"
	cfg.JWT.AccessTTL = 7 * 24 * time.Hour
	cfg.JWT.RefreshTTL = 30 * 24 * time.Hour

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	subjectID := uuid.New()

	for _, class := range []service.TokenClass{service.ClassAccess, service.ClassRefresh} {
		token, err := svc.Issue(subjectID, class, 0)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Verify(token, class)
		require.NoError(t, err)
		assert.Equal(t, subjectID, claims.SubjectID)
		assert.Equal(t, class, claims.Class)
		assert.True(t, claims.ExpiresAt.After(time.Now()))
	}
}

func TestJWTService_ClassConfusionRejected(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	subjectID := uuid.New()

	refreshToken, err := svc.Issue(subjectID, service.ClassRefresh, 0)
	require.NoError(t, err)

	// A refresh token presented where an access token is expected must fail
	// with the same error as a forged token.
	claims, err := svc.Verify(refreshToken, service.ClassAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	accessToken, err := svc.Issue(subjectID, service.ClassAccess, 0)
	require.NoError(t, err)

	claims, err = svc.Verify(accessToken, service.ClassRefresh)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New(), service.ClassAccess, -time.Minute)
	require.NoError(t, err)

	claims, err := svc.Verify(token, service.ClassAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_ExplicitLifetimeHonored(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	// An explicit lifetime must be used as given, never replaced by the
	// class default; only a zero lifetime falls back.
	token, err := svc.Issue(uuid.New(), service.ClassAccess, time.Hour)
	require.NoError(t, err)

	claims, err := svc.Verify(token, service.ClassAccess)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Before(time.Now().Add(2*time.Hour)))
	assert.True(t, claims.ExpiresAt.After(time.Now().Add(30*time.Minute)))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format", service.ClassAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_ForeignSignatureRejected(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.Secret = "a_completely_different_signing_secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue(uuid.New(), service.ClassAccess, 0)
	require.NoError(t, err)

	claims, err := svc.Verify(token, service.ClassAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Secret = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_Lifetimes(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, svc.AccessTokenLifetime())
	assert.Equal(t, 30*24*time.Hour, svc.RefreshTokenLifetime())
}
