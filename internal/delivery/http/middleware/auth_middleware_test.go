package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "journal/internal/delivery/context"
	"journal/internal/domain/entity"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/repository"
	"journal/internal/domain/service"
	mockRepo "journal/internal/mocks/repository"
	mockSvc "journal/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, userRepo),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
	}
}

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_RequireAuth_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Name: "Test User"}
	c := newAuthTestContext(t, "Bearer valid-access-token")

	fx.tokenSvc.EXPECT().
		Verify("valid-access-token", service.ClassAccess).
		Return(&service.Claims{SubjectID: user.ID, Class: service.ClassAccess}, nil)
	fx.userRepo.EXPECT().
		FindByID(c.Request().Context(), user.ID).
		Return(user, nil)

	var seen *entity.Identity
	err := fx.middleware.RequireAuth(func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)
		seen = identity

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
	assert.Equal(t, user.Email, seen.Email)
}

func TestAuthMiddleware_RequireAuth_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newAuthTestContext(t, "")

	err := fx.middleware.RequireAuth(okHandler)(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoToken))
}

func TestAuthMiddleware_RequireAuth_MalformedHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newAuthTestContext(t, "Token abc123")

	err := fx.middleware.RequireAuth(okHandler)(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoToken))
}

func TestAuthMiddleware_RequireAuth_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newAuthTestContext(t, "Bearer forged-token")

	fx.tokenSvc.EXPECT().
		Verify("forged-token", service.ClassAccess).
		Return(nil, domainerrors.ErrInvalidToken)

	err := fx.middleware.RequireAuth(okHandler)(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthMiddleware_RequireAuth_ExpiredToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newAuthTestContext(t, "Bearer expired-token")

	fx.tokenSvc.EXPECT().
		Verify("expired-token", service.ClassAccess).
		Return(nil, domainerrors.ErrTokenExpired)

	err := fx.middleware.RequireAuth(okHandler)(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestAuthMiddleware_RequireAuth_SubjectDeleted(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	subjectID := uuid.New()
	c := newAuthTestContext(t, "Bearer valid-but-orphaned")

	fx.tokenSvc.EXPECT().
		Verify("valid-but-orphaned", service.ClassAccess).
		Return(&service.Claims{SubjectID: subjectID, Class: service.ClassAccess}, nil)
	fx.userRepo.EXPECT().
		FindByID(c.Request().Context(), subjectID).
		Return(nil, repository.ErrUserNotFound)

	err := fx.middleware.RequireAuth(okHandler)(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthMiddleware_OptionalAuth_NoToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newAuthTestContext(t, "")

	called := false
	err := fx.middleware.OptionalAuth(func(c echo.Context) error {
		called = true
		_, ok := deliverycontext.GetIdentity(c)
		assert.False(t, ok)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_OptionalAuth_BadTokenProceedsAnonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newAuthTestContext(t, "Bearer garbage")

	fx.tokenSvc.EXPECT().
		Verify("garbage", service.ClassAccess).
		Return(nil, domainerrors.ErrInvalidToken)

	called := false
	err := fx.middleware.OptionalAuth(func(c echo.Context) error {
		called = true
		_, ok := deliverycontext.GetIdentity(c)
		assert.False(t, ok)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_OptionalAuth_ValidTokenAttachesIdentity(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Name: "Test User"}
	c := newAuthTestContext(t, "Bearer valid-access-token")

	fx.tokenSvc.EXPECT().
		Verify("valid-access-token", service.ClassAccess).
		Return(&service.Claims{SubjectID: user.ID, Class: service.ClassAccess}, nil)
	fx.userRepo.EXPECT().
		FindByID(c.Request().Context(), user.ID).
		Return(user, nil)

	err := fx.middleware.OptionalAuth(func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)
		assert.Equal(t, user.ID, identity.ID)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
}
