// Package middleware contains the HTTP middleware chain: authentication and
// the terminal error handler.
package middleware

import (
	"strings"

	deliverycontext "journal/internal/delivery/context"
	"journal/internal/domain/entity"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/repository"
	"journal/internal/domain/service"
	"journal/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards routes behind bearer-token authentication. Both entry
// points share one verification core; they differ only in what happens on
// failure.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// RequireAuth rejects the request unless it carries a valid access token for
// an existing user. Failures surface as precise error kinds so clients can
// diagnose what to fix.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.authenticate(c)
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// OptionalAuth runs the same verification path but swallows every failure:
// the caller cannot act on a bad token here, so the request simply proceeds
// with no identity attached.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if identity, err := m.authenticate(c); err == nil {
			deliverycontext.SetIdentity(c, identity)
		}

		return next(c)
	}
}

// authenticate is the shared verification core: extract the bearer token,
// verify it as an access token, then resolve the subject fresh from
// persistence. Exactly one persistence read per authenticated request.
func (m *AuthMiddleware) authenticate(c echo.Context) (*entity.Identity, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, domainerrors.ErrNoToken.WrapMessage("authorization header missing")
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil, domainerrors.ErrNoToken.WrapMessage("authorization header is not bearer-shaped")
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return nil, domainerrors.ErrNoToken.WrapMessage("bearer token empty")
	}

	claims, err := m.tokenSvc.Verify(token, service.ClassAccess)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// The token may outlive its subject; a deleted user must not
	// authenticate.
	user, err := m.userRepo.FindByID(c.Request().Context(), claims.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	return entity.IdentityOf(user), nil
}
