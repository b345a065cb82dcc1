// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"journal/config"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/service"
	"journal/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. It is pure computation: no I/O, no shared mutable state.
type jwtService struct {
	secret     []byte        // Process-wide signing key, read-only after startup.
	accessTTL  time.Duration // Default lifetime for access tokens.
	refreshTTL time.Duration // Default lifetime for refresh tokens.
}

// NewJWTService is the constructor for jwtService. A missing signing secret
// is a fatal startup condition, never a per-request error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.JWT.Secret),
		accessTTL:  cfg.JWT.AccessTTL,
		refreshTTL: cfg.JWT.RefreshTTL,
	}, nil
}

// Issue produces a signed token carrying the subject id and token class.
func (s *jwtService) Issue(subjectID uuid.UUID, class service.TokenClass, lifetime time.Duration) (string, error) {
	// Only a zero lifetime falls back to the configured default; explicit
	// values, including negative ones, are honored as given.
	if lifetime == 0 {
		lifetime = s.defaultLifetime(class)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subjectID.String(),
		"type": string(class),
		"iat":  now.Unix(),
		"exp":  now.Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks signature, expiry and token class. Class confusion is
// reported identically to a bad signature so a caller cannot learn which
// check failed.
func (s *jwtService) Verify(tokenString string, expectedClass service.TokenClass) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token is past its expiry")
		}

		return nil, domainerrors.ErrInvalidToken.WrapMessage("failed to parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected claims payload")
	}

	claims, err := claimsFrom(mapClaims)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("malformed claims payload")
	}

	if claims.Class != expectedClass {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token class mismatch")
	}

	return claims, nil
}

// AccessTokenLifetime returns the configured access-token lifetime.
func (s *jwtService) AccessTokenLifetime() time.Duration {
	return s.accessTTL
}

// RefreshTokenLifetime returns the configured refresh-token lifetime.
func (s *jwtService) RefreshTokenLifetime() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) defaultLifetime(class service.TokenClass) time.Duration {
	if class == service.ClassRefresh {
		return s.refreshTTL
	}

	return s.accessTTL
}

func claimsFrom(mapClaims jwt.MapClaims) (*service.Claims, error) {
	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "missing sub claim")
	}

	subjectID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "sub claim is not a valid id")
	}

	class, ok := mapClaims["type"].(string)
	if !ok {
		return nil, errors.New("missing type claim")
	}

	claims := &service.Claims{
		SubjectID: subjectID,
		Class:     service.TokenClass(class),
	}

	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
