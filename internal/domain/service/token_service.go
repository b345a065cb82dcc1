// Package service defines the domain service contracts implemented by infra.
package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClass distinguishes short-lived access tokens from long-lived refresh
// tokens. A token presented in the wrong verification context must be
// rejected even when signature and expiry are valid.
type TokenClass string

const (
	ClassAccess  TokenClass = "access"
	ClassRefresh TokenClass = "refresh"
)

// Claims is the verified payload of a token.
type Claims struct {
	SubjectID uuid.UUID
	Class     TokenClass
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService creates and verifies signed, expiring bearer tokens.
// Implementations are pure computation with no I/O; all operations are safe
// for concurrent use.
type TokenService interface {
	// Issue produces a signed token for the subject. A zero lifetime uses
	// the configured default for the class.
	Issue(subjectID uuid.UUID, class TokenClass, lifetime time.Duration) (string, error)

	// Verify checks signature, expiry and token class. It fails with
	// domain ErrInvalidToken when the signature does not match, the payload
	// is malformed or the class differs from expectedClass, and with
	// ErrTokenExpired when the token is past its expiry.
	Verify(token string, expectedClass TokenClass) (*Claims, error)

	// AccessTokenLifetime returns the configured access-token lifetime.
	AccessTokenLifetime() time.Duration

	// RefreshTokenLifetime returns the configured refresh-token lifetime.
	RefreshTokenLifetime() time.Duration
}
