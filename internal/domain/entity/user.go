// Package entity contains the pure domain objects of the application.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted account record.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the minimal authenticated-subject projection attached to a
// request after successful token verification. It is resolved fresh from
// persistence on every authenticated request and never cached across
// requests.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// IdentityOf projects a user onto its request-scoped identity.
func IdentityOf(user *User) *Identity {
	return &Identity{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
