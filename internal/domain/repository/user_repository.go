// Package repository defines the persistence contracts the domain depends on.
package repository

import (
	"context"

	"journal/internal/domain/entity"
	"journal/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user lookup matches no record.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when a create violates the unique
	// constraint on the email column.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository is the persistence collaborator for user accounts.
// FindByID is the only outbound call the authentication path makes.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
