package repository

import (
	"context"

	"journal/internal/domain/entity"
	"journal/internal/errors"

	"github.com/google/uuid"
)

// ErrEntryNotFound is returned when an entry lookup matches no record.
var ErrEntryNotFound = errors.New("entry not found")

// EntryRepository is the persistence collaborator for journal entries.
type EntryRepository interface {
	Create(ctx context.Context, entry *entity.Entry) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
