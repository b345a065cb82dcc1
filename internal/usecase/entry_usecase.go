package usecase

import (
	"context"

	"journal/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEntryInput defines the data required to create a journal entry.
type CreateEntryInput struct {
	Text string `json:"text" validate:"required,min=10,max=5000"`
	Mood string `json:"mood" validate:"required,oneof=great good neutral bad awful"`
}

// ListEntriesInput bounds a page of entries.
type ListEntriesInput struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// EntryUsecase defines the interface for journal-entry business operations.
type EntryUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateEntryInput) (*entity.Entry, error)
	List(ctx context.Context, userID uuid.UUID, input *ListEntriesInput) ([]*entity.Entry, error)
	Get(ctx context.Context, userID, entryID uuid.UUID) (*entity.Entry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}
