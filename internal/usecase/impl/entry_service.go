package impl

import (
	"context"
	"log/slog"

	deliverycontext "journal/internal/delivery/context"
	"journal/internal/domain/entity"
	"journal/internal/domain/repository"
	"journal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultEntryPageSize = 20

// entryService implements the EntryUsecase interface.
type entryService struct {
	entryRepo repository.EntryRepository
	logger    *slog.Logger
}

// EntryServiceParams holds dependencies for entryService, injected by Fx.
type EntryServiceParams struct {
	fx.In

	EntryRepo repository.EntryRepository
	Logger    *slog.Logger
}

// NewEntryService is the constructor for entryService.
func NewEntryService(params EntryServiceParams) usecase.EntryUsecase {
	return &entryService{
		entryRepo: params.EntryRepo,
		logger:    params.Logger,
	}
}

func (srv *entryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new journal entry for the user.
func (srv *entryService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateEntryInput) (*entity.Entry, error) {
	entry := &entity.Entry{
		UserID: userID,
		Text:   input.Text,
		Mood:   entity.Mood(input.Mood),
	}

	if err := srv.entryRepo.Create(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to create entry", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create entry")
	}

	srv.log(ctx).Debug("Entry created", slog.Any("entryID", entry.ID), slog.Any("userID", userID))

	return entry, nil
}

// List returns a page of the user's entries, newest first.
func (srv *entryService) List(ctx context.Context, userID uuid.UUID, input *usecase.ListEntriesInput) ([]*entity.Entry, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultEntryPageSize
	}

	entries, err := srv.entryRepo.ListByUser(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entries")
	}

	return entries, nil
}

// Get returns one of the user's entries. Entries owned by someone else are
// reported as absent rather than forbidden.
func (srv *entryService) Get(ctx context.Context, userID, entryID uuid.UUID) (*entity.Entry, error) {
	entry, err := srv.entryRepo.FindByID(ctx, entryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get entry")
	}

	if entry.UserID != userID {
		return nil, errors.WithStack(repository.ErrEntryNotFound)
	}

	return entry, nil
}

// Delete removes one of the user's entries.
func (srv *entryService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	entry, err := srv.entryRepo.FindByID(ctx, entryID)
	if err != nil {
		return errors.Wrap(err, "failed to load entry for delete")
	}

	if entry.UserID != userID {
		return errors.WithStack(repository.ErrEntryNotFound)
	}

	if err := srv.entryRepo.Delete(ctx, entryID); err != nil {
		return errors.Wrap(err, "failed to delete entry")
	}

	srv.log(ctx).Debug("Entry deleted", slog.Any("entryID", entryID), slog.Any("userID", userID))

	return nil
}
