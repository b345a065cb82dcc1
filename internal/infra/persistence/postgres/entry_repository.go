package postgres

import (
	"context"

	"journal/internal/domain/entity"
	"journal/internal/domain/repository"
	"journal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// entryRepository implements the repository.EntryRepository interface using GORM.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{db: db}
}

// Create persists a new journal entry.
func (repo *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryM := model.EntryModelFromDomain(entry)
	if entryM.ID == uuid.Nil {
		entryM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return repository.OperationFailed(err, "create entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindByID retrieves a single entry by its unique ID.
func (repo *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entryM model.EntryModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, repository.OperationFailed(err, "find entry by id")
	}

	return entryM.ToDomain(), nil
}

// ListByUser retrieves a page of entries owned by a user, newest first.
func (repo *entryRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Entry, error) {
	var models []model.EntryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, repository.OperationFailed(err, "list entries")
	}

	entries := make([]*entity.Entry, 0, len(models))
	for i := range models {
		entries = append(entries, models[i].ToDomain())
	}

	return entries, nil
}

// Delete removes an entry by its unique ID.
func (repo *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EntryModel{})

	if result.Error != nil {
		return repository.OperationFailed(result.Error, "delete entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}
