package impl

import (
	"context"
	"testing"

	"journal/internal/domain/entity"
	"journal/internal/domain/repository"
	mockRepo "journal/internal/mocks/repository"
	"journal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type entryServiceFixtures struct {
	service   usecase.EntryUsecase
	entryRepo *mockRepo.MockEntryRepository
}

func createTestEntryService(t *testing.T) entryServiceFixtures {
	entryRepo := mockRepo.NewMockEntryRepository(t)

	service := NewEntryService(EntryServiceParams{
		EntryRepo: entryRepo,
		Logger:    newDiscardLogger(),
	})

	return entryServiceFixtures{
		service:   service,
		entryRepo: entryRepo,
	}
}

func TestEntryService_Create_Success(t *testing.T) {
	fx := createTestEntryService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateEntryInput{
		Text: "Today I finally shipped the release I had been preparing for weeks.",
		Mood: string(entity.MoodGood),
	}

	fx.entryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Entry")).
		Run(func(ctx context.Context, entry *entity.Entry) {
			entry.ID = uuid.New()
		}).
		Return(nil)

	entry, err := fx.service.Create(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, input.Text, entry.Text)
	assert.Equal(t, entity.MoodGood, entry.Mood)
}

func TestEntryService_List_DefaultsPageSize(t *testing.T) {
	fx := createTestEntryService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.Entry{
		{ID: uuid.New(), UserID: userID, Text: "newest", Mood: entity.MoodGreat},
		{ID: uuid.New(), UserID: userID, Text: "older", Mood: entity.MoodNeutral},
	}

	fx.entryRepo.EXPECT().
		ListByUser(ctx, userID, defaultEntryPageSize, 0).
		Return(stored, nil)

	entries, err := fx.service.List(ctx, userID, &usecase.ListEntriesInput{})

	require.NoError(t, err)
	assert.Equal(t, stored, entries)
}

func TestEntryService_List_ExplicitPaging(t *testing.T) {
	fx := createTestEntryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.entryRepo.EXPECT().
		ListByUser(ctx, userID, 5, 10).
		Return([]*entity.Entry{}, nil)

	entries, err := fx.service.List(ctx, userID, &usecase.ListEntriesInput{Limit: 5, Offset: 10})

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryService_Get_Success(t *testing.T) {
	fx := createTestEntryService(t)

	ctx := context.Background()
	userID := uuid.New()
	entry := &entity.Entry{ID: uuid.New(), UserID: userID, Text: "mine", Mood: entity.MoodGood}

	fx.entryRepo.EXPECT().FindByID(ctx, entry.ID).Return(entry, nil)

	found, err := fx.service.Get(ctx, userID, entry.ID)

	require.NoError(t, err)
	assert.Equal(t, entry, found)
}

func TestEntryService_Get_OtherUsersEntry(t *testing.T) {
	fx := createTestEntryService(t)

	ctx := context.Background()
	entry := &entity.Entry{ID: uuid.New(), UserID: uuid.New(), Text: "not yours", Mood: entity.MoodBad}

	fx.entryRepo.EXPECT().FindByID(ctx, entry.ID).Return(entry, nil)

	found, err := fx.service.Get(ctx, uuid.New(), entry.ID)

	require.Error(t, err)
	assert.Nil(t, found)

	// Someone else's entry looks exactly like a missing one.
	assert.True(t, errors.Is(err, repository.ErrEntryNotFound))
}

func TestEntryService_Get_NotFound(t *testing.T) {
	fx := createTestEntryService(t)

	ctx := context.Background()
	entryID := uuid.New()

	fx.entryRepo.EXPECT().
		FindByID(ctx, entryID).
		Return(nil, repository.ErrEntryNotFound)

	found, err := fx.service.Get(ctx, uuid.New(), entryID)

	require.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, repository.ErrEntryNotFound))
}

func TestEntryService_Delete_Success(t *testing.T) {
	fx := createTestEntryService(t)

	ctx := context.Background()
	userID := uuid.New()
	entry := &entity.Entry{ID: uuid.New(), UserID: userID}

	fx.entryRepo.EXPECT().FindByID(ctx, entry.ID).Return(entry, nil)
	fx.entryRepo.EXPECT().Delete(ctx, entry.ID).Return(nil)

	err := fx.service.Delete(ctx, userID, entry.ID)

	require.NoError(t, err)
}

func TestEntryService_Delete_OtherUsersEntry(t *testing.T) {
	fx := createTestEntryService(t)

	ctx := context.Background()
	entry := &entity.Entry{ID: uuid.New(), UserID: uuid.New()}

	fx.entryRepo.EXPECT().FindByID(ctx, entry.ID).Return(entry, nil)

	err := fx.service.Delete(ctx, uuid.New(), entry.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrEntryNotFound))
}
