package impl

import (
	"context"
	"testing"
	"time"

	"journal/internal/domain/entity"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/repository"
	"journal/internal/domain/service"
	mockRepo "journal/internal/mocks/repository"
	mockSvc "journal/internal/mocks/service"
	"journal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func expectTokenPair(fx authServiceFixtures, userID uuid.UUID) {
	fx.tokenService.EXPECT().
		Issue(userID, service.ClassAccess, time.Duration(0)).
		Return("access-token", nil)
	fx.tokenService.EXPECT().
		Issue(userID, service.ClassRefresh, time.Duration(0)).
		Return("refresh-token", nil)
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}
	userID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	expectTokenPair(fx, userID)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicate))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	expectTokenPair(fx, user.ID)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	// Wrong password reports the same error as an unknown email.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "test@example.com",
	}

	fx.tokenService.EXPECT().
		Verify("valid-refresh-token", service.ClassRefresh).
		Return(&service.Claims{SubjectID: user.ID, Class: service.ClassRefresh}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	expectTokenPair(fx, user.ID)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{
		RefreshToken: "valid-refresh-token",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAuthService_RefreshToken_VerificationFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	// An access token submitted for refresh fails verification. The caller
	// only ever sees the opaque refresh error, never the class mismatch.
	fx.tokenService.EXPECT().
		Verify("access-token-in-refresh-slot", service.ClassRefresh).
		Return(nil, domainerrors.ErrInvalidToken)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{
		RefreshToken: "access-token-in-refresh-slot",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_RefreshToken_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		Verify("expired-refresh-token", service.ClassRefresh).
		Return(nil, domainerrors.ErrTokenExpired)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{
		RefreshToken: "expired-refresh-token",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	assert.False(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestAuthService_RefreshToken_SubjectDeleted(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	subjectID := uuid.New()

	fx.tokenService.EXPECT().
		Verify("orphaned-refresh-token", service.ClassRefresh).
		Return(&service.Claims{SubjectID: subjectID, Class: service.ClassRefresh}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, subjectID).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{
		RefreshToken: "orphaned-refresh-token",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}
