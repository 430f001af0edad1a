package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	errs "github.com/moneywise/finance-tracker/internal/domain/error"
	"github.com/moneywise/finance-tracker/internal/domain/port/usecase"
	mockcore "github.com/moneywise/finance-tracker/mocks/port/core"
	mockpersistence "github.com/moneywise/finance-tracker/mocks/port/persistence"
)

const testRefreshTTL = 24 * time.Hour

// newLenientLogger returns a logger mock that accepts any log call
func newLenientLogger() *mockcore.MockLogger {
	logger := new(mockcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func testUser(fixedTime time.Time) *entity.User {
	return &entity.User{
		ID:           42,
		Name:         "John Doe",
		Username:     "johndoe",
		Email:        "john@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleUser,
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	}
}

func TestService_Register(t *testing.T) {
	fixedTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should register user and return both tokens", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockRefreshRepo := new(mockpersistence.MockRefreshTokenRepository)
		mockHasher := new(mockcore.MockPasswordHasher)
		mockSigner := new(mockcore.MockTokenSigner)
		mockTimeProvider := new(mockcore.MockTimeProvider)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockUserRepo.On("ExistsByEmail", ctx, "john@example.com").Return(false, nil)
		mockHasher.On("Hash", "s3cret").Return("hashed-password", nil)
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				user := args.Get(1).(*entity.User)
				user.ID = 42
				assert.Equal(t, "hashed-password", user.PasswordHash)
				assert.Equal(t, entity.RoleUser, user.Role)
			}).Return(nil)
		mockSigner.On("Generate", uint64(42), "john@example.com", "USER").Return("access-token", nil)
		mockRefreshRepo.On("FindByUserID", ctx, uint64(42)).Return(nil, errs.ErrRefreshTokenNotFound)

		var storedToken *entity.RefreshToken
		mockRefreshRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).
			Run(func(args mock.Arguments) {
				storedToken = args.Get(1).(*entity.RefreshToken)
			}).Return(nil)

		service := NewService(mockUserRepo, mockRefreshRepo, mockHasher, mockSigner, mockTimeProvider, newLenientLogger(), testRefreshTTL)

		// Act
		pair, err := service.Register(ctx, usecase.RegisterRequest{
			Name:     "John Doe",
			Username: "johndoe",
			Email:    "john@example.com",
			Password: "s3cret",
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "access-token", pair.AccessToken)
		assert.NotNil(t, storedToken)
		assert.NotEmpty(t, storedToken.Token)
		assert.Equal(t, storedToken.Token, pair.RefreshToken)
		assert.Equal(t, uint64(42), storedToken.UserID)
		assert.Equal(t, fixedTime.Add(testRefreshTTL), storedToken.ExpiresAt)

		mockUserRepo.AssertExpectations(t)
		mockRefreshRepo.AssertExpectations(t)
	})

	t.Run("should fail with conflict when email already registered", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockRefreshRepo := new(mockpersistence.MockRefreshTokenRepository)
		mockHasher := new(mockcore.MockPasswordHasher)
		mockSigner := new(mockcore.MockTokenSigner)
		mockTimeProvider := new(mockcore.MockTimeProvider)

		mockUserRepo.On("ExistsByEmail", ctx, "john@example.com").Return(true, nil)

		service := NewService(mockUserRepo, mockRefreshRepo, mockHasher, mockSigner, mockTimeProvider, newLenientLogger(), testRefreshTTL)

		// Act
		pair, err := service.Register(ctx, usecase.RegisterRequest{
			Name:     "John Doe",
			Username: "johndoe",
			Email:    "john@example.com",
			Password: "s3cret",
		})

		// Assert
		assert.Nil(t, pair)
		assert.ErrorIs(t, err, errs.ErrEmailAlreadyRegistered)

		// No store mutation on conflict
		mockHasher.AssertNotCalled(t, "Hash")
		mockUserRepo.AssertNotCalled(t, "Create")
		mockRefreshRepo.AssertNotCalled(t, "Create")
	})
}

func TestService_Login(t *testing.T) {
	fixedTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should reuse the outstanding refresh token", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		user := testUser(fixedTime)

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockRefreshRepo := new(mockpersistence.MockRefreshTokenRepository)
		mockHasher := new(mockcore.MockPasswordHasher)
		mockSigner := new(mockcore.MockTokenSigner)
		mockTimeProvider := new(mockcore.MockTimeProvider)

		existing := entity.NewRefreshToken(42, "existing-refresh", fixedTime.Add(time.Hour))

		mockTimeProvider.On("Now").Return(fixedTime)
		mockUserRepo.On("GetByEmail", ctx, "john@example.com").Return(user, nil)
		mockHasher.On("Compare", "hashed-password", "s3cret").Return(nil)
		mockSigner.On("Generate", uint64(42), "john@example.com", "USER").Return("access-token", nil)
		mockRefreshRepo.On("FindByUserID", ctx, uint64(42)).Return(existing, nil)

		service := NewService(mockUserRepo, mockRefreshRepo, mockHasher, mockSigner, mockTimeProvider, newLenientLogger(), testRefreshTTL)

		// Act
		pair, err := service.Login(ctx, "john@example.com", "s3cret")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "access-token", pair.AccessToken)
		assert.Equal(t, "existing-refresh", pair.RefreshToken)

		// No new token is minted while one is outstanding
		mockRefreshRepo.AssertNotCalled(t, "Create")
	})

	t.Run("should normalize wrong password to invalid credentials", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		user := testUser(fixedTime)

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockRefreshRepo := new(mockpersistence.MockRefreshTokenRepository)
		mockHasher := new(mockcore.MockPasswordHasher)
		mockSigner := new(mockcore.MockTokenSigner)
		mockTimeProvider := new(mockcore.MockTimeProvider)

		mockUserRepo.On("GetByEmail", ctx, "john@example.com").Return(user, nil)
		mockHasher.On("Compare", "hashed-password", "wrong").Return(assert.AnError)

		service := NewService(mockUserRepo, mockRefreshRepo, mockHasher, mockSigner, mockTimeProvider, newLenientLogger(), testRefreshTTL)

		// Act
		pair, err := service.Login(ctx, "john@example.com", "wrong")

		// Assert
		assert.Nil(t, pair)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		mockSigner.AssertNotCalled(t, "Generate")
	})

	t.Run("should normalize unknown email to invalid credentials", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockRefreshRepo := new(mockpersistence.MockRefreshTokenRepository)
		mockHasher := new(mockcore.MockPasswordHasher)
		mockSigner := new(mockcore.MockTokenSigner)
		mockTimeProvider := new(mockcore.MockTimeProvider)

		mockUserRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, errs.ErrUserNotFound)

		service := NewService(mockUserRepo, mockRefreshRepo, mockHasher, mockSigner, mockTimeProvider, newLenientLogger(), testRefreshTTL)

		// Act
		pair, err := service.Login(ctx, "ghost@example.com", "s3cret")

		// Assert
		assert.Nil(t, pair)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

		// Unknown email and wrong password are indistinguishable
		mockHasher.AssertNotCalled(t, "Compare")
	})
}

func TestService_RefreshAccessToken(t *testing.T) {
	fixedTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should return new access token with the same refresh value", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		user := testUser(fixedTime)
		token := entity.NewRefreshToken(42, "refresh-value", fixedTime.Add(time.Hour))

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockRefreshRepo := new(mockpersistence.MockRefreshTokenRepository)
		mockHasher := new(mockcore.MockPasswordHasher)
		mockSigner := new(mockcore.MockTokenSigner)
		mockTimeProvider := new(mockcore.MockTimeProvider)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockRefreshRepo.On("FindByToken", ctx, "refresh-value").Return(token, nil)
		mockUserRepo.On("GetByID", ctx, uint64(42)).Return(user, nil)
		mockSigner.On("Generate", uint64(42), "john@example.com", "USER").Return("new-access-token", nil)

		service := NewService(mockUserRepo, mockRefreshRepo, mockHasher, mockSigner, mockTimeProvider, newLenientLogger(), testRefreshTTL)

		// Act
		pair, err := service.RefreshAccessToken(ctx, "refresh-value")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "new-access-token", pair.AccessToken)
		assert.Equal(t, "refresh-value", pair.RefreshToken)
		mockRefreshRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("should delete expired token before failing", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		token := entity.NewRefreshToken(42, "stale-value", fixedTime.Add(-time.Minute))

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockRefreshRepo := new(mockpersistence.MockRefreshTokenRepository)
		mockHasher := new(mockcore.MockPasswordHasher)
		mockSigner := new(mockcore.MockTokenSigner)
		mockTimeProvider := new(mockcore.MockTimeProvider)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockRefreshRepo.On("FindByToken", ctx, "stale-value").Return(token, nil)
		mockRefreshRepo.On("Delete", ctx, "stale-value").Return(nil)

		service := NewService(mockUserRepo, mockRefreshRepo, mockHasher, mockSigner, mockTimeProvider, newLenientLogger(), testRefreshTTL)

		// Act
		pair, err := service.RefreshAccessToken(ctx, "stale-value")

		// Assert
		assert.Nil(t, pair)
		assert.ErrorIs(t, err, errs.ErrRefreshTokenExpired)
		mockRefreshRepo.AssertCalled(t, "Delete", ctx, "stale-value")
		mockSigner.AssertNotCalled(t, "Generate")
	})

	t.Run("should fail with not found for an unknown token", func(t *testing.T) {
		// Arrange
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockRefreshRepo := new(mockpersistence.MockRefreshTokenRepository)
		mockHasher := new(mockcore.MockPasswordHasher)
		mockSigner := new(mockcore.MockTokenSigner)
		mockTimeProvider := new(mockcore.MockTimeProvider)

		mockRefreshRepo.On("FindByToken", ctx, "unknown").Return(nil, errs.ErrRefreshTokenNotFound)

		service := NewService(mockUserRepo, mockRefreshRepo, mockHasher, mockSigner, mockTimeProvider, newLenientLogger(), testRefreshTTL)

		// Act
		pair, err := service.RefreshAccessToken(ctx, "unknown")

		// Assert
		assert.Nil(t, pair)
		assert.ErrorIs(t, err, errs.ErrRefreshTokenNotFound)
	})
}

func TestService_UserID(t *testing.T) {
	service := NewService(nil, nil, nil, nil, nil, newLenientLogger(), testRefreshTTL)

	principal := &entity.Principal{
		UserID: 42,
		Email:  "john@example.com",
		Role:   entity.RoleUser,
	}

	assert.Equal(t, uint64(42), service.UserID(principal))
}
