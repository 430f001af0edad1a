package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	errs "github.com/moneywise/finance-tracker/internal/domain/error"
	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/model"
)

// RefreshTokenRepository implements persistence.RefreshTokenRepository using GORM
type RefreshTokenRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRefreshTokenRepository creates a new RefreshTokenRepository instance
func NewRefreshTokenRepository(db *gorm.DB, logger coreport.Logger) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func refreshTokenModelToEntity(tokenModel *model.RefreshToken) *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        tokenModel.ID,
		Token:     tokenModel.Token,
		UserID:    tokenModel.UserID,
		ExpiresAt: tokenModel.ExpiresAt,
	}
}

func (r *RefreshTokenRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrRefreshTokenNotFound
	}

	r.logger.Error("Database error when "+operation, map[string]any{
		"error": err.Error(),
	})
	return r.errorClassifier.mapStorageError(err)
}

// FindByToken retrieves a refresh token by its opaque value
func (r *RefreshTokenRepository) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	var tokenModel model.RefreshToken
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&tokenModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("finding refresh token", result.Error)
	}
	return refreshTokenModelToEntity(&tokenModel), nil
}

// FindByUserID retrieves the user's outstanding refresh token
func (r *RefreshTokenRepository) FindByUserID(ctx context.Context, userID uint64) (*entity.RefreshToken, error) {
	var tokenModel model.RefreshToken
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&tokenModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("finding refresh token by user", result.Error)
	}
	return refreshTokenModelToEntity(&tokenModel), nil
}

// Create persists a new refresh token and backfills the generated ID
func (r *RefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	tokenModel := model.RefreshToken{
		Token:     token.Token,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt,
	}

	result := r.db.WithContext(ctx).Create(&tokenModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating refresh token", result.Error)
	}

	token.ID = tokenModel.ID
	return nil
}

// Delete removes the row holding the given token value. Deleting a token
// that is already gone is not an error.
func (r *RefreshTokenRepository) Delete(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.RefreshToken{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting refresh token", result.Error)
	}
	return nil
}

// DeleteAllByUserID removes every refresh token owned by the user
func (r *RefreshTokenRepository) DeleteAllByUserID(ctx context.Context, userID uint64) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshToken{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting user refresh tokens", result.Error)
	}
	return nil
}
