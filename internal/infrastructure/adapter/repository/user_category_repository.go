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

// UserCategoryRepository implements persistence.UserCategoryRepository using GORM
type UserCategoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserCategoryRepository creates a new UserCategoryRepository instance
func NewUserCategoryRepository(db *gorm.DB, logger coreport.Logger) *UserCategoryRepository {
	return &UserCategoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *UserCategoryRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrCategoryNotAssigned
	}

	r.logger.Error("Database error when "+operation, map[string]any{
		"error": err.Error(),
	})
	return r.errorClassifier.mapStorageError(err)
}

// FindByUserAndCategory retrieves the assignment row for the pair
func (r *UserCategoryRepository) FindByUserAndCategory(ctx context.Context, userID, categoryID uint64) (*entity.UserCategory, error) {
	var ucModel model.UserCategory
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		First(&ucModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("finding category assignment", result.Error)
	}
	return &entity.UserCategory{
		ID:         ucModel.ID,
		UserID:     ucModel.UserID,
		CategoryID: ucModel.CategoryID,
		AssignedAt: ucModel.AssignedAt,
	}, nil
}

// ExistsByUserAndCategory reports whether the category is assigned to the user
func (r *UserCategoryRepository) ExistsByUserAndCategory(ctx context.Context, userID, categoryID uint64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserCategory{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count)
	if result.Error != nil {
		return false, r.handleDatabaseError("checking category assignment", result.Error)
	}
	return count > 0, nil
}

// Create persists a new assignment and backfills the generated ID. A
// duplicate key violation on the (user_id, category_id) index is reported
// as ErrCategoryAlreadyAssigned so the API can answer with a conflict.
func (r *UserCategoryRepository) Create(ctx context.Context, userCategory *entity.UserCategory) error {
	ucModel := model.UserCategory{
		UserID:     userCategory.UserID,
		CategoryID: userCategory.CategoryID,
		AssignedAt: userCategory.AssignedAt,
	}

	result := r.db.WithContext(ctx).Create(&ucModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrCategoryAlreadyAssigned
		}
		return r.handleDatabaseError("creating category assignment", result.Error)
	}

	userCategory.ID = ucModel.ID
	return nil
}

// Delete removes the assignment row for the pair
func (r *UserCategoryRepository) Delete(ctx context.Context, userID, categoryID uint64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Delete(&model.UserCategory{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting category assignment", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCategoryNotAssigned
	}
	return nil
}

// DeleteAllByUserID removes every assignment owned by the user
func (r *UserCategoryRepository) DeleteAllByUserID(ctx context.Context, userID uint64) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.UserCategory{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting user category assignments", result.Error)
	}
	return nil
}
