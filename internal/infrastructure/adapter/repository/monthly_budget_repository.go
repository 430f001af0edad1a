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

// MonthlyBudgetRepository implements persistence.MonthlyBudgetRepository using GORM
type MonthlyBudgetRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMonthlyBudgetRepository creates a new MonthlyBudgetRepository instance
func NewMonthlyBudgetRepository(db *gorm.DB, logger coreport.Logger) *MonthlyBudgetRepository {
	return &MonthlyBudgetRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// UpdateAmount updates the budget amount for the scoped row and returns
// how many rows matched. Zero means the caller should insert instead.
func (r *MonthlyBudgetRepository) UpdateAmount(ctx context.Context, userID, categoryID uint64, yearMonth string, amount int64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.MonthlyBudget{}).
		Where("user_id = ? AND category_id = ? AND year_month = ?", userID, categoryID, yearMonth).
		Updates(map[string]interface{}{
			"budget_amount": amount,
		})
	if result.Error != nil {
		r.logger.Error("Database error when updating monthly budget", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, r.errorClassifier.mapStorageError(result.Error)
	}
	return result.RowsAffected, nil
}

// Create persists a new monthly budget row. A duplicate key violation on
// the (user_id, category_id, year_month) index is reported as
// ErrBudgetConflict so the caller can distinguish a lost upsert race.
func (r *MonthlyBudgetRepository) Create(ctx context.Context, budget *entity.MonthlyBudget) error {
	budgetModel := model.MonthlyBudget{
		UserID:       budget.UserID,
		CategoryID:   budget.CategoryID,
		YearMonth:    budget.YearMonth,
		BudgetAmount: budget.BudgetAmount,
		SpentAmount:  budget.SpentAmount,
		UpdatedAt:    budget.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&budgetModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrBudgetConflict
		}
		r.logger.Error("Database error when creating monthly budget", map[string]any{
			"error": result.Error.Error(),
		})
		return r.errorClassifier.mapStorageError(result.Error)
	}

	budget.ID = budgetModel.ID
	return nil
}

// FindByMonth retrieves the stored budget row for the scope
func (r *MonthlyBudgetRepository) FindByMonth(ctx context.Context, userID, categoryID uint64, yearMonth string) (*entity.MonthlyBudget, error) {
	var budgetModel model.MonthlyBudget
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ? AND year_month = ?", userID, categoryID, yearMonth).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBudgetNotFound
		}
		r.logger.Error("Database error when finding monthly budget", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, r.errorClassifier.mapStorageError(result.Error)
	}
	return &entity.MonthlyBudget{
		ID:           budgetModel.ID,
		UserID:       budgetModel.UserID,
		CategoryID:   budgetModel.CategoryID,
		YearMonth:    budgetModel.YearMonth,
		BudgetAmount: budgetModel.BudgetAmount,
		SpentAmount:  budgetModel.SpentAmount,
		UpdatedAt:    budgetModel.UpdatedAt,
	}, nil
}

// DeleteByMonth removes the scoped budget row. Deleting a row that does not
// exist is not an error.
func (r *MonthlyBudgetRepository) DeleteByMonth(ctx context.Context, userID, categoryID uint64, yearMonth string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ? AND year_month = ?", userID, categoryID, yearMonth).
		Delete(&model.MonthlyBudget{})
	if result.Error != nil {
		r.logger.Error("Database error when deleting monthly budget", map[string]any{
			"error": result.Error.Error(),
		})
		return r.errorClassifier.mapStorageError(result.Error)
	}
	return nil
}

// DeleteAllByUserID removes every budget row owned by the user
func (r *MonthlyBudgetRepository) DeleteAllByUserID(ctx context.Context, userID uint64) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.MonthlyBudget{})
	if result.Error != nil {
		r.logger.Error("Database error when deleting user budgets", map[string]any{
			"error": result.Error.Error(),
		})
		return r.errorClassifier.mapStorageError(result.Error)
	}
	return nil
}
