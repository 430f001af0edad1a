package repository

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/model"
)

// ExpenseRepository implements persistence.ExpenseRepository using GORM
type ExpenseRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewExpenseRepository creates a new ExpenseRepository instance
func NewExpenseRepository(db *gorm.DB, logger coreport.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// DeleteAllByUserAndCategory removes the user's expenses in one category
func (r *ExpenseRepository) DeleteAllByUserAndCategory(ctx context.Context, userID, categoryID uint64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Delete(&model.Expense{})
	if result.Error != nil {
		r.logger.Error("Database error when deleting category expenses", map[string]any{
			"error": result.Error.Error(),
		})
		return r.errorClassifier.mapStorageError(result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expenses cascade-deleted", map[string]any{
			"user_id":     userID,
			"category_id": categoryID,
			"rows":        result.RowsAffected,
		})
	}
	return nil
}

// DeleteAllByUserID removes every expense owned by the user
func (r *ExpenseRepository) DeleteAllByUserID(ctx context.Context, userID uint64) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Expense{})
	if result.Error != nil {
		r.logger.Error("Database error when deleting user expenses", map[string]any{
			"error": result.Error.Error(),
		})
		return r.errorClassifier.mapStorageError(result.Error)
	}
	return nil
}

// IncomeRepository implements persistence.IncomeRepository using GORM
type IncomeRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewIncomeRepository creates a new IncomeRepository instance
func NewIncomeRepository(db *gorm.DB, logger coreport.Logger) *IncomeRepository {
	return &IncomeRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// DeleteAllByUserID removes every income owned by the user
func (r *IncomeRepository) DeleteAllByUserID(ctx context.Context, userID uint64) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Income{})
	if result.Error != nil {
		r.logger.Error("Database error when deleting user incomes", map[string]any{
			"error": result.Error.Error(),
		})
		return r.errorClassifier.mapStorageError(result.Error)
	}
	return nil
}
