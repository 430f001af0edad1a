package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/domain/port/persistence"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions.
// Repository getters return instances bound to the transaction stored in
// the context, or to the base connection when no transaction is active.
type UnitOfWork struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:     db,
		logger: logger,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error

	// A rollback after commit is a no-op, not a failure
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// UserRepository returns a user repository bound to the current transaction
func (u *UnitOfWork) UserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.dbFromContext(ctx), u.logger)
}

// RefreshTokenRepository returns a refresh token repository bound to the current transaction
func (u *UnitOfWork) RefreshTokenRepository(ctx context.Context) persistence.RefreshTokenRepository {
	return repository.NewRefreshTokenRepository(u.dbFromContext(ctx), u.logger)
}

// UserCategoryRepository returns a category assignment repository bound to the current transaction
func (u *UnitOfWork) UserCategoryRepository(ctx context.Context) persistence.UserCategoryRepository {
	return repository.NewUserCategoryRepository(u.dbFromContext(ctx), u.logger)
}

// MonthlyBudgetRepository returns a monthly budget repository bound to the current transaction
func (u *UnitOfWork) MonthlyBudgetRepository(ctx context.Context) persistence.MonthlyBudgetRepository {
	return repository.NewMonthlyBudgetRepository(u.dbFromContext(ctx), u.logger)
}

// ExpenseRepository returns an expense repository bound to the current transaction
func (u *UnitOfWork) ExpenseRepository(ctx context.Context) persistence.ExpenseRepository {
	return repository.NewExpenseRepository(u.dbFromContext(ctx), u.logger)
}

// IncomeRepository returns an income repository bound to the current transaction
func (u *UnitOfWork) IncomeRepository(ctx context.Context) persistence.IncomeRepository {
	return repository.NewIncomeRepository(u.dbFromContext(ctx), u.logger)
}

func (u *UnitOfWork) dbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
