package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-step writes across repositories inside a
// single database transaction. The budget upsert and the cascading deletes
// (category unassignment, user deletion) run under it.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// UserRepository returns a user repository bound to the current transaction
	UserRepository(ctx context.Context) UserRepository

	// RefreshTokenRepository returns a refresh token repository bound to the current transaction
	RefreshTokenRepository(ctx context.Context) RefreshTokenRepository

	// UserCategoryRepository returns a user-category repository bound to the current transaction
	UserCategoryRepository(ctx context.Context) UserCategoryRepository

	// MonthlyBudgetRepository returns a monthly budget repository bound to the current transaction
	MonthlyBudgetRepository(ctx context.Context) MonthlyBudgetRepository

	// ExpenseRepository returns an expense repository bound to the current transaction
	ExpenseRepository(ctx context.Context) ExpenseRepository

	// IncomeRepository returns an income repository bound to the current transaction
	IncomeRepository(ctx context.Context) IncomeRepository
}
