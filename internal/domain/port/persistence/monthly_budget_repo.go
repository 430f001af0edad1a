package persistence

import (
	"context"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
)

// MonthlyBudgetRepository defines methods to interact with monthly budget
// rows, keyed by (user, category, canonical year-month string).
type MonthlyBudgetRepository interface {
	// UpdateAmount conditionally updates the budget amount for the key and
	// returns the number of affected rows. Zero rows means no budget exists
	// for that month yet; the caller then inserts.
	UpdateAmount(ctx context.Context, userID, categoryID uint64, yearMonth string, amount int64) (int64, error)

	// Create inserts a new monthly budget row
	//
	// Possible errors:
	// - ErrBudgetConflict: if a row for (user, category, yearMonth) already
	//   exists; the unique index backs the upsert against concurrent inserts
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, budget *entity.MonthlyBudget) error

	// FindByMonth retrieves the stored budget row for the key
	//
	// Possible errors:
	// - ErrBudgetNotFound: if no row exists for that month
	// - ErrDatabaseConnection: if the database is unreachable
	FindByMonth(ctx context.Context, userID, categoryID uint64, yearMonth string) (*entity.MonthlyBudget, error)

	// DeleteByMonth removes the budget row for the key.
	// Deleting an absent row is not an error.
	DeleteByMonth(ctx context.Context, userID, categoryID uint64, yearMonth string) error

	// DeleteAllByUserID removes every budget row owned by the user.
	// Used by the user-deletion cascade.
	DeleteAllByUserID(ctx context.Context, userID uint64) error
}

// ExpenseRepository defines the expense operations the core consumes.
// Only bulk deletions are needed: the category-unassignment cascade and the
// user-deletion cascade.
type ExpenseRepository interface {
	// DeleteAllByUserAndCategory removes all of the user's expenses tagged
	// with the category
	DeleteAllByUserAndCategory(ctx context.Context, userID, categoryID uint64) error

	// DeleteAllByUserID removes all of the user's expenses
	DeleteAllByUserID(ctx context.Context, userID uint64) error
}

// IncomeRepository defines the income operations the core consumes
type IncomeRepository interface {
	// DeleteAllByUserID removes all of the user's incomes.
	// Used by the user-deletion cascade.
	DeleteAllByUserID(ctx context.Context, userID uint64) error
}
