package usecase

import (
	"context"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
)

// CategoryUseCase defines category assignment and monthly budget operations
type CategoryUseCase interface {
	// CreateAndAssignCategory canonicalizes the name, reuses an existing
	// category on a case-insensitive match or creates one, then assigns it
	// to the user. Repeated calls never duplicate the category or the
	// assignment.
	CreateAndAssignCategory(ctx context.Context, userID uint64, name string) (*entity.Category, error)

	// AssignCategoryToUser assigns an existing category to a user.
	// Fails with ErrCategoryNotFound / ErrUserNotFound when either side
	// is missing.
	AssignCategoryToUser(ctx context.Context, userID, categoryID uint64) error

	// RemoveCategoryFromUser removes an assignment, cascade-deleting the
	// user's expenses in that category first. Fails with
	// ErrCategoryNotAssigned when no assignment exists.
	RemoveCategoryFromUser(ctx context.Context, userID, categoryID uint64) error

	// SetMonthlyBudget upserts the budget for the current month. Fails with
	// ErrCategoryNotAssigned when the user has no assignment for the
	// category. The amount is a decimal string like "150.00".
	SetMonthlyBudget(ctx context.Context, userID, categoryID uint64, amount string) (*entity.MonthlyBudget, error)

	// DeleteMonthlyBudget removes the current month's budget row, if any.
	// Fails with ErrCategoryNotAssigned when the user has no assignment
	// for the category; a missing budget row is not an error.
	DeleteMonthlyBudget(ctx context.Context, userID, categoryID uint64) error
}

// UserUseCase defines user lookup and account deletion operations
type UserUseCase interface {
	// GetUserByID retrieves a user by numeric id
	GetUserByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetUserByEmail retrieves a user by unique email
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// DeleteUser removes the user and all owned records (incomes, expenses,
	// category assignments, refresh tokens) in one transaction
	DeleteUser(ctx context.Context, id uint64) error
}
