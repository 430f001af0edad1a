package persistence

import (
	"context"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
)

// CategoryRepository defines methods to interact with shared categories
type CategoryRepository interface {
	// GetByID retrieves a category by id
	//
	// Possible errors:
	// - ErrCategoryNotFound: if no category with the id exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Category, error)

	// FindByName retrieves a category by case-insensitive exact name match
	//
	// Possible errors:
	// - ErrCategoryNotFound: if no category with the name exists
	// - ErrDatabaseConnection: if the database is unreachable
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// Create persists a new category and fills in the generated id
	//
	// Possible errors:
	// - ErrConstraintViolation: if the case-insensitive name uniqueness is violated
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, category *entity.Category) error
}

// UserCategoryRepository defines methods to interact with the user-category
// join. At most one row exists per (user, category) pair.
type UserCategoryRepository interface {
	// FindByUserAndCategory retrieves the assignment row for a pair
	//
	// Possible errors:
	// - ErrCategoryNotAssigned: if the pair has no assignment
	// - ErrDatabaseConnection: if the database is unreachable
	FindByUserAndCategory(ctx context.Context, userID, categoryID uint64) (*entity.UserCategory, error)

	// ExistsByUserAndCategory checks whether a pair has an assignment
	ExistsByUserAndCategory(ctx context.Context, userID, categoryID uint64) (bool, error)

	// Create persists a new assignment row
	//
	// Possible errors:
	// - ErrConstraintViolation: if the pair is already assigned
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, userCategory *entity.UserCategory) error

	// Delete removes the assignment row for a pair
	//
	// Possible errors:
	// - ErrCategoryNotAssigned: if the pair has no assignment
	// - ErrDatabaseConnection: if the database is unreachable
	Delete(ctx context.Context, userID, categoryID uint64) error

	// DeleteAllByUserID removes all of a user's assignment rows.
	// Used by the user-deletion cascade.
	DeleteAllByUserID(ctx context.Context, userID uint64) error
}
