package persistence

import (
	"context"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
)

// UserRepository defines methods to interact with user records
type UserRepository interface {
	// GetByID retrieves a user by numeric id
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the id exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by unique email
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the email exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks whether an account with the email already exists.
	// Used by registration for its conflict check.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user and fills in the generated id
	//
	// Possible errors:
	// - ErrEmailAlreadyRegistered: if the unique email constraint is violated
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, user *entity.User) error

	// Delete removes a user row by id. Dependent records are deleted by the
	// caller beforehand; this only touches the users table.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the id exists
	// - ErrDatabaseConnection: if the database is unreachable
	Delete(ctx context.Context, id uint64) error
}
