package persistence

import (
	"context"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
)

// RefreshTokenRepository defines methods to interact with refresh tokens.
// The store holds at most one token per user.
type RefreshTokenRepository interface {
	// FindByToken retrieves a refresh token by its opaque value
	//
	// Possible errors:
	// - ErrRefreshTokenNotFound: if no stored token matches
	// - ErrDatabaseConnection: if the database is unreachable
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// FindByUserID retrieves the user's current refresh token, if any
	//
	// Possible errors:
	// - ErrRefreshTokenNotFound: if the user holds no token
	// - ErrDatabaseConnection: if the database is unreachable
	FindByUserID(ctx context.Context, userID uint64) (*entity.RefreshToken, error)

	// Create persists a new refresh token and fills in the generated id
	Create(ctx context.Context, token *entity.RefreshToken) error

	// Delete removes a refresh token by its opaque value.
	// Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteAllByUserID removes the user's refresh tokens.
	// Used by the user-deletion cascade.
	DeleteAllByUserID(ctx context.Context, userID uint64) error
}
