package usecase

import (
	"context"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
)

// TokenPair is the credential pair returned by register, login and refresh
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RegisterRequest carries the data needed to create an account
type RegisterRequest struct {
	Name     string
	Username string
	Email    string
	Password string
}

// AuthUseCase defines the authentication and session-renewal operations
type AuthUseCase interface {
	// Register creates a new account and returns its token pair.
	// Fails with ErrEmailAlreadyRegistered if the email is taken.
	Register(ctx context.Context, req RegisterRequest) (*TokenPair, error)

	// Login verifies credentials and returns a token pair. Any verification
	// failure is normalized to ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*TokenPair, error)

	// RefreshAccessToken exchanges a live refresh token for a new access
	// token paired with the same refresh token value. An expired token is
	// deleted and ErrRefreshTokenExpired returned; an unknown one yields
	// ErrRefreshTokenNotFound.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenPair, error)

	// UserID extracts the numeric user id from an authenticated principal.
	// Pure accessor; the principal was resolved by middleware upstream.
	UserID(principal *entity.Principal) uint64
}
