package entity

import (
	"time"
)

// RefreshToken is the single long-lived credential a user exchanges for new
// access tokens. At most one lives per user; it is reused across logins and
// only deleted when an expired token is presented on refresh.
type RefreshToken struct {
	ID        uint64
	Token     string
	UserID    uint64
	ExpiresAt time.Time
}

// NewRefreshToken creates a refresh token owned by the given user
func NewRefreshToken(userID uint64, token string, expiresAt time.Time) *RefreshToken {
	return &RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
}

// IsExpired reports whether the token's expiration instant is before now
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
