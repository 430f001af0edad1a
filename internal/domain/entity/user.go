package entity

import (
	"strings"
	"time"

	errs "github.com/moneywise/finance-tracker/internal/domain/error"
	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
)

// UserRole is the closed set of authorization roles
type UserRole string

const (
	// RoleUser is the default role assigned at registration
	RoleUser UserRole = "USER"
	// RoleAdmin grants administrative operations
	RoleAdmin UserRole = "ADMIN"
)

// Valid reports whether the role is one of the known roles
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered account that owns financial records
type User struct {
	ID           uint64
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new user with the default USER role.
// The password must already be hashed; entities never see plaintext.
func NewUser(name, username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" || username == "" || passwordHash == "" {
		return nil, errs.ErrInvalidUserData
	}
	if !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidUserData
	}

	now := timeProvider.Now()
	return &User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsAdmin reports whether the user holds the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Principal is the identity attached to an authenticated request.
// It is resolved by the token-validation middleware and carried in the
// request context; services only read from it.
type Principal struct {
	UserID uint64
	Email  string
	Role   UserRole
}
