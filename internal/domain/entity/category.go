package entity

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	errs "github.com/moneywise/finance-tracker/internal/domain/error"
)

// Category is a shared spending category, de-duplicated across users by
// case-insensitive name. The stored form is canonical (see CanonicalName).
type Category struct {
	ID   uint64
	Name string
}

// NewCategory creates a category with the canonical form of the given name
func NewCategory(name string) (*Category, error) {
	canonical, err := CanonicalName(name)
	if err != nil {
		return nil, err
	}
	return &Category{Name: canonical}, nil
}

// CanonicalName lower-cases the name and capitalizes the first letter only.
// "groceries", "GROCERIES" and "gRoCeRiEs" all canonicalize to "Groceries".
// This is not title-casing: "dining out" becomes "Dining out".
func CanonicalName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.ErrInvalidCategoryName
	}

	lowered := strings.ToLower(name)
	first, size := utf8.DecodeRuneInString(lowered)
	return string(unicode.ToUpper(first)) + lowered[size:], nil
}

// UserCategory is the join between a user and a category, stamped with the
// assignment time. At most one row exists per (user, category) pair.
type UserCategory struct {
	ID         uint64
	UserID     uint64
	CategoryID uint64
	AssignedAt time.Time
}

// NewUserCategory creates an assignment of a category to a user
func NewUserCategory(userID, categoryID uint64, assignedAt time.Time) *UserCategory {
	return &UserCategory{
		UserID:     userID,
		CategoryID: categoryID,
		AssignedAt: assignedAt,
	}
}
