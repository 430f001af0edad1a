package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest          = 4000
	CodeInvalidAmount           = 4001
	CodeInvalidUserID           = 4002
	CodeInvalidCategoryName     = 4003
	CodeInvalidCredentials      = 4010
	CodeInvalidAccessToken      = 4011
	CodeRefreshTokenExpired     = 4012
	CodeUserNotFound            = 4040
	CodeCategoryNotFound        = 4041
	CodeCategoryNotAssigned     = 4042
	CodeRefreshTokenNotFound    = 4043
	CodeBudgetNotFound          = 4044
	CodeEmailTaken              = 4090
	CodeBudgetConflict          = 4091
	CodeConstraintViolation     = 4092
	CodeCategoryAlreadyAssigned = 4093

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAmount is returned when a monetary amount has an invalid format
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidCategoryName is returned when a category name is empty or blank
	ErrInvalidCategoryName = errors.New("category name cannot be empty")

	// ErrInvalidUserData is returned when user registration data is incomplete
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrInvalidCredentials is returned on any login failure.
	// Unknown email and wrong password are deliberately indistinguishable
	// so the API does not leak account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidAccessToken is returned when an access token fails signature,
	// subject or expiry validation
	ErrInvalidAccessToken = errors.New("invalid access token")

	// ErrRefreshTokenExpired is returned when a refresh token is past its
	// expiration instant; the stored token is deleted before this surfaces
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// ErrRefreshTokenNotFound is returned when no stored refresh token matches
	ErrRefreshTokenNotFound = errors.New("refresh token not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrCategoryNotFound is returned when the requested category doesn't exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNotAssigned is returned when the user has no assignment for
	// the category referenced by the operation
	ErrCategoryNotAssigned = errors.New("category not assigned to user")

	// ErrEmailAlreadyRegistered is returned when registering with an email
	// that already has an account
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrBudgetNotFound is returned when no budget row exists for the
	// requested (user, category, month) key
	ErrBudgetNotFound = errors.New("monthly budget not found")

	// ErrCategoryAlreadyAssigned is returned when an assignment insert hits
	// the (user_id, category_id) unique index
	ErrCategoryAlreadyAssigned = errors.New("category already assigned to user")

	// ErrBudgetConflict is returned when a concurrent writer already created
	// the monthly budget row the operation tried to insert
	ErrBudgetConflict = errors.New("monthly budget already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidCategoryName):
		return CodeInvalidCategoryName
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidAccessToken):
		return CodeInvalidAccessToken
	case errors.Is(err, ErrRefreshTokenExpired):
		return CodeRefreshTokenExpired
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrCategoryNotFound):
		return CodeCategoryNotFound
	case errors.Is(err, ErrCategoryNotAssigned):
		return CodeCategoryNotAssigned
	case errors.Is(err, ErrRefreshTokenNotFound):
		return CodeRefreshTokenNotFound
	case errors.Is(err, ErrBudgetNotFound):
		return CodeBudgetNotFound
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return CodeEmailTaken
	case errors.Is(err, ErrCategoryAlreadyAssigned):
		return CodeCategoryAlreadyAssigned
	case errors.Is(err, ErrBudgetConflict):
		return CodeBudgetConflict
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidUserData):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// BudgetError represents an error related to monthly budget operations
type BudgetError struct {
	UserID     uint64
	CategoryID uint64
	YearMonth  string
	Err        error
}

// Error implements the error interface for BudgetError
func (e *BudgetError) Error() string {
	return fmt.Sprintf("budget operation failed for user %d, category %d, month %s: %v",
		e.UserID, e.CategoryID, e.YearMonth, e.Err)
}

// Unwrap returns the underlying error
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BudgetError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "budget_error",
		"user_id":     e.UserID,
		"category_id": e.CategoryID,
		"year_month":  e.YearMonth,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewBudgetError creates a detailed budget error
func NewBudgetError(userID, categoryID uint64, yearMonth string, err error) error {
	return &BudgetError{
		UserID:     userID,
		CategoryID: categoryID,
		YearMonth:  yearMonth,
		Err:        err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrCategoryNotAssigned) ||
		errors.Is(err, ErrRefreshTokenNotFound) ||
		errors.Is(err, ErrBudgetNotFound)
}

// IsConflictError checks if the error signals a uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrEmailAlreadyRegistered) ||
		errors.Is(err, ErrCategoryAlreadyAssigned) ||
		errors.Is(err, ErrBudgetConflict)
}

// IsAuthError checks if the error belongs to the authentication family
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidAccessToken) ||
		errors.Is(err, ErrRefreshTokenExpired)
}
