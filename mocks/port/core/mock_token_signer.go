// Code generated manually for tests. Mirrors internal/domain/port/core.TokenSigner.
package core

import (
	"github.com/stretchr/testify/mock"

	"github.com/moneywise/finance-tracker/internal/domain/port/core"
)

// MockTokenSigner is a mock implementation of core.TokenSigner
type MockTokenSigner struct {
	mock.Mock
}

// Generate provides a mock function
func (m *MockTokenSigner) Generate(userID uint64, email string, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

// Subject provides a mock function
func (m *MockTokenSigner) Subject(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

// Validate provides a mock function
func (m *MockTokenSigner) Validate(tokenString string, subject string) (*core.AccessTokenClaims, error) {
	args := m.Called(tokenString, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.AccessTokenClaims), args.Error(1)
}
