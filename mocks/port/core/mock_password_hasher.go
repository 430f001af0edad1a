// Code generated manually for tests. Mirrors internal/domain/port/core.PasswordHasher.
package core

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock implementation of core.PasswordHasher
type MockPasswordHasher struct {
	mock.Mock
}

// Hash provides a mock function
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// Compare provides a mock function
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}
