// Code generated manually for tests. Mirrors internal/domain/port/persistence.
package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
)

// MockRefreshTokenRepository is a mock implementation of persistence.RefreshTokenRepository
type MockRefreshTokenRepository struct {
	mock.Mock
}

// FindByToken provides a mock function
func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RefreshToken), args.Error(1)
}

// FindByUserID provides a mock function
func (m *MockRefreshTokenRepository) FindByUserID(ctx context.Context, userID uint64) (*entity.RefreshToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RefreshToken), args.Error(1)
}

// Create provides a mock function
func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Delete provides a mock function
func (m *MockRefreshTokenRepository) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// DeleteAllByUserID provides a mock function
func (m *MockRefreshTokenRepository) DeleteAllByUserID(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
