// Code generated manually for tests. Mirrors internal/domain/port/persistence.
package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
)

// MockCategoryRepository is a mock implementation of persistence.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

// GetByID provides a mock function
func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

// FindByName provides a mock function
func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

// Create provides a mock function
func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockUserCategoryRepository is a mock implementation of persistence.UserCategoryRepository
type MockUserCategoryRepository struct {
	mock.Mock
}

// FindByUserAndCategory provides a mock function
func (m *MockUserCategoryRepository) FindByUserAndCategory(ctx context.Context, userID, categoryID uint64) (*entity.UserCategory, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserCategory), args.Error(1)
}

// ExistsByUserAndCategory provides a mock function
func (m *MockUserCategoryRepository) ExistsByUserAndCategory(ctx context.Context, userID, categoryID uint64) (bool, error) {
	args := m.Called(ctx, userID, categoryID)
	return args.Bool(0), args.Error(1)
}

// Create provides a mock function
func (m *MockUserCategoryRepository) Create(ctx context.Context, userCategory *entity.UserCategory) error {
	args := m.Called(ctx, userCategory)
	return args.Error(0)
}

// Delete provides a mock function
func (m *MockUserCategoryRepository) Delete(ctx context.Context, userID, categoryID uint64) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

// DeleteAllByUserID provides a mock function
func (m *MockUserCategoryRepository) DeleteAllByUserID(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
