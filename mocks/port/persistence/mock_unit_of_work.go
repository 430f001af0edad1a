// Code generated manually for tests. Mirrors internal/domain/port/persistence.
package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moneywise/finance-tracker/internal/domain/port/persistence"
)

// MockUnitOfWork is a mock implementation of persistence.UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

// Begin provides a mock function
func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return ctx, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

// Commit provides a mock function
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Rollback provides a mock function
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// UserRepository provides a mock function
func (m *MockUnitOfWork) UserRepository(ctx context.Context) persistence.UserRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.UserRepository)
}

// RefreshTokenRepository provides a mock function
func (m *MockUnitOfWork) RefreshTokenRepository(ctx context.Context) persistence.RefreshTokenRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.RefreshTokenRepository)
}

// UserCategoryRepository provides a mock function
func (m *MockUnitOfWork) UserCategoryRepository(ctx context.Context) persistence.UserCategoryRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.UserCategoryRepository)
}

// MonthlyBudgetRepository provides a mock function
func (m *MockUnitOfWork) MonthlyBudgetRepository(ctx context.Context) persistence.MonthlyBudgetRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.MonthlyBudgetRepository)
}

// ExpenseRepository provides a mock function
func (m *MockUnitOfWork) ExpenseRepository(ctx context.Context) persistence.ExpenseRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.ExpenseRepository)
}

// IncomeRepository provides a mock function
func (m *MockUnitOfWork) IncomeRepository(ctx context.Context) persistence.IncomeRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.IncomeRepository)
}
