// Code generated manually for tests. Mirrors internal/domain/port/persistence.
package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
)

// MockMonthlyBudgetRepository is a mock implementation of persistence.MonthlyBudgetRepository
type MockMonthlyBudgetRepository struct {
	mock.Mock
}

// UpdateAmount provides a mock function
func (m *MockMonthlyBudgetRepository) UpdateAmount(ctx context.Context, userID, categoryID uint64, yearMonth string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, categoryID, yearMonth, amount)
	return args.Get(0).(int64), args.Error(1)
}

// Create provides a mock function
func (m *MockMonthlyBudgetRepository) Create(ctx context.Context, budget *entity.MonthlyBudget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

// FindByMonth provides a mock function
func (m *MockMonthlyBudgetRepository) FindByMonth(ctx context.Context, userID, categoryID uint64, yearMonth string) (*entity.MonthlyBudget, error) {
	args := m.Called(ctx, userID, categoryID, yearMonth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MonthlyBudget), args.Error(1)
}

// DeleteByMonth provides a mock function
func (m *MockMonthlyBudgetRepository) DeleteByMonth(ctx context.Context, userID, categoryID uint64, yearMonth string) error {
	args := m.Called(ctx, userID, categoryID, yearMonth)
	return args.Error(0)
}

// DeleteAllByUserID provides a mock function
func (m *MockMonthlyBudgetRepository) DeleteAllByUserID(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockExpenseRepository is a mock implementation of persistence.ExpenseRepository
type MockExpenseRepository struct {
	mock.Mock
}

// DeleteAllByUserAndCategory provides a mock function
func (m *MockExpenseRepository) DeleteAllByUserAndCategory(ctx context.Context, userID, categoryID uint64) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

// DeleteAllByUserID provides a mock function
func (m *MockExpenseRepository) DeleteAllByUserID(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockIncomeRepository is a mock implementation of persistence.IncomeRepository
type MockIncomeRepository struct {
	mock.Mock
}

// DeleteAllByUserID provides a mock function
func (m *MockIncomeRepository) DeleteAllByUserID(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
