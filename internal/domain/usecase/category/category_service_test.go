package category

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	errs "github.com/moneywise/finance-tracker/internal/domain/error"
	mockcore "github.com/moneywise/finance-tracker/mocks/port/core"
	mockpersistence "github.com/moneywise/finance-tracker/mocks/port/persistence"
)

// newLenientLogger returns a logger mock that accepts any log call
func newLenientLogger() *mockcore.MockLogger {
	logger := new(mockcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

type categoryMocks struct {
	categoryRepo     *mockpersistence.MockCategoryRepository
	userCategoryRepo *mockpersistence.MockUserCategoryRepository
	userRepo         *mockpersistence.MockUserRepository
	uow              *mockpersistence.MockUnitOfWork
	timeProvider     *mockcore.MockTimeProvider
}

func newCategoryService(fixedTime time.Time) (*Service, *categoryMocks) {
	m := &categoryMocks{
		categoryRepo:     new(mockpersistence.MockCategoryRepository),
		userCategoryRepo: new(mockpersistence.MockUserCategoryRepository),
		userRepo:         new(mockpersistence.MockUserRepository),
		uow:              new(mockpersistence.MockUnitOfWork),
		timeProvider:     new(mockcore.MockTimeProvider),
	}
	m.timeProvider.On("Now").Return(fixedTime).Maybe()

	service := NewService(
		m.categoryRepo,
		m.userCategoryRepo,
		m.userRepo,
		m.uow,
		m.timeProvider,
		newLenientLogger(),
	)
	return service, m
}

func TestService_CreateAndAssignCategory(t *testing.T) {
	fixedTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("should create category and assign it when nothing exists", func(t *testing.T) {
		// Arrange
		service, m := newCategoryService(fixedTime)

		m.categoryRepo.On("FindByName", ctx, "Food").Return(nil, errs.ErrCategoryNotFound)
		m.categoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Category")).
			Run(func(args mock.Arguments) {
				created := args.Get(1).(*entity.Category)
				assert.Equal(t, "Food", created.Name)
				created.ID = 7
			}).Return(nil)
		m.userCategoryRepo.On("ExistsByUserAndCategory", ctx, uint64(1), uint64(7)).Return(false, nil)
		m.categoryRepo.On("GetByID", ctx, uint64(7)).Return(&entity.Category{ID: 7, Name: "Food"}, nil)
		m.userRepo.On("GetByID", ctx, uint64(1)).Return(&entity.User{ID: 1}, nil)
		m.userCategoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.UserCategory")).
			Run(func(args mock.Arguments) {
				uc := args.Get(1).(*entity.UserCategory)
				assert.Equal(t, uint64(1), uc.UserID)
				assert.Equal(t, uint64(7), uc.CategoryID)
				assert.Equal(t, fixedTime, uc.AssignedAt)
			}).Return(nil)

		// Act
		category, err := service.CreateAndAssignCategory(ctx, 1, "  food ")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "Food", category.Name)
		m.categoryRepo.AssertExpectations(t)
		m.userCategoryRepo.AssertExpectations(t)
	})

	t.Run("should reuse existing category regardless of case", func(t *testing.T) {
		// Arrange
		service, m := newCategoryService(fixedTime)
		existing := &entity.Category{ID: 7, Name: "Food"}

		m.categoryRepo.On("FindByName", ctx, "Food").Return(existing, nil)
		m.userCategoryRepo.On("ExistsByUserAndCategory", ctx, uint64(1), uint64(7)).Return(false, nil)
		m.categoryRepo.On("GetByID", ctx, uint64(7)).Return(existing, nil)
		m.userRepo.On("GetByID", ctx, uint64(1)).Return(&entity.User{ID: 1}, nil)
		m.userCategoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.UserCategory")).Return(nil)

		// Act
		category, err := service.CreateAndAssignCategory(ctx, 1, "FOOD")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(7), category.ID)
		m.categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should be idempotent when assignment already exists", func(t *testing.T) {
		// Arrange
		service, m := newCategoryService(fixedTime)
		existing := &entity.Category{ID: 7, Name: "Food"}

		m.categoryRepo.On("FindByName", ctx, "Food").Return(existing, nil)
		m.userCategoryRepo.On("ExistsByUserAndCategory", ctx, uint64(1), uint64(7)).Return(true, nil)

		// Act
		category, err := service.CreateAndAssignCategory(ctx, 1, "food")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, existing, category)
		m.userCategoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should fail on blank name", func(t *testing.T) {
		// Arrange
		service, m := newCategoryService(fixedTime)

		// Act
		_, err := service.CreateAndAssignCategory(ctx, 1, "   ")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidCategoryName)
		m.categoryRepo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
	})
}

func TestService_AssignCategoryToUser(t *testing.T) {
	fixedTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("should fail when category does not exist", func(t *testing.T) {
		// Arrange
		service, m := newCategoryService(fixedTime)
		m.categoryRepo.On("GetByID", ctx, uint64(99)).Return(nil, errs.ErrCategoryNotFound)

		// Act
		err := service.AssignCategoryToUser(ctx, 1, 99)

		// Assert
		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
		m.userCategoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should fail when user does not exist", func(t *testing.T) {
		// Arrange
		service, m := newCategoryService(fixedTime)
		m.categoryRepo.On("GetByID", ctx, uint64(7)).Return(&entity.Category{ID: 7, Name: "Food"}, nil)
		m.userRepo.On("GetByID", ctx, uint64(404)).Return(nil, errs.ErrUserNotFound)

		// Act
		err := service.AssignCategoryToUser(ctx, 404, 7)

		// Assert
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		m.userCategoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should surface a conflict when the pair is already assigned", func(t *testing.T) {
		// Arrange
		service, m := newCategoryService(fixedTime)
		m.categoryRepo.On("GetByID", ctx, uint64(7)).Return(&entity.Category{ID: 7, Name: "Food"}, nil)
		m.userRepo.On("GetByID", ctx, uint64(1)).Return(&entity.User{ID: 1}, nil)
		m.userCategoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.UserCategory")).
			Return(errs.ErrCategoryAlreadyAssigned)

		// Act
		err := service.AssignCategoryToUser(ctx, 1, 7)

		// Assert
		assert.ErrorIs(t, err, errs.ErrCategoryAlreadyAssigned)
		assert.True(t, errs.IsConflictError(err))
	})
}

func TestService_RemoveCategoryFromUser(t *testing.T) {
	fixedTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	txCtx := context.WithValue(context.Background(), struct{ name string }{"tx"}, true)

	t.Run("should cascade expenses before deleting the assignment", func(t *testing.T) {
		// Arrange
		service, m := newCategoryService(fixedTime)
		expenseRepo := new(mockpersistence.MockExpenseRepository)
		txUserCategoryRepo := new(mockpersistence.MockUserCategoryRepository)

		m.userCategoryRepo.On("FindByUserAndCategory", ctx, uint64(1), uint64(7)).
			Return(&entity.UserCategory{ID: 3, UserID: 1, CategoryID: 7}, nil)
		m.uow.On("Begin", ctx).Return(txCtx, nil)
		m.uow.On("ExpenseRepository", txCtx).Return(expenseRepo)
		m.uow.On("UserCategoryRepository", txCtx).Return(txUserCategoryRepo)
		m.uow.On("Commit", txCtx).Return(nil)

		var order []string
		expenseRepo.On("DeleteAllByUserAndCategory", txCtx, uint64(1), uint64(7)).
			Run(func(mock.Arguments) { order = append(order, "expenses") }).Return(nil)
		txUserCategoryRepo.On("Delete", txCtx, uint64(1), uint64(7)).
			Run(func(mock.Arguments) { order = append(order, "assignment") }).Return(nil)

		// Act
		err := service.RemoveCategoryFromUser(ctx, 1, 7)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, []string{"expenses", "assignment"}, order)
		m.uow.AssertExpectations(t)
	})

	t.Run("should fail without deleting anything when not assigned", func(t *testing.T) {
		// Arrange
		service, m := newCategoryService(fixedTime)
		m.userCategoryRepo.On("FindByUserAndCategory", ctx, uint64(1), uint64(7)).
			Return(nil, errs.ErrCategoryNotAssigned)

		// Act
		err := service.RemoveCategoryFromUser(ctx, 1, 7)

		// Assert
		assert.ErrorIs(t, err, errs.ErrCategoryNotAssigned)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should roll back when the expense cascade fails", func(t *testing.T) {
		// Arrange
		service, m := newCategoryService(fixedTime)
		expenseRepo := new(mockpersistence.MockExpenseRepository)

		m.userCategoryRepo.On("FindByUserAndCategory", ctx, uint64(1), uint64(7)).
			Return(&entity.UserCategory{ID: 3, UserID: 1, CategoryID: 7}, nil)
		m.uow.On("Begin", ctx).Return(txCtx, nil)
		m.uow.On("ExpenseRepository", txCtx).Return(expenseRepo)
		m.uow.On("Rollback", txCtx).Return(nil)
		expenseRepo.On("DeleteAllByUserAndCategory", txCtx, uint64(1), uint64(7)).
			Return(assert.AnError)

		// Act
		err := service.RemoveCategoryFromUser(ctx, 1, 7)

		// Assert
		assert.Error(t, err)
		m.uow.AssertCalled(t, "Rollback", txCtx)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
