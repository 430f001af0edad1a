package category

import (
	"context"
	"errors"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	errs "github.com/moneywise/finance-tracker/internal/domain/error"
	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/domain/port/persistence"
)

// Service maintains the user-category relationship and per-month budgets
type Service struct {
	categoryRepo     persistence.CategoryRepository
	userCategoryRepo persistence.UserCategoryRepository
	userRepo         persistence.UserRepository
	uow              persistence.UnitOfWork
	timeProvider     coreport.TimeProvider
	logger           coreport.Logger
}

// NewService creates a new category Service
func NewService(
	categoryRepo persistence.CategoryRepository,
	userCategoryRepo persistence.UserCategoryRepository,
	userRepo persistence.UserRepository,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		categoryRepo:     categoryRepo,
		userCategoryRepo: userCategoryRepo,
		userRepo:         userRepo,
		uow:              uow,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// CreateAndAssignCategory resolves the canonical category for the name,
// creating it only when no case-insensitive match exists, then assigns it
// to the user. Both sides are idempotent: repeated calls with "food" and
// "FOOD" resolve to one "Food" row and one assignment.
func (s *Service) CreateAndAssignCategory(ctx context.Context, userID uint64, name string) (*entity.Category, error) {
	canonical, err := entity.CanonicalName(name)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByName(ctx, canonical)
	if err != nil {
		if !errors.Is(err, errs.ErrCategoryNotFound) {
			return nil, err
		}

		category = &entity.Category{Name: canonical}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			s.logger.Error("Failed to create category", map[string]any{
				"name":  canonical,
				"error": err.Error(),
			})
			return nil, err
		}
		s.logger.Info("Category created", map[string]any{
			"category_id": category.ID,
			"name":        canonical,
		})
	}

	assigned, err := s.userCategoryRepo.ExistsByUserAndCategory(ctx, userID, category.ID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return category, nil
	}

	if err := s.AssignCategoryToUser(ctx, userID, category.ID); err != nil {
		return nil, err
	}

	return category, nil
}

// AssignCategoryToUser creates an assignment row stamped with current time.
// Fails with ErrCategoryNotFound or ErrUserNotFound when either side is
// missing.
func (s *Service) AssignCategoryToUser(ctx context.Context, userID, categoryID uint64) error {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	userCategory := entity.NewUserCategory(userID, category.ID, s.timeProvider.Now())
	if err := s.userCategoryRepo.Create(ctx, userCategory); err != nil {
		s.logger.Error("Failed to assign category", map[string]any{
			"user_id":     userID,
			"category_id": categoryID,
			"error":       err.Error(),
		})
		return err
	}

	s.logger.Info("Category assigned to user", map[string]any{
		"user_id":     userID,
		"category_id": categoryID,
	})
	return nil
}

// RemoveCategoryFromUser deletes the assignment and all of the user's
// expenses in that category. The expense cascade runs first so it can still
// scope by the pair; both deletes commit together.
func (s *Service) RemoveCategoryFromUser(ctx context.Context, userID, categoryID uint64) error {
	if _, err := s.userCategoryRepo.FindByUserAndCategory(ctx, userID, categoryID); err != nil {
		return err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := s.uow.ExpenseRepository(txCtx).DeleteAllByUserAndCategory(txCtx, userID, categoryID); err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to cascade-delete expenses", map[string]any{
			"user_id":     userID,
			"category_id": categoryID,
			"error":       err.Error(),
		})
		return err
	}

	if err := s.uow.UserCategoryRepository(txCtx).Delete(txCtx, userID, categoryID); err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Category removed from user", map[string]any{
		"user_id":     userID,
		"category_id": categoryID,
	})
	return nil
}
