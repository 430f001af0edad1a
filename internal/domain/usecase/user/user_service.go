package user

import (
	"context"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/domain/port/persistence"
)

// Service handles user lookups and account deletion
type Service struct {
	userRepo persistence.UserRepository
	uow      persistence.UnitOfWork
	logger   coreport.Logger
}

// NewService creates a new user Service
func NewService(
	userRepo persistence.UserRepository,
	uow persistence.UnitOfWork,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo: userRepo,
		uow:      uow,
		logger:   logger,
	}
}

// GetUserByID retrieves a user by numeric id
func (s *Service) GetUserByID(ctx context.Context, id uint64) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by unique email
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// DeleteUser removes the user and every record the account owns. The
// incomes, expenses, monthly budgets, category assignments and refresh
// tokens go first so no foreign key still points at the user row when it
// is deleted; all six deletes commit together or not at all.
func (s *Service) DeleteUser(ctx context.Context, id uint64) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	steps := []func(context.Context) error{
		func(c context.Context) error { return s.uow.IncomeRepository(c).DeleteAllByUserID(c, id) },
		func(c context.Context) error { return s.uow.ExpenseRepository(c).DeleteAllByUserID(c, id) },
		func(c context.Context) error { return s.uow.MonthlyBudgetRepository(c).DeleteAllByUserID(c, id) },
		func(c context.Context) error { return s.uow.UserCategoryRepository(c).DeleteAllByUserID(c, id) },
		func(c context.Context) error { return s.uow.RefreshTokenRepository(c).DeleteAllByUserID(c, id) },
		func(c context.Context) error { return s.uow.UserRepository(c).Delete(c, id) },
	}

	for _, step := range steps {
		if err := step(txCtx); err != nil {
			_ = s.uow.Rollback(txCtx)
			s.logger.Error("User deletion cascade failed", map[string]any{
				"user_id": id,
				"error":   err.Error(),
			})
			return err
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("User deleted", map[string]any{
		"user_id": id,
	})
	return nil
}
