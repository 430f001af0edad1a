package category

import (
	"context"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	errs "github.com/moneywise/finance-tracker/internal/domain/error"
)

// SetMonthlyBudget sets the budget amount for the current month as an
// update-then-insert upsert. The two steps run inside one transaction and
// the monthly_budgets table carries a unique index on
// (user_id, category_id, year_month), so two concurrent callers cannot both
// insert; the loser surfaces ErrBudgetConflict.
func (s *Service) SetMonthlyBudget(ctx context.Context, userID, categoryID uint64, amount string) (*entity.MonthlyBudget, error) {
	amountInCents, err := entity.ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}

	// A budget cannot be set for an unassigned category.
	if _, err := s.userCategoryRepo.FindByUserAndCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	yearMonth := entity.YearMonthKey(now)

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	budgets := s.uow.MonthlyBudgetRepository(txCtx)

	affected, err := budgets.UpdateAmount(txCtx, userID, categoryID, yearMonth, amountInCents)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	var budget *entity.MonthlyBudget
	if affected == 0 {
		created, err := entity.NewMonthlyBudget(userID, categoryID, yearMonth, amountInCents, now)
		if err != nil {
			_ = s.uow.Rollback(txCtx)
			return nil, err
		}
		if err := budgets.Create(txCtx, created); err != nil {
			_ = s.uow.Rollback(txCtx)
			s.logger.Error("Failed to insert monthly budget", map[string]any{
				"user_id":     userID,
				"category_id": categoryID,
				"year_month":  yearMonth,
				"error":       err.Error(),
			})
			return nil, errs.NewBudgetError(userID, categoryID, yearMonth, err)
		}
		budget = created
	} else {
		// Re-read the updated row so the caller sees the stored id and
		// spent amount, not a reconstruction.
		budget, err = budgets.FindByMonth(txCtx, userID, categoryID, yearMonth)
		if err != nil {
			_ = s.uow.Rollback(txCtx)
			return nil, err
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Monthly budget set", map[string]any{
		"user_id":     userID,
		"category_id": categoryID,
		"year_month":  yearMonth,
		"amount":      entity.AmountInCentsToString(amountInCents),
		"inserted":    affected == 0,
	})

	return budget, nil
}

// DeleteMonthlyBudget removes the current month's budget row. The
// assignment must exist; whether a budget row does is irrelevant, deleting
// nothing is success.
func (s *Service) DeleteMonthlyBudget(ctx context.Context, userID, categoryID uint64) error {
	assigned, err := s.userCategoryRepo.ExistsByUserAndCategory(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if !assigned {
		return errs.ErrCategoryNotAssigned
	}

	yearMonth := entity.YearMonthKey(s.timeProvider.Now())

	if err := s.uow.MonthlyBudgetRepository(ctx).DeleteByMonth(ctx, userID, categoryID, yearMonth); err != nil {
		s.logger.Error("Failed to delete monthly budget", map[string]any{
			"user_id":     userID,
			"category_id": categoryID,
			"year_month":  yearMonth,
			"error":       err.Error(),
		})
		return err
	}

	s.logger.Info("Monthly budget deleted", map[string]any{
		"user_id":     userID,
		"category_id": categoryID,
		"year_month":  yearMonth,
	})
	return nil
}
