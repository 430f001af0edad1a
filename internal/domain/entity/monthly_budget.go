package entity

import (
	"time"

	errs "github.com/moneywise/finance-tracker/internal/domain/error"
)

// YearMonthLayout is the canonical serialized form of a budget period,
// e.g. "2024-06". Update-match and delete-match compare on this exact string.
const YearMonthLayout = "2006-01"

// YearMonthKey returns the canonical year-month key for the given instant
func YearMonthKey(t time.Time) string {
	return t.Format(YearMonthLayout)
}

// MonthlyBudget holds a target amount and a running spent amount for one
// (user, category, year-month) combination. Amounts are stored in cents.
//
// SpentAmount is initialized to zero and not yet recomputed from expenses;
// aggregation is a known gap tracked in DESIGN.md.
type MonthlyBudget struct {
	ID           uint64
	UserID       uint64
	CategoryID   uint64
	YearMonth    string
	BudgetAmount int64
	SpentAmount  int64
	UpdatedAt    time.Time
}

// NewMonthlyBudget creates a budget row for the given period with the spent
// amount starting at zero
func NewMonthlyBudget(userID, categoryID uint64, yearMonth string, budgetAmount int64, now time.Time) (*MonthlyBudget, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if budgetAmount < 0 {
		return nil, errs.ErrNegativeAmount
	}

	return &MonthlyBudget{
		UserID:       userID,
		CategoryID:   categoryID,
		YearMonth:    yearMonth,
		BudgetAmount: budgetAmount,
		SpentAmount:  0,
		UpdatedAt:    now,
	}, nil
}

// FormattedBudget returns the budget amount as a two-decimal string
func (b *MonthlyBudget) FormattedBudget() string {
	return AmountInCentsToString(b.BudgetAmount)
}

// FormattedSpent returns the spent amount as a two-decimal string
func (b *MonthlyBudget) FormattedSpent() string {
	return AmountInCentsToString(b.SpentAmount)
}
