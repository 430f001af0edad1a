package model

import (
	"time"
)

// MonthlyBudget represents the database model for per-month category
// budgets. The composite unique index makes the update-then-insert upsert
// safe: a losing concurrent insert violates it instead of creating a
// duplicate row.
type MonthlyBudget struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	UserID       uint64    `gorm:"not null;uniqueIndex:idx_monthly_budgets_scope"`
	CategoryID   uint64    `gorm:"not null;uniqueIndex:idx_monthly_budgets_scope"`
	YearMonth    string    `gorm:"not null;size:7;uniqueIndex:idx_monthly_budgets_scope"`
	BudgetAmount int64     `gorm:"not null"` // Budget in cents
	SpentAmount  int64     `gorm:"not null;default:0"`
	UpdatedAt    time.Time `gorm:"not null"`

	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for MonthlyBudget
func (MonthlyBudget) TableName() string {
	return "monthly_budgets"
}
