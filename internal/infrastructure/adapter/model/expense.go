package model

import (
	"time"
)

// Expense represents the database model for expenses
type Expense struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index:idx_expenses_user_category"`
	CategoryID  uint64    `gorm:"not null;index:idx_expenses_user_category"`
	Description string    `gorm:"size:255"`
	Amount      int64     `gorm:"not null"` // Amount in cents
	Date        time.Time `gorm:"not null"`

	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}

// Income represents the database model for incomes
type Income struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	Description string    `gorm:"size:255"`
	Amount      int64     `gorm:"not null"` // Amount in cents
	Date        time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Income
func (Income) TableName() string {
	return "incomes"
}
