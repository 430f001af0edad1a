package model

import (
	"time"
)

// Category represents the database model for categories. Names are stored
// in canonical form and deduplicated case-insensitively by a functional
// index created during migration.
type Category struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null;size:255"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// UserCategory represents the assignment of a category to a user
type UserCategory struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_user_categories_pair"`
	CategoryID uint64    `gorm:"not null;uniqueIndex:idx_user_categories_pair"`
	AssignedAt time.Time `gorm:"not null"`

	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for UserCategory
func (UserCategory) TableName() string {
	return "user_categories"
}
