package model

import (
	"time"
)

// RefreshToken represents the database model for refresh tokens. The
// unique index on UserID enforces the one-outstanding-token-per-user rule
// at the storage layer.
type RefreshToken struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Token     string    `gorm:"uniqueIndex;not null;size:255"`
	UserID    uint64    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for RefreshToken
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
