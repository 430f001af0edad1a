package entity

import (
	"time"
)

// Expense is a single spending record tagged with one of the user's
// assigned categories. Unassigning the category cascade-deletes the
// user's expenses in it.
type Expense struct {
	ID          uint64
	UserID      uint64
	CategoryID  uint64
	Description string
	Amount      int64 // cents
	Date        time.Time
}

// Income is a single earning record owned by a user
type Income struct {
	ID          uint64
	UserID      uint64
	Description string
	Amount      int64 // cents
	Date        time.Time
}
