package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain.
// Refresh-token expiry and year-month keys are derived from Now, so tests
// inject fixed instants instead of sampling the wall clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
