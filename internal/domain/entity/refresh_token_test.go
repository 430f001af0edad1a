package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_IsExpired(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("future expiration is not expired", func(t *testing.T) {
		token := NewRefreshToken(1, "token-value", now.Add(time.Hour))
		assert.False(t, token.IsExpired(now))
	})

	t.Run("past expiration is expired", func(t *testing.T) {
		token := NewRefreshToken(1, "token-value", now.Add(-time.Second))
		assert.True(t, token.IsExpired(now))
	})

	t.Run("expiration exactly at now is not expired", func(t *testing.T) {
		token := NewRefreshToken(1, "token-value", now)
		assert.False(t, token.IsExpired(now))
	})
}

func TestYearMonthKey(t *testing.T) {
	testCases := []struct {
		name     string
		instant  time.Time
		expected string
	}{
		{"mid year", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "2024-06"},
		{"zero padded month", time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC), "2025-01"},
		{"december", time.Date(2023, 12, 15, 10, 0, 0, 0, time.UTC), "2023-12"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, YearMonthKey(tc.instant))
		})
	}
}
