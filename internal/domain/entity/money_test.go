package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/moneywise/finance-tracker/internal/domain/error"
)

func TestValidateAndConvertAmount(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int64
		err      error
	}{
		{"whole number", "10", 1000, nil},
		{"trailing point", "10.", 1000, nil},
		{"one decimal", "10.5", 1050, nil},
		{"two decimals", "10.50", 1050, nil},
		{"small amount", "0.05", 5, nil},
		{"zero", "0", 0, nil},
		{"whitespace trimmed", " 12.34 ", 1234, nil},
		{"negative rejected", "-1.00", 0, errs.ErrNegativeAmount},
		{"empty rejected", "", 0, errs.ErrInvalidAmount},
		{"three decimals rejected", "1.234", 0, errs.ErrInvalidAmount},
		{"two points rejected", "1.2.3", 0, errs.ErrInvalidAmount},
		{"non-numeric rejected", "abc", 0, errs.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateAndConvertAmount(tc.input)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestAmountInCentsToString(t *testing.T) {
	testCases := []struct {
		name     string
		input    int64
		expected string
	}{
		{"regular amount", 1015, "10.15"},
		{"round amount", 1000, "10.00"},
		{"cents only", 5, "0.05"},
		{"zero", 0, "0.00"},
		{"negative", -1050, "-10.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AmountInCentsToString(tc.input))
		})
	}
}
