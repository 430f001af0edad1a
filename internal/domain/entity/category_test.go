package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/moneywise/finance-tracker/internal/domain/error"
)

func TestCanonicalName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "food", "Food"},
		{"uppercase", "FOOD", "Food"},
		{"mixed case", "gRoCeRiEs", "Groceries"},
		{"already canonical", "Food", "Food"},
		{"surrounding whitespace", "  food  ", "Food"},
		{"multiple words keep later words lowered", "dining OUT", "Dining out"},
		{"single letter", "x", "X"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CanonicalName(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := CanonicalName("")
		assert.ErrorIs(t, err, errs.ErrInvalidCategoryName)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := CanonicalName("   ")
		assert.ErrorIs(t, err, errs.ErrInvalidCategoryName)
	})
}

func TestNewCategory(t *testing.T) {
	t.Run("canonicalizes the name", func(t *testing.T) {
		category, err := NewCategory("transport")
		assert.NoError(t, err)
		assert.Equal(t, "Transport", category.Name)
	})

	t.Run("rejects blank names", func(t *testing.T) {
		_, err := NewCategory(" ")
		assert.ErrorIs(t, err, errs.ErrInvalidCategoryName)
	})
}

func TestCaseVariantsCanonicalizeIdentically(t *testing.T) {
	variants := []string{"food", "FOOD", "Food", "fOOD"}
	for _, variant := range variants {
		got, err := CanonicalName(variant)
		assert.NoError(t, err)
		assert.Equal(t, "Food", got, "variant %q", variant)
	}
}
