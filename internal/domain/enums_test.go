package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClampMealsPerDay(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 3},
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 4},
		{9, 4},
		{-1, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampMealsPerDay(tt.input), "input %d", tt.input)
	}
}

func TestMealsFor(t *testing.T) {
	assert.Equal(t, []MealKey{MealBreakfast, MealDinner}, MealsFor(2))
	assert.Equal(t, []MealKey{MealBreakfast, MealLunch, MealDinner}, MealsFor(3))
	assert.Equal(t, []MealKey{MealBreakfast, MealLunch, MealDinner, MealSupper}, MealsFor(4))
	assert.Equal(t, MealsFor(3), MealsFor(0), "unset falls back to the default")

	// Returned slices are copies.
	meals := MealsFor(3)
	meals[0] = MealSupper
	assert.Equal(t, MealBreakfast, MealsFor(3)[0])
}

func TestNormalizeMealTypes(t *testing.T) {
	got := NormalizeMealTypes([]string{" Breakfast", "DINNER", "dinner", "brunch", ""})
	assert.Equal(t, []MealKey{MealBreakfast, MealDinner}, got)
}

func TestMealKeyLabel(t *testing.T) {
	assert.Equal(t, "Breakfast", MealBreakfast.Label())
	assert.Equal(t, "Supper", MealSupper.Label())
}

func TestWeekdayOf(t *testing.T) {
	// 2026-01-05 is a Monday.
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Monday, WeekdayOf(monday))
	assert.Equal(t, Sunday, WeekdayOf(monday.AddDate(0, 0, 6)))
}

func TestNormalizeDays(t *testing.T) {
	got := NormalizeDays([]string{"MONDAY", " friday ", "friday", "someday"})
	assert.Equal(t, []WeekdayKey{Monday, Friday}, got)
	assert.Empty(t, NormalizeDays(nil))
}
