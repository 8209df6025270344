package formatter

import (
	"testing"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestFormatPlan_ShowsDaysMealsAndReasons(t *testing.T) {
	plan := []domain.DayPlan{
		{
			Date:    "2026-01-05",
			Weekday: "Monday",
			Meals: map[domain.MealKey]domain.MealSuggestion{
				domain.MealBreakfast: {DishID: strPtr("d1"), DishName: strPtr("Oatmeal"), Reason: "Rotating dish."},
				domain.MealDinner:    {DishID: strPtr("d2"), DishName: strPtr("Taco Night"), Reason: "Planned for Monday."},
			},
			MealOrder: []domain.MealKey{domain.MealBreakfast, domain.MealDinner},
		},
	}

	out := FormatPlan("Family", plan)

	assert.Contains(t, out, "MEAL PLAN — FAMILY")
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "2026-01-05")
	assert.Contains(t, out, "Oatmeal")
	assert.Contains(t, out, "Taco Night")
	assert.Contains(t, out, "Planned for Monday.")
}

func TestFormatPlan_MarksUnsatisfiableSlots(t *testing.T) {
	plan := []domain.DayPlan{
		{
			Date:    "2026-01-05",
			Weekday: "Monday",
			Meals: map[domain.MealKey]domain.MealSuggestion{
				domain.MealBreakfast: {Reason: "Unable to satisfy constraints."},
			},
			MealOrder: []domain.MealKey{domain.MealBreakfast},
		},
	}

	out := FormatPlan("Family", plan)

	assert.Contains(t, out, "—")
	assert.Contains(t, out, "Unable to satisfy constraints.")
}

func TestFormatSelections(t *testing.T) {
	selections := []*domain.Selection{
		{Date: "2026-01-05", Meal: domain.MealDinner, DishID: "taco-night"},
		{Date: "2026-01-06", Meal: domain.MealLunch, DishID: "mystery"},
	}
	names := map[string]string{"taco-night": "Taco Night"}

	out := FormatSelections(selections, names)

	assert.Contains(t, out, "Taco Night")
	assert.Contains(t, out, "mystery", "unknown dishes fall back to their id")
	assert.Contains(t, out, "2026-01-06")
}
