package domain

import "strings"

// MealKey identifies one meal slot within a day.
type MealKey string

const (
	MealBreakfast MealKey = "breakfast"
	MealLunch     MealKey = "lunch"
	MealDinner    MealKey = "dinner"
	MealSupper    MealKey = "supper"
)

const (
	MealsPerDayMin     = 2
	MealsPerDayMax     = 4
	DefaultMealsPerDay = 3
)

// mealSets maps a meals-per-day count to the active meal keys, in serving order.
var mealSets = map[int][]MealKey{
	2: {MealBreakfast, MealDinner},
	3: {MealBreakfast, MealLunch, MealDinner},
	4: {MealBreakfast, MealLunch, MealDinner, MealSupper},
}

// ClampMealsPerDay forces a meals-per-day value into the supported range.
// Zero (unset) falls back to the default.
func ClampMealsPerDay(n int) int {
	if n == 0 {
		return DefaultMealsPerDay
	}
	if n < MealsPerDayMin {
		return MealsPerDayMin
	}
	if n > MealsPerDayMax {
		return MealsPerDayMax
	}
	return n
}

// MealsFor returns a copy of the active meal set for a meals-per-day count.
func MealsFor(mealsPerDay int) []MealKey {
	set := mealSets[ClampMealsPerDay(mealsPerDay)]
	out := make([]MealKey, len(set))
	copy(out, set)
	return out
}

// ValidMealKeys is the canonical set of accepted meal key strings.
var ValidMealKeys = map[MealKey]bool{
	MealBreakfast: true,
	MealLunch:     true,
	MealDinner:    true,
	MealSupper:    true,
}

// NormalizeMealTypes lowercases, validates and deduplicates a meal type list.
func NormalizeMealTypes(list []string) []MealKey {
	seen := make(map[MealKey]bool, len(list))
	var out []MealKey
	for _, raw := range list {
		meal := MealKey(strings.ToLower(strings.TrimSpace(raw)))
		if !ValidMealKeys[meal] || seen[meal] {
			continue
		}
		seen[meal] = true
		out = append(out, meal)
	}
	return out
}

// Label returns the capitalized display form of the meal key.
func (m MealKey) Label() string {
	return capitalize(string(m))
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
