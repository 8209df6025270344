package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_ProfileFields(t *testing.T) {
	bundle := Convert(validDocument())

	p := bundle.Profile
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Family", p.Name)
	assert.Equal(t, 3, p.MealsPerDay)
	assert.Equal(t, []string{"avoidDuplicates", "unscheduled", "borrow"}, p.Heuristics)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestConvert_StrategyCustomOrderWins(t *testing.T) {
	doc := validDocument()
	doc.Strategy = &StrategyDocument{
		ID:          "custom",
		CustomOrder: []string{"unscheduled", "borrow", "avoidDuplicates"},
	}

	bundle := Convert(doc)
	assert.Equal(t, []string{"unscheduled", "borrow", "avoidDuplicates"}, bundle.Profile.Heuristics)
}

func TestConvert_NameFallsBackToUserID(t *testing.T) {
	doc := validDocument()
	doc.Name = ""
	doc.UserID = "family-of-four"

	bundle := Convert(doc)
	assert.Equal(t, "family-of-four", bundle.Profile.Name)
}

func TestConvert_Dishes(t *testing.T) {
	bundle := Convert(validDocument())

	require.Len(t, bundle.Dishes, 2)

	taco := bundle.Dishes[0]
	assert.Equal(t, "taco-night", taco.ID)
	assert.Equal(t, bundle.Profile.ID, taco.ProfileID)
	assert.Equal(t, []domain.MealKey{domain.MealDinner}, taco.MealTypes)
	assert.Equal(t, domain.FrequencyFixedDays, taco.Frequency.Mode)
	assert.Equal(t, []domain.WeekdayKey{domain.Tuesday}, taco.Frequency.Days)
	assert.Equal(t, []string{"beef"}, taco.FoodGroups["meat"])

	soup := bundle.Dishes[1]
	assert.Equal(t, "weekly-soup", soup.ID, "missing dish id is derived from the name")
	assert.Equal(t, domain.FrequencyRecurrence, soup.Frequency.Mode)
	assert.Equal(t, 5, soup.Frequency.MinDays)
	assert.Equal(t, 9, soup.Frequency.MaxDays)
}

func TestConvert_LegacyDaysList(t *testing.T) {
	doc := &ProfileDocument{
		Name: "Legacy",
		Dishes: []DishDocument{
			{
				Name:      "Sunday Roast",
				MealTypes: []string{"dinner"},
				Days:      []string{"Sunday"},
			},
		},
	}

	bundle := Convert(doc)
	require.Len(t, bundle.Dishes, 1)
	assert.Equal(t, domain.FrequencyFixedDays, bundle.Dishes[0].Frequency.Mode)
	assert.Equal(t, []domain.WeekdayKey{domain.Sunday}, bundle.Dishes[0].Frequency.Days)
}

func TestConvert_FlatRecurrenceBounds(t *testing.T) {
	doc := &ProfileDocument{
		Name: "Flat",
		Dishes: []DishDocument{
			{
				Name:      "Chili",
				MealTypes: []string{"dinner"},
				Frequency: &FrequencyDocument{Mode: "ratio", MinDays: 4, MaxDays: 6},
			},
		},
	}

	bundle := Convert(doc)
	require.Len(t, bundle.Dishes, 1)
	assert.Equal(t, 4, bundle.Dishes[0].Frequency.MinDays)
	assert.Equal(t, 6, bundle.Dishes[0].Frequency.MaxDays)
}

func TestConvert_Selections(t *testing.T) {
	doc := validDocument()
	doc.Selections = map[string]map[string]string{
		"2026-01-05": {"dinner": "taco-night"},
		"2026-01-06": {"dinner": "unknown-dish"},
	}

	bundle := Convert(doc)
	require.Len(t, bundle.Selections, 1, "selections for unknown dishes are dropped")
	s := bundle.Selections[0]
	assert.Equal(t, bundle.Profile.ID, s.ProfileID)
	assert.Equal(t, "2026-01-05", s.Date)
	assert.Equal(t, domain.MealDinner, s.Meal)
	assert.Equal(t, "taco-night", s.DishID)
}

func TestLoadProfileDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	payload := `{
		"name": "Loaded",
		"mealsPerDay": 2,
		"dishes": [
			{"name": "Toast", "mealTypes": ["breakfast"]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	doc, err := LoadProfileDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Loaded", doc.Name)
	assert.Equal(t, 2, doc.MealsPerDay)
	require.Len(t, doc.Dishes, 1)
	assert.Equal(t, "Toast", doc.Dishes[0].Name)
}

func TestLoadProfileDocument_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))

	_, err := LoadProfileDocument(path)
	assert.Error(t, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "taco-night", slugify("Taco Night"))
	assert.Equal(t, "moms-5-spice-stew", slugify("  Mom's 5-Spice Stew!  "))
	assert.Equal(t, "", slugify("!!!"))
}
