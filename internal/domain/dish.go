package domain

import (
	"sort"
	"strings"
	"time"
)

// FoodGroupKeys lists the ingredient categories a dish may declare.
var FoodGroupKeys = []string{"meat", "produce", "starch", "dairy"}

// FoodGroups holds ingredient tags grouped by category. The planner consumes
// them as a flat deduplicated lowercase set; the grouping only matters for
// presentation and editing.
type FoodGroups map[string][]string

// NormalizeFoodGroups trims entries, drops empties and restricts the map to
// the known category keys. Every known key is present in the result.
func NormalizeFoodGroups(source FoodGroups) FoodGroups {
	groups := make(FoodGroups, len(FoodGroupKeys))
	for _, key := range FoodGroupKeys {
		var items []string
		for _, item := range source[key] {
			item = strings.TrimSpace(item)
			if item != "" {
				items = append(items, item)
			}
		}
		groups[key] = items
	}
	return groups
}

// Dish is one entry of a profile's catalog.
type Dish struct {
	ID          string
	ProfileID   string
	Name        string
	Description string
	Notes       string
	MealTypes   []MealKey
	FoodGroups  FoodGroups
	Frequency   Frequency
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Ingredients flattens the dish's food groups into a sorted, deduplicated,
// lowercase ingredient list.
func (d *Dish) Ingredients() []string {
	seen := make(map[string]bool)
	var out []string
	for _, key := range FoodGroupKeys {
		for _, item := range d.FoodGroups[key] {
			value := strings.ToLower(strings.TrimSpace(item))
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true
			out = append(out, value)
		}
	}
	sort.Strings(out)
	return out
}

// AppliesTo reports whether the dish is eligible for the given meal.
func (d *Dish) AppliesTo(meal MealKey) bool {
	for _, m := range d.MealTypes {
		if m == meal {
			return true
		}
	}
	return false
}
