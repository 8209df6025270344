package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/google/uuid"
)

var dishCounter atomic.Int64

// DishOption mutates a test dish.
type DishOption func(*domain.Dish)

// WithDishID overrides the generated dish id.
func WithDishID(id string) DishOption {
	return func(d *domain.Dish) { d.ID = id }
}

// WithFixedDays gives the dish a fixed-days frequency rule.
func WithFixedDays(days ...domain.WeekdayKey) DishOption {
	return func(d *domain.Dish) {
		d.Frequency = domain.Frequency{Mode: domain.FrequencyFixedDays, Days: days}
	}
}

// WithRecurrence gives the dish a recurrence-window frequency rule.
func WithRecurrence(minDays, maxDays int) DishOption {
	return func(d *domain.Dish) {
		d.Frequency = domain.Frequency{
			Mode:    domain.FrequencyRecurrence,
			MinDays: minDays,
			MaxDays: maxDays,
		}
	}
}

// WithFoodGroups sets the dish's ingredient tags.
func WithFoodGroups(groups domain.FoodGroups) DishOption {
	return func(d *domain.Dish) { d.FoodGroups = domain.NormalizeFoodGroups(groups) }
}

// WithMeat is shorthand for a single meat-category ingredient list.
func WithMeat(items ...string) DishOption {
	return WithFoodGroups(domain.FoodGroups{"meat": items})
}

// NewTestDish builds a dish applicable to the given meals. Without options
// it is unscheduled (empty fixed-days set) and has no ingredients.
func NewTestDish(name string, meals []domain.MealKey, opts ...DishOption) *domain.Dish {
	now := time.Now().UTC()
	d := &domain.Dish{
		ID:         fmt.Sprintf("dish-%d", dishCounter.Add(1)),
		Name:       name,
		MealTypes:  meals,
		FoodGroups: domain.NormalizeFoodGroups(nil),
		Frequency:  domain.Frequency{Mode: domain.FrequencyFixedDays},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ProfileOption mutates a test profile.
type ProfileOption func(*domain.Profile)

// WithMealsPerDay overrides the default of three meals per day.
func WithMealsPerDay(n int) ProfileOption {
	return func(p *domain.Profile) { p.MealsPerDay = n }
}

// WithDishes attaches dishes to the profile.
func WithDishes(dishes ...*domain.Dish) ProfileOption {
	return func(p *domain.Profile) {
		for _, d := range dishes {
			d.ProfileID = p.ID
		}
		p.Dishes = dishes
	}
}

// WithSelection records one historical selection.
func WithSelection(date string, meal domain.MealKey, dishID string) ProfileOption {
	return func(p *domain.Profile) {
		if p.Selections == nil {
			p.Selections = domain.SelectionHistory{}
		}
		if p.Selections[date] == nil {
			p.Selections[date] = map[domain.MealKey]string{}
		}
		p.Selections[date][meal] = dishID
	}
}

// NewTestProfile builds a profile snapshot with sensible defaults.
func NewTestProfile(name string, opts ...ProfileOption) *domain.Profile {
	now := time.Now().UTC()
	p := &domain.Profile{
		ID:          uuid.New().String(),
		Name:        name,
		MealsPerDay: domain.DefaultMealsPerDay,
		Selections:  domain.SelectionHistory{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
