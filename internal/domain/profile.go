package domain

import "time"

// Selection records that a dish was served for a (date, meal) slot.
// Date uses the YYYY-MM-DD calendar form with no timezone component.
type Selection struct {
	ProfileID string
	Date      string
	Meal      MealKey
	DishID    string
	CreatedAt time.Time
}

// SelectionHistory maps date → meal → dish id.
type SelectionHistory map[string]map[MealKey]string

// Profile is an immutable snapshot of one planning profile: the dish
// catalog, the meals-per-day setting, prior selections, and the ordered
// soft-heuristic keys driving the planner.
type Profile struct {
	ID          string
	Name        string
	MealsPerDay int
	Heuristics  []string
	Dishes      []*Dish
	Selections  SelectionHistory
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Meals returns the active meal set for this profile.
func (p *Profile) Meals() []MealKey {
	return MealsFor(p.MealsPerDay)
}

// DishByID returns the dish with the given id, or nil.
func (p *Profile) DishByID(id string) *Dish {
	for _, d := range p.Dishes {
		if d.ID == id {
			return d
		}
	}
	return nil
}
