package domain

// MealSuggestion is the planner's verdict for one slot. DishID and DishName
// are nil when no dish could satisfy the constraints; Reason always explains
// the outcome.
type MealSuggestion struct {
	DishID   *string `json:"dishId"`
	DishName *string `json:"dishName"`
	Reason   string  `json:"reason"`
}

// DayPlan is one day of a suggestion plan. Meals is keyed by meal; MealOrder
// preserves the serving order for rendering.
type DayPlan struct {
	Date      string                     `json:"date"`
	Weekday   string                     `json:"weekday"`
	Meals     map[MealKey]MealSuggestion `json:"meals"`
	MealOrder []MealKey                  `json:"mealOrder"`
}
