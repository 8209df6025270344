package server

import (
	"time"

	"github.com/evalonso/mealrota/internal/domain"
)

// The wire shapes follow the web planner's interchange format so exported
// profiles round-trip through the API unchanged.

type profilePayload struct {
	Name        string   `json:"name"`
	MealsPerDay int      `json:"mealsPerDay,omitempty"`
	Heuristics  []string `json:"heuristics,omitempty"`
}

type profileResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MealsPerDay int       `json:"mealsPerDay"`
	Heuristics  []string  `json:"heuristics,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:          p.ID,
		Name:        p.Name,
		MealsPerDay: p.MealsPerDay,
		Heuristics:  p.Heuristics,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type dishPayload struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	MealTypes   []string            `json:"mealTypes"`
	FoodGroups  map[string][]string `json:"foodGroups,omitempty"`
	Frequency   domain.Frequency    `json:"frequency"`
}

func (p dishPayload) toDomain(profileID string) *domain.Dish {
	return &domain.Dish{
		ProfileID:   profileID,
		Name:        p.Name,
		Description: p.Description,
		Notes:       p.Notes,
		MealTypes:   domain.NormalizeMealTypes(p.MealTypes),
		FoodGroups:  domain.FoodGroups(p.FoodGroups),
		Frequency:   p.Frequency,
	}
}

type dishResponse struct {
	ID          string              `json:"id"`
	ProfileID   string              `json:"profileId"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	MealTypes   []domain.MealKey    `json:"mealTypes"`
	FoodGroups  map[string][]string `json:"foodGroups"`
	Frequency   domain.Frequency    `json:"frequency"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func toDishResponse(d *domain.Dish) dishResponse {
	return dishResponse{
		ID:          d.ID,
		ProfileID:   d.ProfileID,
		Name:        d.Name,
		Description: d.Description,
		Notes:       d.Notes,
		MealTypes:   d.MealTypes,
		FoodGroups:  d.FoodGroups,
		Frequency:   d.Frequency,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type selectionPayload struct {
	Date   string `json:"date"`
	Meal   string `json:"meal"`
	DishID string `json:"dishId"`
}

type selectionResponse struct {
	ProfileID string         `json:"profileId"`
	Date      string         `json:"date"`
	Meal      domain.MealKey `json:"meal"`
	DishID    string         `json:"dishId"`
}

type strategyResponse struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Heuristics  []string `json:"heuristics"`
}

type importResponse struct {
	ProfileID      string `json:"profileId"`
	Name           string `json:"name"`
	DishCount      int    `json:"dishCount"`
	SelectionCount int    `json:"selectionCount"`
}
