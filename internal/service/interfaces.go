package service

import (
	"context"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/evalonso/mealrota/internal/importer"
	"github.com/evalonso/mealrota/internal/planner"
)

type ProfileService interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	// Resolve looks a profile up by id first, then by name.
	Resolve(ctx context.Context, nameOrID string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
	Delete(ctx context.Context, id string) error
}

type DishService interface {
	Create(ctx context.Context, d *domain.Dish) error
	GetByID(ctx context.Context, id string) (*domain.Dish, error)
	ListByProfile(ctx context.Context, profileID string) ([]*domain.Dish, error)
	Update(ctx context.Context, d *domain.Dish) error
	Delete(ctx context.Context, id string) error
}

type SelectionService interface {
	Record(ctx context.Context, profileID, date string, meal domain.MealKey, dishID string) (*domain.Selection, error)
	Clear(ctx context.Context, profileID, date string, meal domain.MealKey) error
	History(ctx context.Context, profileID string) (domain.SelectionHistory, error)
	ListRange(ctx context.Context, profileID, fromDate, toDate string) ([]*domain.Selection, error)
}

// SuggestRequest parameterizes one planning run. A zero StartDate means
// today; Order, when present, overrides the strategy preset, which in turn
// overrides the profile's stored heuristic order.
type SuggestRequest struct {
	ProfileID  string
	StartDate  time.Time
	Days       int
	StrategyID string
	Order      []string
	Seed       *int64
}

type SuggestService interface {
	Suggest(ctx context.Context, req SuggestRequest) ([]domain.DayPlan, error)
	Strategies() []planner.Preset
}

// ImportResult holds the outcome of a profile import.
type ImportResult struct {
	Profile        *domain.Profile
	DishCount      int
	SelectionCount int
}

type ImportService interface {
	ImportProfile(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProfileFromDocument(ctx context.Context, doc *importer.ProfileDocument) (*ImportResult, error)
}
