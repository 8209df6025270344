package repository

import (
	"context"
	"errors"

	"github.com/evalonso/mealrota/internal/domain"
)

// ErrNotFound is returned (wrapped) when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type ProfileRepo interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByName(ctx context.Context, name string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
	Delete(ctx context.Context, id string) error
}

type DishRepo interface {
	Create(ctx context.Context, d *domain.Dish) error
	GetByID(ctx context.Context, id string) (*domain.Dish, error)
	ListByProfile(ctx context.Context, profileID string) ([]*domain.Dish, error)
	Update(ctx context.Context, d *domain.Dish) error
	Delete(ctx context.Context, id string) error
}

type SelectionRepo interface {
	Upsert(ctx context.Context, s *domain.Selection) error
	Delete(ctx context.Context, profileID, date string, meal domain.MealKey) error
	HistoryByProfile(ctx context.Context, profileID string) (domain.SelectionHistory, error)
	ListRange(ctx context.Context, profileID, fromDate, toDate string) ([]*domain.Selection, error)
}
