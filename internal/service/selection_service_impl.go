package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/evalonso/mealrota/internal/repository"
)

const selectionDateLayout = "2006-01-02"

type selectionService struct {
	dishes     repository.DishRepo
	selections repository.SelectionRepo
}

func NewSelectionService(dishes repository.DishRepo, selections repository.SelectionRepo) SelectionService {
	return &selectionService{dishes: dishes, selections: selections}
}

// Record upserts one (date, meal) slot. The dish must exist and belong to
// the profile; an existing selection in the slot is replaced.
func (s *selectionService) Record(ctx context.Context, profileID, date string, meal domain.MealKey, dishID string) (*domain.Selection, error) {
	if _, err := time.Parse(selectionDateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	if !domain.ValidMealKeys[meal] {
		return nil, fmt.Errorf("unknown meal key %q", meal)
	}

	dish, err := s.dishes.GetByID(ctx, dishID)
	if err != nil {
		return nil, fmt.Errorf("looking up dish: %w", err)
	}
	if dish.ProfileID != profileID {
		return nil, fmt.Errorf("dish %q does not belong to this profile", dish.Name)
	}

	sel := &domain.Selection{
		ProfileID: profileID,
		Date:      date,
		Meal:      meal,
		DishID:    dishID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.selections.Upsert(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

func (s *selectionService) Clear(ctx context.Context, profileID, date string, meal domain.MealKey) error {
	return s.selections.Delete(ctx, profileID, date, meal)
}

func (s *selectionService) History(ctx context.Context, profileID string) (domain.SelectionHistory, error) {
	return s.selections.HistoryByProfile(ctx, profileID)
}

func (s *selectionService) ListRange(ctx context.Context, profileID, fromDate, toDate string) ([]*domain.Selection, error) {
	return s.selections.ListRange(ctx, profileID, fromDate, toDate)
}
