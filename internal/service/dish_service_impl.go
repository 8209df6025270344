package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/evalonso/mealrota/internal/repository"
	"github.com/google/uuid"
)

// ErrWeekdayConflict is returned when a fixed-days dish would claim a
// (weekday, meal) slot another dish of the profile already owns. The planner
// resolves such collisions last-write-wins, so the losing dish would never
// be served on its chosen day; rejecting the save surfaces that early.
var ErrWeekdayConflict = errors.New("weekday slot already claimed")

type dishService struct {
	dishes repository.DishRepo
}

func NewDishService(dishes repository.DishRepo) DishService {
	return &dishService{dishes: dishes}
}

func (s *dishService) Create(ctx context.Context, d *domain.Dish) error {
	if err := s.prepare(ctx, d); err != nil {
		return err
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	return s.dishes.Create(ctx, d)
}

func (s *dishService) GetByID(ctx context.Context, id string) (*domain.Dish, error) {
	return s.dishes.GetByID(ctx, id)
}

func (s *dishService) ListByProfile(ctx context.Context, profileID string) ([]*domain.Dish, error) {
	return s.dishes.ListByProfile(ctx, profileID)
}

func (s *dishService) Update(ctx context.Context, d *domain.Dish) error {
	if err := s.prepare(ctx, d); err != nil {
		return err
	}
	d.UpdatedAt = time.Now().UTC()
	return s.dishes.Update(ctx, d)
}

func (s *dishService) Delete(ctx context.Context, id string) error {
	return s.dishes.Delete(ctx, id)
}

// prepare canonicalizes the dish and validates it against the rest of the
// profile's catalog.
func (s *dishService) prepare(ctx context.Context, d *domain.Dish) error {
	if d.ProfileID == "" {
		return errors.New("dish requires a profile id")
	}
	if d.Name == "" {
		return errors.New("dish name is required")
	}
	if len(d.MealTypes) == 0 {
		return errors.New("dish requires at least one meal type")
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	d.FoodGroups = domain.NormalizeFoodGroups(d.FoodGroups)
	d.Frequency = domain.NormalizeFrequency(d.Frequency, nil)
	return s.checkWeekdayConflict(ctx, d)
}

func (s *dishService) checkWeekdayConflict(ctx context.Context, d *domain.Dish) error {
	if !d.Frequency.HasFixedDays() {
		return nil
	}
	siblings, err := s.dishes.ListByProfile(ctx, d.ProfileID)
	if err != nil {
		return err
	}
	for _, other := range siblings {
		if other.ID == d.ID || !other.Frequency.HasFixedDays() {
			continue
		}
		for _, meal := range d.MealTypes {
			if !other.AppliesTo(meal) {
				continue
			}
			for _, day := range d.Frequency.Days {
				if other.Frequency.AllowsWeekday(day) {
					return fmt.Errorf("%w: %q already owns %s %s",
						ErrWeekdayConflict, other.Name, day.Label(), meal.Label())
				}
			}
		}
	}
	return nil
}
