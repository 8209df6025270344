package service

import (
	"context"
	"errors"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/evalonso/mealrota/internal/repository"
	"github.com/google/uuid"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Create(ctx context.Context, p *domain.Profile) error {
	if p.Name == "" {
		return errors.New("profile name is required")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.MealsPerDay = domain.ClampMealsPerDay(p.MealsPerDay)
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.profiles.Create(ctx, p)
}

func (s *profileService) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

func (s *profileService) Resolve(ctx context.Context, nameOrID string) (*domain.Profile, error) {
	p, err := s.profiles.GetByID(ctx, nameOrID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.profiles.GetByName(ctx, nameOrID)
}

func (s *profileService) List(ctx context.Context) ([]*domain.Profile, error) {
	return s.profiles.List(ctx)
}

func (s *profileService) Update(ctx context.Context, p *domain.Profile) error {
	p.MealsPerDay = domain.ClampMealsPerDay(p.MealsPerDay)
	p.UpdatedAt = time.Now().UTC()
	return s.profiles.Update(ctx, p)
}

func (s *profileService) Delete(ctx context.Context, id string) error {
	return s.profiles.Delete(ctx, id)
}
