package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/evalonso/mealrota/internal/planner"
	"github.com/evalonso/mealrota/internal/repository"
)

type suggestService struct {
	profiles   repository.ProfileRepo
	dishes     repository.DishRepo
	selections repository.SelectionRepo
	observer   UseCaseObserver
}

func NewSuggestService(
	profiles repository.ProfileRepo,
	dishes repository.DishRepo,
	selections repository.SelectionRepo,
	observers ...UseCaseObserver,
) SuggestService {
	return &suggestService{
		profiles:   profiles,
		dishes:     dishes,
		selections: selections,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *suggestService) Suggest(ctx context.Context, req SuggestRequest) (plan []domain.DayPlan, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "suggest", started, err, map[string]any{
			"profile_id": req.ProfileID,
			"days":       planner.ClampHorizonDays(req.Days),
			"strategy":   req.StrategyID,
		})
	}()

	profile, err := s.snapshot(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	profile.Heuristics = resolveHeuristicOrder(profile, req)

	var opts []planner.Option
	if req.Seed != nil {
		opts = append(opts, planner.WithRand(rand.New(rand.NewSource(*req.Seed))))
	}
	engine := planner.New(opts...)

	start := req.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}
	return engine.BuildSuggestionPlan(profile, start, req.Days), nil
}

func (s *suggestService) Strategies() []planner.Preset {
	return planner.Presets()
}

// snapshot assembles the immutable planning view of a profile: the stored
// row plus its full catalog and selection history.
func (s *suggestService) snapshot(ctx context.Context, profileID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	dishes, err := s.dishes.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("loading dishes: %w", err)
	}
	history, err := s.selections.HistoryByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("loading selection history: %w", err)
	}
	profile.Dishes = dishes
	profile.Selections = history
	return profile, nil
}

// resolveHeuristicOrder picks the soft-heuristic order for one run. An
// explicit order wins, then a named strategy preset, then the profile's
// stored order; sanitizing against unknown keys happens at solve time.
func resolveHeuristicOrder(profile *domain.Profile, req SuggestRequest) []string {
	if len(req.Order) > 0 {
		return req.Order
	}
	if req.StrategyID != "" {
		return heuristicKeyStrings(planner.PresetByID(req.StrategyID).Heuristics)
	}
	if len(profile.Heuristics) > 0 {
		return profile.Heuristics
	}
	return heuristicKeyStrings(planner.PresetByID(planner.DefaultPresetID).Heuristics)
}

func heuristicKeyStrings(keys []planner.HeuristicKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
