package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/evalonso/mealrota/internal/planner"
	"github.com/evalonso/mealrota/internal/repository"
	"github.com/evalonso/mealrota/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var suggestMonday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func int64Ptr(v int64) *int64 { return &v }

func TestSuggestService_BuildsCompletePlan(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)
	ctx := context.Background()

	p := seedProfile(t, profiles, testutil.WithMealsPerDay(2))
	seedDish(t, dishes, p.ID, "Oatmeal", []domain.MealKey{domain.MealBreakfast})
	seedDish(t, dishes, p.ID, "Pasta", []domain.MealKey{domain.MealDinner})
	seedDish(t, dishes, p.ID, "Roast", []domain.MealKey{domain.MealDinner})

	svc := NewSuggestService(profiles, dishes, selections)

	plan, err := svc.Suggest(ctx, SuggestRequest{
		ProfileID: p.ID,
		StartDate: suggestMonday,
		Days:      3,
		Seed:      int64Ptr(1),
	})
	require.NoError(t, err)
	require.Len(t, plan, 3)

	assert.Equal(t, "2026-01-05", plan[0].Date)
	assert.Equal(t, "Monday", plan[0].Weekday)
	for _, day := range plan {
		require.Equal(t, []domain.MealKey{domain.MealBreakfast, domain.MealDinner}, day.MealOrder)
		for _, meal := range day.MealOrder {
			suggestion := day.Meals[meal]
			require.NotNil(t, suggestion.DishID, "every slot should be filled")
			assert.NotEmpty(t, suggestion.Reason)
		}
		assert.Equal(t, "Oatmeal", *day.Meals[domain.MealBreakfast].DishName,
			"only one breakfast dish exists")
	}
}

func TestSuggestService_DeterministicForSeed(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)
	ctx := context.Background()

	p := seedProfile(t, profiles)
	seedDish(t, dishes, p.ID, "Oatmeal", []domain.MealKey{domain.MealBreakfast})
	seedDish(t, dishes, p.ID, "Salad", []domain.MealKey{domain.MealLunch})
	seedDish(t, dishes, p.ID, "Pasta", []domain.MealKey{domain.MealDinner})
	seedDish(t, dishes, p.ID, "Roast", []domain.MealKey{domain.MealDinner})
	seedDish(t, dishes, p.ID, "Stir Fry", []domain.MealKey{domain.MealLunch, domain.MealDinner})

	svc := NewSuggestService(profiles, dishes, selections)

	req := SuggestRequest{ProfileID: p.ID, StartDate: suggestMonday, Days: 7, Seed: int64Ptr(99)}
	first, err := svc.Suggest(ctx, req)
	require.NoError(t, err)
	second, err := svc.Suggest(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSuggestService_HistoryInformsRecurrence(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)
	ctx := context.Background()

	p := seedProfile(t, profiles, testutil.WithMealsPerDay(2))
	seedDish(t, dishes, p.ID, "Oatmeal", []domain.MealKey{domain.MealBreakfast})
	seedDish(t, dishes, p.ID, "Pasta", []domain.MealKey{domain.MealDinner})
	soup := seedDish(t, dishes, p.ID, "Weekly Soup", []domain.MealKey{domain.MealDinner},
		testutil.WithRecurrence(7, 7))

	selSvc := NewSelectionService(dishes, selections)
	_, err := selSvc.Record(ctx, p.ID, "2026-01-04", domain.MealDinner, soup.ID)
	require.NoError(t, err)

	svc := NewSuggestService(profiles, dishes, selections)

	plan, err := svc.Suggest(ctx, SuggestRequest{
		ProfileID: p.ID,
		StartDate: suggestMonday,
		Days:      7,
		Seed:      int64Ptr(5),
	})
	require.NoError(t, err)
	require.Len(t, plan, 7)

	var soupDates []string
	for _, day := range plan {
		if s := day.Meals[domain.MealDinner]; s.DishID != nil && *s.DishID == soup.ID {
			soupDates = append(soupDates, day.Date)
		}
	}
	assert.Equal(t, []string{"2026-01-11"}, soupDates,
		"soup served the day before the horizon comes back exactly seven days later")
}

func TestSuggestService_StrategyOverride(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)
	ctx := context.Background()

	p := seedProfile(t, profiles, testutil.WithMealsPerDay(2))
	seedDish(t, dishes, p.ID, "Oatmeal", []domain.MealKey{domain.MealBreakfast})
	seedDish(t, dishes, p.ID, "Pasta", []domain.MealKey{domain.MealDinner})

	svc := NewSuggestService(profiles, dishes, selections)

	plan, err := svc.Suggest(ctx, SuggestRequest{
		ProfileID:  p.ID,
		StartDate:  suggestMonday,
		Days:       2,
		StrategyID: "rotationFirst",
		Seed:       int64Ptr(3),
	})
	require.NoError(t, err)
	assert.Len(t, plan, 2)
}

func TestSuggestService_UnknownProfile(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)

	svc := NewSuggestService(profiles, dishes, selections)

	_, err := svc.Suggest(context.Background(), SuggestRequest{ProfileID: "missing"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSuggestService_Strategies(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)

	svc := NewSuggestService(profiles, dishes, selections)

	strategies := svc.Strategies()
	require.NotEmpty(t, strategies)

	var ids []string
	for _, s := range strategies {
		ids = append(ids, s.ID)
	}
	assert.Contains(t, ids, planner.DefaultPresetID)
}

func TestSuggestService_EmitsObserverEvent(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)
	ctx := context.Background()

	p := seedProfile(t, profiles, testutil.WithMealsPerDay(2))
	seedDish(t, dishes, p.ID, "Oatmeal", []domain.MealKey{domain.MealBreakfast})
	seedDish(t, dishes, p.ID, "Pasta", []domain.MealKey{domain.MealDinner})

	var buf bytes.Buffer
	svc := NewSuggestService(profiles, dishes, selections, NewLogUseCaseObserver(&buf))

	_, err := svc.Suggest(ctx, SuggestRequest{ProfileID: p.ID, StartDate: suggestMonday, Days: 1})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "use_case=suggest")
	assert.Contains(t, buf.String(), "success=true")
}
