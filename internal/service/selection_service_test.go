package service

import (
	"context"
	"testing"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionService_RecordAndHistory(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)
	ctx := context.Background()

	p := seedProfile(t, profiles)
	d := seedDish(t, dishes, p.ID, "Taco Night", []domain.MealKey{domain.MealDinner})

	svc := NewSelectionService(dishes, selections)

	sel, err := svc.Record(ctx, p.ID, "2026-01-05", domain.MealDinner, d.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, sel.ProfileID)

	history, err := svc.History(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, history["2026-01-05"][domain.MealDinner])
}

func TestSelectionService_Record_ReplacesSlot(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)
	ctx := context.Background()

	p := seedProfile(t, profiles)
	taco := seedDish(t, dishes, p.ID, "Taco Night", []domain.MealKey{domain.MealDinner})
	roast := seedDish(t, dishes, p.ID, "Roast", []domain.MealKey{domain.MealDinner})

	svc := NewSelectionService(dishes, selections)

	_, err := svc.Record(ctx, p.ID, "2026-01-05", domain.MealDinner, taco.ID)
	require.NoError(t, err)
	_, err = svc.Record(ctx, p.ID, "2026-01-05", domain.MealDinner, roast.ID)
	require.NoError(t, err)

	history, err := svc.History(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, roast.ID, history["2026-01-05"][domain.MealDinner])
}

func TestSelectionService_Record_Validation(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)
	ctx := context.Background()

	p := seedProfile(t, profiles)
	d := seedDish(t, dishes, p.ID, "Taco Night", []domain.MealKey{domain.MealDinner})

	other := seedProfile(t, profiles, func(op *domain.Profile) { op.Name = "Other Household" })
	foreign := seedDish(t, dishes, other.ID, "Foreign Dish", []domain.MealKey{domain.MealDinner})

	svc := NewSelectionService(dishes, selections)

	_, err := svc.Record(ctx, p.ID, "01/05/2026", domain.MealDinner, d.ID)
	assert.ErrorContains(t, err, "invalid date")

	_, err = svc.Record(ctx, p.ID, "2026-01-05", "brunch", d.ID)
	assert.ErrorContains(t, err, "unknown meal key")

	_, err = svc.Record(ctx, p.ID, "2026-01-05", domain.MealDinner, "ghost-dish")
	assert.ErrorContains(t, err, "looking up dish")

	_, err = svc.Record(ctx, p.ID, "2026-01-05", domain.MealDinner, foreign.ID)
	assert.ErrorContains(t, err, "does not belong")
}

func TestSelectionService_Clear(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)
	ctx := context.Background()

	p := seedProfile(t, profiles)
	d := seedDish(t, dishes, p.ID, "Taco Night", []domain.MealKey{domain.MealDinner})

	svc := NewSelectionService(dishes, selections)

	_, err := svc.Record(ctx, p.ID, "2026-01-05", domain.MealDinner, d.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, p.ID, "2026-01-05", domain.MealDinner))

	history, err := svc.History(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSelectionService_ListRange(t *testing.T) {
	_, profiles, dishes, selections := setupRepos(t)
	ctx := context.Background()

	p := seedProfile(t, profiles)
	d := seedDish(t, dishes, p.ID, "Oatmeal", []domain.MealKey{domain.MealBreakfast})

	svc := NewSelectionService(dishes, selections)

	for _, date := range []string{"2026-01-04", "2026-01-05", "2026-01-09"} {
		_, err := svc.Record(ctx, p.ID, date, domain.MealBreakfast, d.ID)
		require.NoError(t, err)
	}

	got, err := svc.ListRange(ctx, p.ID, "2026-01-04", "2026-01-05")
	require.NoError(t, err)
	assert.Len(t, got, 2, "range is inclusive on both ends")
}
