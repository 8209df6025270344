package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/evalonso/mealrota/internal/repository"
	"github.com/evalonso/mealrota/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (*sql.DB, repository.ProfileRepo, repository.DishRepo, repository.SelectionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database,
		repository.NewSQLiteProfileRepo(database),
		repository.NewSQLiteDishRepo(database),
		repository.NewSQLiteSelectionRepo(database)
}

func seedProfile(t *testing.T, profiles repository.ProfileRepo, opts ...testutil.ProfileOption) *domain.Profile {
	t.Helper()
	p := testutil.NewTestProfile("Test Family", opts...)
	require.NoError(t, profiles.Create(context.Background(), p))
	return p
}

func seedDish(t *testing.T, dishes repository.DishRepo, profileID, name string, meals []domain.MealKey, opts ...testutil.DishOption) *domain.Dish {
	t.Helper()
	d := testutil.NewTestDish(name, meals, opts...)
	d.ProfileID = profileID
	require.NoError(t, dishes.Create(context.Background(), d))
	return d
}
