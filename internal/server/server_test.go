package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/evalonso/mealrota/internal/repository"
	"github.com/evalonso/mealrota/internal/service"
	"github.com/evalonso/mealrota/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteProfileRepo(database)
	dishes := repository.NewSQLiteDishRepo(database)
	selections := repository.NewSQLiteSelectionRepo(database)

	return New("127.0.0.1:0", Services{
		Profiles:   service.NewProfileService(profiles),
		Dishes:     service.NewDishService(dishes),
		Selections: service.NewSelectionService(dishes, selections),
		Suggest:    service.NewSuggestService(profiles, dishes, selections),
		Import:     service.NewImportService(testutil.NewTestUoW(database)),
	}, nil)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func createProfile(t *testing.T, srv *Server, name string, mealsPerDay int) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/profiles", map[string]any{
		"name":        name,
		"mealsPerDay": mealsPerDay,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp struct {
		ID string `json:"id"`
	}
	decodeInto(t, rec, &resp)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func createDish(t *testing.T, srv *Server, profileID string, payload map[string]any) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/profiles/"+profileID+"/dishes", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp struct {
		ID string `json:"id"`
	}
	decodeInto(t, rec, &resp)
	return resp.ID
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileCRUD(t *testing.T) {
	srv := newTestServer(t)

	id := createProfile(t, srv, "API Family", 0)

	rec := doJSON(t, srv, http.MethodGet, "/api/profiles/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Name        string `json:"name"`
		MealsPerDay int    `json:"mealsPerDay"`
	}
	decodeInto(t, rec, &got)
	assert.Equal(t, "API Family", got.Name)
	assert.Equal(t, domain.DefaultMealsPerDay, got.MealsPerDay, "absent mealsPerDay defaults")

	rec = doJSON(t, srv, http.MethodPut, "/api/profiles/"+id, map[string]any{"mealsPerDay": 4})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &got)
	assert.Equal(t, 4, got.MealsPerDay)
	assert.Equal(t, "API Family", got.Name, "omitted fields are preserved")

	rec = doJSON(t, srv, http.MethodGet, "/api/profiles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []json.RawMessage
	decodeInto(t, rec, &list)
	assert.Len(t, list, 1)

	rec = doJSON(t, srv, http.MethodDelete, "/api/profiles/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/profiles/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProfile_RequiresName(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/profiles", map[string]any{"mealsPerDay": 3})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDishEndpoints(t *testing.T) {
	srv := newTestServer(t)
	profileID := createProfile(t, srv, "Dish Tests", 2)

	dishID := createDish(t, srv, profileID, map[string]any{
		"name":      "Weekly Soup",
		"mealTypes": []string{"dinner"},
		"frequency": map[string]any{"mode": "ratio", "maxDays": 3},
	})

	rec := doJSON(t, srv, http.MethodGet, "/api/profiles/"+profileID+"/dishes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dishes []struct {
		ID        string           `json:"id"`
		Frequency domain.Frequency `json:"frequency"`
	}
	decodeInto(t, rec, &dishes)
	require.Len(t, dishes, 1)
	assert.Equal(t, dishID, dishes[0].ID)
	assert.Equal(t, domain.DefaultRecurrenceMinDays, dishes[0].Frequency.MinDays,
		"recurrence bounds are normalized on save")

	rec = doJSON(t, srv, http.MethodPut,
		fmt.Sprintf("/api/profiles/%s/dishes/%s", profileID, dishID),
		map[string]any{
			"name":      "Weekly Soup",
			"mealTypes": []string{"lunch", "dinner"},
			"frequency": map[string]any{"mode": "ratio", "minDays": 5, "maxDays": 9},
		})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodDelete,
		fmt.Sprintf("/api/profiles/%s/dishes/%s", profileID, dishID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/profiles/"+profileID+"/dishes", nil)
	decodeInto(t, rec, &dishes)
	assert.Empty(t, dishes)
}

func TestCreateDish_WeekdayConflict(t *testing.T) {
	srv := newTestServer(t)
	profileID := createProfile(t, srv, "Conflicts", 2)

	createDish(t, srv, profileID, map[string]any{
		"name":      "Taco Night",
		"mealTypes": []string{"dinner"},
		"frequency": map[string]any{"mode": "days", "days": []string{"tuesday"}},
	})

	rec := doJSON(t, srv, http.MethodPost, "/api/profiles/"+profileID+"/dishes", map[string]any{
		"name":      "Tuesday Curry",
		"mealTypes": []string{"dinner"},
		"frequency": map[string]any{"mode": "days", "days": []string{"tuesday"}},
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDishEndpoints_WrongProfile(t *testing.T) {
	srv := newTestServer(t)
	ownerID := createProfile(t, srv, "Owner", 2)
	otherID := createProfile(t, srv, "Other", 2)

	dishID := createDish(t, srv, ownerID, map[string]any{
		"name":      "Pasta",
		"mealTypes": []string{"dinner"},
		"frequency": map[string]any{"mode": "days"},
	})

	rec := doJSON(t, srv, http.MethodPut,
		fmt.Sprintf("/api/profiles/%s/dishes/%s", otherID, dishID),
		map[string]any{"name": "Hijack", "mealTypes": []string{"dinner"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelectionEndpoints(t *testing.T) {
	srv := newTestServer(t)
	profileID := createProfile(t, srv, "Selections", 2)
	dishID := createDish(t, srv, profileID, map[string]any{
		"name":      "Taco Night",
		"mealTypes": []string{"dinner"},
		"frequency": map[string]any{"mode": "days"},
	})

	rec := doJSON(t, srv, http.MethodPost, "/api/profiles/"+profileID+"/selection", map[string]any{
		"date":   "2026-01-05",
		"meal":   "dinner",
		"dishId": dishID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodGet, "/api/profiles/"+profileID+"/selections", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history map[string]map[string]string
	decodeInto(t, rec, &history)
	assert.Equal(t, dishID, history["2026-01-05"]["dinner"])

	rec = doJSON(t, srv, http.MethodPost, "/api/profiles/"+profileID+"/selection", map[string]any{
		"date": "2026-01-05",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "meal and dishId are required")

	rec = doJSON(t, srv, http.MethodDelete,
		"/api/profiles/"+profileID+"/selection?date=2026-01-05&meal=dinner", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/profiles/"+profileID+"/selections", nil)
	history = nil
	decodeInto(t, rec, &history)
	assert.Empty(t, history)
}

func TestSuggestionsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	profileID := createProfile(t, srv, "Suggest", 2)
	createDish(t, srv, profileID, map[string]any{
		"name":      "Oatmeal",
		"mealTypes": []string{"breakfast"},
		"frequency": map[string]any{"mode": "days"},
	})
	createDish(t, srv, profileID, map[string]any{
		"name":      "Pasta",
		"mealTypes": []string{"dinner"},
		"frequency": map[string]any{"mode": "days"},
	})

	rec := doJSON(t, srv, http.MethodGet,
		"/api/profiles/"+profileID+"/suggestions?start=2026-01-05&days=2&seed=1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var plan []domain.DayPlan
	decodeInto(t, rec, &plan)
	require.Len(t, plan, 2)
	assert.Equal(t, "2026-01-05", plan[0].Date)
	for _, day := range plan {
		for _, meal := range day.MealOrder {
			assert.NotNil(t, day.Meals[meal].DishID)
		}
	}

	rec = doJSON(t, srv, http.MethodGet,
		"/api/profiles/"+profileID+"/suggestions?days=many", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/profiles/missing/suggestions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStrategiesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/strategies", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var strategies []struct {
		ID         string   `json:"id"`
		Heuristics []string `json:"heuristics"`
	}
	decodeInto(t, rec, &strategies)
	require.NotEmpty(t, strategies)

	var ids []string
	for _, s := range strategies {
		ids = append(ids, s.ID)
		assert.NotEmpty(t, s.Heuristics)
	}
	assert.Contains(t, ids, "balanced")
}

func TestImportEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/import", map[string]any{
		"name":        "Imported",
		"mealsPerDay": 3,
		"dishes": []map[string]any{
			{"name": "Toast", "mealTypes": []string{"breakfast"}},
			{"name": "Stew", "mealTypes": []string{"dinner"}},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp importResponse
	decodeInto(t, rec, &resp)
	assert.Equal(t, 2, resp.DishCount)

	rec = doJSON(t, srv, http.MethodGet, "/api/profiles/"+resp.ProfileID+"/dishes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dishes []json.RawMessage
	decodeInto(t, rec, &dishes)
	assert.Len(t, dishes, 2)
}

func TestImportEndpoint_ValidationFailure(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/import", map[string]any{
		"dishes": []map[string]any{{"name": "No Meals"}},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "import validation failed")
}
