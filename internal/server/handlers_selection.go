package server

import (
	"fmt"
	"net/http"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleRecordSelection(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	if _, err := s.services.Profiles.GetByID(r.Context(), profileID); err != nil {
		s.serviceError(w, err)
		return
	}
	var payload selectionPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if payload.Date == "" || payload.Meal == "" || payload.DishID == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("date, meal and dishId are required"))
		return
	}
	sel, err := s.services.Selections.Record(r.Context(), profileID, payload.Date, domain.MealKey(payload.Meal), payload.DishID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, selectionResponse{
		ProfileID: sel.ProfileID,
		Date:      sel.Date,
		Meal:      sel.Meal,
		DishID:    sel.DishID,
	})
}

func (s *Server) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	date := r.URL.Query().Get("date")
	meal := r.URL.Query().Get("meal")
	if date == "" || meal == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("date and meal query parameters are required"))
		return
	}
	if err := s.services.Selections.Clear(r.Context(), profileID, date, domain.MealKey(meal)); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListSelections(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	if _, err := s.services.Profiles.GetByID(r.Context(), profileID); err != nil {
		s.serviceError(w, err)
		return
	}

	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from != "" || to != "" {
		if from == "" || to == "" {
			writeError(w, http.StatusBadRequest, fmt.Errorf("from and to must be given together"))
			return
		}
		selections, err := s.services.Selections.ListRange(r.Context(), profileID, from, to)
		if err != nil {
			s.serviceError(w, err)
			return
		}
		out := make([]selectionResponse, 0, len(selections))
		for _, sel := range selections {
			out = append(out, selectionResponse{
				ProfileID: sel.ProfileID,
				Date:      sel.Date,
				Meal:      sel.Meal,
				DishID:    sel.DishID,
			})
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	history, err := s.services.Selections.History(r.Context(), profileID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
