package server

import (
	"errors"
	"net/http"

	"github.com/evalonso/mealrota/internal/repository"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListDishes(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	if _, err := s.services.Profiles.GetByID(r.Context(), profileID); err != nil {
		s.serviceError(w, err)
		return
	}
	dishes, err := s.services.Dishes.ListByProfile(r.Context(), profileID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	out := make([]dishResponse, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, toDishResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateDish(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	if _, err := s.services.Profiles.GetByID(r.Context(), profileID); err != nil {
		s.serviceError(w, err)
		return
	}
	var payload dishPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	d := payload.toDomain(profileID)
	if err := s.services.Dishes.Create(r.Context(), d); err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDishResponse(d))
}

func (s *Server) handleUpdateDish(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	existing, err := s.services.Dishes.GetByID(r.Context(), chi.URLParam(r, "dishID"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if existing.ProfileID != profileID {
		s.serviceError(w, repository.ErrNotFound)
		return
	}
	var payload dishPayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	d := payload.toDomain(profileID)
	d.ID = existing.ID
	d.CreatedAt = existing.CreatedAt
	if err := s.services.Dishes.Update(r.Context(), d); err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDishResponse(d))
}

func (s *Server) handleDeleteDish(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	existing, err := s.services.Dishes.GetByID(r.Context(), chi.URLParam(r, "dishID"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.serviceError(w, err)
		return
	}
	if existing.ProfileID != profileID {
		s.serviceError(w, repository.ErrNotFound)
		return
	}
	if err := s.services.Dishes.Delete(r.Context(), existing.ID); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
