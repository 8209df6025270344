package server

import (
	"net/http"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.services.Profiles.List(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	out := make([]profileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var payload profilePayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p := &domain.Profile{
		Name:        payload.Name,
		MealsPerDay: payload.MealsPerDay,
		Heuristics:  payload.Heuristics,
	}
	if err := s.services.Profiles.Create(r.Context(), p); err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileResponse(p))
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.services.Profiles.GetByID(r.Context(), chi.URLParam(r, "profileID"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.services.Profiles.GetByID(r.Context(), chi.URLParam(r, "profileID"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	var payload profilePayload
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if payload.Name != "" {
		p.Name = payload.Name
	}
	if payload.MealsPerDay != 0 {
		p.MealsPerDay = payload.MealsPerDay
	}
	if payload.Heuristics != nil {
		p.Heuristics = payload.Heuristics
	}
	if err := s.services.Profiles.Update(r.Context(), p); err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Profiles.Delete(r.Context(), chi.URLParam(r, "profileID")); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
