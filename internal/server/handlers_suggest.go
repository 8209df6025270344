package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/evalonso/mealrota/internal/importer"
	"github.com/evalonso/mealrota/internal/service"
	"github.com/go-chi/chi/v5"
)

const queryDateLayout = "2006-01-02"

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	req := service.SuggestRequest{
		ProfileID: chi.URLParam(r, "profileID"),
		Days:      7,
	}

	q := r.URL.Query()
	if start := q.Get("start"); start != "" {
		parsed, err := time.Parse(queryDateLayout, start)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid start %q (expected YYYY-MM-DD)", start))
			return
		}
		req.StartDate = parsed
	}
	if days := q.Get("days"); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid days %q", days))
			return
		}
		req.Days = n
	}
	req.StrategyID = q.Get("strategy")
	if order := q.Get("order"); order != "" {
		req.Order = strings.Split(order, ",")
	}
	if seed := q.Get("seed"); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid seed %q", seed))
			return
		}
		req.Seed = &n
	}

	plan, err := s.services.Suggest.Suggest(r.Context(), req)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleListStrategies(w http.ResponseWriter, r *http.Request) {
	presets := s.services.Suggest.Strategies()
	out := make([]strategyResponse, 0, len(presets))
	for _, p := range presets {
		keys := make([]string, len(p.Heuristics))
		for i, k := range p.Heuristics {
			keys[i] = string(k)
		}
		out = append(out, strategyResponse{
			ID:          p.ID,
			Label:       p.Label,
			Description: p.Description,
			Heuristics:  keys,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var doc importer.ProfileDocument
	if err := decodeBody(r, &doc); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	result, err := s.services.Import.ImportProfileFromDocument(r.Context(), &doc)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, importResponse{
		ProfileID:      result.Profile.ID,
		Name:           result.Profile.Name,
		DishCount:      result.DishCount,
		SelectionCount: result.SelectionCount,
	})
}
