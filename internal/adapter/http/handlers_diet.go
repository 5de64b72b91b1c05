package adapthttp

import (
	"net/http"

	"dietlog/internal/domain"
)

type dietRequest struct {
	Meal     string  `json:"meal"`
	Food     string  `json:"food"`
	Calories *int    `json:"calories"`
	Note     *string `json:"note"`
}

func (s *Server) handleDietList(w http.ResponseWriter, r *http.Request) {
	items, err := s.diet.ListRecent(r.Context(), s.profileID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.DietEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleDietCreate(w http.ResponseWriter, r *http.Request) {
	var body dietRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.diet.Create(r.Context(), s.profileID(r), body.Meal, body.Food, body.Calories, body.Note)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	s.countCreated("diet")
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) countCreated(kind string) {
	if s.metrics != nil {
		s.metrics.CounterEntriesCreated.WithLabelValues(kind).Inc()
	}
}
