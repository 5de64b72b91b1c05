package adapthttp

import (
	"net/http"

	"dietlog/internal/domain"
)

type weightRequest struct {
	Value float64 `json:"value"`
	Note  *string `json:"note"`
}

func (s *Server) handleWeightList(w http.ResponseWriter, r *http.Request) {
	items, err := s.weight.ListRecent(r.Context(), s.profileID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.WeightEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleWeightCreate(w http.ResponseWriter, r *http.Request) {
	var body weightRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.weight.Create(r.Context(), s.profileID(r), body.Value, body.Note)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	s.countCreated("weight")
	writeJSON(w, http.StatusCreated, entry)
}
