package adapthttp

import (
	"net/http"

	"dietlog/internal/app"
	"dietlog/internal/domain"
)

func (s *Server) handleChartsWeight(w http.ResponseWriter, r *http.Request) {
	loc, err := locationQuery(r, s.loc)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	unit := r.URL.Query().Get("unit")
	if unit == "" {
		unit = domain.UnitKg
	}
	points, err := s.charts.WeightTrend(r.Context(), s.profileID(r), unit, loc)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"unit": unit, "points": points})
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": app.GeneralAdvice()})
}
