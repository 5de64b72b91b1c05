package adapthttp

import "net/http"

func (s *Server) handleSummaryToday(w http.ResponseWriter, r *http.Request) {
	loc, err := locationQuery(r, s.loc)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	d, err := s.dashboard.Today(r.Context(), s.profileID(r), s.now().In(loc))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
