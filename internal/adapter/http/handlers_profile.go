package adapthttp

import "net/http"

type profileRequest struct {
	Name         string   `json:"name"`
	TargetWeight *float64 `json:"targetWeight"`
	Height       *float64 `json:"height"`
}

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile.Get(r.Context(), s.profileID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProfileUpsert(w http.ResponseWriter, r *http.Request) {
	var body profileRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := s.profile.Upsert(r.Context(), s.profileID(r), body.Name, body.TargetWeight, body.Height)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
