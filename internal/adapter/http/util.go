package adapthttp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	log "github.com/sirupsen/logrus"

	"dietlog/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// writeServiceError maps a service error to a response. Validation failures
// are echoed to the client; anything else is logged and hidden.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsValidation(err) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	log.WithField("request_id", requestIDFrom(r.Context())).
		Errorf("%s %s: %s", r.Method, r.URL.Path, err)
	writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// locationQuery resolves the tz query parameter, falling back to def.
func locationQuery(r *http.Request, def *time.Location) (*time.Location, error) {
	name := r.URL.Query().Get("tz")
	if name == "" {
		return def, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, domain.NewValidationError("tz", fmt.Sprintf("unknown time zone %q", name))
	}
	return loc, nil
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func spaFromDisk(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	indexPath := path.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqPath := path.Clean(r.URL.Path)
		if reqPath == "/" {
			http.ServeFile(w, r, indexPath)
			return
		}

		// Pages such as /diet or /weight map to diet.html and weight.html.
		if page := path.Join(dir, reqPath+".html"); path.Ext(reqPath) == "" {
			if _, err := os.Stat(page); err == nil {
				http.ServeFile(w, r, page)
				return
			}
		}

		staticPath := path.Join(dir, reqPath)
		if _, err := os.Stat(staticPath); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, indexPath)
	})
}
