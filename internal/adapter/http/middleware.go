package adapthttp

import (
	"context"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type contextKey string

const requestIDKey contextKey = "request_id"

const requestIDHeader = "X-Request-ID"

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}

// logRequest assigns a request id and logs method, path, status and duration.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey, id))

		resp := &responseWriter{w, http.StatusOK}
		next.ServeHTTP(resp, r)

		log.WithFields(log.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     resp.statusCode,
			"duration":   time.Since(start).String(),
		}).Infof("%s %s %d", r.Method, r.URL.Path, resp.statusCode)
	})
}

// requestMetrics records request count and latency per route template.
func (s *Server) requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		route := "unmatched"
		if cr := mux.CurrentRoute(r); cr != nil {
			if tpl, err := cr.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		begin := time.Now()
		resp := &responseWriter{w, http.StatusOK}
		next.ServeHTTP(resp, r)

		s.metrics.HistRequestDuration.WithLabelValues(route).Observe(time.Since(begin).Seconds())
		s.metrics.CounterRequests.WithLabelValues(r.Method, route, strconv.Itoa(resp.statusCode)).Inc()
	})
}

// panicRecovery turns a handler panic into a 500 response.
func (s *Server) panicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Errorf("http: panic serving %s: %v\n%s", r.URL.Path, rec, debug.Stack())
				if s.metrics != nil {
					s.metrics.CounterHandleRequestPanic.Inc()
				}
				writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
