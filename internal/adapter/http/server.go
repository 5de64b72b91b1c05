// Package adapthttp is the driving HTTP adapter. It exposes the JSON API,
// Prometheus metrics and, optionally, the static web frontend.
package adapthttp

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dietlog/internal/app"
	"dietlog/internal/domain"
	"dietlog/internal/metrics"
)

// Services bundles the application services the server routes to.
type Services struct {
	Profile   *app.ProfileService
	Diet      *app.DietService
	Weight    *app.WeightService
	Dashboard *app.DashboardService
	Charts    *app.ChartsService
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	profile   *app.ProfileService
	diet      *app.DietService
	weight    *app.WeightService
	dashboard *app.DashboardService
	charts    *app.ChartsService

	metrics  *metrics.Manager
	gatherer prometheus.Gatherer
	loc      *time.Location
	webDir   string
	now      func() time.Time
}

// New creates a Server wired to the given application services. loc is the
// default location used for day bucketing when a request carries no tz.
// An empty webDir disables static file serving.
func New(svc Services, m *metrics.Manager, gatherer prometheus.Gatherer, loc *time.Location, webDir string) *Server {
	if loc == nil {
		loc = time.Local
	}
	return &Server{
		profile:   svc.Profile,
		diet:      svc.Diet,
		weight:    svc.Weight,
		dashboard: svc.Dashboard,
		charts:    svc.Charts,
		metrics:   m,
		gatherer:  gatherer,
		loc:       loc,
		webDir:    webDir,
		now:       time.Now,
	}
}

// profileID is the single profile served by this adapter.
func (s *Server) profileID(_ *http.Request) int64 {
	return domain.DefaultProfileID
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequest, s.requestMetrics, s.panicRecovery)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)

	api.HandleFunc("/diet", s.handleDietList).Methods(http.MethodGet)
	api.HandleFunc("/diet", s.handleDietCreate).Methods(http.MethodPost)

	api.HandleFunc("/weight", s.handleWeightList).Methods(http.MethodGet)
	api.HandleFunc("/weight", s.handleWeightCreate).Methods(http.MethodPost)

	api.HandleFunc("/profile", s.handleProfileGet).Methods(http.MethodGet)
	api.HandleFunc("/profile", s.handleProfileUpsert).Methods(http.MethodPost, http.MethodPut)

	api.HandleFunc("/advice", s.handleAdvice).Methods(http.MethodGet)
	api.HandleFunc("/summary/today", s.handleSummaryToday).Methods(http.MethodGet)
	api.HandleFunc("/charts/weight", s.handleChartsWeight).Methods(http.MethodGet)

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	if s.webDir != "" {
		r.PathPrefix("/").Handler(spaFromDisk(s.webDir)).Methods(http.MethodGet, http.MethodHead)
	}

	return withNoCache(r)
}
