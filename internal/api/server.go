// Package api exposes the numerology engine and pathway planner as a small
// read-only JSON API.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Veraticus/lifepath/internal/metrics"
	"github.com/Veraticus/lifepath/internal/numerology"
	"github.com/Veraticus/lifepath/internal/pathway"
	"github.com/Veraticus/lifepath/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Server serves the API.
type Server struct {
	logger        *slog.Logger
	store         service.Storage
	planner       *pathway.Planner
	metrics       *metrics.Metrics
	forecastYears int
}

// Option configures a Server.
type Option func(*Server)

// WithStorage enables the saved-profile routes.
func WithStorage(store service.Storage) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithPlanner sets the planner, and through it the clock used for default
// start years.
func WithPlanner(planner *pathway.Planner) Option {
	return func(s *Server) {
		if planner != nil {
			s.planner = planner
		}
	}
}

// WithMetrics sets the collectors requests are recorded on.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithForecastYears sets the length of the personal year forecast in reports.
func WithForecastYears(years int) Option {
	return func(s *Server) {
		if years > 0 {
			s.forecastYears = years
		}
	}
}

// New creates a Server.
func New(logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		logger:        logger,
		planner:       pathway.New(),
		metrics:       metrics.New(),
		forecastYears: numerology.DefaultForecastYears,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Metrics returns the collectors the server records on.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(recordMetrics(s.metrics))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.AllowContentType("application/json"))
		r.Post("/report", s.handleReport)
		r.Post("/pathway", s.handlePathway)
		r.Post("/plan", s.handlePlan)
		r.Get("/personal-year", s.handlePersonalYear)
		r.Get("/plans/{number}", s.handleYearPlan)
		if s.store != nil {
			r.Get("/profiles/{id}/plan", s.handleProfilePlan)
		}
	})

	return r
}

// NewHTTPServer builds an HTTP server for handler with the project's timeouts.
func NewHTTPServer(addr string, handler http.Handler, readTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      2 * readTimeout,
		IdleTimeout:       60 * time.Second,
	}
}
