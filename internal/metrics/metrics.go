// Package metrics holds the Prometheus collectors for the lifepath API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Report kinds counted by ReportsGenerated.
const (
	KindReport   = "report"
	KindPathway  = "pathway"
	KindPlan     = "plan"
	KindSnapshot = "snapshot"
)

// Metrics provides observability for the HTTP API.
type Metrics struct {
	registry *prometheus.Registry

	// Request latency by route pattern and method
	RequestDuration *prometheus.HistogramVec

	// Requests by route pattern, method, and status code
	RequestsTotal *prometheus.CounterVec

	// Generated reports by kind
	ReportsGenerated *prometheus.CounterVec
}

// New creates a Metrics instance with its own registry, so several servers
// in one process do not collide.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lifepath_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and method",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method"}),

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifepath_http_requests_total",
			Help: "Total HTTP requests by route, method, and status",
		}, []string{"route", "method", "status"}),

		ReportsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifepath_reports_generated_total",
			Help: "Total reports generated by kind",
		}, []string{"kind"}), // kind: "report", "pathway", "plan", "snapshot"
	}
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
		m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	}
}

// IncrementReports records a generated report of the given kind.
func (m *Metrics) IncrementReports(kind string) {
	if m != nil {
		m.ReportsGenerated.WithLabelValues(kind).Inc()
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
