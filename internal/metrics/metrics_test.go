package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveRequest("/api/v1/report", http.MethodPost, http.StatusOK, 12*time.Millisecond)
	m.ObserveRequest("/api/v1/report", http.MethodPost, http.StatusOK, 8*time.Millisecond)
	m.ObserveRequest("/api/v1/report", http.MethodPost, http.StatusBadRequest, time.Millisecond)
	m.IncrementReports(KindReport)
	m.IncrementReports(KindPlan)
	m.IncrementReports(KindPlan)

	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/v1/report", "POST", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/v1/report", "POST", "400")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ReportsGenerated.WithLabelValues(KindReport)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.ReportsGenerated.WithLabelValues(KindPlan)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("/health", http.MethodGet, http.StatusOK, time.Millisecond)
		m.IncrementReports(KindPathway)
	})
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.IncrementReports(KindReport)

	assert.InDelta(t, 1, testutil.ToFloat64(a.ReportsGenerated.WithLabelValues(KindReport)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.ReportsGenerated.WithLabelValues(KindReport)), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.IncrementReports(KindSnapshot)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lifepath_reports_generated_total{kind="snapshot"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
