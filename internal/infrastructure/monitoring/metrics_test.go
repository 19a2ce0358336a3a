package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestMetricsCollector_RecordModelCall(t *testing.T) {
	m := NewMetricsCollector(zaptest.NewLogger(t))

	m.RecordModelCall("by-ingredients", "success", 2*time.Second)
	m.RecordModelCall("by-ingredients", "success", time.Second)
	m.RecordModelCall("by-cuisine", "timeout", 20*time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.modelRequestsTotal.WithLabelValues("by-ingredients", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.modelRequestsTotal.WithLabelValues("by-cuisine", "timeout")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.modelRequestsTotal.WithLabelValues("by-cuisine", "success")))
}

func TestMetricsCollector_RecordGeneration(t *testing.T) {
	m := NewMetricsCollector(zaptest.NewLogger(t))

	m.RecordGeneration("by-cuisine", true, "model_unavailable", 5)
	m.RecordGeneration("by-cuisine", false, "", 5)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.generationsTotal.WithLabelValues("by-cuisine", "true", "model_unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generationsTotal.WithLabelValues("by-cuisine", "false", "")))
}

func TestMetricsCollector_RecordHTTPRequest(t *testing.T) {
	m := NewMetricsCollector(zaptest.NewLogger(t))

	m.RecordHTTPRequest(http.MethodPost, "/api/v1/ai/recipes/by-cuisine", http.StatusOK, 50*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/v1/ai/recipes/by-cuisine", "200"),
	))
}

func TestMetricsCollector_Handler(t *testing.T) {
	m := NewMetricsCollector(zaptest.NewLogger(t))
	m.RecordModelCall("by-ingredients", "error", time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `recipegen_model_requests_total{endpoint="by-ingredients",outcome="error"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestMetricsCollector_SeparateRegistries(t *testing.T) {
	// Two collectors must not collide on registration
	a := NewMetricsCollector(zaptest.NewLogger(t))
	b := NewMetricsCollector(zaptest.NewLogger(t))

	a.RecordGeneration("by-ingredients", false, "", 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.generationsTotal.WithLabelValues("by-ingredients", "false", "")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.generationsTotal.WithLabelValues("by-ingredients", "false", "")))
}
