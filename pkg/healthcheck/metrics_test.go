package healthcheck

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthMetrics_RecordsChecks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHealthMetrics(reg, DefaultMetricsConfig())

	hc := New("1.0.0", zap.NewNop())
	hc.SetMetrics(m)
	hc.Register("model", staticChecker(StatusDegraded, "no key"))
	hc.Register("disk", staticChecker(StatusHealthy, ""))

	hc.Check(context.Background())

	assert.Equal(t, 0.5, testutil.ToFloat64(m.healthStatus.WithLabelValues("model")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.healthStatus.WithLabelValues("disk")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checksTotal.WithLabelValues("model", "degraded")))
}

func TestHealthMetrics_CachedResponsesNotRecorded(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHealthMetrics(reg, DefaultMetricsConfig())

	hc := New("1.0.0", zap.NewNop())
	hc.SetMetrics(m)
	hc.Register("model", staticChecker(StatusHealthy, ""))

	hc.Check(context.Background())
	hc.Check(context.Background())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.checksTotal.WithLabelValues("model", "healthy")))
}

func TestHealthMetrics_NilIsSafe(t *testing.T) {
	var m *HealthMetrics
	assert.NotPanics(t, func() {
		m.RecordCheck(Check{Name: "x", Status: StatusHealthy})
	})
}
