// Package healthcheck metrics integration
// Provides Prometheus metrics for health check monitoring
package healthcheck

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HealthMetrics provides Prometheus metrics for health checks
type HealthMetrics struct {
	checksTotal   *prometheus.CounterVec
	checkDuration *prometheus.HistogramVec
	healthStatus  *prometheus.GaugeVec
}

// MetricsConfig holds configuration for metrics
type MetricsConfig struct {
	Namespace string
	Subsystem string
}

// DefaultMetricsConfig returns default metrics configuration
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "recipegen",
		Subsystem: "healthcheck",
	}
}

// NewHealthMetrics registers health metrics on reg
func NewHealthMetrics(reg prometheus.Registerer, config MetricsConfig) *HealthMetrics {
	factory := promauto.With(reg)

	return &HealthMetrics{
		checksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.Namespace,
				Subsystem: config.Subsystem,
				Name:      "checks_total",
				Help:      "Total number of health checks performed",
			},
			[]string{"check_name", "status"},
		),
		checkDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: config.Namespace,
				Subsystem: config.Subsystem,
				Name:      "check_duration_seconds",
				Help:      "Duration of individual health checks",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"check_name"},
		),
		healthStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: config.Namespace,
				Subsystem: config.Subsystem,
				Name:      "status",
				Help:      "Current check status (1 healthy, 0.5 degraded, 0 unhealthy)",
			},
			[]string{"check_name"},
		),
	}
}

// RecordCheck records the outcome of one check
func (m *HealthMetrics) RecordCheck(check Check) {
	if m == nil {
		return
	}
	m.checksTotal.WithLabelValues(check.Name, string(check.Status)).Inc()
	m.checkDuration.WithLabelValues(check.Name).Observe(check.Duration.Seconds())
	m.healthStatus.WithLabelValues(check.Name).Set(statusValue(check.Status))
}

func statusValue(s Status) float64 {
	switch s {
	case StatusHealthy:
		return 1
	case StatusDegraded:
		return 0.5
	default:
		return 0
	}
}
