package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/alchemorsel/recipegen/internal/ports/outbound"
)

const namespace = "recipegen"

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger   *zap.Logger
	registry *prometheus.Registry

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        prometheus.Gauge

	// Generation metrics
	modelRequestsTotal   *prometheus.CounterVec
	modelRequestDuration *prometheus.HistogramVec
	generationsTotal     *prometheus.CounterVec
	recipesReturned      *prometheus.HistogramVec
}

var _ outbound.MetricsRecorder = (*MetricsCollector)(nil)

// NewMetricsCollector creates a collector on its own registry, which also
// carries the Go runtime and process collectors
func NewMetricsCollector(logger *zap.Logger) *MetricsCollector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &MetricsCollector{
		logger:   logger.Named("metrics"),
		registry: registry,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 15, 20, 30},
			},
			[]string{"method", "path", "status_code"},
		),
		httpInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests being served",
			},
		),
		modelRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "model_requests_total",
				Help:      "Total number of model calls by outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		modelRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "model_request_duration_seconds",
				Help:      "Model call duration in seconds",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 15, 20, 30},
			},
			[]string{"endpoint"},
		),
		generationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Total number of generations, by whether the fallback served them",
			},
			[]string{"endpoint", "fallback", "reason"},
		),
		recipesReturned: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "recipes_returned",
				Help:      "Number of recipes returned per generation",
				Buckets:   []float64{0, 1, 2, 3, 4, 5},
			},
			[]string{"endpoint"},
		),
	}
}

// RecordModelCall implements outbound.MetricsRecorder
func (m *MetricsCollector) RecordModelCall(endpoint, outcome string, duration time.Duration) {
	m.modelRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.modelRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordGeneration implements outbound.MetricsRecorder
func (m *MetricsCollector) RecordGeneration(endpoint string, fallback bool, reason string, recipes int) {
	m.generationsTotal.WithLabelValues(endpoint, strconv.FormatBool(fallback), reason).Inc()
	m.recipesReturned.WithLabelValues(endpoint).Observe(float64(recipes))
}

// RecordHTTPRequest records one served request
func (m *MetricsCollector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// InFlight returns the in-flight request gauge
func (m *MetricsCollector) InFlight() prometheus.Gauge {
	return m.httpInFlight
}

// Registry exposes the collector's registry
func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus metrics HTTP handler
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog: zap.NewStdLog(m.logger),
	})
}
