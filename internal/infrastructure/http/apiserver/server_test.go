package apiserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/alchemorsel/recipegen/internal/domain/recipe"
	"github.com/alchemorsel/recipegen/internal/infrastructure/config"
	"github.com/alchemorsel/recipegen/internal/infrastructure/monitoring"
	"github.com/alchemorsel/recipegen/pkg/healthcheck"
)

type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) Generate(ctx context.Context, req recipe.GenerationRequest) (*recipe.GenerationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.GenerationResult), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "recipegen", Version: "test"},
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           0,
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			IdleTimeout:    time.Second,
			RequestTimeout: 5 * time.Second,
		},
		Monitoring: config.MonitoringConfig{
			EnableMetrics:   true,
			MetricsPath:     "/metrics",
			HealthCheckPath: "/health",
			LivenessPath:    "/health/live",
			ReadinessPath:   "/health/ready",
		},
	}
}

func newTestServer(t *testing.T, service *MockGenerationService) *APIServer {
	t.Helper()
	logger := zaptest.NewLogger(t)
	tracing, err := monitoring.NewTracingProvider(monitoring.TracingConfig{}, logger)
	require.NoError(t, err)

	return NewAPIServer(
		testConfig(),
		logger,
		service,
		healthcheck.New("test", logger),
		monitoring.NewMetricsCollector(logger),
		tracing,
	)
}

func serve(s *APIServer, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRoutes_Preflight(t *testing.T) {
	s := newTestServer(t, new(MockGenerationService))

	for _, path := range []string{"/api/v1/ai/recipes/by-ingredients", "/api/v1/ai/recipes/by-cuisine"} {
		rec := serve(s, http.MethodOptions, path, "")

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "authorization")
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "content-type")
	}
}

func TestRoutes_GenerateByCuisine(t *testing.T) {
	service := new(MockGenerationService)
	service.On("Generate", mock.Anything, mock.Anything).Return(&recipe.GenerationResult{
		Recipes: []recipe.Recipe{{Title: "Pad Thai"}},
		Cuisine: "thai",
	}, nil).Once()
	s := newTestServer(t, service)

	rec := serve(s, http.MethodPost, "/api/v1/ai/recipes/by-cuisine", `{"cuisine":"thai"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"total":1`)
	service.AssertExpectations(t)
}

func TestRoutes_InvalidRequestKeepsHeaders(t *testing.T) {
	s := newTestServer(t, new(MockGenerationService))

	rec := serve(s, http.MethodPost, "/api/v1/ai/recipes/by-ingredients", `{"ingredients":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"error":"Ingredients list is required"}`, rec.Body.String())
}

func TestRoutes_HealthAndMetrics(t *testing.T) {
	s := newTestServer(t, new(MockGenerationService))

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		rec := serve(s, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := serve(s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `recipegen_http_requests_total{method="GET",path="/health",status_code="200"} 1`)
}

func TestRoutes_OpenAPI(t *testing.T) {
	s := newTestServer(t, new(MockGenerationService))

	rec := serve(s, http.MethodGet, "/api/v1/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/ai/recipes/by-cuisine:")

	rec = serve(s, http.MethodGet, "/api/v1/docs", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http://example.com/api/v1/openapi.yaml")
}

func TestRoutes_NotFoundAndMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, new(MockGenerationService))

	rec := serve(s, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())

	rec = serve(s, http.MethodGet, "/api/v1/ai/recipes/by-cuisine", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStartAndShutdown(t *testing.T) {
	s := newTestServer(t, new(MockGenerationService))

	require.NoError(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Shutdown(ctx))
}
