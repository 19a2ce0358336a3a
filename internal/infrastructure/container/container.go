// Package container wires the application together with fx
package container

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/alchemorsel/recipegen/internal/application/generation"
	"github.com/alchemorsel/recipegen/internal/infrastructure/ai"
	"github.com/alchemorsel/recipegen/internal/infrastructure/ai/openai"
	"github.com/alchemorsel/recipegen/internal/infrastructure/config"
	"github.com/alchemorsel/recipegen/internal/infrastructure/http/apiserver"
	"github.com/alchemorsel/recipegen/internal/infrastructure/monitoring"
	"github.com/alchemorsel/recipegen/internal/ports/inbound"
	"github.com/alchemorsel/recipegen/internal/ports/outbound"
	"github.com/alchemorsel/recipegen/pkg/healthcheck"
	"github.com/alchemorsel/recipegen/pkg/logger"
)

// ConfigPath is the optional config file given on the command line
type ConfigPath string

// Module provides all application dependencies. The caller supplies a
// ConfigPath.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MonitoringModule,
	AIModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func(path ConfigPath) (*config.Config, error) {
		return config.Load(string(path))
	},
)

// LoggerModule provides the logger and its runtime-adjustable level
var LoggerModule = fx.Options(
	fx.Provide(
		func() zap.AtomicLevel {
			return zap.NewAtomicLevel()
		},
		func(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, error) {
			return logger.New(logger.Config{
				Level:       cfg.App.LogLevel,
				Format:      cfg.App.LogFormat,
				Development: cfg.App.Debug,
				AtomicLevel: &level,
			})
		},
	),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		l := &fxevent.ZapLogger{Logger: log.Named("fx")}
		l.UseLogLevel(zap.DebugLevel)
		return l
	}),
)

// MonitoringModule provides metrics and tracing
var MonitoringModule = fx.Provide(
	monitoring.NewMetricsCollector,
	func(m *monitoring.MetricsCollector) outbound.MetricsRecorder {
		return m
	},
	func(cfg *config.Config, log *zap.Logger) (*monitoring.TracingProvider, error) {
		return monitoring.NewTracingProvider(monitoring.TracingConfig{
			ServiceName:    cfg.App.Name,
			ServiceVersion: cfg.App.Version,
			Environment:    cfg.App.Environment,
			OTLPEndpoint:   cfg.Monitoring.OTLPEndpoint,
			Insecure:       cfg.Monitoring.OTLPInsecure,
			SamplingRate:   cfg.Monitoring.SamplingRate,
			Enabled:        cfg.Monitoring.EnableTracing,
		}, log)
	},
)

// AIModule provides the model client
var AIModule = fx.Provide(
	func(cfg *config.Config, metrics outbound.MetricsRecorder, log *zap.Logger) *openai.Client {
		return openai.NewClient(openai.Config{
			APIKey:      cfg.AI.APIKey,
			BaseURL:     cfg.AI.BaseURL,
			Model:       cfg.AI.Model,
			Temperature: cfg.AI.Temperature,
			MaxTokens:   cfg.AI.MaxTokens,
		}, metrics, log)
	},
	func(c *openai.Client) outbound.CompletionClient {
		return c
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		client outbound.CompletionClient,
		metrics outbound.MetricsRecorder,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.GenerationService {
		return generation.NewService(client, metrics, generation.Config{
			IngredientTimeout: cfg.AI.IngredientTimeout,
			CuisineTimeout:    cfg.AI.CuisineTimeout,
		}, log)
	},
)

// HTTPModule provides health checks and the API server
var HTTPModule = fx.Provide(
	func(
		cfg *config.Config,
		client *openai.Client,
		metrics *monitoring.MetricsCollector,
		log *zap.Logger,
	) *healthcheck.HealthCheck {
		hc := healthcheck.New(cfg.App.Version, log.Named("health"))
		hc.SetMetrics(healthcheck.NewHealthMetrics(metrics.Registry(), healthcheck.DefaultMetricsConfig()))
		hc.Register("model", ai.NewModelChecker(cfg.AI.Provider, cfg.AI.Model, client))
		return hc
	},
	apiserver.NewAPIServer,
)

// LifecycleModule registers start and stop hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks starts the server and config watch, and on stop
// drains the server, flushes spans and syncs the logger
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	level zap.AtomicLevel,
	server *apiserver.APIServer,
	tracing *monitoring.TracingProvider,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting recipe generation service",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
				zap.String("config_file", cfg.ConfigFile()),
			)

			cfg.WatchLogLevel(level, log.Named("config"))

			return server.Start()
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down recipe generation service")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if err := tracing.Shutdown(ctx); err != nil {
				log.Error("Failed to flush traces", zap.Error(err))
			}

			_ = log.Sync()

			return nil
		},
	})
}
