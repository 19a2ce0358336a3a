// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/alchemorsel/recipegen/pkg/logger"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	AI         AIConfig         `mapstructure:"ai"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`

	v *viper.Viper
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// RequestTimeout bounds a whole request, so it must exceed the model deadlines
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// AIConfig contains model provider configuration
type AIConfig struct {
	Provider          string        `mapstructure:"provider"`
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	Model             string        `mapstructure:"model"`
	Temperature       float64       `mapstructure:"temperature"`
	MaxTokens         int           `mapstructure:"max_tokens"`
	IngredientTimeout time.Duration `mapstructure:"ingredient_timeout"`
	CuisineTimeout    time.Duration `mapstructure:"cuisine_timeout"`
}

// MonitoringConfig contains monitoring configuration
type MonitoringConfig struct {
	EnableMetrics   bool    `mapstructure:"enable_metrics"`
	MetricsPath     string  `mapstructure:"metrics_path"`
	EnableTracing   bool    `mapstructure:"enable_tracing"`
	OTLPEndpoint    string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure    bool    `mapstructure:"otlp_insecure"`
	SamplingRate    float64 `mapstructure:"sampling_rate"`
	HealthCheckPath string  `mapstructure:"health_check_path"`
	LivenessPath    string  `mapstructure:"liveness_path"`
	ReadinessPath   string  `mapstructure:"readiness_path"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/alchemorsel")
	}

	// Enable environment variable override
	v.SetEnvPrefix("ALCHEMORSEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The provider's conventional variable is honoured when ours is unset
	if err := v.BindEnv("ai.api_key", "ALCHEMORSEL_AI_API_KEY", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.v = v

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "recipegen")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "45s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.request_timeout", "40s")

	// AI defaults
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.max_tokens", 3000)
	v.SetDefault("ai.ingredient_timeout", "15s")
	v.SetDefault("ai.cuisine_timeout", "20s")

	// Monitoring defaults
	v.SetDefault("monitoring.enable_metrics", true)
	v.SetDefault("monitoring.metrics_path", "/metrics")
	v.SetDefault("monitoring.enable_tracing", false)
	v.SetDefault("monitoring.otlp_endpoint", "localhost:4318")
	v.SetDefault("monitoring.otlp_insecure", true)
	v.SetDefault("monitoring.sampling_rate", 0.1)
	v.SetDefault("monitoring.health_check_path", "/health")
	v.SetDefault("monitoring.liveness_path", "/health/live")
	v.SetDefault("monitoring.readiness_path", "/health/ready")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}

	switch c.App.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("app.log_format must be json or console, got %q", c.App.LogFormat)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	if c.AI.Provider != "openai" {
		return fmt.Errorf("ai.provider %q is not supported", c.AI.Provider)
	}

	if c.AI.IngredientTimeout <= 0 || c.AI.CuisineTimeout <= 0 {
		return fmt.Errorf("ai.ingredient_timeout and ai.cuisine_timeout must be positive")
	}

	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be positive")
	}

	if longest := c.LongestModelTimeout(); c.Server.RequestTimeout <= longest {
		return fmt.Errorf("server.request_timeout (%s) must exceed the longest model deadline (%s)",
			c.Server.RequestTimeout, longest)
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}

	if c.Monitoring.SamplingRate < 0 || c.Monitoring.SamplingRate > 1 {
		return fmt.Errorf("monitoring.sampling_rate must be between 0 and 1")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// LongestModelTimeout returns the larger of the two model deadlines
func (c *Config) LongestModelTimeout() time.Duration {
	if c.AI.IngredientTimeout > c.AI.CuisineTimeout {
		return c.AI.IngredientTimeout
	}
	return c.AI.CuisineTimeout
}

// ShutdownDeadline returns override when positive, otherwise
// server.shutdown_timeout
func (c *Config) ShutdownDeadline(override time.Duration) time.Duration {
	if override > 0 {
		return override
	}
	return c.Server.ShutdownTimeout
}

// ConfigFile returns the file the configuration was read from, if any
func (c *Config) ConfigFile() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}

// WatchLogLevel re-applies app.log_level to level whenever the config file
// changes. Every other setting keeps its startup value. It returns false
// when no config file was loaded.
func (c *Config) WatchLogLevel(level zap.AtomicLevel, log *zap.Logger) bool {
	if c.ConfigFile() == "" {
		return false
	}

	c.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		applyLogLevel(level, c.v.GetString("app.log_level"), log)
	})
	c.v.WatchConfig()

	log.Info("Watching config file for log level changes", zap.String("file", c.ConfigFile()))
	return true
}

func applyLogLevel(level zap.AtomicLevel, name string, log *zap.Logger) {
	next := logger.ParseLevel(name)
	if next == level.Level() {
		return
	}
	log.Info("Log level changed",
		zap.String("from", level.Level().String()),
		zap.String("to", next.String()),
	)
	level.SetLevel(next)
}
