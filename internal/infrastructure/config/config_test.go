package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "app:\n  name: recipegen\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, 15*time.Second, cfg.AI.IngredientTimeout)
	assert.Equal(t, 20*time.Second, cfg.AI.CuisineTimeout)
	assert.Equal(t, "/metrics", cfg.Monitoring.MetricsPath)
	assert.Equal(t, "/health/ready", cfg.Monitoring.ReadinessPath)
	assert.False(t, cfg.Monitoring.EnableTracing)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
app:
  environment: production
  log_level: debug
server:
  port: 9090
ai:
  model: gpt-4o
  cuisine_timeout: 30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, 30*time.Second, cfg.AI.CuisineTimeout)
	assert.Equal(t, path, cfg.ConfigFile())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ALCHEMORSEL_SERVER_PORT", "7070")
	t.Setenv("ALCHEMORSEL_AI_INGREDIENT_TIMEOUT", "5s")
	t.Setenv("ALCHEMORSEL_AI_API_KEY", "sk-primary")
	t.Setenv("OPENAI_API_KEY", "sk-fallback")

	cfg, err := Load(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.AI.IngredientTimeout)
	assert.Equal(t, "sk-primary", cfg.AI.APIKey)
}

func TestLoad_ProviderKeyFallback(t *testing.T) {
	t.Setenv("ALCHEMORSEL_AI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-fallback")

	cfg, err := Load(writeConfig(t, "app:\n  name: recipegen\n"))
	require.NoError(t, err)

	assert.Equal(t, "sk-fallback", cfg.AI.APIKey)
}

func TestLoad_MissingKeyIsNotAnError(t *testing.T) {
	t.Setenv("ALCHEMORSEL_AI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load(writeConfig(t, "app:\n  name: recipegen\n"))
	require.NoError(t, err)

	assert.Empty(t, cfg.AI.APIKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"port out of range", "server:\n  port: 70000\n"},
		{"unsupported provider", "ai:\n  provider: anthropic\n"},
		{"zero deadline", "ai:\n  cuisine_timeout: 0s\n"},
		{"bad log format", "app:\n  log_format: xml\n"},
		{"sampling above one", "monitoring:\n  sampling_rate: 2\n"},
		{"request deadline below model deadline", "server:\n  request_timeout: 20s\n"},
		{"request deadline below raised cuisine deadline", "ai:\n  cuisine_timeout: 60s\n"},
		{"zero shutdown deadline", "server:\n  shutdown_timeout: 0s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLongestModelTimeout(t *testing.T) {
	cfg, err := Load(writeConfig(t, "ai:\n  ingredient_timeout: 25s\n"))
	require.NoError(t, err)

	assert.Equal(t, 25*time.Second, cfg.LongestModelTimeout())
}

func TestShutdownDeadline(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  shutdown_timeout: 12s\n"))
	require.NoError(t, err)

	assert.Equal(t, 12*time.Second, cfg.ShutdownDeadline(0))
	assert.Equal(t, 3*time.Second, cfg.ShutdownDeadline(3*time.Second))
}

func TestLoad_UnreadableFile(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestApplyLogLevel(t *testing.T) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	log := zaptest.NewLogger(t)

	applyLogLevel(level, "debug", log)
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	applyLogLevel(level, "nonsense", log)
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestWatchLogLevel_NoFile(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.WatchLogLevel(zap.NewAtomicLevel(), zaptest.NewLogger(t)))
}

func TestWatchLogLevel_AppliesFileChange(t *testing.T) {
	path := writeConfig(t, "app:\n  log_level: info\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	require.True(t, cfg.WatchLogLevel(level, zaptest.NewLogger(t)))

	require.NoError(t, os.WriteFile(path, []byte("app:\n  log_level: warn\n"), 0o600))

	assert.Eventually(t, func() bool {
		return level.Level() == zapcore.WarnLevel
	}, 5*time.Second, 50*time.Millisecond)
}
