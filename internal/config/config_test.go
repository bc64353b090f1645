package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("RECORDKIT_PRIMARY__ENV", "local")
	t.Setenv("RECORDKIT_DATABASE__HOST", "localhost")
	t.Setenv("RECORDKIT_DATABASE__PORT", "5432")
	t.Setenv("RECORDKIT_DATABASE__USER", "user")
	t.Setenv("RECORDKIT_DATABASE__PASSWORD", "pass")
	t.Setenv("RECORDKIT_DATABASE__NAME", "web")
	t.Setenv("RECORDKIT_DATABASE__SSL_MODE", "disable")
	t.Setenv("RECORDKIT_REDIS__ADDRESS", "localhost:6379")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "database.host", envKey("RECORDKIT_DATABASE__HOST"))
	assert.Equal(t, "database.ssl_mode", envKey("RECORDKIT_DATABASE__SSL_MODE"))
	assert.Equal(t, "observability.logging.slow_query_threshold",
		envKey("RECORDKIT_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD"))
}

func TestLoadConfig(t *testing.T) {
	t.Run("RequiredValues", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("RECORDKIT_DATABASE__CONN_MAX_LIFETIME", "30m")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "local", cfg.Primary.Env)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	})

	t.Run("ObservabilityDefaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.NotNil(t, cfg.Observability)

		assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
		assert.Equal(t, "local", cfg.Observability.Environment)
		assert.Equal(t, "json", cfg.Observability.Logging.Format)
		assert.False(t, cfg.Observability.NewRelic.Enabled())
	})

	t.Run("PartialObservabilityOverride", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("RECORDKIT_OBSERVABILITY__LOGGING__FORMAT", "console")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "console", cfg.Observability.Logging.Format)
		assert.Equal(t, "info", cfg.Observability.Logging.Level)
		assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	})

	t.Run("MissingDatabaseHost", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("RECORDKIT_DATABASE__HOST", "")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config validation failed")
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("RECORDKIT_OBSERVABILITY__LOGGING__LEVEL", "verbose")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging level")
	})
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.True(t, cfg.IsProduction())

	cfg.Environment = "local"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestObservabilityConfig_Validate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		assert.NoError(t, DefaultObservabilityConfig().Validate())
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.Format = "xml"
		assert.ErrorContains(t, cfg.Validate(), "invalid logging format")
	})

	t.Run("NegativeThreshold", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.SlowQueryThreshold = -time.Second
		assert.ErrorContains(t, cfg.Validate(), "slow_query_threshold")
	})

	t.Run("UnknownHealthCheck", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.HealthChecks.Checks = []string{"database", "kafka"}
		assert.ErrorContains(t, cfg.Validate(), "unknown health check")
	})
}
