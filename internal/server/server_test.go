package server

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/deppfellow/recordkit/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunChecks(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	t.Run("AllHealthy", func(t *testing.T) {
		report := runChecks(context.Background(), &logger, nil, "test", time.Second, []probe{
			{name: "database", ping: func(context.Context) error { return nil }},
			{name: "redis", ping: func(context.Context) error { return nil }},
		})

		assert.True(t, report.Healthy())
		assert.Equal(t, "test", report.Environment)
		assert.Len(t, report.Checks, 2)
		assert.Equal(t, StatusHealthy, report.Checks["redis"].Status)
		assert.Empty(t, report.Checks["redis"].Error)
	})

	t.Run("OneFailure", func(t *testing.T) {
		buf.Reset()
		report := runChecks(context.Background(), &logger, nil, "test", time.Second, []probe{
			{name: "database", ping: func(context.Context) error { return errors.New("refused") }},
			{name: "redis", ping: func(context.Context) error { return nil }},
		})

		assert.False(t, report.Healthy())
		assert.Equal(t, StatusUnhealthy, report.Checks["database"].Status)
		assert.Equal(t, "refused", report.Checks["database"].Error)
		assert.Equal(t, StatusHealthy, report.Checks["redis"].Status)
		assert.Contains(t, buf.String(), "health check failed")
	})

	t.Run("TimeoutApplied", func(t *testing.T) {
		report := runChecks(context.Background(), &logger, nil, "test", 10*time.Millisecond, []probe{
			{name: "database", ping: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			}},
		})

		assert.False(t, report.Healthy())
		assert.Equal(t, context.DeadlineExceeded.Error(), report.Checks["database"].Error)
	})
}

func TestServer_CheckHealth_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := zerolog.Nop()

	cfg := &config.Config{
		Primary:       config.Primary{Env: "test"},
		Redis:         config.RedisConfig{Address: mr.Addr()},
		Observability: config.DefaultObservabilityConfig(),
	}
	cfg.Observability.HealthChecks.Checks = []string{"redis"}

	s := &Server{
		Config: cfg,
		Logger: &logger,
		Redis:  NewRedisClient(cfg.Redis, nil),
	}
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	report := s.CheckHealth(context.Background())
	assert.True(t, report.Healthy())
	assert.Contains(t, report.Checks, "redis")
	assert.NotContains(t, report.Checks, "database")

	mr.Close()
	report = s.CheckHealth(context.Background())
	assert.False(t, report.Healthy())
	assert.Equal(t, StatusUnhealthy, report.Checks["redis"].Status)
}
