package server

import (
	"context"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// CheckResult is the outcome of one store ping.
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthReport aggregates every configured check. Status is unhealthy as
// soon as one check fails.
type HealthReport struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

// Healthy reports whether every check passed.
func (r *HealthReport) Healthy() bool {
	return r.Status == StatusHealthy
}

type probe struct {
	name string
	ping func(context.Context) error
}

// CheckHealth pings the stores named in Observability.HealthChecks.Checks,
// each under its own timeout.
func (s *Server) CheckHealth(ctx context.Context) *HealthReport {
	hc := s.Config.Observability.HealthChecks

	var probes []probe
	for _, name := range hc.Checks {
		switch name {
		case "database":
			if s.DB != nil {
				probes = append(probes, probe{name: name, ping: s.DB.Pool.Ping})
			}
		case "redis":
			if s.Redis != nil {
				probes = append(probes, probe{name: name, ping: func(ctx context.Context) error {
					return s.Redis.Ping(ctx).Err()
				}})
			}
		}
	}

	return runChecks(ctx, s.Logger, s.LoggerService.GetApplication(), s.Config.Primary.Env, hc.Timeout, probes)
}

func runChecks(ctx context.Context, log *zerolog.Logger, app *newrelic.Application, env string, timeout time.Duration, probes []probe) *HealthReport {
	logger := log.With().Str("operation", "health_check").Logger()

	report := &HealthReport{
		Status:      StatusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: env,
		Checks:      make(map[string]CheckResult, len(probes)),
	}

	for _, p := range probes {
		checkCtx, cancel := context.WithTimeout(ctx, timeout)
		start := time.Now()
		err := p.ping(checkCtx)
		elapsed := time.Since(start)
		cancel()

		if err != nil {
			report.Status = StatusUnhealthy
			report.Checks[p.name] = CheckResult{
				Status:       StatusUnhealthy,
				ResponseTime: elapsed.String(),
				Error:        err.Error(),
			}

			logger.Error().
				Err(err).
				Str("check", p.name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			if app != nil {
				app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
					"check_type":       p.name,
					"operation":        "health_check",
					"error_type":       p.name + "_unhealthy",
					"response_time_ms": elapsed.Milliseconds(),
					"error_message":    err.Error(),
				})
			}
			continue
		}

		report.Checks[p.name] = CheckResult{
			Status:       StatusHealthy,
			ResponseTime: elapsed.String(),
		}

		logger.Debug().
			Str("check", p.name).
			Dur("response_time", elapsed).
			Msg("health check passed")
	}

	return report
}
