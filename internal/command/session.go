package command

import (
	"context"

	"github.com/deppfellow/recordkit/internal/config"
	"github.com/deppfellow/recordkit/internal/logger"
	"github.com/deppfellow/recordkit/internal/repository"
	"github.com/deppfellow/recordkit/internal/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// environment is the configuration and logging shared by every command.
type environment struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *logger.LoggerService
}

func (e *environment) Close() {
	e.LoggerService.Shutdown()
}

// session is an environment plus open stores and the repositories over them.
type session struct {
	Logger        *zerolog.Logger
	LoggerService *logger.LoggerService
	Repos         *repository.Repositories
	Health        func(context.Context) *server.HealthReport
	close         func()
}

func (r *session) Close() {
	if r.close != nil {
		r.close()
	}
}

// loadEnvironment and openSession are variables so tests can swap in
// stores backed by mocks.
var (
	loadEnvironment = defaultLoadEnvironment
	openSession     = defaultOpenSession
)

func defaultLoadEnvironment() (*environment, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	loggerService, nrErr := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	if nrErr != nil {
		log.Warn().Err(nrErr).Msg("continuing without New Relic")
	}

	return &environment{
		Config:        cfg,
		Logger:        &log,
		LoggerService: loggerService,
	}, nil
}

func defaultOpenSession(ctx context.Context) (*session, error) {
	env, err := loadEnvironment()
	if err != nil {
		return nil, err
	}

	srv, err := server.New(ctx, env.Config, env.Logger, env.LoggerService)
	if err != nil {
		env.Close()
		return nil, errors.Wrap(err, "could not open stores")
	}

	return &session{
		Logger:        env.Logger,
		LoggerService: env.LoggerService,
		Repos:         repository.NewRepositories(srv),
		Health:        srv.CheckHealth,
		close: func() {
			if err := srv.Close(); err != nil {
				env.Logger.Error().Err(err).Msg("closing stores")
			}
			env.Close()
		},
	}, nil
}
