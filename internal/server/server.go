// Package server defines the Server container that owns the app's shared
// dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//   - redis client
//
// Repositories borrow the pool and client from here and never close them.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/recordkit/internal/config"
	"github.com/deppfellow/recordkit/internal/database"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/recordkit/internal/logger"
)

// RedisPingTimeout bounds the startup ping to Redis.
const RedisPingTimeout = 5 * time.Second

// Server is the application container that holds shared resources.
type Server struct {
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// LoggerService holds the New Relic application, if any.
	LoggerService *loggerPkg.LoggerService

	DB    *database.Database
	Redis *redis.Client
}

// NewRedisClient builds the go-redis client for cfg and adds the New Relic
// hook when an agent is running. The client connects lazily.
func NewRedisClient(cfg config.RedisConfig, loggerService *loggerPkg.LoggerService) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if loggerService != nil && loggerService.GetApplication() != nil {
		client.AddHook(nrredis.NewHook(client.Options()))
	}
	return client
}

// New opens the PostgreSQL pool and the Redis client and pings both.
// Both stores back repository operations, so either being unreachable
// fails startup.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(ctx, cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient := NewRedisClient(cfg.Redis, loggerService)

	pingCtx, cancel := context.WithTimeout(ctx, RedisPingTimeout)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		_ = redisClient.Close()
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info().Str("address", cfg.Redis.Address).Msg("connected to redis")

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
		Redis:         redisClient,
	}, nil
}

// Close releases the Redis client and the database pool, in that order.
func (s *Server) Close() error {
	var firstErr error

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			firstErr = fmt.Errorf("failed to close redis client: %w", err)
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return firstErr
}
