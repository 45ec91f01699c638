// Package bootstrap wires up runtime dependencies shared by the
// server and the maintenance commands.
package bootstrap

import (
	"context"
	"fmt"

	"linkup/internal/cache"
	"linkup/internal/config"
	"linkup/internal/database"
	"linkup/internal/featureflags"
	"linkup/internal/observability"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// Tracing installs the OpenTelemetry provider when the config
	// enables it. Maintenance commands leave it off.
	Tracing bool
}

// Runtime holds the initialized shared dependencies.
type Runtime struct {
	DB    *gorm.DB
	Redis *redis.Client
	Flags *featureflags.Manager

	shutdownTracing func(context.Context) error
}

// InitRuntime connects to the database and Redis and, when requested,
// installs tracing. Redis being unreachable degrades to a nil client
// rather than failing startup.
func InitRuntime(cfg *config.Config, opts Options) (*Runtime, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	rt := &Runtime{
		DB:    db,
		Redis: cache.GetClient(),
		Flags: featureflags.NewManager(cfg.FeatureFlags),
	}

	if opts.Tracing && cfg.TracingEnabled {
		shutdown, err := observability.InitTracing(observability.TracingConfig{
			ServiceName:    "linkup-api",
			ServiceVersion: "1.0.0",
			Environment:    cfg.Env,
			Enabled:        true,
			Exporter:       cfg.TraceExporter,
			OTLPEndpoint:   cfg.OTLPEndpoint,
			SamplerRatio:   1.0,
		})
		if err != nil {
			return nil, fmt.Errorf("tracing initialization failed: %w", err)
		}
		rt.shutdownTracing = shutdown
	}

	return rt, nil
}

// Close releases the runtime's resources.
func (rt *Runtime) Close(ctx context.Context) error {
	var firstErr error

	if rt.shutdownTracing != nil {
		if err := rt.shutdownTracing(ctx); err != nil {
			firstErr = err
		}
	}
	if rt.Redis != nil {
		if err := rt.Redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if rt.DB != nil {
		if sqlDB, err := rt.DB.DB(); err == nil {
			if cerr := sqlDB.Close(); cerr != nil && firstErr == nil {
				firstErr = cerr
			}
		}
	}
	return firstErr
}
