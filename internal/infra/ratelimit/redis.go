package ratelimit

import (
	"context"
	"log/slog"

	"booking/config"
	"booking/internal/domain/lifecycle"
	"booking/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RedisParams defines the dependencies of the Redis client provider
type RedisParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the client backing the request counters and ties it to the fx lifecycle.
func NewRedisClient(params RedisParams) redis.UniversalClient {
	cfg := params.Config.Redis
	if cfg == nil {
		cfg = &config.RedisConfig{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if !params.Config.RateLimit.Enabled {
				return nil
			}

			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
