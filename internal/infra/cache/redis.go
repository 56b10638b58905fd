// Package cache provides the Redis connection and the Redis-backed session store.
package cache

import (
	"context"
	"log/slog"

	"bookshop/config"
	"bookshop/internal/domain/lifecycle"
	"bookshop/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for the Redis client, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the shared Redis client and ties its lifetime to the application.
func NewClient(params ClientParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg.Addr == "" {
		return nil, errors.New("redis.addr is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "ping redis")
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Redis client")

			return client.Close()
		},
	})

	return client, nil
}
