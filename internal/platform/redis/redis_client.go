// Package redis provides the Redis client bootstrap.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"expense_backend/internal/app/config"
)

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("redis connection failed", "address", cfg.Addr, "error", err)
		return nil, err
	}

	slog.Info("redis connection successful", "address", cfg.Addr)
	return rdb, nil
}
