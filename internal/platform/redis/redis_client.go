package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"feedback_backend/internal/config"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
// Sessions live in Redis, so unlike an optional cache this connection is
// required for the server to start.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.RedisAddr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.RedisAddr)
	return rdb, nil
}
