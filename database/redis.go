package database

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient initializes and returns a Redis client, or nil if the URL
// is empty or the server is unreachable. Caching is optional; callers must
// tolerate a nil client.
func NewRedisClient(redisURL string) *redis.Client {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		zap.L().Warn("Invalid Redis URL, caching disabled", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		zap.L().Warn("Failed to connect to Redis, caching disabled", zap.Error(err))
		return nil
	}

	zap.L().Info("Connected to Redis")
	return client
}
