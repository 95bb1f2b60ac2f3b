package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/knotapp/circle-management-backend/config"
)

var redisClient *redis.Client

// InitRedis connects the shared Redis client. Optional: when REDIS_ADDR is
// unset the service runs without Redis (rate limiting falls back to memory).
func InitRedis(cfg *config.Config) error {
	if cfg.RedisAddr == "" {
		log.Println("ℹ️ REDIS_ADDR not set, skipping Redis init")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	redisClient = client
	log.Println("✅ Redis connected")
	return nil
}

// RedisClient returns the shared client, nil when Redis is not configured.
func RedisClient() *redis.Client {
	return redisClient
}
