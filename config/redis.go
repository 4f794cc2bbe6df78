package config

import (
	"context"
	"time"

	"burokrat-site/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to REDIS_URL. It returns nil when Redis is not configured or
// unreachable; callers treat a nil client as "feature disabled".
func InitRedis(url string) *redis.Client {
	log := logger.Get().WithComponent("redis")

	if url == "" {
		log.Info("REDIS_URL not configured, contact rate limiting disabled")
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("Failed to parse REDIS_URL, contact rate limiting disabled", logger.Err(err))
		return nil
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Failed to connect to Redis, contact rate limiting disabled", logger.Err(err))
		client.Close()
		return nil
	}

	log.Info("Connected to Redis")
	return client
}
