package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient holds the Redis client connection used by the catalog cache.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient initializes a Redis client from environment variables.
//
// Supported env vars:
//   - REDIS_ADDR (required; e.g. localhost:6379)
//   - REDIS_PASSWORD (optional)
func NewRedisClient() (*RedisClient, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR environment variable not set")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Printf("[cache] connected to redis addr=%s", addr)

	return &RedisClient{client: client}, nil
}

// Close closes the Redis connection.
func (c *RedisClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// GetClient returns the underlying *redis.Client instance.
func (c *RedisClient) GetClient() *redis.Client {
	return c.client
}
