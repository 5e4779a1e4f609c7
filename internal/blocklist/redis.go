package blocklist

import (
	"context"
	"fmt"
	"time"

	"github.com/MihaiM21/47Gear-sub000/internal/logger"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "blocklist:"

// Redis-backed Store for deployments running more than one instance;
// Redis key expiry handles the scheduled unblock
type RedisStore struct {
	client *redis.Client
}

// connects to Redis and returns a shared blocklist store
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("blocklist connected to redis")

	return &RedisStore{client: client}, nil
}

// puts an identifier under temporary denial
func (s *RedisStore) Block(ctx context.Context, identifier string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultBlockTTL
	}

	if err := s.client.Set(ctx, redisKeyPrefix+identifier, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to block identifier in redis: %w", err)
	}

	logger.Warn("client blocked", "identifier", identifier, "ttl", ttl)

	return nil
}

// reports whether an identifier is currently denied
func (s *RedisStore) IsBlocked(ctx context.Context, identifier string) (bool, error) {
	n, err := s.client.Exists(ctx, redisKeyPrefix+identifier).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check blocklist in redis: %w", err)
	}

	return n > 0, nil
}

// lifts a denial early
func (s *RedisStore) Unblock(ctx context.Context, identifier string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+identifier).Err(); err != nil {
		return fmt.Errorf("failed to unblock identifier in redis: %w", err)
	}

	return nil
}

// closes the underlying Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
