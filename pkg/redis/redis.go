package redis

import (
	"context"
	"fmt"
	"riftstats/pkg/config"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the go-redis client with small result helpers.
type RedisClient struct {
	*redis.Client
}

// NewClient creates the redis client from the configuration.
// A failed ping is returned as a error so callers can degrade to cacheless mode.
func NewClient(ctx context.Context, cfg config.RedisConfiguration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host + ":" + cfg.Port,
		Password:     cfg.Password,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     100,
		MinIdleConns: 10,
		PoolTimeout:  30 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("couldn't ping redis: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// Close the client connection.
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

// Get wrapper to return the Result directly.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// Set wrapper to already return the .Err()
func (r *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// Delete removes the given keys.
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}

// GetKeysByPrefix scans for every key under a given prefix.
func (r *RedisClient) GetKeysByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	iter := r.Client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// DeleteByPrefix removes every key under a given prefix.
// Used when a player forces a data refresh.
func (r *RedisClient) DeleteByPrefix(ctx context.Context, prefix string) error {
	keys, err := r.GetKeysByPrefix(ctx, prefix)
	if err != nil {
		return err
	}
	return r.Delete(ctx, keys...)
}
