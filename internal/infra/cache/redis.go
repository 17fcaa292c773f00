package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	analysis "github.com/copyrightchain/ai-verifier/internal/domain/analysis"
)

const redisKeyPrefix = "ai-verifier:verdict:"

// RedisConfig describes the Redis cache connection.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
	TTL      time.Duration
}

// Redis is a VerdictCache backed by a shared Redis instance, for multi-replica
// deployments where one replica's verdict should serve another's lookup.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects and pings the Redis instance.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &Redis{client: client, ttl: cfg.TTL}, nil
}

// Get is a cache read: misses and transport errors both report "not cached".
func (r *Redis) Get(ctx context.Context, objectID string) (*analysis.Verdict, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+objectID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("redis cache read failed", "objectId", objectID, "error", err)
		}
		return nil, false
	}
	var v analysis.Verdict
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	return &v, true
}

// Set stores the verdict with the configured TTL. Write failures are logged
// and swallowed; caching is best effort.
func (r *Redis) Set(ctx context.Context, objectID string, v analysis.Verdict) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+objectID, raw, r.ttl).Err(); err != nil {
		slog.Warn("redis cache write failed", "objectId", objectID, "error", err)
	}
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error { return r.client.Close() }
