package persist

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores values in Redis. Backend errors are swallowed: a failed Get
// reads as absent and a failed Set is dropped, keeping locale persistence
// best-effort.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisOption configures a Redis storage.
type RedisOption func(*Redis)

// WithRedisTTL sets an expiration on stored values. Zero (the default)
// stores them without expiration.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// WithRedisPrefix namespaces stored keys, e.g. "locale:".
func WithRedisPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// NewRedis creates a Redis-backed storage on an existing client.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{client: client}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the stored value for key.
func (r *Redis) Get(key string) (string, bool) {
	value, err := r.client.Get(context.Background(), r.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores value under key.
func (r *Redis) Set(key, value string) {
	_ = r.client.Set(context.Background(), r.prefix+key, value, r.ttl).Err()
}
