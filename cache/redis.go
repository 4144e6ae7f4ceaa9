package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "dansk:"

// RedisCache stores translations in Redis, so several instances of the tool
// can share one cache and one suggestion budget. All keys carry a prefix to
// keep them apart from other users of the same database.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// RedisConfig holds connection settings for NewRedisCache.
type RedisConfig struct {
	URL       string // connection URL, e.g. "redis://localhost:6379"
	TTL       int    // entry lifetime in seconds, 0 keeps entries forever
	KeyPrefix string // prepended to every key, defaults to "dansk:"
}

// NewRedisCache connects to Redis using cfg and verifies the connection
// with a ping before returning.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisCacheFromClient(client, cfg.TTL, cfg.KeyPrefix), nil
}

// NewRedisCacheFromClient wraps an existing client. The caller keeps
// ownership of the client's lifecycle unless it calls Close here.
func NewRedisCacheFromClient(client *redis.Client, ttlSeconds int, keyPrefix string) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}
	return &RedisCache{client: client, ttl: ttl, prefix: keyPrefix}
}

// Get returns the translation stored under key. Transport errors are
// reported as a miss so a flaky Redis degrades to recomputation instead
// of failing the request.
func (c *RedisCache) Get(key string) (string, bool) {
	val, err := c.client.Get(context.Background(), c.prefix+key).Result()
	if err != nil {
		// redis.Nil and transport errors alike degrade to a miss.
		return "", false
	}
	return val, true
}

// Set stores a translation under key with the configured TTL.
func (c *RedisCache) Set(key string, value string) error {
	return c.client.Set(context.Background(), c.prefix+key, value, c.ttl).Err()
}

// Ping checks that Redis is reachable.
func (c *RedisCache) Ping() error {
	return c.client.Ping(context.Background()).Err()
}

// Close releases the underlying client connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ TranslationCache = (*RedisCache)(nil)
