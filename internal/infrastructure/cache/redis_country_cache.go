package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apppartner "github.com/stockroom/backend/internal/application/partner"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/infrastructure/config"
)

const defaultCountryCacheKey = "countries:all"

// RedisCountryCache caches the imported country list in Redis so that
// repeated lookups skip the database. Suitable for distributed deployments
// where multiple instances share the cache.
type RedisCountryCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCountryCache connects to Redis and returns a country cache.
func NewRedisCountryCache(cfg config.RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisCountryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCountryCacheWithClient(client, defaultCountryCacheKey, ttl, logger), nil
}

// NewRedisCountryCacheWithClient creates a cache over an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisCountryCacheWithClient(client *redis.Client, key string, ttl time.Duration, logger *zap.Logger) *RedisCountryCache {
	if key == "" {
		key = defaultCountryCacheKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCountryCache{
		client: client,
		key:    key,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached country list. Cache misses and transport errors
// both report a miss; the caller falls back to the database.
func (c *RedisCountryCache) Get(ctx context.Context) ([]partner.Country, bool) {
	payload, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("country cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var countries []partner.Country
	if err := json.Unmarshal(payload, &countries); err != nil {
		c.logger.Warn("country cache payload corrupt, dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}

	return countries, true
}

// Set stores the country list with the configured TTL. Failures are logged
// and swallowed; the cache is best-effort.
func (c *RedisCountryCache) Set(ctx context.Context, countries []partner.Country) {
	payload, err := json.Marshal(countries)
	if err != nil {
		c.logger.Warn("country cache encode failed", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("country cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached country list.
func (c *RedisCountryCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		c.logger.Warn("country cache invalidation failed", zap.Error(err))
	}
}

// Close closes the underlying Redis client.
func (c *RedisCountryCache) Close() error {
	return c.client.Close()
}

var _ apppartner.CountryCache = (*RedisCountryCache)(nil)
