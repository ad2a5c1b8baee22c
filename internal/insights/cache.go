package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/shelfmark/internal/platform/constants"
)

// Cache stores computed insights for a short time.
//
// Generation returns a counter that Purge advances. Callers embed it in their
// keys so results computed before a purge are never served after it.
type Cache interface {
	Generation(context context.Context) (int64, error)
	Get(context context.Context, key string) (*CollectionInsights, bool, error)
	Set(context context.Context, key string, value *CollectionInsights) error
	Purge(context context.Context) error
}

// RedisCache implements [Cache] on top of Redis with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed insights cache.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (cache *RedisCache) Generation(context context.Context) (int64, error) {
	generation, err := cache.client.Get(context, constants.RedisKeyInsightsGeneration).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_insights_generation_failed: %w", err)
	}
	return generation, nil
}

func (cache *RedisCache) Get(context context.Context, key string) (*CollectionInsights, bool, error) {
	payload, err := cache.client.Get(context, constants.RedisPrefixInsights+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_insights_get_failed: %w", err)
	}

	var insights CollectionInsights
	if err := json.Unmarshal(payload, &insights); err != nil {
		return nil, false, fmt.Errorf("redis_insights_decode_failed: %w", err)
	}
	return &insights, true, nil
}

func (cache *RedisCache) Set(context context.Context, key string, value *CollectionInsights) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis_insights_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, constants.RedisPrefixInsights+key, payload, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_insights_set_failed: %w", err)
	}
	return nil
}

// Purge advances the generation, then drops every cached insights entry.
func (cache *RedisCache) Purge(context context.Context) error {
	if err := cache.client.Incr(context, constants.RedisKeyInsightsGeneration).Err(); err != nil {
		return fmt.Errorf("redis_insights_generation_incr_failed: %w", err)
	}

	iterator := cache.client.Scan(context, 0, constants.RedisPrefixInsights+"*", 100).Iterator()

	var keys []string
	for iterator.Next(context) {
		keys = append(keys, iterator.Val())
	}
	if err := iterator.Err(); err != nil {
		return fmt.Errorf("redis_insights_scan_failed: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := cache.client.Del(context, keys...).Err(); err != nil {
		return fmt.Errorf("redis_insights_purge_failed: %w", err)
	}
	return nil
}
