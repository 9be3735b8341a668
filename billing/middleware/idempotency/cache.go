package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"backoffice.app/billing/model"
)

// DefaultTTL is how long a completed response stays replayable.
const DefaultTTL = 24 * time.Hour

var ErrCacheMiss = errors.New("idempotency: cache miss")

// Cache stores idempotency entries. SetIfAbsent must be atomic: exactly one of
// several concurrent callers for the same key gets true.
type Cache interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error)
	SetIfAbsent(ctx context.Context, key model.IdempotencyKey, entry model.IdempotencyCacheEntry) (bool, error)
	Set(ctx context.Context, key model.IdempotencyKey, entry model.IdempotencyCacheEntry) error
	Delete(ctx context.Context, key model.IdempotencyKey) error
}

// RedisCache keeps entries as JSON strings under
// "<prefix>idempotency/<resource>/<key>".
type RedisCache struct {
	client goredis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client goredis.Cmdable, prefix string, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error) {
	var entry model.IdempotencyCacheEntry

	data, err := c.client.Get(ctx, c.keyFor(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return entry, ErrCacheMiss
		}
		return entry, fmt.Errorf("get idempotency entry: %w", err)
	}

	if err := json.Unmarshal(data, &entry); err != nil {
		return entry, fmt.Errorf("decode idempotency entry: %w", err)
	}
	return entry, nil
}

func (c *RedisCache) SetIfAbsent(ctx context.Context, key model.IdempotencyKey, entry model.IdempotencyCacheEntry) (bool, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return false, fmt.Errorf("encode idempotency entry: %w", err)
	}

	ok, err := c.client.SetNX(ctx, c.keyFor(key), data, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve idempotency entry: %w", err)
	}
	return ok, nil
}

func (c *RedisCache) Set(ctx context.Context, key model.IdempotencyKey, entry model.IdempotencyCacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode idempotency entry: %w", err)
	}

	if err := c.client.Set(ctx, c.keyFor(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set idempotency entry: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key model.IdempotencyKey) error {
	if err := c.client.Del(ctx, c.keyFor(key)).Err(); err != nil {
		return fmt.Errorf("delete idempotency entry: %w", err)
	}
	return nil
}

func (c *RedisCache) keyFor(key model.IdempotencyKey) string {
	return c.prefix + key.Path()
}
