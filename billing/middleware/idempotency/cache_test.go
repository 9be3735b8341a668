package idempotency

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice.app/billing/model"
)

func TestRedisCache_KeyFor(t *testing.T) {
	cache := NewRedisCache(nil, "backoffice:", 0)

	assert.Equal(t, DefaultTTL, cache.ttl)
	assert.Equal(t,
		"backoffice:idempotency/v1/bills/7/payments/abc",
		cache.keyFor(model.IdempotencyKey{Resource: "/v1/bills/7/payments", Key: "abc"}),
	)
}

// Runs against a real server when BACKOFFICE_TEST_REDIS_ADDR is set.
func TestRedisCache_Integration(t *testing.T) {
	addr := os.Getenv("BACKOFFICE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("BACKOFFICE_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(ctx).Err())

	cache := NewRedisCache(client, fmt.Sprintf("test-%d:", time.Now().UnixNano()), time.Minute)
	key := model.IdempotencyKey{Resource: "/v1/bills/1/adjustments", Key: "k1"}

	_, err := cache.Get(ctx, key)
	assert.ErrorIs(t, err, ErrCacheMiss)

	ok, err := cache.SetIfAbsent(ctx, key, model.IdempotencyCacheEntry{Status: statusProcessing, RequestBodyHash: "h"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.SetIfAbsent(ctx, key, model.IdempotencyCacheEntry{Status: statusProcessing})
	require.NoError(t, err)
	assert.False(t, ok, "second reservation must lose")

	require.NoError(t, cache.Set(ctx, key, model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: "h",
		StatusCode:      201,
		Response:        json.RawMessage(`{"status":"success"}`),
	}))

	entry, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, statusCompleted, entry.Status)
	assert.Equal(t, 201, entry.StatusCode)
	assert.JSONEq(t, `{"status":"success"}`, string(entry.Response))

	ttl, err := client.TTL(ctx, cache.keyFor(key)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, cache.Delete(ctx, key))
	_, err = cache.Get(ctx, key)
	assert.ErrorIs(t, err, ErrCacheMiss)
}
