package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/repository/cache"
)

const testKey = "test:trip-planner:kv"

func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testKey)
	return client
}

func TestKVRepository_RoundTrip(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	repo := cache.NewKVRepository(client, zap.NewNop())
	defer client.Del(ctx, testKey)

	// absent key reads as nil without error
	val, err := repo.Get(ctx, testKey)
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, repo.Set(ctx, testKey, []byte(`[{"id":"a"}]`), 0))

	exists, err := repo.Exists(ctx, testKey)
	require.NoError(t, err)
	assert.True(t, exists)

	val, err = repo.Get(ctx, testKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(val))

	require.NoError(t, repo.Delete(ctx, testKey))
	exists, err = repo.Exists(ctx, testKey)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestKVRepository_TTL(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	repo := cache.NewKVRepository(client, zap.NewNop())
	defer client.Del(ctx, testKey)

	require.NoError(t, repo.Set(ctx, testKey, []byte("x"), time.Minute))

	ttl, err := client.TTL(ctx, testKey).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestKVRepository_ClosedClient(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	require.NoError(t, client.Close())

	repo := cache.NewKVRepository(client, zap.NewNop())

	_, err := repo.Get(context.Background(), testKey)
	assert.Error(t, err)
	assert.Error(t, repo.Set(context.Background(), testKey, []byte("x"), 0))
}
