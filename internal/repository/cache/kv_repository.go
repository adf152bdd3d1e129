package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain/repository"
)

type kvRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewKVRepository - durable KV store for the itinerary and the local ledger
func NewKVRepository(client *redis.Client, logger *zap.Logger) repository.KVRepository {
	return &kvRepository{
		client: client,
		logger: logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to read key", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("kv get error: %w", err)
	}
	return val, nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to write key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("kv set error: %w", err)
	}

	r.logger.Debug("Key written",
		zap.String("key", key),
		zap.Int("bytes", len(value)),
		zap.Duration("ttl", ttl))
	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("kv delete error: %w", err)
	}
	return nil
}

func (r *kvRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check key", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("kv exists error: %w", err)
	}
	return n > 0, nil
}
