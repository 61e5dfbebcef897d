package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"lumina-shop/internal/domain"
)

// RedisStorage persists the cart snapshot in Redis under StorageKey, for
// deployments where the cart should survive the process but no local disk is
// available.
type RedisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client, key: StorageKey}
}

func (r *RedisStorage) Load(ctx context.Context) ([]domain.CartEntry, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart key: %w", err)
	}
	return decodeSnapshot(data)
}

func (r *RedisStorage) Save(ctx context.Context, entries []domain.CartEntry) error {
	data, err := encodeSnapshot(entries)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write cart key: %w", err)
	}
	return nil
}
