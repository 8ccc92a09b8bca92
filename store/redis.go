package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed KV backend.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore connects to Redis using a DSN such as
// "redis://localhost:6379/0".
func NewRedisStore(dsn string) (*RedisStore, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parsing redis DSN")
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

// NewRedisStoreWithClient wraps an existing client; tests use this with
// miniredis.
func NewRedisStoreWithClient(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return value, errors.Wrap(err, "reading redis key")
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.Wrap(r.client.Set(ctx, key, value, 0).Err(), "writing redis key")
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return errors.Wrap(r.client.Del(ctx, key).Err(), "deleting redis key")
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
