package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vadibank/vadi/config"
)

// KV is the backing-store contract the engine persists through: a single
// serialized blob under one fixed key. Get returns (nil, nil) when the key is
// absent.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NewFromConfig builds the KV backend selected by configuration.
func NewFromConfig(cnf *config.Configuration) (KV, error) {
	switch cnf.Storage.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendSQLite:
		return NewSQLiteStore(cnf.Storage.SQLitePath)
	case config.BackendRedis:
		return NewRedisStore(cnf.Storage.RedisDSN)
	default:
		return nil, errors.New("unknown storage backend: " + cnf.Storage.Backend)
	}
}

// ignoreErrNoRows normalizes sql.ErrNoRows to the absent-key contract.
func ignoreErrNoRows(value []byte, err error) ([]byte, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return value, err
}
