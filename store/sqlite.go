package store

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const createKVTable = `CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLStore persists blobs in a single key/value table over database/sql.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore wraps an existing database handle. The kv table must already
// exist; tests use this with a mocked handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// NewSQLiteStore opens (or creates) a SQLite database at path and ensures the
// kv table exists.
func NewSQLiteStore(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening sqlite database")
	}
	if _, err := db.Exec(createKVTable); err != nil {
		return nil, errors.Wrap(err, "creating kv table")
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	value, err = ignoreErrNoRows(value, err)
	return value, errors.Wrap(err, "reading kv entry")
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return errors.Wrap(err, "writing kv entry")
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	return errors.Wrap(err, "deleting kv entry")
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
