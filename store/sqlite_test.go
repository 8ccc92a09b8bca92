package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLStoreGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	kv := NewSQLStore(db)

	mock.ExpectQuery("SELECT value FROM kv WHERE key =").
		WithArgs("state").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"a":1}`)))

	value, err := kv.Get(context.Background(), "state")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), value)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreGetMissingKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	kv := NewSQLStore(db)

	mock.ExpectQuery("SELECT value FROM kv WHERE key =").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	value, err := kv.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, value)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreSet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	kv := NewSQLStore(db)

	mock.ExpectExec("INSERT INTO kv").
		WithArgs("state", []byte(`{"a":1}`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, kv.Set(context.Background(), "state", []byte(`{"a":1}`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	kv := NewSQLStore(db)

	mock.ExpectExec("DELETE FROM kv WHERE key =").
		WithArgs("state").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kv.Delete(context.Background(), "state"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
