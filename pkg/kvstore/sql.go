package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"todopane/pkg/utils"
)

const tableName = "kv_entries"

// SQLStore keeps values in a single SQL table, one row per key
type SQLStore struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

// NewSQLStore wraps an open connection. The schema is not touched.
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(placeholders(db.DriverName())),
	}
}

// EnsureSchema creates the key-value table if it doesn't exist
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_entries (
			store_key TEXT PRIMARY KEY,
			store_value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	return err
}

// Get returns the value stored under key
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := s.sb.
		Select("store_value").
		From(tableName).
		Where(sq.Eq{"store_key": key}).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var value string
	if err := s.db.GetContext(ctx, &value, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	utils.Log("Read %d bytes from key %s", len(value), key)
	return []byte(value), true, nil
}

// Put overwrites the value stored under key
func (s *SQLStore) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := s.sb.
		Insert(tableName).
		Columns("store_key", "store_value", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		Suffix("ON CONFLICT (store_key) DO UPDATE SET store_value = excluded.store_value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	utils.Log("Wrote %d bytes to key %s", len(value), key)
	return nil
}

// Close closes the underlying connection
func (s *SQLStore) Close() error {
	return s.db.Close()
}
