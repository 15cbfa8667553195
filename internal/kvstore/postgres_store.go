package kvstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// PostgresStore keeps entries in a single kv_entries table
// (key TEXT PRIMARY KEY, value TEXT NOT NULL).
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const createKVTableSQL = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// Migrate creates the backing table if it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createKVTableSQL)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM kv_entries WHERE key = $1", key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	return err
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM kv_entries WHERE key = $1", key,
	)
	return err
}

func (s *PostgresStore) ListKeys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM kv_entries")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *PostgresStore) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM kv_entries WHERE key = ANY($1)", pq.Array(keys),
	)
	return err
}
