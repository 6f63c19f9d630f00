// Package postgres persists the journal's key-value state in a PostgreSQL
// table, for deployments where the data directory does not survive restarts.
package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	apperrors "socratic/internal/errors"
)

// Store implements the key-value store on a single jsonb table.
type Store struct {
	db *sqlx.DB
}

// NewStore connects to the given DSN and ensures the backing table exists.
func NewStore(dsn string) (*Store, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS journal_kv (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure journal_kv schema: %w", err)
	}
	return nil
}

// Get retrieves the value for key.
func (s *Store) Get(key string) (json.RawMessage, bool, error) {
	var value []byte
	err := s.db.Get(&value, `SELECT value FROM journal_kv WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.StoreError("get", err)
	}
	return json.RawMessage(value), true, nil
}

// Set upserts the value for key.
func (s *Store) Set(key string, value json.RawMessage) error {
	_, err := s.db.Exec(`
		INSERT INTO journal_kv (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, []byte(value))
	if err != nil {
		return apperrors.StoreError("set", err)
	}
	return nil
}

// Delete removes the row for key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM journal_kv WHERE key = $1`, key)
	if err != nil {
		return apperrors.StoreError("delete", err)
	}
	return nil
}

// Close releases the database connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
