package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_store (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// SQLiteKVClient stores keys in a single SQLite table.
type SQLiteKVClient struct {
	db  *sql.DB
	ctx context.Context
}

// OpenSQLiteKVClient creates or opens a SQLite database at the given path.
func OpenSQLiteKVClient(ctx context.Context, path string) (*SQLiteKVClient, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	return openSQLite(ctx, path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
}

// OpenMemorySQLiteKVClient creates an in-memory SQLite database (useful for testing).
func OpenMemorySQLiteKVClient(ctx context.Context) (*SQLiteKVClient, error) {
	return openSQLite(ctx, ":memory:")
}

func openSQLite(ctx context.Context, dsn string) (*SQLiteKVClient, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection keeps ":memory:" databases shared and serialises writers.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, sqliteSchema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return &SQLiteKVClient{db: sqlDB, ctx: ctx}, nil
}

func (s *SQLiteKVClient) Set(key, value string) error {
	_, err := s.db.ExecContext(s.ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKVClient) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(s.ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteKVClient) Del(key string) error {
	if _, err := s.db.ExecContext(s.ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKVClient) Ping() error {
	return s.db.PingContext(s.ctx)
}

func (s *SQLiteKVClient) Close() error {
	return s.db.Close()
}
