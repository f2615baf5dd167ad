// Package db provides PostgreSQL storage for completed scans.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the scans table if it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS scans (
			id            UUID PRIMARY KEY,
			requested_url TEXT NOT NULL,
			final_url     TEXT NOT NULL DEFAULT '',
			http_status   INTEGER,
			score         INTEGER,
			bucket        TEXT NOT NULL DEFAULT '',
			signals       JSONB NOT NULL,
			report        JSONB NOT NULL,
			anchor        JSONB NOT NULL,
			enrichment    JSONB,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure scans schema: %w", err)
	}
	return nil
}
