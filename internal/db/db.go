// Package db provides PostgreSQL persistence for screening results and candidates.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Init creates the screenings and candidates tables if they do not exist.
func (db *DB) Init(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS screenings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			resume_filename TEXT NOT NULL,
			job_filename TEXT NOT NULL,
			final_score DOUBLE PRECISION NOT NULL,
			similarity_score DOUBLE PRECISION,
			skill_match_score DOUBLE PRECISION,
			rating TEXT,
			feedback TEXT,
			skill_details JSONB,
			resume_text TEXT,
			job_text TEXT
		)`)
	if err != nil {
		return fmt.Errorf("failed to create screenings table: %w", err)
	}

	_, err = db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS candidates (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			name TEXT,
			email TEXT,
			phone TEXT,
			resume_text TEXT,
			resume_filename TEXT
		)`)
	if err != nil {
		return fmt.Errorf("failed to create candidates table: %w", err)
	}

	return nil
}
