package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		status TEXT NOT NULL DEFAULT 'Lead',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		source_lead_id UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// One client per lead. The conversion flow relies on this index:
	// a concurrent second conversion fails with unique_violation.
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_clients_source_lead_id
		ON clients (source_lead_id) WHERE source_lead_id IS NOT NULL`,
}

// EnsureSchema creates the tables if they are missing, retrying while the
// database finishes starting up alongside the API.
func EnsureSchema(ctx context.Context, db *sql.DB, retries int, delay time.Duration) error {
	var err error
	for attempt := 1; attempt <= retries; attempt++ {
		if err = applySchema(ctx, db); err == nil {
			return nil
		}
		log.Printf("database not ready yet (attempt %d/%d): %v", attempt, retries, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("database was not ready after %d attempts: %w", retries, err)
}

func applySchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
