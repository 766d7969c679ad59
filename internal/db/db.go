// Package db provides PostgreSQL storage for the ingestion archive.
//
// The archive is append-only: every pipeline invocation records a run and,
// on success, the record it produced. Nothing here feeds back into
// extraction or tagging. The table layout is in schema.sql.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/foa-pipeline/internal/types"
)

// Run statuses stored in ingestion_runs.status.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
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

// CreateRun records a new ingestion run and returns its ID
func (db *DB) CreateRun(ctx context.Context, sourceURL string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO ingestion_runs (source_url, status)
		 VALUES ($1, 'running')
		 RETURNING id`,
		sourceURL,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks an ingestion run as finished
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE ingestion_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveRecord stores the record produced by an ingestion run. A few scalar
// columns are duplicated out of the JSON document so the archive can be
// queried without unpacking it.
func (db *DB) SaveRecord(ctx context.Context, runID uuid.UUID, rec *types.Record) error {
	jsonBytes, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO foa_records (run_id, foa_id, title, agency, source_url, record)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (run_id) DO UPDATE SET foa_id = $2, title = $3, agency = $4, source_url = $5, record = $6, created_at = NOW()`,
		runID, rec.FOAID, rec.Title, rec.Agency, rec.SourceURL, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", rec.FOAID, err)
	}
	return nil
}

// GetRecord retrieves the record stored for a run, or nil if none was saved
func (db *DB) GetRecord(ctx context.Context, runID uuid.UUID) (*types.Record, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT record FROM foa_records WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var rec types.Record
	if err := json.Unmarshal(content, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &rec, nil
}

// ListRuns returns the most recent ingestion runs, newest first
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, source_url, status, created_at, completed_at
		 FROM ingestion_runs
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.SourceURL, &r.Status, &r.CreatedAt, &r.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
