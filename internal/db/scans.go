package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrScanNotFound is returned when no scan exists for the given ID.
var ErrScanNotFound = errors.New("scan not found")

// SaveScan inserts a completed scan and returns its record.
func (db *DB) SaveScan(ctx context.Context, record ScanRecord) (ScanRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO scans (id, requested_url, final_url, http_status, score, bucket,
		                    signals, report, anchor, enrichment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at`,
		record.ID, record.RequestedURL, record.FinalURL, record.HTTPStatus,
		record.Score, record.Bucket, record.Signals, record.Report,
		record.Anchor, record.Enrichment,
	).Scan(&record.CreatedAt)
	if err != nil {
		return ScanRecord{}, fmt.Errorf("failed to save scan: %w", err)
	}

	return record, nil
}

// GetScan retrieves one scan by ID.
func (db *DB) GetScan(ctx context.Context, id uuid.UUID) (*ScanRecord, error) {
	var record ScanRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, requested_url, final_url, http_status, score, bucket,
		        signals, report, anchor, enrichment, created_at
		 FROM scans WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.RequestedURL, &record.FinalURL, &record.HTTPStatus,
		&record.Score, &record.Bucket, &record.Signals, &record.Report,
		&record.Anchor, &record.Enrichment, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrScanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}

	return &record, nil
}

// ListScans returns scan summaries, newest first.
func (db *DB) ListScans(ctx context.Context, limit int) ([]ScanSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, requested_url, final_url, score, bucket, created_at
		 FROM scans
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var summaries []ScanSummary
	for rows.Next() {
		var s ScanSummary
		if err := rows.Scan(&s.ID, &s.RequestedURL, &s.FinalURL, &s.Score, &s.Bucket, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scan rows: %w", err)
	}

	return summaries, nil
}
