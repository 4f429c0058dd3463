package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
)

// SaveAnalysis inserts rec and sets its CreatedAt.
func (db *DB) SaveAnalysis(ctx context.Context, rec *AnalysisRecord) error {
	body, err := json.Marshal(rec.Analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (id, client_id, score, job_excerpt, excluded_keywords, dismissed_issues, analysis)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		rec.ID, rec.ClientID, rec.Score, rec.JobExcerpt, nonNil(rec.ExcludedKeywords), nonNil(rec.DismissedIssues), body,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysis returns the record with id, or nil if there is none.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var (
		rec  AnalysisRecord
		body []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, client_id, score, job_excerpt, excluded_keywords, dismissed_issues, analysis, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.ClientID, &rec.Score, &rec.JobExcerpt, &rec.ExcludedKeywords, &rec.DismissedIssues, &body, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var analysis types.ResumeAnalysis
	if err := json.Unmarshal(body, &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis %s: %w", id, err)
	}
	rec.Analysis = &analysis
	return &rec, nil
}

// ListAnalyses returns the newest limit summaries, optionally for one client.
func (db *DB) ListAnalyses(ctx context.Context, clientID string, limit int) ([]AnalysisSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, client_id, score, job_excerpt, created_at
		 FROM analyses
		 WHERE $1 = '' OR client_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		clientID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	summaries := []AnalysisSummary{}
	for rows.Next() {
		var s AnalysisSummary
		if err := rows.Scan(&s.ID, &s.ClientID, &s.Score, &s.JobExcerpt, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return summaries, nil
}

// DeleteAnalysis removes a record. Deleting a missing id is not an error.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	return nil
}
