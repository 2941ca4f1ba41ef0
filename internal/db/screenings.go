package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/types"
)

// SaveScreening stores a scoring result and returns the new screening ID.
func (db *DB) SaveScreening(
	ctx context.Context,
	result *types.ScoringResult,
	resumeFilename, jobFilename, resumeText, jobText string,
) (uuid.UUID, error) {
	detailsJSON, err := json.Marshal(result.SkillDetails)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal skill details: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO screenings (resume_filename, job_filename, final_score,
		                         similarity_score, skill_match_score, rating,
		                         feedback, skill_details, resume_text, job_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		resumeFilename, jobFilename, result.FinalScore,
		result.SimilarityScore, result.SkillMatchScore, result.Rating,
		result.Feedback, detailsJSON, resumeText, jobText,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save screening: %w", err)
	}
	return id, nil
}

// GetScreening retrieves a screening by ID. Returns nil when not found.
func (db *DB) GetScreening(ctx context.Context, id uuid.UUID) (*Screening, error) {
	var s Screening
	var detailsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, created_at, resume_filename, job_filename, final_score,
		        similarity_score, skill_match_score, rating, feedback,
		        skill_details, resume_text, job_text
		 FROM screenings WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.CreatedAt, &s.ResumeFilename, &s.JobFilename, &s.FinalScore,
		&s.SimilarityScore, &s.SkillMatchScore, &s.Rating, &s.Feedback,
		&detailsJSON, &s.ResumeText, &s.JobText)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get screening %s: %w", id, err)
	}

	if len(detailsJSON) > 0 {
		var details types.SkillMatchResult
		if err := json.Unmarshal(detailsJSON, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skill details for %s: %w", id, err)
		}
		s.SkillDetails = &details
	}

	return &s, nil
}

// ListScreenings returns the most recent screenings, newest first.
func (db *DB) ListScreenings(ctx context.Context, limit int) ([]ScreeningSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, created_at, resume_filename, job_filename, final_score, rating
		 FROM screenings
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list screenings: %w", err)
	}
	defer rows.Close()

	summaries := make([]ScreeningSummary, 0)
	for rows.Next() {
		var s ScreeningSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.ResumeFilename, &s.JobFilename,
			&s.FinalScore, &s.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan screening row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate screenings: %w", err)
	}

	return summaries, nil
}
