package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// SaveCandidate stores a candidate record and returns its ID.
func (db *DB) SaveCandidate(
	ctx context.Context,
	info types.ContactInfo,
	resumeText, resumeFilename string,
) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone, resume_text, resume_filename)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		info.Name, info.Email, info.Phone, resumeText, resumeFilename,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save candidate: %w", err)
	}
	return id, nil
}

// ListCandidates returns the most recent candidates, newest first.
func (db *DB) ListCandidates(ctx context.Context, limit int) ([]Candidate, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, created_at, COALESCE(name, ''), COALESCE(email, ''),
		        COALESCE(phone, ''), COALESCE(resume_filename, '')
		 FROM candidates
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]Candidate, 0)
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.Name, &c.Email, &c.Phone,
			&c.ResumeFilename); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}

	return candidates, nil
}
