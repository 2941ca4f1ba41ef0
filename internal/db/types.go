package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// Screening is a stored screening result row.
type Screening struct {
	ID              uuid.UUID               `json:"id"`
	CreatedAt       time.Time               `json:"created_at"`
	ResumeFilename  string                  `json:"resume_filename"`
	JobFilename     string                  `json:"job_filename"`
	FinalScore      float64                 `json:"final_score"`
	SimilarityScore float64                 `json:"similarity_score"`
	SkillMatchScore float64                 `json:"skill_match_score"`
	Rating          string                  `json:"rating"`
	Feedback        string                  `json:"feedback"`
	SkillDetails    *types.SkillMatchResult `json:"skill_details,omitempty"`
	ResumeText      string                  `json:"resume_text,omitempty"`
	JobText         string                  `json:"job_text,omitempty"`
}

// ScreeningSummary is a trimmed screening row for history listings.
type ScreeningSummary struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	ResumeFilename string    `json:"resume_filename"`
	JobFilename    string    `json:"job_filename"`
	FinalScore     float64   `json:"final_score"`
	Rating         string    `json:"rating"`
}

// Candidate is a stored candidate row.
type Candidate struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ResumeFilename string    `json:"resume_filename"`
}
