package types

import (
	"github.com/go-playground/validator/v10"
)

// Weights controls the blend between lexical similarity and skill overlap
// in the composite score. The weights are not required to sum to 1.
type Weights struct {
	Similarity float64 `json:"similarity" validate:"gte=0"`
	Skills     float64 `json:"skills" validate:"gte=0"`
}

// DefaultWeights returns the standard equal 50/50 weighting.
func DefaultWeights() Weights {
	return Weights{Similarity: 0.5, Skills: 0.5}
}

// Validate validates the Weights using the validator.
func (w *Weights) Validate() error {
	validate := validator.New()
	return validate.Struct(w)
}

// SkillMatchResult describes how a candidate's skills compare to a job's skills.
type SkillMatchResult struct {
	// Matched holds skills present in both candidate and job, sorted.
	Matched []string `json:"matched"`
	// Missing holds skills required by the job but absent from the candidate, sorted.
	Missing []string `json:"missing"`
	// Required is the number of distinct skills the job asks for.
	Required int `json:"required"`
	// Found is the number of distinct skills the candidate has.
	Found int `json:"found"`
}

// ScoringResult is the terminal output of a scoring invocation. Field names
// are a contract consumed verbatim by the persistence and display layers.
type ScoringResult struct {
	FinalScore      float64           `json:"final_score"`
	SimilarityScore float64           `json:"similarity_score"`
	SkillMatchScore float64           `json:"skill_match_score"`
	SkillDetails    *SkillMatchResult `json:"skill_details"`
	Feedback        string            `json:"feedback"`
	Rating          string            `json:"rating"`
}
