package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-screener/internal/types"
)

// Matcher is the scoring engine entry point. It is stateless across
// invocations and safe for concurrent use.
type Matcher struct {
	similarity *SimilarityScorer
}

// NewMatcher creates a Matcher. Options configure the similarity scorer.
func NewMatcher(opts ...SimilarityOption) *Matcher {
	return &Matcher{similarity: NewSimilarityScorer(opts...)}
}

// ScoreResume runs the complete scoring pipeline for a candidate resume
// against a job posting. Both texts must already be normalized, and the
// skill extraction results must come from the same taxonomy index.
// A nil weights pointer uses the default 50/50 split; weights with negative
// components are a programmer error and return an error. Scoring failures
// (degenerate similarity input, no skills required) are normal outcomes and
// degrade to well-defined scores instead of errors.
func (m *Matcher) ScoreResume(
	candidateText, jobText string,
	candidateSkills, jobSkills *types.SkillExtractionResult,
	weights *types.Weights,
) (*types.ScoringResult, error) {
	w := types.DefaultWeights()
	if weights != nil {
		w = *weights
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("invalid scoring weights: %w", err)
		}
	}

	similarity := m.similarity.Similarity(candidateText, jobText)
	skillMatch, details := MatchSkills(candidateSkills, jobSkills)
	composite := CompositeScore(similarity, skillMatch, w)

	return &types.ScoringResult{
		FinalScore:      round2(composite),
		SimilarityScore: round2(similarity * 100),
		SkillMatchScore: round2(skillMatch * 100),
		SkillDetails:    details,
		Feedback:        Feedback(candidateText, details, composite),
		Rating:          RatingFor(composite),
	}, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
