package scoring

import (
	"github.com/jonathan/resume-screener/internal/types"
)

// Rating tier boundaries, evaluated top-down with closed lower bounds.
const (
	ratingExcellentThreshold = 80.0
	ratingGoodThreshold      = 60.0
	ratingPartialThreshold   = 40.0
	ratingWeakThreshold      = 20.0
)

// CompositeScore blends lexical similarity and skill overlap (both in [0, 1])
// into a 0-100 score. The weights are not required to sum to 1.
func CompositeScore(similarity, skillMatch float64, weights types.Weights) float64 {
	composite := similarity*weights.Similarity + skillMatch*weights.Skills
	return composite * 100
}

// RatingFor maps a composite score to one of five star-rating tiers.
// A score of exactly 80.0 earns the top tier.
func RatingFor(score float64) string {
	switch {
	case score >= ratingExcellentThreshold:
		return "⭐⭐⭐⭐⭐"
	case score >= ratingGoodThreshold:
		return "⭐⭐⭐⭐"
	case score >= ratingPartialThreshold:
		return "⭐⭐⭐"
	case score >= ratingWeakThreshold:
		return "⭐⭐"
	default:
		return "⭐"
	}
}
