package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestCompositeScore_DefaultWeights(t *testing.T) {
	score := CompositeScore(0.8, 0.6, types.DefaultWeights())
	assert.InDelta(t, 70.0, score, 1e-9)
}

func TestCompositeScore_CustomWeights(t *testing.T) {
	weights := types.Weights{Similarity: 0.3, Skills: 0.7}
	score := CompositeScore(1.0, 0.5, weights)
	assert.InDelta(t, 65.0, score, 1e-9)
}

func TestCompositeScore_WeightsNeedNotSumToOne(t *testing.T) {
	weights := types.Weights{Similarity: 1.0, Skills: 1.0}
	score := CompositeScore(0.5, 0.5, weights)
	assert.InDelta(t, 100.0, score, 1e-9)
}

func TestCompositeScore_MonotonicInBothInputs(t *testing.T) {
	weights := types.DefaultWeights()

	base := CompositeScore(0.4, 0.4, weights)
	assert.GreaterOrEqual(t, CompositeScore(0.5, 0.4, weights), base)
	assert.GreaterOrEqual(t, CompositeScore(0.4, 0.5, weights), base)
}

func TestRatingFor_TierBoundaries(t *testing.T) {
	tests := []struct {
		score  float64
		rating string
	}{
		{100.0, "⭐⭐⭐⭐⭐"},
		{82.5, "⭐⭐⭐⭐⭐"},
		{80.0, "⭐⭐⭐⭐⭐"},
		{79.999, "⭐⭐⭐⭐"},
		{79.9, "⭐⭐⭐⭐"},
		{60.0, "⭐⭐⭐⭐"},
		{59.999, "⭐⭐⭐"},
		{40.0, "⭐⭐⭐"},
		{39.999, "⭐⭐"},
		{20.0, "⭐⭐"},
		{19.999, "⭐"},
		{0.0, "⭐"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.rating, RatingFor(tt.score), "score %v", tt.score)
	}
}
