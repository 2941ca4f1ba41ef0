package scoring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/nlp"
	"github.com/jonathan/resume-screener/internal/types"
)

func TestScoreResume_IdenticalTexts(t *testing.T) {
	matcher := NewMatcher()
	index := nlp.NewTaxonomyIndex(nlp.DefaultTaxonomy())

	text := nlp.Normalize("Senior Python developer with Django and PostgreSQL experience")
	skills := index.Extract(text, 1)

	result, err := matcher.ScoreResume(text, text, skills, skills, nil)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.SimilarityScore)
	assert.Equal(t, 100.0, result.SkillMatchScore)
	assert.Equal(t, 100.0, result.FinalScore)
	assert.Equal(t, "⭐⭐⭐⭐⭐", result.Rating)
}

func TestScoreResume_ResultShape(t *testing.T) {
	matcher := NewMatcher()
	index := nlp.NewTaxonomyIndex(nlp.DefaultTaxonomy())

	resume := nlp.Normalize("Python developer, Django and Flask, deployed on AWS with Docker")
	job := nlp.Normalize("Looking for a Python engineer with Java and AWS experience")

	result, err := matcher.ScoreResume(resume, job, index.Extract(resume, 1), index.Extract(job, 1), nil)
	require.NoError(t, err)

	require.NotNil(t, result.SkillDetails)
	assert.Contains(t, result.SkillDetails.Matched, "python")
	assert.Contains(t, result.SkillDetails.Matched, "aws")
	assert.Contains(t, result.SkillDetails.Missing, "java")
	assert.Equal(t, 3, result.SkillDetails.Required)
	assert.NotEmpty(t, result.Feedback)
	assert.NotEmpty(t, result.Rating)

	assert.GreaterOrEqual(t, result.FinalScore, 0.0)
	assert.LessOrEqual(t, result.FinalScore, 100.0)
}

func TestScoreResume_DefaultWeightsWhenNil(t *testing.T) {
	matcher := NewMatcher()
	index := nlp.NewTaxonomyIndex(nlp.DefaultTaxonomy())

	resume := "python developer"
	job := "java developer"

	withNil, err := matcher.ScoreResume(resume, job, index.Extract(resume, 1), index.Extract(job, 1), nil)
	require.NoError(t, err)

	explicit := types.DefaultWeights()
	withDefault, err := matcher.ScoreResume(resume, job, index.Extract(resume, 1), index.Extract(job, 1), &explicit)
	require.NoError(t, err)

	assert.Equal(t, withNil.FinalScore, withDefault.FinalScore)
}

func TestScoreResume_NegativeWeightsRejected(t *testing.T) {
	matcher := NewMatcher()
	index := nlp.NewTaxonomyIndex(nlp.DefaultTaxonomy())

	weights := types.Weights{Similarity: -0.5, Skills: 0.5}
	_, err := matcher.ScoreResume("a", "b", index.Extract("a", 1), index.Extract("b", 1), &weights)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scoring weights")
}

func TestScoreResume_SkillsOnlyWeighting(t *testing.T) {
	matcher := NewMatcher()
	index := nlp.NewTaxonomyIndex(nlp.DefaultTaxonomy())

	resume := nlp.Normalize("python and django developer")
	job := nlp.Normalize("python and java required")

	weights := types.Weights{Similarity: 0, Skills: 1}
	result, err := matcher.ScoreResume(resume, job, index.Extract(resume, 1), index.Extract(job, 1), &weights)
	require.NoError(t, err)

	// matched {python} of required {python, java}: skill score 50, and
	// similarity contributes nothing.
	assert.Equal(t, 50.0, result.FinalScore)
	assert.Equal(t, 50.0, result.SkillMatchScore)
}

func TestScoreResume_EmptyInputs(t *testing.T) {
	matcher := NewMatcher()
	index := nlp.NewTaxonomyIndex(nlp.DefaultTaxonomy())

	result, err := matcher.ScoreResume("", "", index.Extract("", 1), index.Extract("", 1), nil)
	require.NoError(t, err)

	// No skills required, so the skill side is trivially satisfied while
	// similarity degrades to zero.
	assert.Equal(t, 0.0, result.SimilarityScore)
	assert.Equal(t, 100.0, result.SkillMatchScore)
	assert.Equal(t, 50.0, result.FinalScore)
}

func TestScoreResume_TwoDecimalRounding(t *testing.T) {
	matcher := NewMatcher()
	index := nlp.NewTaxonomyIndex(nlp.DefaultTaxonomy())

	resume := nlp.Normalize("python developer with flask and redis, running on linux")
	job := nlp.Normalize("python engineer familiar with redis, docker and linux systems")

	result, err := matcher.ScoreResume(resume, job, index.Extract(resume, 1), index.Extract(job, 1), nil)
	require.NoError(t, err)

	for _, score := range []float64{result.FinalScore, result.SimilarityScore, result.SkillMatchScore} {
		assert.Equal(t, round2(score), score)
	}
}

func TestScoreResume_ConcurrentInvocations(t *testing.T) {
	matcher := NewMatcher()
	index := nlp.NewTaxonomyIndex(nlp.DefaultTaxonomy())

	resume := nlp.Normalize("go developer with kubernetes and postgresql")
	job := nlp.Normalize("go engineer, kubernetes, aws")
	resumeSkills := index.Extract(resume, 1)
	jobSkills := index.Extract(job, 1)

	baseline, err := matcher.ScoreResume(resume, job, resumeSkills, jobSkills, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := matcher.ScoreResume(resume, job, resumeSkills, jobSkills, nil)
			assert.NoError(t, err)
			assert.Equal(t, baseline.FinalScore, result.FinalScore)
		}()
	}
	wg.Wait()
}
