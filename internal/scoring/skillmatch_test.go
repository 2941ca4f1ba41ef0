package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func extractionWith(skills map[string][]string) *types.SkillExtractionResult {
	result := types.NewSkillExtractionResult()
	for category, names := range skills {
		result.ByCategory[category] = names
		for _, name := range names {
			result.Frequencies[name] = 1
		}
	}
	result.TotalUnique = len(result.Frequencies)
	return result
}

func TestMatchSkills_PartialMatch(t *testing.T) {
	candidate := extractionWith(map[string][]string{
		"programming_languages": {"python"},
		"web_frameworks":        {"django"},
	})
	target := extractionWith(map[string][]string{
		"programming_languages": {"python", "java"},
	})

	score, details := MatchSkills(candidate, target)

	assert.Equal(t, 0.5, score)
	assert.Equal(t, []string{"python"}, details.Matched)
	assert.Equal(t, []string{"java"}, details.Missing)
	assert.Equal(t, 2, details.Required)
	assert.Equal(t, 2, details.Found)
}

func TestMatchSkills_EmptyTarget(t *testing.T) {
	candidate := extractionWith(map[string][]string{
		"programming_languages": {"python", "go"},
	})
	target := types.NewSkillExtractionResult()

	score, details := MatchSkills(candidate, target)

	assert.Equal(t, 1.0, score)
	assert.Empty(t, details.Matched)
	assert.Empty(t, details.Missing)
	assert.Equal(t, 0, details.Required)
	assert.Equal(t, 0, details.Found)
}

func TestMatchSkills_FullMatch(t *testing.T) {
	candidate := extractionWith(map[string][]string{
		"programming_languages": {"go", "python"},
		"databases":             {"postgresql"},
	})
	target := extractionWith(map[string][]string{
		"programming_languages": {"go"},
		"databases":             {"postgresql"},
	})

	score, details := MatchSkills(candidate, target)

	assert.Equal(t, 1.0, score)
	assert.Equal(t, []string{"go", "postgresql"}, details.Matched)
	assert.Empty(t, details.Missing)
	assert.Equal(t, 2, details.Required)
	assert.Equal(t, 3, details.Found)
}

func TestMatchSkills_NoOverlap(t *testing.T) {
	candidate := extractionWith(map[string][]string{
		"web_frameworks": {"react"},
	})
	target := extractionWith(map[string][]string{
		"programming_languages": {"java", "kotlin"},
	})

	score, details := MatchSkills(candidate, target)

	assert.Equal(t, 0.0, score)
	assert.Empty(t, details.Matched)
	assert.Equal(t, []string{"java", "kotlin"}, details.Missing)
}

func TestMatchSkills_SortedOutput(t *testing.T) {
	candidate := extractionWith(map[string][]string{
		"tools": {"scrum", "git", "agile"},
	})
	target := extractionWith(map[string][]string{
		"tools":     {"scrum", "git", "agile"},
		"databases": {"redis", "mysql"},
	})

	_, details := MatchSkills(candidate, target)

	assert.Equal(t, []string{"agile", "git", "scrum"}, details.Matched)
	assert.Equal(t, []string{"mysql", "redis"}, details.Missing)
}

func TestMatchSkills_PartitionInvariant(t *testing.T) {
	candidate := extractionWith(map[string][]string{
		"cloud": {"aws", "docker"},
	})
	target := extractionWith(map[string][]string{
		"cloud":                 {"aws", "kubernetes", "gcp"},
		"programming_languages": {"go"},
	})

	score, details := MatchSkills(candidate, target)

	// matched and missing partition the target's flat skill set.
	require.Equal(t, details.Required, len(details.Matched)+len(details.Missing))
	for _, skill := range details.Matched {
		assert.NotContains(t, details.Missing, skill)
	}
	assert.Equal(t, float64(len(details.Matched))/float64(details.Required), score)
}

func TestMatchSkills_DuplicateAcrossCategoriesCountedOnce(t *testing.T) {
	candidate := extractionWith(map[string][]string{
		"languages":    {"r"},
		"data_science": {"r", "pandas"},
	})
	target := extractionWith(map[string][]string{
		"data_science": {"r"},
	})

	score, details := MatchSkills(candidate, target)

	assert.Equal(t, 1.0, score)
	assert.Equal(t, []string{"r"}, details.Matched)
	assert.Equal(t, 2, details.Found)
}
