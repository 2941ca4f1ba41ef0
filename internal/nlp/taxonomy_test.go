package nlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestDefaultTaxonomy_Categories(t *testing.T) {
	tax := DefaultTaxonomy()

	names := make([]string, 0, len(tax.Categories))
	for _, category := range tax.Categories {
		names = append(names, category.Name)
		assert.NotEmpty(t, category.Skills, "category %s should have skills", category.Name)
	}

	assert.Equal(t, []string{
		"programming_languages",
		"web_frameworks",
		"databases",
		"cloud",
		"data_science",
		"tools",
	}, names)
}

func TestParseTaxonomy_PreservesCategoryOrder(t *testing.T) {
	data := []byte(`{
		"backend": ["go", "python"],
		"frontend": ["react", "vue"],
		"ops": ["docker"]
	}`)

	tax, err := ParseTaxonomy(data)
	require.NoError(t, err)
	require.Len(t, tax.Categories, 3)

	assert.Equal(t, "backend", tax.Categories[0].Name)
	assert.Equal(t, "frontend", tax.Categories[1].Name)
	assert.Equal(t, "ops", tax.Categories[2].Name)
	assert.Equal(t, []string{"react", "vue"}, tax.Categories[1].Skills)
}

func TestParseTaxonomy_RejectsNonObject(t *testing.T) {
	_, err := ParseTaxonomy([]byte(`["go", "python"]`))
	assert.Error(t, err)
}

func TestLoadTaxonomy_ValidFile(t *testing.T) {
	content := `{"languages": ["go", "elixir"], "messaging": ["kafka"]}`
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tax := LoadTaxonomy(path, zap.NewNop())
	require.Len(t, tax.Categories, 2)
	assert.Equal(t, "languages", tax.Categories[0].Name)
	assert.Equal(t, []string{"kafka"}, tax.Categories[1].Skills)
}

func TestLoadTaxonomy_MissingFileFallsBack(t *testing.T) {
	tax := LoadTaxonomy(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop())
	assert.Equal(t, DefaultTaxonomy(), tax)
}

func TestLoadTaxonomy_SchemaViolationFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "values not arrays", content: `{"languages": "go"}`},
		{name: "non-string skills", content: `{"languages": [1, 2]}`},
		{name: "empty object", content: `{}`},
		{name: "not JSON", content: `languages: go`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "skills.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			tax := LoadTaxonomy(path, zap.NewNop())
			assert.Equal(t, DefaultTaxonomy(), tax)
		})
	}
}

func TestLoadTaxonomy_EmptyPathUsesDefault(t *testing.T) {
	tax := LoadTaxonomy("", zap.NewNop())
	assert.Equal(t, DefaultTaxonomy(), tax)
}

func TestNewTaxonomyIndex_LastCategoryWinsForDuplicates(t *testing.T) {
	tax := types.SkillTaxonomy{Categories: []types.SkillCategory{
		{Name: "languages", Skills: []string{"r", "python"}},
		{Name: "data_science", Skills: []string{"r", "pandas"}},
	}}

	index := NewTaxonomyIndex(tax)
	result := index.Extract("experienced in r and python", 1)

	assert.Equal(t, []string{"r"}, result.ByCategory["data_science"])
	assert.Equal(t, []string{"python"}, result.ByCategory["languages"])
	assert.Equal(t, 2, result.TotalUnique)
}

func TestNewTaxonomyIndex_LowercasesSkills(t *testing.T) {
	tax := types.SkillTaxonomy{Categories: []types.SkillCategory{
		{Name: "languages", Skills: []string{"Python", "GO"}},
	}}

	index := NewTaxonomyIndex(tax)
	result := index.Extract("python and go developer", 1)

	assert.ElementsMatch(t, []string{"python", "go"}, result.ByCategory["languages"])
}

func TestExtract_WholeWordBoundaries(t *testing.T) {
	index := NewTaxonomyIndex(DefaultTaxonomy())

	// "java" must not match inside "javascript".
	result := index.Extract("senior javascript developer", 1)
	assert.NotContains(t, result.Frequencies, "java")
	assert.Equal(t, 1, result.Frequencies["javascript"])

	result = index.Extract("java and javascript developer", 1)
	assert.Equal(t, 1, result.Frequencies["java"])
	assert.Equal(t, 1, result.Frequencies["javascript"])
}

func TestExtract_SymbolSuffixedSkills(t *testing.T) {
	index := NewTaxonomyIndex(DefaultTaxonomy())

	result := index.Extract("strong c++ and c# background", 1)
	assert.Equal(t, 1, result.Frequencies["c++"])
	assert.Equal(t, 1, result.Frequencies["c#"])
}

func TestExtract_MultiWordPhrase(t *testing.T) {
	index := NewTaxonomyIndex(DefaultTaxonomy())

	result := index.Extract("deployed on google cloud with kubernetes", 1)
	assert.Equal(t, 1, result.Frequencies["google cloud"])
	assert.Equal(t, 1, result.Frequencies["kubernetes"])

	// The phrase must match as a unit, not token by token.
	result = index.Extract("google searches in the cloud", 1)
	assert.NotContains(t, result.Frequencies, "google cloud")
}

func TestExtract_FrequencyCounting(t *testing.T) {
	index := NewTaxonomyIndex(DefaultTaxonomy())

	result := index.Extract("python python python and go", 1)
	assert.Equal(t, 3, result.Frequencies["python"])
	assert.Equal(t, 1, result.Frequencies["go"])
}

func TestExtract_Threshold(t *testing.T) {
	index := NewTaxonomyIndex(DefaultTaxonomy())

	result := index.Extract("python mentioned once, go go go", 2)
	assert.NotContains(t, result.Frequencies, "python")
	assert.Equal(t, 3, result.Frequencies["go"])
	assert.Equal(t, 1, result.TotalUnique)
}

func TestExtract_EmptyAndNonMatchingText(t *testing.T) {
	index := NewTaxonomyIndex(DefaultTaxonomy())

	for _, text := range []string{"", "gardening and carpentry"} {
		result := index.Extract(text, 1)
		assert.Empty(t, result.ByCategory)
		assert.Empty(t, result.Frequencies)
		assert.Equal(t, 0, result.TotalUnique)
	}
}

func TestExtract_NoUnderscoreAdjacentMatches(t *testing.T) {
	index := NewTaxonomyIndex(DefaultTaxonomy())

	result := index.Extract("module python_utils imported", 1)
	assert.NotContains(t, result.Frequencies, "python")
}
