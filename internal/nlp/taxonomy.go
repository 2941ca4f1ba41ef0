package nlp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/types"
)

// taxonomySchema validates external taxonomy files: a non-empty JSON object
// mapping category names to arrays of skill name strings.
const taxonomySchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"minProperties": 1,
	"additionalProperties": {
		"type": "array",
		"items": {"type": "string"}
	}
}`

// DefaultTaxonomy returns the built-in skill taxonomy used when no external
// taxonomy file is supplied or loading fails.
func DefaultTaxonomy() types.SkillTaxonomy {
	return types.SkillTaxonomy{Categories: []types.SkillCategory{
		{Name: "programming_languages", Skills: []string{"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust", "kotlin"}},
		{Name: "web_frameworks", Skills: []string{"django", "flask", "fastapi", "react", "angular", "vue", "express", "spring"}},
		{Name: "databases", Skills: []string{"sql", "mysql", "postgresql", "mongodb", "oracle", "redis", "cassandra"}},
		{Name: "cloud", Skills: []string{"aws", "azure", "gcp", "google cloud", "kubernetes", "docker", "gke"}},
		{Name: "data_science", Skills: []string{"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "r", "spark"}},
		{Name: "tools", Skills: []string{"git", "jira", "linux", "unix", "agile", "scrum"}},
	}}
}

// ParseTaxonomy decodes a JSON taxonomy object while preserving the order
// categories appear in the document. Order determines which category wins
// when the same skill name is listed twice.
func ParseTaxonomy(data []byte) (types.SkillTaxonomy, error) {
	var tax types.SkillTaxonomy

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return tax, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return tax, fmt.Errorf("taxonomy JSON must be an object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return tax, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
		}
		category, ok := keyTok.(string)
		if !ok {
			return tax, fmt.Errorf("unexpected taxonomy key token: %v", keyTok)
		}

		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return tax, fmt.Errorf("failed to parse skills for category %q: %w", category, err)
		}
		tax.Categories = append(tax.Categories, types.SkillCategory{Name: category, Skills: skills})
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return tax, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	return tax, nil
}

// LoadTaxonomy loads a taxonomy from a JSON file. Any failure (missing file,
// schema violation, parse error) falls back to the built-in default taxonomy;
// a missing or broken taxonomy file is an expected condition, not a fatal one.
func LoadTaxonomy(path string, logger *zap.Logger) types.SkillTaxonomy {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		return DefaultTaxonomy()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("could not read taxonomy file, using default taxonomy",
			zap.String("path", path), zap.Error(err))
		return DefaultTaxonomy()
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(taxonomySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		logger.Warn("could not validate taxonomy file, using default taxonomy",
			zap.String("path", path), zap.Error(err))
		return DefaultTaxonomy()
	}
	if !result.Valid() {
		fields := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			fields = append(fields, desc.String())
		}
		logger.Warn("taxonomy file failed schema validation, using default taxonomy",
			zap.String("path", path), zap.Strings("errors", fields))
		return DefaultTaxonomy()
	}

	tax, err := ParseTaxonomy(data)
	if err != nil {
		logger.Warn("could not parse taxonomy file, using default taxonomy",
			zap.String("path", path), zap.Error(err))
		return DefaultTaxonomy()
	}

	return tax
}

// flatSkill pairs a lower-cased skill name with the category it resolved to.
type flatSkill struct {
	name     string
	category string
}

// TaxonomyIndex is an immutable skill lookup built once from a taxonomy.
// It is safe for concurrent use by multiple scoring invocations.
type TaxonomyIndex struct {
	skills []flatSkill
}

// NewTaxonomyIndex flattens a taxonomy into a skill lookup. Skill names are
// lower-cased; when a skill appears in more than one category, the category
// listed last in the taxonomy wins.
func NewTaxonomyIndex(tax types.SkillTaxonomy) *TaxonomyIndex {
	categoryOf := make(map[string]string)
	order := make([]string, 0)

	for _, category := range tax.Categories {
		for _, skill := range category.Skills {
			name := strings.ToLower(skill)
			if name == "" {
				continue
			}
			if _, seen := categoryOf[name]; !seen {
				order = append(order, name)
			}
			categoryOf[name] = category.Name
		}
	}

	skills := make([]flatSkill, 0, len(order))
	for _, name := range order {
		skills = append(skills, flatSkill{name: name, category: categoryOf[name]})
	}

	return &TaxonomyIndex{skills: skills}
}

// SkillCount returns the number of distinct skills in the index.
func (ix *TaxonomyIndex) SkillCount() int {
	return len(ix.skills)
}

// Extract finds whole-word occurrences of every known skill in text.
// The text is expected to be normalized (lower-cased) already. Skills with
// at least threshold occurrences are reported; a threshold below 1 is
// treated as 1.
func (ix *TaxonomyIndex) Extract(text string, threshold int) *types.SkillExtractionResult {
	if threshold < 1 {
		threshold = 1
	}

	result := types.NewSkillExtractionResult()
	for _, skill := range ix.skills {
		count := countWholeWordOccurrences(text, skill.name)
		if count >= threshold {
			result.ByCategory[skill.category] = append(result.ByCategory[skill.category], skill.name)
			result.Frequencies[skill.name] = count
		}
	}
	result.TotalUnique = len(result.Frequencies)
	return result
}

// countWholeWordOccurrences counts non-overlapping occurrences of phrase in
// text that are not immediately preceded or followed by a letter, digit, or
// underscore. Matching the phrase literally (instead of a regexp with \b)
// keeps word-boundary semantics correct for skills that end in symbols,
// such as "c++" and "c#".
func countWholeWordOccurrences(text, phrase string) int {
	if phrase == "" {
		return 0
	}

	count := 0
	offset := 0
	for {
		i := strings.Index(text[offset:], phrase)
		if i < 0 {
			break
		}
		start := offset + i
		end := start + len(phrase)

		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
			offset = end
		} else {
			offset = start + 1
		}
	}
	return count
}

func boundaryBefore(text string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
