// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

// SkillCategory is a named group of skills within a taxonomy.
type SkillCategory struct {
	Name   string
	Skills []string
}

// SkillTaxonomy is an ordered list of skill categories. Order matters:
// when the same skill name appears in more than one category, the
// last category wins during index flattening, so the taxonomy must
// preserve the order the categories were authored in.
type SkillTaxonomy struct {
	Categories []SkillCategory
}

// SkillExtractionResult holds the skills found in a single document.
type SkillExtractionResult struct {
	// ByCategory maps category name to the skill names found in that category.
	ByCategory map[string][]string `json:"by_category"`
	// Frequencies maps each found skill name to its occurrence count.
	Frequencies map[string]int `json:"frequencies"`
	// TotalUnique is the number of distinct skills found.
	TotalUnique int `json:"total_unique"`
}

// NewSkillExtractionResult returns an empty extraction result with initialized maps.
func NewSkillExtractionResult() *SkillExtractionResult {
	return &SkillExtractionResult{
		ByCategory:  make(map[string][]string),
		Frequencies: make(map[string]int),
	}
}

// FlatSkills returns the union of all found skills across categories.
func (r *SkillExtractionResult) FlatSkills() map[string]bool {
	flat := make(map[string]bool)
	if r == nil {
		return flat
	}
	for _, skills := range r.ByCategory {
		for _, skill := range skills {
			flat[skill] = true
		}
	}
	return flat
}
