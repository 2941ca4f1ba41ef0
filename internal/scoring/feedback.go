package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Feedback display limits and resume length advisories.
const (
	maxMatchedShown = 5
	maxMissingShown = 3
	minResumeWords  = 100
	maxResumeWords  = 1500
)

// Feedback assembles deterministic, human-readable feedback for a scoring
// result. Sections appear in a fixed order: headline, matched skills,
// missing skills, coverage line, and resume length advisories.
func Feedback(candidateText string, details *types.SkillMatchResult, compositeScore float64) string {
	lines := []string{headlineFor(compositeScore)}

	if len(details.Matched) > 0 {
		lines = append(lines, "\nMatched Skills: "+skillList(details.Matched, maxMatchedShown))
	}

	if len(details.Missing) > 0 {
		lines = append(lines, "\nMissing Skills: "+skillList(details.Missing, maxMissingShown))
	}

	if details.Required > 0 {
		lines = append(lines, fmt.Sprintf("\nSkill Coverage: %d/%d total skills found", details.Found, details.Required))
	} else {
		lines = append(lines, fmt.Sprintf("\nResume includes %d relevant skills", details.Found))
	}

	words := len(strings.Fields(candidateText))
	if words < minResumeWords {
		lines = append(lines, "\nNote: Resume is quite short. Consider adding more details.")
	} else if words > maxResumeWords {
		lines = append(lines, "\nNote: Resume is very long. Consider condensing to 1-2 pages.")
	}

	return strings.Join(lines, "\n")
}

// headlineFor returns the overall assessment line, keyed to the same score
// bands as the rating tiers.
func headlineFor(score float64) string {
	switch {
	case score >= ratingExcellentThreshold:
		return "✓ Excellent match! This resume aligns well with the job requirements."
	case score >= ratingGoodThreshold:
		return "○ Good match. The candidate has relevant skills and experience."
	case score >= ratingPartialThreshold:
		return "⚠ Partial match. The candidate has some relevant skills but may lack others."
	default:
		return "✗ Limited match. Consider looking for candidates with more aligned experience."
	}
}

// skillList renders up to limit skill names, with a "+N more" suffix when
// the list is longer.
func skillList(skills []string, limit int) string {
	shown := skills
	if len(shown) > limit {
		shown = shown[:limit]
	}
	out := strings.Join(shown, ", ")
	if len(skills) > limit {
		out += fmt.Sprintf(" (+%d more)", len(skills)-limit)
	}
	return out
}
