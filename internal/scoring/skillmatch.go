package scoring

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// MatchSkills compares a candidate's extracted skills to a job's extracted
// skills. It returns the coverage ratio (matched / required) together with
// the matched and missing skill sets, sorted for deterministic output.
//
// A job with no extracted skills is trivially satisfied: score 1.0 with
// empty matched and missing sets. That is a policy decision, not an edge
// case oversight.
func MatchSkills(candidate, target *types.SkillExtractionResult) (float64, *types.SkillMatchResult) {
	candidateFlat := candidate.FlatSkills()
	targetFlat := target.FlatSkills()

	if len(targetFlat) == 0 {
		return 1.0, &types.SkillMatchResult{
			Matched:  []string{},
			Missing:  []string{},
			Required: 0,
		}
	}

	matched := make([]string, 0)
	missing := make([]string, 0)
	for skill := range targetFlat {
		if candidateFlat[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	score := float64(len(matched)) / float64(len(targetFlat))

	return score, &types.SkillMatchResult{
		Matched:  matched,
		Missing:  missing,
		Required: len(targetFlat),
		Found:    len(candidateFlat),
	}
}
