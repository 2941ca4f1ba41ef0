package ingestion

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

var (
	emailContactPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	// Basic US phone formats, with optional country code.
	phoneContactPattern = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
)

// maxNameScanLines bounds how far into the resume the name heuristic looks.
const maxNameScanLines = 5

// ExtractContactInfo pulls email, phone, and a name candidate from raw
// resume text. The name heuristic takes the first short line near the top
// that looks like a person's name (two to four words).
func ExtractContactInfo(text string) types.ContactInfo {
	info := types.ContactInfo{}

	if match := emailContactPattern.FindString(text); match != "" {
		info.Email = match
	}
	if match := phoneContactPattern.FindString(text); match != "" {
		info.Phone = match
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i >= maxNameScanLines {
			break
		}
		cleaned := strings.TrimSpace(line)
		words := len(strings.Fields(cleaned))
		if cleaned != "" && words >= 2 && words <= 4 && len(cleaned) < 60 {
			info.Name = cleaned
			break
		}
	}

	return info
}
