package ingestion

import (
	"regexp"
	"strings"
)

var (
	cleanWhitespace = regexp.MustCompile(`\s+`)
	// Keep word characters, whitespace, hyphens, and dots; everything else
	// becomes a space so tokens stay separated.
	cleanSpecialChars = regexp.MustCompile(`[^\w\s\-.]`)
)

// CleanText collapses whitespace and strips special characters before the
// text enters the NLP pipeline.
func CleanText(text string) string {
	text = cleanWhitespace.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	return cleanSpecialChars.ReplaceAllString(text, " ")
}
