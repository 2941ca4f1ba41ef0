// Package nlp provides text normalization and taxonomy-based skill extraction
// for resume screening.
package nlp

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`http\S+|www\S+`)
	emailPattern      = regexp.MustCompile(`\S+@\S+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize prepares raw text for skill extraction and similarity scoring.
// It lowercases the text, strips URL-like and email-like tokens, and collapses
// all whitespace runs into single spaces. Normalize is pure and idempotent.
func Normalize(raw string) string {
	text := strings.ToLower(raw)
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
