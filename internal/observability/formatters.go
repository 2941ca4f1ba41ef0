// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the default number of skills to display per category
	maxSkillsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSkillExtraction outputs a summary of the skills found in a document.
func (p *Printer) PrintSkillExtraction(label string, result *types.SkillExtractionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Unique skills: %d\n", result.TotalUnique))

	categories := make([]string, 0, len(result.ByCategory))
	for category := range result.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		skills := result.ByCategory[category]
		sb.WriteString(fmt.Sprintf("\n%s:\n", category))

		count := min(len(skills), maxSkillsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (x%d)\n", skills[i], result.Frequencies[skills[i]]))
		}
		if len(skills) > maxSkillsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxSkillsToShow))
		}
	}

	p.printBox(label, strings.TrimRight(sb.String(), "\n"))
}

// PrintScoringResult outputs a human-readable summary of a scoring result.
func (p *Printer) PrintScoringResult(result *types.ScoringResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final Score:      %.2f / 100\n", result.FinalScore))
	sb.WriteString(fmt.Sprintf("Similarity:       %.2f\n", result.SimilarityScore))
	sb.WriteString(fmt.Sprintf("Skill Match:      %.2f\n", result.SkillMatchScore))
	sb.WriteString(fmt.Sprintf("Rating:           %s\n", result.Rating))

	if details := result.SkillDetails; details != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Matched:  %d\n", len(details.Matched)))
		sb.WriteString(fmt.Sprintf("Missing:  %d\n", len(details.Missing)))
		sb.WriteString(fmt.Sprintf("Required: %d\n", details.Required))
	}

	p.printBox("Screening Result", strings.TrimRight(sb.String(), "\n"))
}

// PrintFeedback outputs the feedback text without box decoration, since
// feedback lines are already formatted for direct display.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFeedback(result *types.ScoringResult) {
	if result == nil || result.Feedback == "" {
		return
	}
	fmt.Fprintln(p.out, result.Feedback)
}
