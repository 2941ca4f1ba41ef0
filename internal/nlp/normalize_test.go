package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Lowercases(t *testing.T) {
	assert.Equal(t, "senior go developer", Normalize("Senior GO Developer"))
}

func TestNormalize_StripsURLs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "http URL",
			input:    "see http://example.com/profile for details",
			expected: "see for details",
		},
		{
			name:     "https URL",
			input:    "portfolio at https://jane.dev",
			expected: "portfolio at",
		},
		{
			name:     "www URL",
			input:    "visit www.example.com today",
			expected: "visit today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_StripsEmails(t *testing.T) {
	assert.Equal(t, "contact me at", Normalize("Contact me at jane.doe@example.com"))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	input := "python   developer\n\nwith\tdjango experience"
	assert.Equal(t, "python developer with django experience", Normalize(input))
}

func TestNormalize_TrimsEdges(t *testing.T) {
	assert.Equal(t, "go engineer", Normalize("  go engineer \n"))
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t  "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Senior Python Developer visit www.corp.io or mail hr@corp.io",
		"  plain   text  ",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}
