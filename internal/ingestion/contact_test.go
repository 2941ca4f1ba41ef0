package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo_FullHeader(t *testing.T) {
	text := "Jane Doe\njane.doe@example.com\n(555) 123-4567\nSenior Python Developer"

	info := ExtractContactInfo(text)

	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "jane.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
}

func TestExtractContactInfo_PhoneVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "dashes", input: "call 555-123-4567 today"},
		{name: "dots", input: "call 555.123.4567 today"},
		{name: "country code", input: "call +1 555 123 4567 today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ExtractContactInfo(tt.input)
			assert.NotEmpty(t, info.Phone)
		})
	}
}

func TestExtractContactInfo_NoContactDetails(t *testing.T) {
	info := ExtractContactInfo("plain description without personal details here")

	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
}

func TestExtractContactInfo_NameOnlyWithinFirstLines(t *testing.T) {
	text := "x\ny\nz\nw\nv\nJane Doe\n"

	info := ExtractContactInfo(text)
	assert.Empty(t, info.Name)
}

func TestExtractContactInfo_SkipsLongLines(t *testing.T) {
	text := "An extremely long headline line that cannot possibly be a name because it just keeps going\nJane Doe"

	info := ExtractContactInfo(text)
	assert.Equal(t, "Jane Doe", info.Name)
}
