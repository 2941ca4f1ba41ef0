// Package ingestion extracts plain text and contact details from resume files.
package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// SupportedExtensions lists the resume file formats the screener accepts.
var SupportedExtensions = []string{".pdf", ".txt"}

// ExtractTextFromFile reads a resume file and returns its plain text.
// The format is detected from the file extension.
func ExtractTextFromFile(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file not found: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractTextFromPDF(path)
	case ".txt":
		return extractTextFromTxt(path)
	default:
		return "", fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

func extractTextFromTxt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file %s: %w", path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("text file is empty: %s", path)
	}
	return text, nil
}

func extractTextFromPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer file.Close()

	if reader.NumPage() == 0 {
		return "", fmt.Errorf("PDF file is empty: %s", path)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from PDF %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text %s: %w", path, err)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", fmt.Errorf("no text could be extracted from PDF: %s", path)
	}
	return text, nil
}
