// Package extract pulls plain text out of uploaded files. Supported
// formats: PDF, DOCX and plain text; anything else is rejected with
// domain.ErrUnsupportedFileType.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/docintel-cloud/docintel/internal/domain"
)

// Extractor converts an uploaded file into plain text.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract dispatches on the file extension and returns the extracted
// UTF-8 text.
func (e *Extractor) Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("extract pdf %s: %w", filename, err)
		}
		return text, nil
	case ".docx":
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("extract docx %s: %w", filename, err)
		}
		return text, nil
	case ".txt":
		return string(data), nil
	default:
		return "", fmt.Errorf("%s: %w", filename, domain.ErrUnsupportedFileType)
	}
}
