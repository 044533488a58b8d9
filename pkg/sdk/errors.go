package docintel

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from API error codes. Use errors.Is() to check.
var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrValidation          = errors.New("validation failed")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyDocument       = errors.New("document contains no extractable text")
	ErrAnalysisProvider    = errors.New("analysis provider error")
	ErrUnauthorized        = errors.New("unauthorized")
)

// APIError carries the raw error response alongside the mapped sentinel.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("docintel: %s (%d %s)", e.Message, e.StatusCode, e.Code)
}

// Unwrap maps the API error code to a sentinel error.
func (e *APIError) Unwrap() error {
	if e.StatusCode == 401 {
		return ErrUnauthorized
	}
	switch e.Code {
	case "document_not_found":
		return ErrDocumentNotFound
	case "validation_failed", "bad_request":
		return ErrValidation
	case "unsupported_file_type":
		return ErrUnsupportedFileType
	case "empty_document":
		return ErrEmptyDocument
	case "analysis_provider_error":
		return ErrAnalysisProvider
	default:
		return nil
	}
}
