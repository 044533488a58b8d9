package domain

import "errors"

var (
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrValidation signals an invalid request payload or field value.
	ErrValidation = errors.New("validation failed")
	// ErrEmptyQuery signals a missing or empty search query.
	ErrEmptyQuery = errors.New("query is required")
	// ErrUnsupportedFileType signals an upload with an unrecognized extension.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrEmptyDocument signals a file with no extractable text.
	ErrEmptyDocument = errors.New("document contains no extractable text")
	// ErrAnalysisProviderError signals an analysis provider failure.
	ErrAnalysisProviderError = errors.New("analysis provider error")
)
