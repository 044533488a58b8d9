// Package analysis defines the structured output of the document metadata
// analyzer and the degraded fallback used when the provider is unavailable.
package analysis

import "github.com/docintel-cloud/docintel/internal/domain/document"

// Record is the structured metadata produced for one document.
type Record struct {
	Title      string
	Summary    string
	Tags       []string
	Department string
	DocType    string
	Language   string
	Status     document.Status
	Tables     []document.Table
}

// Fallback returns the degraded record stored when analysis is unavailable.
// Status is forced to review so a human looks at the document.
func Fallback(reason string) Record {
	return Record{
		Title:      "Analysis Unavailable",
		Summary:    "Automatic analysis could not be performed: " + reason,
		Tags:       []string{"unanalyzed"},
		Department: "Unknown",
		DocType:    "Unknown",
		Language:   "English",
		Status:     document.StatusReview,
		Tables:     []document.Table{},
	}
}
