package document

import (
	"fmt"
	"strings"
	"time"
)

// MaxContentSize is the maximum document content size in bytes.
const MaxContentSize = 10 << 20 // 10MB

// Table is a table extracted from a document by the analyzer.
type Table struct {
	Caption string
	Data    [][]string
}

// Fields holds every attribute of a document for construction and hydration.
type Fields struct {
	ID         string
	Title      string
	Summary    string
	Content    string
	Tags       []string
	Department string
	DocType    string
	Language   string
	Status     Status
	Tables     []Table
	Source     string
	Starred    bool
	UploadedAt time.Time
}

// Document is the document aggregate (immutable value object).
// Title, summary, content and tags may all be empty; absence is not an error.
type Document struct {
	id         string
	title      string
	summary    string
	content    string
	tags       []string
	department string
	docType    string
	language   string
	status     Status
	tables     []Table
	source     string
	starred    bool
	uploadedAt time.Time
}

// New validates and creates a Document.
func New(f Fields) (Document, error) {
	if f.ID == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if len(f.Content) > MaxContentSize {
		return Document{}, fmt.Errorf("content too large (max %d bytes)", MaxContentSize)
	}
	if f.Status != "" {
		if _, err := ParseStatus(string(f.Status)); err != nil {
			return Document{}, err
		}
	} else {
		f.Status = StatusReview
	}
	return Reconstruct(f), nil
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(f Fields) Document {
	return Document{
		id:         f.ID,
		title:      f.Title,
		summary:    f.Summary,
		content:    f.Content,
		tags:       cloneStrings(f.Tags),
		department: f.Department,
		docType:    f.DocType,
		language:   f.Language,
		status:     f.Status,
		tables:     f.Tables,
		source:     f.Source,
		starred:    f.Starred,
		uploadedAt: f.UploadedAt,
	}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Title returns the AI-generated title.
func (d *Document) Title() string { return d.title }

// Summary returns the AI-generated summary.
func (d *Document) Summary() string { return d.summary }

// Content returns the full extracted text.
func (d *Document) Content() string { return d.content }

// Tags returns the tag list.
func (d *Document) Tags() []string { return d.tags }

// Department returns the guessed owning department.
func (d *Document) Department() string { return d.department }

// DocType returns the guessed document type, e.g. "Safety Circular".
func (d *Document) DocType() string { return d.docType }

// Language returns the detected document language.
func (d *Document) Language() string { return d.language }

// Status returns the review status.
func (d *Document) Status() Status { return d.status }

// Tables returns the tables extracted by the analyzer.
func (d *Document) Tables() []Table { return d.tables }

// Source records how the document entered the system ("uploaded").
func (d *Document) Source() string { return d.source }

// Starred reports whether an operator starred the document.
func (d *Document) Starred() bool { return d.starred }

// UploadedAt returns the intake timestamp.
func (d *Document) UploadedAt() time.Time { return d.uploadedAt }

// SearchText builds the composite text the ranker scores against:
// title, summary, content and space-joined tags, in that fixed order.
func (d *Document) SearchText() string {
	return d.title + " " + d.summary + " " + d.content + " " + strings.Join(d.tags, " ")
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}
