// Package patch models partial document updates with explicit field
// presence: a nil pointer means "leave unchanged".
package patch

import (
	"fmt"

	"github.com/docintel-cloud/docintel/internal/domain/document"
)

// Patch is a partial update of the operator-editable document fields.
type Patch struct {
	status  *document.Status
	tags    *[]string
	starred *bool
}

// New validates and creates a Patch. At least one field must be set.
func New(status *string, tags *[]string, starred *bool) (Patch, error) {
	if status == nil && tags == nil && starred == nil {
		return Patch{}, fmt.Errorf("no update fields provided")
	}

	var st *document.Status
	if status != nil {
		parsed, err := document.ParseStatus(*status)
		if err != nil {
			return Patch{}, err
		}
		st = &parsed
	}

	return Patch{status: st, tags: tags, starred: starred}, nil
}

// Status returns the new status, or nil if unchanged.
func (p Patch) Status() *document.Status { return p.status }

// Tags returns the replacement tag list, or nil if unchanged.
func (p Patch) Tags() *[]string { return p.tags }

// Starred returns the new starred flag, or nil if unchanged.
func (p Patch) Starred() *bool { return p.starred }
