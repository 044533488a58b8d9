package document

import "fmt"

// Status is the review state assigned to a document at intake and
// adjustable by operators afterwards.
type Status string

const (
	// StatusUrgent marks incident reports, immediate safety circulars and
	// critical directives.
	StatusUrgent Status = "urgent"
	// StatusApproved marks routine, finalized documents.
	StatusApproved Status = "approved"
	// StatusReview forces a human check for unclear or sensitive documents.
	StatusReview Status = "review"
)

// ParseStatus validates a raw status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUrgent, StatusApproved, StatusReview:
		return Status(s), nil
	default:
		return "", fmt.Errorf("status must be one of urgent, approved, review, got %q", s)
	}
}

func (s Status) String() string { return string(s) }
