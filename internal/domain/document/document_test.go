package document

import (
	"testing"
	"time"
)

func TestNew_RequiresID(t *testing.T) {
	_, err := New(Fields{Content: "text"})
	if err == nil {
		t.Fatal("expected error for missing ID")
	}
}

func TestNew_DefaultsStatusToReview(t *testing.T) {
	d, err := New(Fields{ID: "doc-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Status() != StatusReview {
		t.Fatalf("expected default status review, got %s", d.Status())
	}
}

func TestNew_RejectsInvalidStatus(t *testing.T) {
	_, err := New(Fields{ID: "doc-1", Status: Status("archived")})
	if err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestNew_ClonesTags(t *testing.T) {
	tags := []string{"safety"}
	d, err := New(Fields{ID: "doc-1", Tags: tags})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags[0] = "mutated"
	if d.Tags()[0] != "safety" {
		t.Fatal("document must not share the caller's tag slice")
	}
}

func TestSearchText_FixedFieldOrder(t *testing.T) {
	d := Reconstruct(Fields{
		ID:      "doc-1",
		Title:   "title",
		Summary: "summary",
		Content: "content",
		Tags:    []string{"t1", "t2"},
	})
	want := "title summary content t1 t2"
	if got := d.SearchText(); got != want {
		t.Fatalf("SearchText() = %q, want %q", got, want)
	}
}

func TestSearchText_AbsentFields(t *testing.T) {
	d := Reconstruct(Fields{ID: "doc-1"})
	// Absent fields contribute empty strings, never an error.
	if got := d.SearchText(); got != "   " {
		t.Fatalf("SearchText() = %q, want three joining spaces", got)
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"urgent", "approved", "review"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "Urgent", "done"} {
		if _, err := ParseStatus(invalid); err == nil {
			t.Errorf("ParseStatus(%q) expected error", invalid)
		}
	}
}

func TestReconstruct_KeepsTimestamp(t *testing.T) {
	ts := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	d := Reconstruct(Fields{ID: "doc-1", UploadedAt: ts})
	if !d.UploadedAt().Equal(ts) {
		t.Fatalf("UploadedAt() = %v, want %v", d.UploadedAt(), ts)
	}
}
