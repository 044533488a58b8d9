package search

import (
	"context"
	"errors"
	"testing"

	"github.com/docintel-cloud/docintel/internal/domain"
	domdoc "github.com/docintel-cloud/docintel/internal/domain/document"
)

// --- Mocks ---

type mockRepo struct {
	docs []domdoc.Document
	err  error
}

func (m *mockRepo) All(_ context.Context) ([]domdoc.Document, error) {
	return m.docs, m.err
}

func contentDoc(t *testing.T, id, content string) domdoc.Document {
	t.Helper()
	return domdoc.Reconstruct(domdoc.Fields{ID: id, Content: content})
}

// --- Search ---

func TestSearch_RanksByRelevance(t *testing.T) {
	repo := &mockRepo{docs: []domdoc.Document{
		contentDoc(t, "d1", "track safety inspection safety"),
		contentDoc(t, "d2", "payroll budget figures"),
		contentDoc(t, "d3", "safety"),
	}}
	svc := New(repo)

	results, err := svc.Search(context.Background(), "safety", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}
	if results[0].Document.ID() != "d3" {
		t.Errorf("pure-match doc must rank first, got %s", results[0].Document.ID())
	}
	if results[1].Document.ID() != "d1" {
		t.Errorf("expected d1 second, got %s", results[1].Document.ID())
	}
	for _, r := range results {
		if r.Similarity <= 0 || r.Similarity > 1 {
			t.Errorf("similarity out of range: %f", r.Similarity)
		}
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	svc := New(&mockRepo{})
	if _, err := svc.Search(context.Background(), "   ", 10); !errors.Is(err, domain.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestSearch_EmptyCorpus(t *testing.T) {
	svc := New(&mockRepo{})
	results, err := svc.Search(context.Background(), "anything", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestSearch_TopKDefaultsAndCaps(t *testing.T) {
	var docs []domdoc.Document
	for i := 0; i < 30; i++ {
		docs = append(docs, contentDoc(t, "d", "match"))
	}
	repo := &mockRepo{docs: docs}
	svc := New(repo).WithLimits(10, 15)

	results, err := svc.Search(context.Background(), "match", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 10 {
		t.Errorf("expected default topK 10, got %d", len(results))
	}

	results, err = svc.Search(context.Background(), "match", 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 15 {
		t.Errorf("expected capped topK 15, got %d", len(results))
	}
}

func TestSearch_RepoError(t *testing.T) {
	repo := &mockRepo{err: errors.New("scan failed")}
	svc := New(repo)
	if _, err := svc.Search(context.Background(), "q", 10); err == nil {
		t.Fatal("expected error")
	}
}
