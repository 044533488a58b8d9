// Package document implements listing, retrieval and mutation of stored
// documents, including the filtered, paginated archive view.
package document

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	domdoc "github.com/docintel-cloud/docintel/internal/domain/document"
	"github.com/docintel-cloud/docintel/internal/domain/document/patch"
)

// Filter narrows the archive listing. Zero values mean "no restriction";
// the sentinel values "all" and "all-types" coming from the UI do too.
type Filter struct {
	Search     string
	Department string
	DocType    string
}

// Page is one page of the archive listing.
type Page struct {
	Documents []domdoc.Document
	Total     int
	Page      int
	Limit     int
	Pages     int
}

// Stats summarizes the archive for the dashboard.
type Stats struct {
	Total  int
	Urgent int
	Today  int
}

// Service handles document listing and mutation.
type Service struct {
	repo            Repository
	defaultPageSize int
	maxPageSize     int
	now             func() time.Time
}

// New creates a document service.
func New(repo Repository) *Service {
	return &Service{
		repo:            repo,
		defaultPageSize: 10,
		maxPageSize:     100,
		now:             time.Now,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// List returns one page of documents matching the filter, newest first.
func (s *Service) List(ctx context.Context, f Filter, page, limit int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	docs, err := s.repo.All(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list documents: %w", err)
	}

	matched := docs[:0:0]
	for _, d := range docs {
		if matchesFilter(d, f) {
			matched = append(matched, d)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UploadedAt().After(matched[j].UploadedAt())
	})

	total := len(matched)
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Page{
		Documents: matched[start:end],
		Total:     total,
		Page:      page,
		Limit:     limit,
		Pages:     pages,
	}, nil
}

// Get returns a single document by id.
func (s *Service) Get(ctx context.Context, id string) (domdoc.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// Patch applies a partial update to a document.
func (s *Service) Patch(ctx context.Context, id string, p patch.Patch) (domdoc.Document, error) {
	if err := s.repo.Patch(ctx, id, p); err != nil {
		return domdoc.Document{}, fmt.Errorf("patch document: %w", err)
	}
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("reread document: %w", err)
	}
	return doc, nil
}

// Delete removes a document by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// Stats returns archive counters. "Today" counts documents uploaded since
// local midnight of the server clock.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	st := Stats{Total: len(docs)}
	for _, d := range docs {
		if d.Status() == domdoc.StatusUrgent {
			st.Urgent++
		}
		if !d.UploadedAt().Before(midnight) {
			st.Today++
		}
	}
	return st, nil
}

func matchesFilter(d domdoc.Document, f Filter) bool {
	if f.Department != "" && f.Department != "all" && d.Department() != f.Department {
		return false
	}
	if f.DocType != "" && f.DocType != "all-types" && d.DocType() != NormalizeDocType(f.DocType) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(d.SearchText()), needle) {
			return false
		}
	}
	return true
}

// NormalizeDocType converts a URL slug like "safety-circular" into the
// stored form "Safety Circular".
func NormalizeDocType(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
