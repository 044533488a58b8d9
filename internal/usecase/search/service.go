// Package search implements ranked retrieval over the document corpus.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/docintel-cloud/docintel/internal/domain"
	domsearch "github.com/docintel-cloud/docintel/internal/domain/search"
)

// Service runs ranked searches against the full corpus.
type Service struct {
	repo        Repository
	defaultTopK int
	maxTopK     int
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{
		repo:        repo,
		defaultTopK: domsearch.DefaultTopK,
		maxTopK:     domsearch.MaxTopK,
	}
}

// WithLimits configures result size bounds.
func (s *Service) WithLimits(defaultTopK, maxTopK int) *Service {
	if defaultTopK > 0 {
		s.defaultTopK = defaultTopK
	}
	if maxTopK > 0 {
		s.maxTopK = maxTopK
	}
	return s
}

// Search ranks every stored document against the query and returns the topK
// best matches. A blank query is a client error, not an empty result.
func (s *Service) Search(ctx context.Context, query string, topK int) ([]domsearch.Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}
	if topK <= 0 {
		topK = s.defaultTopK
	}
	if topK > s.maxTopK {
		topK = s.maxTopK
	}

	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	return domsearch.Rank(query, docs, topK), nil
}
