package search

import (
	"context"

	domdoc "github.com/docintel-cloud/docintel/internal/domain/document"
)

// Repository reads the document corpus for ranking.
type Repository interface {
	All(ctx context.Context) ([]domdoc.Document, error)
}
