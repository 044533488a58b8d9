package document

import (
	"context"

	domdoc "github.com/docintel-cloud/docintel/internal/domain/document"
	"github.com/docintel-cloud/docintel/internal/domain/document/patch"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Get(ctx context.Context, id string) (domdoc.Document, error)
	All(ctx context.Context) ([]domdoc.Document, error)
	Delete(ctx context.Context, id string) error
	Patch(ctx context.Context, id string, p patch.Patch) error
}
