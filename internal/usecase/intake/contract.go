package intake

import (
	"context"

	"github.com/docintel-cloud/docintel/internal/domain/analysis"
	domdoc "github.com/docintel-cloud/docintel/internal/domain/document"
)

// Saver persists new documents.
type Saver interface {
	Save(ctx context.Context, doc *domdoc.Document) (created bool, err error)
}

// Extractor turns an uploaded file into plain text.
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}

// Analyzer produces structured metadata for a document.
type Analyzer interface {
	Analyze(ctx context.Context, title, content string) (analysis.Record, error)
}
