// Package intake implements the upload pipeline: extract text, analyze it,
// persist the resulting document.
package intake

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/docintel-cloud/docintel/internal/domain"
	"github.com/docintel-cloud/docintel/internal/domain/analysis"
	domdoc "github.com/docintel-cloud/docintel/internal/domain/document"
	"github.com/docintel-cloud/docintel/internal/logger"
	"github.com/docintel-cloud/docintel/internal/metrics"
)

// Service handles document ingestion.
type Service struct {
	saver     Saver
	extractor Extractor
	analyzer  Analyzer // nil when no provider is configured
	now       func() time.Time
	newID     func() string
}

// New creates an intake service. analyzer may be nil; ingestion then stores
// the fallback record instead of failing.
func New(saver Saver, extractor Extractor, analyzer Analyzer) *Service {
	return &Service{
		saver:     saver,
		extractor: extractor,
		analyzer:  analyzer,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Ingest extracts text from the uploaded file, analyzes it and stores the
// document. Analysis failure degrades to a fallback record rather than
// failing the upload.
func (s *Service) Ingest(ctx context.Context, filename string, data []byte) (domdoc.Document, error) {
	content, err := s.extractor.Extract(filename, data)
	if err != nil {
		metrics.DocumentsIngestedTotal.WithLabelValues(fileType(filename), "rejected").Inc()
		return domdoc.Document{}, fmt.Errorf("extract text: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		metrics.DocumentsIngestedTotal.WithLabelValues(fileType(filename), "rejected").Inc()
		return domdoc.Document{}, fmt.Errorf("no extractable text in %s: %w", filename, domain.ErrEmptyDocument)
	}

	rec, analyzed := s.analyze(ctx, filename, content)

	doc, err := domdoc.New(domdoc.Fields{
		ID:         s.newID(),
		Title:      rec.Title,
		Summary:    rec.Summary,
		Content:    content,
		Tags:       rec.Tags,
		Department: rec.Department,
		DocType:    rec.DocType,
		Language:   rec.Language,
		Status:     rec.Status,
		Tables:     rec.Tables,
		Source:     "uploaded",
		Starred:    false,
		UploadedAt: s.now(),
	})
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("build document: %w", err)
	}

	if _, err := s.saver.Save(ctx, &doc); err != nil {
		return domdoc.Document{}, fmt.Errorf("save document: %w", err)
	}

	result := "fallback"
	if analyzed {
		result = "analyzed"
	}
	metrics.DocumentsIngestedTotal.WithLabelValues(fileType(filename), result).Inc()

	return doc, nil
}

// analyze returns the provider record, or the fallback when the provider is
// absent or fails. The second return reports whether real analysis happened.
func (s *Service) analyze(ctx context.Context, filename, content string) (analysis.Record, bool) {
	if s.analyzer == nil {
		return analysis.Fallback("no analysis provider configured"), false
	}

	rec, err := s.analyzer.Analyze(ctx, filename, content)
	if err != nil {
		logger.FromContext(ctx).Warn("Document analysis failed, storing fallback record",
			zap.String("filename", filename), zap.Error(err))
		return analysis.Fallback(err.Error()), false
	}
	return rec, true
}

func fileType(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}
