// Package analysiscache is a caching decorator around an analysis.Analyzer.
// Re-uploading the same document must not burn provider tokens twice.
package analysiscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/docintel-cloud/docintel/internal/db"
	"github.com/docintel-cloud/docintel/internal/domain"
	"github.com/docintel-cloud/docintel/internal/domain/analysis"
	"github.com/docintel-cloud/docintel/internal/domain/document"
)

var cacheKeyPrefix = domain.KeyPrefix + "analysis_cache:"

// store is the consumer interface for the analysis cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// cachedRecord is the storage representation of an analysis.Record.
type cachedRecord struct {
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	Tags       []string `json:"tags"`
	Department string  `json:"department"`
	DocType    string  `json:"type"`
	Language   string  `json:"language"`
	Status     string  `json:"status"`
	Tables     []cachedTable `json:"tables_data"`
}

type cachedTable struct {
	Caption string     `json:"caption"`
	Data    [][]string `json:"data"`
}

// CachedAnalyzer caches analysis records in a key-value store.
type CachedAnalyzer struct {
	inner      analysis.Analyzer
	store      store
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner analysis.Analyzer,
	s store,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedAnalyzer {
	return &CachedAnalyzer{
		inner:      inner,
		store:      s,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Analyze returns a cached record or calls the inner analyzer.
// The cache key covers both title and content: the same body under a
// different filename is a different document to the provider prompt.
func (c *CachedAnalyzer) Analyze(ctx context.Context, title, content string) (analysis.Record, error) {
	key := c.cacheKey(title, content)

	if rec, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return rec, nil
	}

	c.incCache("miss")

	rec, err := c.inner.Analyze(ctx, title, content)
	if err != nil {
		return analysis.Record{}, fmt.Errorf("analyze document: %w", err)
	}

	c.putToCache(ctx, key, rec)
	return rec, nil
}

func (c *CachedAnalyzer) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedAnalyzer) cacheKey(title, content string) string {
	h := sha256.New()
	h.Write([]byte(title))
	h.Write([]byte{0})
	h.Write([]byte(content))
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

func (c *CachedAnalyzer) getFromCache(ctx context.Context, key string) (analysis.Record, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached analysis", zap.String("key", key), zap.Error(err))
		}
		return analysis.Record{}, false
	}
	if len(data) == 0 {
		return analysis.Record{}, false
	}

	rec, err := decodeRecord(data)
	if err != nil {
		c.logger.Warn("Failed to parse cached analysis", zap.String("key", key), zap.Error(err))
		return analysis.Record{}, false
	}

	return rec, true
}

func (c *CachedAnalyzer) putToCache(ctx context.Context, key string, rec analysis.Record) {
	data, err := encodeRecord(rec)
	if err != nil {
		c.logger.Warn("Failed to encode analysis for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, data); err != nil {
		c.logger.Warn("Failed to cache analysis", zap.String("key", key), zap.Error(err))
	}
}

func encodeRecord(rec analysis.Record) ([]byte, error) {
	cr := cachedRecord{
		Title:      rec.Title,
		Summary:    rec.Summary,
		Tags:       rec.Tags,
		Department: rec.Department,
		DocType:    rec.DocType,
		Language:   rec.Language,
		Status:     string(rec.Status),
	}
	for _, tbl := range rec.Tables {
		cr.Tables = append(cr.Tables, cachedTable(tbl))
	}
	return json.Marshal(cr)
}

func decodeRecord(data []byte) (analysis.Record, error) {
	var cr cachedRecord
	if err := json.Unmarshal(data, &cr); err != nil {
		return analysis.Record{}, err
	}
	rec := analysis.Record{
		Title:      cr.Title,
		Summary:    cr.Summary,
		Tags:       cr.Tags,
		Department: cr.Department,
		DocType:    cr.DocType,
		Language:   cr.Language,
	}
	status, err := document.ParseStatus(cr.Status)
	if err != nil {
		return analysis.Record{}, err
	}
	rec.Status = status
	for _, tbl := range cr.Tables {
		rec.Tables = append(rec.Tables, document.Table(tbl))
	}
	return rec, nil
}
