package analysiscache

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/docintel-cloud/docintel/internal/db"
	"github.com/docintel-cloud/docintel/internal/domain/analysis"
	"github.com/docintel-cloud/docintel/internal/domain/document"
)

type mockAnalyzer struct {
	result analysis.Record
	err    error
	calls  int
}

func (m *mockAnalyzer) Analyze(_ context.Context, _, _ string) (analysis.Record, error) {
	m.calls++
	return m.result, m.err
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return nil
}

func newTestCachedAnalyzer(t *testing.T, inner *mockAnalyzer) (*CachedAnalyzer, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	ca := New(inner, ms, nil, zap.NewNop())
	return ca, ms
}

func testRecord() analysis.Record {
	return analysis.Record{
		Title:      "Track Inspection Circular",
		Summary:    "Quarterly inspection schedule for the northern line.",
		Tags:       []string{"safety", "inspection"},
		Department: "Operations",
		DocType:    "Safety Circular",
		Language:   "English",
		Status:     document.StatusUrgent,
		Tables: []document.Table{
			{Caption: "Schedule", Data: [][]string{{"Line", "Date"}, {"North", "2025-06-01"}}},
		},
	}
}
