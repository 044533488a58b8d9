package analysis

import "context"

// Analyzer is the shared document analysis contract between layers.
type Analyzer interface {
	Analyze(ctx context.Context, title, content string) (Record, error)
}

// HealthChecker verifies analysis provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
