package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// AnalysisChecker checks analysis provider availability.
type AnalysisChecker interface {
	HealthCheck(ctx context.Context) error
}
