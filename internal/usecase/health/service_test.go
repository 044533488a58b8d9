package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type mockChecker struct{ err error }

func (m *mockChecker) HealthCheck(_ context.Context) error { return m.err }

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockPinger{}, &mockChecker{})
	report := svc.Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("expected ok, got %s", report.Status)
	}
	if report.Checks["database"] != CheckOK || report.Checks["analysis"] != CheckOK {
		t.Errorf("unexpected checks: %v", report.Checks)
	}
}

func TestCheck_DatabaseDown(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("connection refused")}, &mockChecker{})
	report := svc.Check(context.Background())

	if report.Status != Degraded {
		t.Errorf("expected degraded, got %s", report.Status)
	}
	if report.Checks["database"] != CheckError {
		t.Errorf("expected database error, got %v", report.Checks)
	}
}

func TestCheck_AnalysisDown(t *testing.T) {
	svc := New(&mockPinger{}, &mockChecker{err: errors.New("bad gateway")})
	report := svc.Check(context.Background())

	if report.Status != Degraded {
		t.Errorf("expected degraded, got %s", report.Status)
	}
}

func TestCheck_NoAnalysisProvider(t *testing.T) {
	svc := New(&mockPinger{}, nil)
	report := svc.Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("expected ok, got %s", report.Status)
	}
	if _, present := report.Checks["analysis"]; present {
		t.Error("analysis check must be absent when no provider is configured")
	}
}
