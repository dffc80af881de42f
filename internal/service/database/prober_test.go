package database

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestProbeWithoutURLIsUnavailable(t *testing.T) {
	p := NewProber("", "", zap.NewNop())

	status := p.Probe(context.Background())
	if status.State != StateUnavailable {
		t.Fatalf("expected StateUnavailable, got %v", status.State)
	}
	if status.Detail != "" {
		t.Errorf("expected empty detail, got %q", status.Detail)
	}
	if len(status.Tables) != 0 {
		t.Errorf("expected no tables, got %v", status.Tables)
	}
}

func TestProbeUnreachableDatabase(t *testing.T) {
	// Port 1 is never a Postgres listener; the dial fails fast.
	p := NewProber("postgres://probe@127.0.0.1:1/db?sslmode=disable&connect_timeout=1", "db", zap.NewNop())

	status := p.Probe(context.Background())
	if status.State != StateAvailableNotInitialized {
		t.Fatalf("expected StateAvailableNotInitialized, got %v", status.State)
	}
	if status.Detail == "" {
		t.Error("expected a detail message for the failed connection")
	}
}
