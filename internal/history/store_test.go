package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tunegrab/internal/config"
	"tunegrab/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.TempDir = filepath.Join(base, "tmp")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	store, err := history.Open(&cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	entries := []history.Entry{
		{URL: "https://youtu.be/a", Title: "First", OutputPath: "/music/First.mp3", Success: true},
		{URL: "https://youtu.be/b", Message: "external tool error: exit status 1"},
		{URL: "https://youtu.be/c", Title: "Third", OutputPath: "/music/Third.mp3", Success: true,
			CompletedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
	}
	for _, entry := range entries {
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}
	// Newest first.
	if recent[0].URL != "https://youtu.be/c" {
		t.Fatalf("expected newest entry first, got %q", recent[0].URL)
	}
	if !recent[0].CompletedAt.Equal(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected completed_at: %v", recent[0].CompletedAt)
	}
	if recent[1].Success {
		t.Fatalf("expected failure entry for b, got %+v", recent[1])
	}
	if recent[1].Message == "" {
		t.Fatal("failure entry must keep its message")
	}
}

func TestRecentLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := store.Record(ctx, history.Entry{URL: "https://youtu.be/x", Success: true}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected limit to apply, got %d entries", len(recent))
	}
}

func TestSummaryCounts(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	outcomes := []bool{true, true, false, true}
	for _, success := range outcomes {
		if err := store.Record(ctx, history.Entry{URL: "https://youtu.be/x", Success: success}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	counts, err := store.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if counts.Total != 4 || counts.Succeeded != 3 || counts.Failed != 1 {
		t.Fatalf("unexpected counts %+v", counts)
	}
}

func TestSummaryEmpty(t *testing.T) {
	store := openStore(t)
	counts, err := store.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if counts.Total != 0 || counts.Succeeded != 0 || counts.Failed != 0 {
		t.Fatalf("expected zero counts, got %+v", counts)
	}
}
