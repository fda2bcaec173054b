package preflight_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tunegrab/internal/config"
	"tunegrab/internal/preflight"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	result := preflight.CheckDirectoryAccess("Output directory", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got %+v", result)
	}

	result = preflight.CheckDirectoryAccess("Output directory", filepath.Join(dir, "absent"))
	if result.Passed {
		t.Fatalf("expected failure for missing dir, got %+v", result)
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	result = preflight.CheckDirectoryAccess("Output directory", file)
	if result.Passed {
		t.Fatalf("expected failure for non-directory, got %+v", result)
	}
}

func TestCheckFreeSpace(t *testing.T) {
	dir := t.TempDir()

	result := preflight.CheckFreeSpace("Disk", dir, 1)
	if !result.Passed {
		t.Fatalf("expected at least one free byte, got %+v", result)
	}

	// An absurd floor must fail and report numbers.
	result = preflight.CheckFreeSpace("Disk", dir, 1<<62)
	if result.Passed {
		t.Fatalf("expected failure for impossible floor, got %+v", result)
	}
	if !strings.Contains(result.Detail, "free") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestRunAllCoversConfiguredDirs(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.TempDir = filepath.Join(base, "tmp")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	results := preflight.RunAll(&cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(results))
	}
	for _, result := range results {
		if !result.Passed {
			t.Fatalf("expected all checks to pass, got %+v", result)
		}
	}
}

func TestCheckSystemDepsReportsMissing(t *testing.T) {
	t.Setenv("PATH", "")
	cfg := config.Default()

	statuses := preflight.CheckSystemDeps(&cfg)
	if len(statuses) != 2 {
		t.Fatalf("expected yt-dlp and ffmpeg statuses, got %d", len(statuses))
	}
	for _, status := range statuses {
		if status.Available {
			t.Fatalf("expected unavailable with empty PATH, got %+v", status)
		}
	}
}
