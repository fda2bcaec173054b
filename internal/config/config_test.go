package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tunegrab/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected exists=false for missing file at %s", path)
	}
	if cfg.Tools.YtDlp != "yt-dlp" {
		t.Fatalf("expected default ytdlp binary, got %q", cfg.Tools.YtDlp)
	}
	if cfg.Batch.Workers != 1 {
		t.Fatalf("expected sequential default, got %d workers", cfg.Batch.Workers)
	}
	if !filepath.IsAbs(cfg.Paths.OutputDir) {
		t.Fatalf("expected normalized absolute output dir, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Paths.TempDir == "" {
		t.Fatal("expected temp dir to default to the system temp dir")
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	body := `
[paths]
output_dir = "` + filepath.Join(dir, "out") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[tools]
ytdlp = "custom-ytdlp"
fetch_timeout = 90

[batch]
workers = 3
`
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, path, exists, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || path != cfgPath {
		t.Fatalf("expected config at %s to load, got path=%s exists=%v", cfgPath, path, exists)
	}
	if cfg.Tools.YtDlp != "custom-ytdlp" {
		t.Fatalf("unexpected binary: %q", cfg.Tools.YtDlp)
	}
	if cfg.Tools.FetchTimeoutSeconds != 90 {
		t.Fatalf("unexpected fetch timeout: %d", cfg.Tools.FetchTimeoutSeconds)
	}
	if cfg.Tools.TitleTimeoutSeconds != 60 {
		t.Fatalf("expected default title timeout, got %d", cfg.Tools.TitleTimeoutSeconds)
	}
	if cfg.Batch.Workers != 3 {
		t.Fatalf("unexpected workers: %d", cfg.Batch.Workers)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"too many workers", "[batch]\nworkers = 99\n", "batch.workers"},
		{"bad log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad log level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfgPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(cfgPath, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(cfgPath)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q error, got %v", tc.want, err)
			}
		})
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	expanded, err := config.ExpandPath("~/music")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if expanded != filepath.Join(home, "music") {
		t.Fatalf("unexpected expansion: %q", expanded)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Tools.YtDlp != "yt-dlp" {
		t.Fatalf("sample should carry defaults, got %q", cfg.Tools.YtDlp)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.TempDir = filepath.Join(base, "tmp")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.TempDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s, err=%v", dir, err)
		}
	}
}
