package preflight

import (
	"tunegrab/internal/config"
	"tunegrab/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// minFreeBytes is the free-space floor for the output directory. A single
// fetch rarely exceeds a few hundred MiB, so 1 GiB leaves headroom for a
// batch.
const minFreeBytes = 1 << 30

// RunAll executes the filesystem preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir),
		CheckDirectoryAccess("Temp directory", cfg.Paths.TempDir),
		CheckFreeSpace("Output disk space", cfg.Paths.OutputDir, minFreeBytes),
	}
}

// CheckSystemDeps evaluates the external binaries a run needs. Both the
// processing paths and the "deps" command use this to avoid duplicating the
// requirements list.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "yt-dlp",
			Command:     cfg.YtDlpBinary(),
			Description: "Required for downloading and MP3 extraction",
		},
	}
	statuses := deps.CheckBinaries(requirements)
	statuses = append(statuses, deps.CheckFFmpegForYtDlp(cfg.YtDlpBinary()))
	return statuses
}
