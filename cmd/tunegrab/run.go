package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"tunegrab/internal/batch"
	"tunegrab/internal/config"
	"tunegrab/internal/deps"
	"tunegrab/internal/history"
	"tunegrab/internal/logging"
	"tunegrab/internal/preflight"
	"tunegrab/internal/services"
	"tunegrab/internal/services/ytdlp"
	"tunegrab/internal/videourl"
)

// pipeline bundles the wired components a processing command needs. The
// flock serializes runs that share an output directory and history database.
type pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
	runner *batch.Runner
	store  *history.Store
	lock   *flock.Flock
}

func newPipeline(ctx *commandContext) (*pipeline, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	// Dependency resolution happens once, before any work begins. yt-dlp
	// needs ffmpeg for the MP3 extraction, so its absence aborts here
	// instead of mid-download.
	binary, err := deps.Resolve("yt-dlp", cfg.YtDlpBinary())
	if err != nil {
		return nil, err
	}
	if ffmpeg := deps.CheckFFmpegForYtDlp(binary); !ffmpeg.Available {
		return nil, services.Wrap(services.ErrDependencyMissing, "deps", "resolve",
			fmt.Sprintf("ffmpeg not found (%s); install it and retry", ffmpeg.Detail), nil)
	}

	for _, check := range preflight.RunAll(cfg) {
		if !check.Passed {
			return nil, fmt.Errorf("preflight: %s: %s", check.Name, check.Detail)
		}
	}

	lock := flock.New(cfg.LockPath())
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("another tunegrab run holds %s; wait for it to finish", cfg.LockPath())
	}

	store, err := history.Open(cfg)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open history: %w", err)
	}

	client, err := ytdlp.New(binary, cfg.Tools.FetchTimeoutSeconds, cfg.Tools.TitleTimeoutSeconds,
		ytdlp.WithTempDir(cfg.Paths.TempDir))
	if err != nil {
		_ = store.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return &pipeline{
		cfg:    cfg,
		logger: logger,
		runner: batch.NewRunner(client, cfg, logger),
		store:  store,
		lock:   lock,
	}, nil
}

func (p *pipeline) Close() {
	_ = p.store.Close()
	_ = p.lock.Unlock()
}

func (p *pipeline) record(cmd *cobra.Command, result batch.Result) {
	entry := history.Entry{
		URL:        result.URL,
		OutputPath: result.Output,
		Success:    result.Success,
		Message:    result.Message,
	}
	if result.Output != "" {
		entry.Title = strings.TrimSuffix(filepath.Base(result.Output), ".mp3")
	}
	if err := p.store.Record(cmd.Context(), entry); err != nil {
		p.logger.Warn("record history", logging.Error(err))
	}
}

func runSingle(cmd *cobra.Command, ctx *commandContext, url string) error {
	p, err := newPipeline(ctx)
	if err != nil {
		return err
	}
	defer p.Close()

	out := cmd.OutOrStdout()
	if url == "" {
		fmt.Fprint(out, "Enter the video URL: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return services.Wrap(services.ErrInvalidInput, "cli", "prompt", "no URL entered", err)
		}
		url = line
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return services.Wrap(services.ErrInvalidInput, "cli", "prompt", "no URL entered", nil)
	}
	if !videourl.Supported(url) {
		return services.Wrap(services.ErrInvalidInput, "cli", "validate",
			fmt.Sprintf("%q is not a supported video URL", url), nil)
	}

	fmt.Fprintf(out, "Processing %s\n", url)
	result := p.runner.ProcessOne(cmd.Context(), url)
	p.record(cmd, result)

	if !result.Success {
		return fmt.Errorf("download failed: %s", result.Message)
	}
	fmt.Fprintf(out, "Saved %s\n", result.Output)
	return nil
}

func runBatch(cmd *cobra.Command, ctx *commandContext, listPath string) error {
	p, err := newPipeline(ctx)
	if err != nil {
		return err
	}
	defer p.Close()

	expanded, err := config.ExpandPath(listPath)
	if err != nil {
		return err
	}
	urls, invalid, err := batch.ReadFile(expanded)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %d URL(s) from %s", urls.Len(), expanded)
	if invalid > 0 {
		fmt.Fprintf(out, " (%d invalid line(s) skipped)", invalid)
	}
	fmt.Fprintln(out)

	if urls.Len() == 0 {
		return services.Wrap(services.ErrInvalidInput, "cli", "batch", "no valid URLs in list file", nil)
	}

	results := p.runner.Run(cmd.Context(), urls)
	for _, result := range results {
		p.record(cmd, result)
	}

	summary := batch.Summarize(results)
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		status := "ok"
		detail := result.Output
		if !result.Success {
			status = "failed"
			detail = result.Message
		}
		rows = append(rows, []string{result.URL, status, detail})
	}
	fmt.Fprintln(out, renderTable(out, []string{"URL", "Status", "Detail"}, rows))
	fmt.Fprintf(out, "%d/%d succeeded\n", summary.Succeeded, summary.Total)

	if len(summary.Failures) > 0 {
		return fmt.Errorf("%d of %d downloads failed", len(summary.Failures), summary.Total)
	}
	return nil
}
