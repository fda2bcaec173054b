package batch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"tunegrab/internal/config"
	"tunegrab/internal/logging"
	"tunegrab/internal/services/ytdlp"
	"tunegrab/internal/textutil"
)

// Result records the outcome of a single URL.
type Result struct {
	URL     string
	Success bool
	// Message carries the error text for failed items.
	Message string
	// Output is the final MP3 path for successful items.
	Output string
}

// Summary aggregates a finished batch for reporting.
type Summary struct {
	Succeeded int
	Total     int
	Failures  []Result
}

// Summarize derives a Summary from a result list.
func Summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}
	for _, result := range results {
		if result.Success {
			summary.Succeeded++
			continue
		}
		summary.Failures = append(summary.Failures, result)
	}
	return summary
}

// Runner applies the download pipeline to each URL in a set.
type Runner struct {
	fetcher        ytdlp.Fetcher
	outputDir      string
	titleMaxLength int
	workers        int
	logger         *slog.Logger
}

// NewRunner wires a runner from configuration. logger may be nil.
func NewRunner(fetcher ytdlp.Fetcher, cfg *config.Config, logger *slog.Logger) *Runner {
	workers := cfg.Batch.Workers
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		fetcher:        fetcher,
		outputDir:      cfg.Paths.OutputDir,
		titleMaxLength: cfg.Output.FilenameMaxLength,
		workers:        workers,
		logger:         logging.NewComponentLogger(logger, "batch"),
	}
}

// Run processes every URL in the set and returns one Result per item.
// A single item's failure never aborts the batch. With workers > 1 items are
// consumed by a bounded pool and result order follows completion order.
func (r *Runner) Run(ctx context.Context, urls *Set) []Result {
	pending := urls.Values()
	if len(pending) == 0 {
		return nil
	}

	if r.workers == 1 {
		results := make([]Result, 0, len(pending))
		for _, url := range pending {
			results = append(results, r.ProcessOne(ctx, url))
		}
		return results
	}

	work := make(chan string)
	var mu sync.Mutex
	results := make([]Result, 0, len(pending))

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for url := range work {
				result := r.ProcessOne(ctx, url)
				mu.Lock()
				results = append(results, result)
				mu.Unlock()
			}
		}()
	}

	for _, url := range pending {
		work <- url
	}
	close(work)
	wg.Wait()

	return results
}

// ProcessOne resolves the destination for a single URL and fetches it.
// Title lookup failure is non-fatal; the fallback title is used instead.
func (r *Runner) ProcessOne(ctx context.Context, url string) Result {
	logger := r.logger.With(slog.String(logging.FieldURL, url))

	title, err := r.fetcher.Title(ctx, url)
	if err != nil {
		logger.Warn("title lookup failed, using fallback", logging.Error(err))
		title = textutil.FallbackTitle
	}
	sanitized := textutil.SanitizeTitle(title, r.titleMaxLength)
	destPath := filepath.Join(r.outputDir, sanitized+".mp3")

	logger.Info("fetching audio", slog.String(logging.FieldOutput, destPath))
	if err := r.fetcher.FetchAudio(ctx, url, destPath); err != nil {
		logger.Error("fetch failed", logging.Error(err))
		return Result{URL: url, Message: err.Error()}
	}

	logger.Info("saved", slog.String(logging.FieldOutput, destPath))
	return Result{URL: url, Success: true, Output: destPath}
}
