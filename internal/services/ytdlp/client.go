package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"tunegrab/internal/fileutil"
	"tunegrab/internal/services"
)

// tempPrefix namespaces staged downloads so concurrent instances sharing a
// temp directory never collide on each other's files.
const tempPrefix = "tunegrab_"

// Fetcher defines the behaviour the batch runner needs from the client.
type Fetcher interface {
	Title(ctx context.Context, url string) (string, error)
	FetchAudio(ctx context.Context, url, destPath string) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithTempDir overrides the staging directory (defaults to os.TempDir).
func WithTempDir(dir string) Option {
	return func(c *Client) {
		if strings.TrimSpace(dir) != "" {
			c.tempDir = dir
		}
	}
}

// WithTokenSource overrides the uniqueness token generator (for tests).
func WithTokenSource(token func() string) Option {
	return func(c *Client) {
		if token != nil {
			c.token = token
		}
	}
}

// Client wraps yt-dlp CLI interactions.
type Client struct {
	binary       string
	tempDir      string
	fetchTimeout time.Duration
	titleTimeout time.Duration
	exec         Executor
	token        func() string
}

// New constructs a yt-dlp client. binary must already be resolved (see
// deps.Resolve); timeouts of zero disable the corresponding bound.
func New(binary string, fetchTimeoutSeconds, titleTimeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("yt-dlp binary required")
	}
	client := &Client{
		binary:       binary,
		tempDir:      os.TempDir(),
		fetchTimeout: time.Duration(fetchTimeoutSeconds) * time.Second,
		titleTimeout: time.Duration(titleTimeoutSeconds) * time.Second,
		exec:         commandExecutor{},
		token:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Title resolves the human-readable video title via a metadata-only
// invocation. Callers treat failure as non-fatal and substitute a fallback.
func (c *Client) Title(ctx context.Context, url string) (string, error) {
	titleCtx := ctx
	if c.titleTimeout > 0 {
		var cancel context.CancelFunc
		titleCtx, cancel = context.WithTimeout(ctx, c.titleTimeout)
		defer cancel()
	}

	var tail outputTail
	err := c.exec.Run(titleCtx, c.binary, []string{"--get-title", url}, tail.Append)
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "ytdlp", "title", tail.String(), err)
	}
	for _, line := range tail.Lines() {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", services.Wrap(services.ErrExternalTool, "ytdlp", "title", "no title on stdout", nil)
}

// FetchAudio downloads url and transcodes it to MP3 at destPath.
//
// The download is staged under a process-unique temp name; yt-dlp picks the
// working extension itself via the %(ext)s template, so the produced file is
// located afterwards by prefix and relocated to destPath.
func (c *Client) FetchAudio(ctx context.Context, url, destPath string) error {
	if strings.TrimSpace(destPath) == "" {
		return services.Wrap(services.ErrInvalidInput, "ytdlp", "fetch", "destination path required", nil)
	}

	fetchCtx := ctx
	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
		defer cancel()
	}

	stem := tempPrefix + c.token()
	template := filepath.Join(c.tempDir, stem+".%(ext)s")
	args := []string{"-x", "--audio-format", "mp3", "--audio-quality", "0", "-o", template, url}

	var tail outputTail
	runErr := c.exec.Run(fetchCtx, c.binary, args, tail.Append)
	if runErr != nil {
		c.cleanupStaged(stem)
		if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) {
			return services.Wrap(services.ErrExternalTool, "ytdlp", "fetch",
				fmt.Sprintf("timed out after %s", c.fetchTimeout), runErr)
		}
		return services.Wrap(services.ErrExternalTool, "ytdlp", "fetch", tail.String(), runErr)
	}

	staged, err := c.locateStaged(stem)
	if err != nil {
		return err
	}

	if err := fileutil.MoveFile(staged, destPath); err != nil {
		c.cleanupStaged(stem)
		return services.Wrap(services.ErrFileNotProduced, "ytdlp", "relocate", tail.String(), err)
	}
	c.cleanupStaged(stem)

	if _, err := os.Stat(destPath); err != nil {
		return services.Wrap(services.ErrFileNotProduced, "ytdlp", "verify",
			fmt.Sprintf("no file at %s; tool output: %s", destPath, tail.String()), err)
	}
	return nil
}

// locateStaged finds the file yt-dlp actually produced for the given stem.
// With multiple matches (intermediate containers left behind) the newest
// wins, matching what the post-processor wrote last.
func (c *Client) locateStaged(stem string) (string, error) {
	entries, err := os.ReadDir(c.tempDir)
	if err != nil {
		return "", services.Wrap(services.ErrFileNotProduced, "ytdlp", "locate", "inspect temp directory", err)
	}

	var best string
	var bestMod time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), stem) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if best == "" || info.ModTime().After(bestMod) {
			best = filepath.Join(c.tempDir, entry.Name())
			bestMod = info.ModTime()
		}
	}
	if best == "" {
		return "", services.Wrap(services.ErrFileNotProduced, "ytdlp", "locate",
			fmt.Sprintf("no staged file matching %s*", filepath.Join(c.tempDir, stem)), nil)
	}
	return best, nil
}

func (c *Client) cleanupStaged(stem string) {
	entries, err := os.ReadDir(c.tempDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), stem) {
			continue
		}
		_ = os.Remove(filepath.Join(c.tempDir, entry.Name()))
	}
}

var _ Fetcher = (*Client)(nil)
