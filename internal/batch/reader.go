package batch

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"tunegrab/internal/services"
	"tunegrab/internal/videourl"
)

// ReadFile parses a line-oriented URL list. Blank lines and #-comments are
// skipped; remaining lines are trimmed and validated. Valid URLs are
// collected into a deduplicated set, invalid lines are counted but never
// abort the read. A missing file is an ErrNotFound-tagged error.
func ReadFile(path string) (*Set, int, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, services.Wrap(services.ErrNotFound, "batch", "read",
				fmt.Sprintf("url list %s does not exist", path), err)
		}
		return nil, 0, fmt.Errorf("open url list: %w", err)
	}
	defer file.Close()

	urls := NewSet()
	invalid := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !videourl.Supported(line) {
			invalid++
			continue
		}
		urls.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan url list: %w", err)
	}

	return urls, invalid, nil
}
