package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDependencyMissing marks a required external binary that cannot be
	// resolved. Fatal; checked once before any work begins.
	ErrDependencyMissing = errors.New("dependency missing")
	// ErrNotFound marks an input file or expected output file that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrExternalTool marks a subprocess that exited nonzero or timed out.
	ErrExternalTool = errors.New("external tool error")
	// ErrFileNotProduced marks a post-condition failure: the subprocess
	// reported success but the expected file is absent.
	ErrFileNotProduced = errors.New("file not produced")
	// ErrInvalidInput marks an empty or malformed URL supplied by the user.
	ErrInvalidInput = errors.New("invalid input")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether an error should abort a run before any item is
// processed rather than being recorded against a single batch item.
func Fatal(err error) bool {
	return errors.Is(err, ErrDependencyMissing)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
