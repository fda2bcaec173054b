// Package deps resolves the external binaries tunegrab shells out to.
//
// Resolution happens once at startup and the resolved paths are injected
// into the components that execute them, so a missing tool fails fast
// before any download work begins.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"tunegrab/internal/services"
)

// Requirement defines an external dependency tunegrab relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Command = resolved
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Resolve looks up command on PATH and returns its absolute path, or an
// ErrDependencyMissing-tagged error when absent.
func Resolve(name, command string) (string, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return "", services.Wrap(services.ErrDependencyMissing, "deps", "resolve", fmt.Sprintf("%s command not configured", name), nil)
	}
	resolved, err := exec.LookPath(command)
	if err != nil {
		return "", services.Wrap(services.ErrDependencyMissing, "deps", "resolve",
			fmt.Sprintf("%s binary %q not found in PATH; install it and retry", name, command), err)
	}
	return resolved, nil
}
