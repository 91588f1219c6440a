// Package estimator implements the optional work-estimates file loader
// described in spec.md §4.5: "path|nonnegative-integer" lines used to
// seed the scheduler's ready-queue priority.
package estimator

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/foundryhq/cbe/internal/core/domain"
	"github.com/foundryhq/cbe/internal/core/ports"
)

// FileEstimator maps a path to its declared work weight. A missing
// file, an unknown path, or a malformed entry all resolve to 0 rather
// than an error — the estimator is a priority hint, never load-bearing.
type FileEstimator struct {
	mu      sync.RWMutex
	weights map[domain.Path]int
}

var _ ports.WorkEstimator = (*FileEstimator)(nil)

// Load reads an estimates file. A non-existent file is treated as
// empty rather than an error.
func Load(path string) (*FileEstimator, error) {
	e := &FileEstimator{weights: make(map[domain.Path]int)}

	f, err := os.Open(path) //nolint:gosec // path is a build-time argument, not untrusted input
	if err != nil {
		if os.IsNotExist(err) {
			return e, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimRight(scanner.Text(), "\r"))
		if line == "" {
			continue
		}
		p, weightStr, ok := strings.Cut(line, "|")
		if !ok {
			continue
		}
		weight, err := strconv.Atoi(weightStr)
		if err != nil || weight < 0 {
			continue
		}
		e.weights[domain.NewPath(p)] = weight
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return e, nil
}

// Estimate returns the declared weight for path, or 0 if it was never
// declared or the file wasn't loaded.
func (e *FileEstimator) Estimate(path domain.Path) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.weights[path]
}
