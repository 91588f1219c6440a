package ports

import "github.com/foundryhq/cbe/internal/core/domain"

// WorkEstimator maps an output path to an integer work weight used to
// seed ready-queue priority. Unknown paths and a missing estimates
// file both resolve to 0 (spec.md §4.5).
//
//go:generate go run go.uber.org/mock/mockgen -source=estimator.go -destination=mocks/mock_estimator.go -package=mocks
type WorkEstimator interface {
	Estimate(path domain.Path) int
}
