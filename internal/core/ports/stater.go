package ports

import (
	"time"

	"github.com/foundryhq/cbe/internal/core/domain"
)

// Stater resolves a path's last-write time. Implementations memoise
// lookups (StatCache, spec.md §4.2); the StalenessOracle never touches
// the filesystem directly.
//
//go:generate go run go.uber.org/mock/mockgen -source=stater.go -destination=mocks/mock_stater.go -package=mocks
type Stater interface {
	ModTime(path domain.Path) (time.Time, error)
}
