package ports

import "context"

// ProcessRunner spawns a command vector and reports how it finished.
// The core treats any non-zero ExitCode as a step failure, and a
// non-nil error with no exit code as a spawn failure.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	Run(ctx context.Context, argv []string) (exitCode int, err error)
}
