// Package runner implements ports.ProcessRunner by spawning a child
// process with os/exec, mirroring the sub-process wiring the teacher
// uses for shelling out to task commands.
package runner

import (
	"context"
	"os/exec"

	"github.com/foundryhq/cbe/internal/core/domain"
	"github.com/foundryhq/cbe/internal/core/ports"
	"go.trai.ch/zerr"
)

// ExecRunner runs argv as a child process, streaming its stdout/stderr
// through the given writer (typically the process's own, or a captured
// buffer in tests).
type ExecRunner struct {
	Stdout, Stderr writer
}

type writer interface {
	Write(p []byte) (int, error)
}

var _ ports.ProcessRunner = (*ExecRunner)(nil)

// New returns an ExecRunner that streams to stdout and stderr.
func New(stdout, stderr writer) *ExecRunner {
	return &ExecRunner{Stdout: stdout, Stderr: stderr}
}

// Run spawns argv[0] with argv[1:] as arguments and waits for it to
// exit. A failure to start the process is reported as ErrSpawnFailed;
// a non-zero exit is reported via the returned exit code with a nil
// error, letting the scheduler decide what a failing exit means.
func (r *ExecRunner) Run(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, zerr.With(domain.ErrSpawnFailed, "reason", "empty argv")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is synthesised from the manifest, not user shell input
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if ok := isExitError(err, &exitErr); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.With(zerr.With(domain.ErrSpawnFailed, "argv0", argv[0]), "reason", err.Error())
	}
	return 0, nil
}

func isExitError(err error, target **exec.ExitError) bool {
	if ee, ok := err.(*exec.ExitError); ok {
		*target = ee
		return true
	}
	return false
}
