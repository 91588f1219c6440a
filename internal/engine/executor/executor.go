// Package executor implements the Executor facade (spec.md §4.7): the
// four entry points a caller drives a build through — Execute, Clean,
// EmitGraph and EmitCompDB.
package executor

import (
	"context"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/foundryhq/cbe/internal/adapters/emit"
	"github.com/foundryhq/cbe/internal/core/domain"
	"github.com/foundryhq/cbe/internal/core/ports"
	"github.com/foundryhq/cbe/internal/engine/scheduler"
	"github.com/foundryhq/cbe/internal/staleness"
)

// Synthesizer builds the argv for a step.
type Synthesizer interface {
	Build(step domain.BuildStep, defs domain.Definitions) ([]string, error)
}

// Executor binds a loaded build graph to the collaborators needed to
// run, clean, or introspect it.
type Executor struct {
	Graph     *domain.BuildGraph
	Defs      domain.Definitions
	Oracle    *staleness.Oracle
	Synth     Synthesizer
	Runner    ports.ProcessRunner
	Estimator ports.WorkEstimator
	Logger    ports.Logger
	Reporter  scheduler.Reporter
	Jobs      int
	DryRun    bool
}

// Execute runs the scheduler over Graph to completion.
func (e *Executor) Execute(ctx context.Context) error {
	s := scheduler.New(e.Graph, e.Oracle, e.Synth, e.Runner, e.Estimator, e.Defs, e.Jobs, e.DryRun, e.Reporter)
	return s.Run(ctx)
}

// Clean removes every step's output and its ".d" depfile and ".rsp"
// response-file siblings, if present. Per-path errors are logged, not returned — one unremovable
// artifact should not block cleaning the rest (spec.md §4.7).
func (e *Executor) Clean(ctx context.Context) error {
	steps := e.Graph.Steps()
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, step := range steps {
		step := step
		g.Go(func() error {
			e.removeIfExists(step.Output.String())
			e.removeIfExists(step.Output.String() + ".d")
			e.removeIfExists(step.Output.String() + ".rsp")
			return nil
		})
	}
	return g.Wait()
}

func (e *Executor) removeIfExists(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		if e.Logger != nil {
			e.Logger.Warn("failed to remove " + path + ": " + err.Error())
		}
	}
}

// EmitGraph writes a DOT rendering of Graph to w, colouring producer
// nodes by whether the oracle would rebuild them right now.
func (e *Executor) EmitGraph(w io.Writer) error {
	if _, err := e.Graph.TopologicalOrder(); err != nil {
		return err
	}
	return emit.DOT(w, e.Graph, func(stepID int) bool {
		return e.Oracle.NeedsRebuild(e.Graph.Steps()[stepID])
	})
}

// EmitCompDB writes a JSON compilation database for Graph's cc/cxx
// steps to w, using directory as the recorded working directory.
func (e *Executor) EmitCompDB(w io.Writer, directory string) error {
	if _, err := e.Graph.TopologicalOrder(); err != nil {
		return err
	}
	return emit.CompDB(w, e.Graph, e.Defs, e.Synth, directory)
}
