// Package scheduler implements the priority-ordered parallel scheduler
// that drives a build graph to completion: a fixed pool of worker
// goroutines multiplexed over a shared, mutex-and-condition-variable
// guarded ready set.
package scheduler

import (
	"container/heap"
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/foundryhq/cbe/internal/core/domain"
	"github.com/foundryhq/cbe/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reporter receives step lifecycle events for progress display. All
// methods must be safe for concurrent use. A nil Reporter disables
// progress output.
type Reporter interface {
	Started(output string)
	Done(output string)
	Failed(output string)
	Skipped(output string)
}

// Synthesizer builds the argv for a step; internal/adapters/synth.Synth
// satisfies this.
type Synthesizer interface {
	Build(step domain.BuildStep, defs domain.Definitions) ([]string, error)
}

// Oracle decides whether a step is stale; internal/staleness.Oracle
// satisfies this.
type Oracle interface {
	NeedsRebuild(step domain.BuildStep) bool
}

// Scheduler executes a build graph. One Scheduler is used for exactly
// one Run.
type Scheduler struct {
	graph     *domain.BuildGraph
	oracle    Oracle
	synth     Synthesizer
	runner    ports.ProcessRunner
	estimator ports.WorkEstimator
	defs      domain.Definitions
	reporter  Reporter
	jobs      int
	dryRun    bool

	mu        sync.Mutex
	cond      *sync.Cond
	inDegree  []int
	ready     *readyHeap
	seq       int
	active    int
	completed int
	total     int
	errored   bool
	firstErr  error
}

// New returns a Scheduler for graph. jobs <= 0 means "use
// runtime.NumCPU()"; dryRun means steps are reported and bookkept but
// never invoked.
func New(
	graph *domain.BuildGraph,
	oracle Oracle,
	synth Synthesizer,
	runner ports.ProcessRunner,
	estimator ports.WorkEstimator,
	defs domain.Definitions,
	jobs int,
	dryRun bool,
	reporter Reporter,
) *Scheduler {
	s := &Scheduler{
		graph:     graph,
		oracle:    oracle,
		synth:     synth,
		runner:    runner,
		estimator: estimator,
		defs:      defs,
		reporter:  reporter,
		jobs:      jobs,
		dryRun:    dryRun,
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Run executes the graph to completion and returns the aggregate
// error, if any. It is not safe to call Run more than once.
func (s *Scheduler) Run(ctx context.Context) error {
	nodes := s.graph.Nodes()
	s.total = len(nodes)
	s.inDegree = make([]int, len(nodes))
	for _, n := range nodes {
		for _, out := range n.OutEdges {
			s.inDegree[out]++
		}
	}

	rh := make(readyHeap, 0, len(nodes))
	s.ready = &rh
	for i, n := range nodes {
		if s.inDegree[i] == 0 {
			heap.Push(s.ready, &readyItem{nodeID: i, estimate: s.estimator.Estimate(n.Path), seq: s.nextSeq()})
		}
	}

	numWorkers := s.jobs
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			s.worker(ctx)
		}()
	}
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errored {
		return fmt.Errorf("%w: %w", domain.ErrBuildFailed, s.firstErr)
	}
	if s.completed != s.total {
		return domain.ErrCycleDetected
	}
	return nil
}

func (s *Scheduler) nextSeq() int {
	s.seq++
	return s.seq
}

func (s *Scheduler) worker(ctx context.Context) {
	for {
		s.mu.Lock()
		for s.ready.Len() == 0 && s.completed != s.total && s.active != 0 {
			s.cond.Wait()
		}
		if s.ready.Len() == 0 {
			// Either every node completed, or the pool stalled with
			// work outstanding — the caller distinguishes the two by
			// comparing completed against total after Wait returns.
			s.mu.Unlock()
			return
		}
		item := heap.Pop(s.ready).(*readyItem)
		s.active++
		s.mu.Unlock()

		node := s.graph.Nodes()[item.nodeID]
		var failed bool
		var stepErr error
		if node.StepID != nil {
			step := s.graph.Steps()[*node.StepID]
			failed, stepErr = s.processStep(ctx, step)
		}

		s.mu.Lock()
		s.active--
		newReady := 0
		if failed {
			s.errored = true
			s.completed = s.total
			if s.firstErr == nil {
				s.firstErr = stepErr
			}
		} else {
			s.completed++
			for _, succ := range node.OutEdges {
				s.inDegree[succ]--
				if s.inDegree[succ] == 0 {
					weight := s.estimator.Estimate(s.graph.Nodes()[succ].Path)
					heap.Push(s.ready, &readyItem{nodeID: succ, estimate: weight, seq: s.nextSeq()})
					newReady++
				}
			}
		}

		finished := s.completed == s.total
		stalled := !finished && s.ready.Len() == 0 && s.active == 0

		switch {
		case finished || s.errored || stalled:
			s.cond.Broadcast()
		case newReady == 1:
			s.cond.Signal()
		case newReady >= 10:
			s.cond.Broadcast()
		case newReady > 0:
			for i := 0; i < newReady; i++ {
				s.cond.Signal()
			}
		}
		s.mu.Unlock()
	}
}

// processStep decides whether a producer node needs rebuilding and, if
// so, invokes it (or, in dry-run mode, only reports and bookkeeps it).
// It runs outside the scheduling lock so a step's own I/O never blocks
// other workers.
func (s *Scheduler) processStep(ctx context.Context, step domain.BuildStep) (failed bool, err error) {
	if !s.oracle.NeedsRebuild(step) {
		if s.reporter != nil {
			s.reporter.Skipped(step.Output.String())
		}
		return false, nil
	}

	if s.reporter != nil {
		s.reporter.Started(step.Output.String())
	}

	if s.dryRun {
		if s.reporter != nil {
			s.reporter.Done(step.Output.String())
		}
		return false, nil
	}

	argv, buildErr := s.synth.Build(step, s.defs)
	if buildErr != nil {
		if s.reporter != nil {
			s.reporter.Failed(step.Output.String())
		}
		return true, zerr.With(zerr.Wrap(buildErr, "command synthesis failed"), "output", step.Output.String())
	}

	code, runErr := s.runner.Run(ctx, argv)
	if runErr != nil {
		if s.reporter != nil {
			s.reporter.Failed(step.Output.String())
		}
		return true, zerr.With(zerr.Wrap(runErr, "step failed to run"), "output", step.Output.String())
	}
	if code != 0 {
		if s.reporter != nil {
			s.reporter.Failed(step.Output.String())
		}
		return true, zerr.With(zerr.With(domain.ErrStepFailed, "output", step.Output.String()), "exit_code", strconv.Itoa(code))
	}

	if s.reporter != nil {
		s.reporter.Done(step.Output.String())
	}
	return false, nil
}
