// Package app implements the thin application layer binding CLI flags
// to the Executor facade: it loads the manifest, estimates file, and
// optional settings, then delegates to internal/engine/executor.
package app

import (
	"context"
	"os"

	"go.trai.ch/zerr"

	"github.com/foundryhq/cbe/internal/adapters/estimator"
	"github.com/foundryhq/cbe/internal/adapters/logger"
	"github.com/foundryhq/cbe/internal/adapters/manifest"
	"github.com/foundryhq/cbe/internal/adapters/settings"
	"github.com/foundryhq/cbe/internal/adapters/synth"
	"github.com/foundryhq/cbe/internal/core/domain"
	"github.com/foundryhq/cbe/internal/core/ports"
	"github.com/foundryhq/cbe/internal/engine/executor"
	"github.com/foundryhq/cbe/internal/staleness"
)

// Options mirrors the CLI flag surface (SPEC_FULL.md §7): each field
// is either taken from a flag directly or, when unset, falls back to
// the optional cbe.yaml settings file.
type Options struct {
	Dir           string
	ManifestFile  string
	EstimatesFile string
	Jobs          int
	DryRun        bool
	SettingsFile  string
}

// App wires the process-wide singletons (logger, stater, runner)
// resolved once via Graft to the per-invocation components each
// command needs (graph, definitions, oracle, synth).
type App struct {
	Log      ports.Logger
	Stat     ports.Stater
	Runner   ports.ProcessRunner
	Progress *logger.Progress
}

// New returns an App over the given process-wide collaborators.
func New(log ports.Logger, stat ports.Stater, runner ports.ProcessRunner, progress *logger.Progress) *App {
	return &App{Log: log, Stat: stat, Runner: runner, Progress: progress}
}

// loaded bundles everything a per-invocation command needs, built
// fresh for each call since it depends on CLI-provided paths.
type loaded struct {
	graph        *domain.BuildGraph
	defs         domain.Definitions
	manifestPath domain.Path
	oracle       *staleness.Oracle
	synth        *synth.Synth
	estimator    ports.WorkEstimator
}

func (a *App) load(opts Options) (*loaded, error) {
	if opts.Dir != "" {
		if err := os.Chdir(opts.Dir); err != nil {
			return nil, zerr.Wrap(err, "failed to change directory")
		}
	}

	resolved, err := a.resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	graph, defs, err := manifest.Load(resolved.ManifestFile)
	if err != nil {
		return nil, err
	}

	est, err := estimator.Load(resolved.EstimatesFile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load estimates file")
	}

	manifestPath := domain.NewPath(resolved.ManifestFile)
	return &loaded{
		graph:        graph,
		defs:         defs,
		manifestPath: manifestPath,
		oracle:       staleness.New(a.Stat, manifestPath),
		synth:        synth.New(manifestPath),
		estimator:    est,
	}, nil
}

// resolveOptions applies cbe.yaml overrides beneath whatever the CLI
// flags already set; a flag value always wins (SPEC_FULL.md §3).
func (a *App) resolveOptions(opts Options) (Options, error) {
	settingsFile := opts.SettingsFile
	if settingsFile == "" {
		settingsFile = "cbe.yaml"
	}
	s, err := settings.Load(settingsFile)
	if err != nil {
		return opts, err
	}

	if opts.ManifestFile == "" {
		opts.ManifestFile = s.ManifestFile
	}
	if opts.ManifestFile == "" {
		opts.ManifestFile = "build.cbe"
	}
	if opts.EstimatesFile == "" {
		opts.EstimatesFile = s.EstimatesFile
	}
	if opts.EstimatesFile == "" {
		opts.EstimatesFile = "estimates.txt"
	}
	if opts.Jobs == 0 {
		opts.Jobs = s.Jobs
	}
	if !opts.DryRun {
		opts.DryRun = s.DryRun
	}
	return opts, nil
}

func (a *App) executorFor(l *loaded, opts Options) *executor.Executor {
	return &executor.Executor{
		Graph:     l.graph,
		Defs:      l.defs,
		Oracle:    l.oracle,
		Synth:     l.synth,
		Runner:    a.Runner,
		Estimator: l.estimator,
		Logger:    a.Log,
		Reporter:  a.Progress,
		Jobs:      opts.Jobs,
		DryRun:    opts.DryRun,
	}
}

// Run loads the manifest and drives the build to completion.
func (a *App) Run(ctx context.Context, opts Options) error {
	l, err := a.load(opts)
	if err != nil {
		return err
	}
	return a.executorFor(l, opts).Execute(ctx)
}

// Clean removes every step's declared artifacts.
func (a *App) Clean(ctx context.Context, opts Options) error {
	l, err := a.load(opts)
	if err != nil {
		return err
	}
	return a.executorFor(l, opts).Clean(ctx)
}

// Graph writes a DOT rendering of the manifest's build graph to w.
func (a *App) Graph(opts Options, w writer) error {
	l, err := a.load(opts)
	if err != nil {
		return err
	}
	return a.executorFor(l, opts).EmitGraph(w)
}

// CompDB writes a JSON compilation database for the manifest's cc/cxx
// steps to w.
func (a *App) CompDB(opts Options, w writer) error {
	l, err := a.load(opts)
	if err != nil {
		return err
	}
	dir, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to resolve working directory")
	}
	return a.executorFor(l, opts).EmitCompDB(w, dir)
}

type writer interface {
	Write(p []byte) (int, error)
}
