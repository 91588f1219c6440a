package executor_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foundryhq/cbe/internal/adapters/statcache"
	"github.com/foundryhq/cbe/internal/adapters/synth"
	"github.com/foundryhq/cbe/internal/core/domain"
	"github.com/foundryhq/cbe/internal/core/ports/mocks"
	"github.com/foundryhq/cbe/internal/engine/executor"
	"github.com/foundryhq/cbe/internal/staleness"
)

type zeroEstimator struct{}

func (zeroEstimator) Estimate(domain.Path) int { return 0 }

func newExecutor(t *testing.T, dir string, runner *mocks.MockProcessRunner) *executor.Executor {
	t.Helper()
	manifest := filepath.Join(dir, "build.cbe")
	require.NoError(t, os.WriteFile(manifest, []byte("x"), 0o644))

	g := domain.NewBuildGraph()
	_, err := g.AddStep(domain.BuildStep{
		Tool:         domain.ToolCC,
		ParsedInputs: []domain.Path{domain.NewPath(filepath.Join(dir, "a.cpp"))},
		Output:       domain.NewPath(filepath.Join(dir, "a.o")),
	})
	require.NoError(t, err)

	stat := statcache.New()
	oracle := staleness.New(stat, domain.NewPath(manifest))

	return &executor.Executor{
		Graph:     g,
		Defs:      domain.Definitions{"cc": "gcc"},
		Oracle:    oracle,
		Synth:     synth.New(domain.NewPath(manifest)),
		Runner:    runner,
		Estimator: zeroEstimator{},
		Jobs:      1,
	}
}

func TestExecute_RunsStaleSteps(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cpp"), []byte("x"), 0o644))

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(0, nil).Times(1)

	e := newExecutor(t, dir, runner)
	require.NoError(t, e.Execute(context.Background()))
}

func TestClean_RemovesOutputsAndDepfiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cpp"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.o"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.o.d"), []byte("x"), 0o644))

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)

	e := newExecutor(t, dir, runner)
	require.NoError(t, e.Clean(context.Background()))

	_, err := os.Stat(filepath.Join(dir, "a.o"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "a.o.d"))
	assert.True(t, os.IsNotExist(err))
}

func TestEmitGraph_WritesDOT(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cpp"), []byte("x"), 0o644))

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)

	e := newExecutor(t, dir, runner)
	var buf bytes.Buffer
	require.NoError(t, e.EmitGraph(&buf))
	assert.Contains(t, buf.String(), "digraph cbe {")
}

func newCyclicExecutor(t *testing.T, dir string) *executor.Executor {
	t.Helper()
	manifest := filepath.Join(dir, "build.cbe")
	require.NoError(t, os.WriteFile(manifest, []byte("x"), 0o644))

	g := domain.NewBuildGraph()
	_, err := g.AddStep(domain.BuildStep{
		Tool:         domain.ToolCC,
		ParsedInputs: []domain.Path{domain.NewPath("y")},
		Output:       domain.NewPath("x"),
	})
	require.NoError(t, err)
	_, err = g.AddStep(domain.BuildStep{
		Tool:         domain.ToolCC,
		ParsedInputs: []domain.Path{domain.NewPath("x")},
		Output:       domain.NewPath("y"),
	})
	require.NoError(t, err)

	stat := statcache.New()
	oracle := staleness.New(stat, domain.NewPath(manifest))

	return &executor.Executor{
		Graph:  g,
		Defs:   domain.Definitions{"cc": "gcc"},
		Oracle: oracle,
		Synth:  synth.New(domain.NewPath(manifest)),
		Jobs:   1,
	}
}

func TestEmitGraph_CyclicGraphReturnsCycleDetected(t *testing.T) {
	dir := t.TempDir()
	e := newCyclicExecutor(t, dir)

	var buf bytes.Buffer
	err := e.EmitGraph(&buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCycleDetected))
	assert.Empty(t, buf.String(), "no partial output should be written once the cycle is detected")
}

func TestEmitCompDB_CyclicGraphReturnsCycleDetected(t *testing.T) {
	dir := t.TempDir()
	e := newCyclicExecutor(t, dir)

	var buf bytes.Buffer
	err := e.EmitCompDB(&buf, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCycleDetected))
	assert.Empty(t, buf.String(), "no partial output should be written once the cycle is detected")
}

func TestEmitCompDB_WritesJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cpp"), []byte("x"), 0o644))

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)

	e := newExecutor(t, dir, runner)
	var buf bytes.Buffer
	require.NoError(t, e.EmitCompDB(&buf, dir))

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, dir, entries[0]["directory"])
}
