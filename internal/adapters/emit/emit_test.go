package emit_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundryhq/cbe/internal/adapters/emit"
	"github.com/foundryhq/cbe/internal/adapters/synth"
	"github.com/foundryhq/cbe/internal/core/domain"
)

func buildGraph(t *testing.T) *domain.BuildGraph {
	t.Helper()
	g := domain.NewBuildGraph()
	_, err := g.AddStep(domain.BuildStep{
		Tool:         domain.ToolCC,
		ParsedInputs: []domain.Path{domain.NewPath("a.c")},
		Output:       domain.NewPath("a.o"),
	})
	require.NoError(t, err)
	_, err = g.AddStep(domain.BuildStep{
		Tool:         domain.ToolLD,
		ParsedInputs: []domain.Path{domain.NewPath("a.o")},
		Output:       domain.NewPath("app"),
	})
	require.NoError(t, err)
	return g
}

func TestDOT_ColorsProducerAndSourceNodes(t *testing.T) {
	g := buildGraph(t)

	var buf bytes.Buffer
	err := emit.DOT(&buf, g, func(stepID int) bool { return stepID == 0 })
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "digraph cbe {")
	assert.Contains(t, out, `label="a.c", style=filled, fillcolor=lightgrey`)
	assert.Contains(t, out, `label="a.o", style=filled, fillcolor=green`)
	assert.Contains(t, out, `label="app", style=filled, fillcolor=white`)
}

func TestCompDB_SkipsNonCompileSteps(t *testing.T) {
	g := buildGraph(t)
	s := synth.New(domain.NewPath("build.cbe"))

	var buf bytes.Buffer
	err := emit.CompDB(&buf, g, domain.Definitions{"cc": "gcc"}, s, "/proj")
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "/proj", entries[0]["directory"])
	assert.Equal(t, "a.c", entries[0]["file"])
	assert.Equal(t, "a.o", entries[0]["output"])
}
