// Package emit implements the two graph-emission adapters spec.md §6
// keeps out of the core: a DOT graph writer and a JSON compilation
// database writer.
package emit

import (
	"fmt"
	"io"

	"github.com/foundryhq/cbe/internal/core/domain"
)

// DOT writes graph as a Graphviz DOT digraph to w. Producer nodes are
// filled green when needsRebuild reports them stale, white otherwise;
// non-producer (source) nodes are light grey (spec.md §6).
func DOT(w io.Writer, graph *domain.BuildGraph, needsRebuild func(stepID int) bool) error {
	if _, err := fmt.Fprintln(w, "digraph cbe {"); err != nil {
		return err
	}

	nodes := graph.Nodes()
	for i, n := range nodes {
		color := "lightgrey"
		if n.StepID != nil {
			color = "white"
			if needsRebuild(*n.StepID) {
				color = "green"
			}
		}
		if _, err := fmt.Fprintf(w, "  n%d [label=%q, style=filled, fillcolor=%s];\n", i, n.Path.String(), color); err != nil {
			return err
		}
	}
	for i, n := range nodes {
		for _, out := range n.OutEdges {
			if _, err := fmt.Fprintf(w, "  n%d -> n%d;\n", i, out); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
