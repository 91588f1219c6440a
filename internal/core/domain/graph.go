package domain

import "go.trai.ch/zerr"

// BuildGraph owns the nodes, steps, and path index of a single build.
// It is built once by a manifest loader; after construction it is
// treated as read-only for the lifetime of an execution (I4).
type BuildGraph struct {
	nodes []Node
	steps []BuildStep
	index map[Path]int
}

// NewBuildGraph returns an empty graph ready for AddStep calls.
func NewBuildGraph() *BuildGraph {
	return &BuildGraph{
		index: make(map[Path]int),
	}
}

// Nodes returns the graph's nodes in creation order. The slice must not
// be mutated by callers.
func (g *BuildGraph) Nodes() []Node {
	return g.nodes
}

// Steps returns the graph's steps in creation order. The slice must not
// be mutated by callers.
func (g *BuildGraph) Steps() []BuildStep {
	return g.steps
}

// NodeCount returns the number of nodes in the graph.
func (g *BuildGraph) NodeCount() int {
	return len(g.nodes)
}

// GetOrCreateNode returns the stable index of path's node, creating it
// as a source leaf if this is the first time path has been seen (I3).
func (g *BuildGraph) GetOrCreateNode(path Path) int {
	if idx, ok := g.index[path]; ok {
		return idx
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, Node{Path: path})
	g.index[path] = idx
	return idx
}

// Lookup returns the node index for path, if it has been created.
func (g *BuildGraph) Lookup(path Path) (int, bool) {
	idx, ok := g.index[path]
	return idx, ok
}

// AddStep registers step's output as a produced node and wires an edge
// from every one of its inputs (parsed, depfile, and opaque, in that
// order) to the output. It enforces I1 (one producer per output) and
// the REDESIGN FLAG that an unrecognised tool is a construction-time
// error rather than a silent no-op.
//
// Duplicate input paths across categories are intentionally not
// deduplicated: multiplicity inflates in-degree, but decrements match
// it 1:1 (I5), so it is self-consistent, only ever wasteful, never
// incorrect.
func (g *BuildGraph) AddStep(step BuildStep) (int, error) {
	if step.Tool == ToolUnknown {
		return 0, zerr.With(ErrUnknownTool, "output", step.Output.String())
	}

	outID := g.GetOrCreateNode(step.Output)
	if g.nodes[outID].StepID != nil {
		return 0, zerr.With(ErrDuplicateProducer, "path", step.Output.String())
	}

	stepID := len(g.steps)
	g.steps = append(g.steps, step)
	g.nodes[outID].StepID = &stepID

	for _, category := range [][]Path{step.ParsedInputs, step.DepfileInputs, step.OpaqueInputs} {
		for _, in := range category {
			inID := g.GetOrCreateNode(in)
			g.nodes[inID].OutEdges = append(g.nodes[inID].OutEdges, outID)
		}
	}

	return stepID, nil
}

type visitState uint8

const (
	unvisited visitState = iota
	visiting
	done
)

// stackFrame tracks DFS progress for one node under the explicit-stack
// topological sort (SPEC_FULL.md §11: no recursion, unlike the C++
// reference this engine was distilled from).
type stackFrame struct {
	node    int
	edgeIdx int
}

// TopologicalOrder returns node indices such that every edge u->v has
// index(u) < index(v) (P1). Ties among independent subtrees resolve by
// insertion order. Returns ErrCycleDetected, annotated with a path on
// the cycle, if the graph is not acyclic (I2).
func (g *BuildGraph) TopologicalOrder() ([]int, error) {
	status := make([]visitState, len(g.nodes))
	order := make([]int, 0, len(g.nodes))

	for start := range g.nodes {
		if status[start] != unvisited {
			continue
		}

		stack := []stackFrame{{node: start}}
		status[start] = visiting

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			edges := g.nodes[top.node].OutEdges

			if top.edgeIdx >= len(edges) {
				status[top.node] = done
				order = append(order, top.node)
				stack = stack[:len(stack)-1]
				continue
			}

			next := edges[top.edgeIdx]
			top.edgeIdx++

			switch status[next] {
			case unvisited:
				status[next] = visiting
				stack = append(stack, stackFrame{node: next})
			case visiting:
				return nil, zerr.With(ErrCycleDetected, "path", g.nodes[next].Path.String())
			case done:
				// already ordered via another path; nothing to do
			}
		}
	}

	// order is a post-order; reverse it so producers precede consumers.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}
