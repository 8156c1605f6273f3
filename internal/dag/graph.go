package dag

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/taskrank/internal/ctxlog"
)

// Spec describes one node of a dependency graph to build.
type Spec struct {
	ID        string
	Priority  int
	Due       time.Time
	Hours     float64
	DependsOn []string
}

// Node is a single vertex in a built Graph, carrying the keys the ordering
// comparator reads.
type Node struct {
	ID       string
	Pos      int // position in the Build input, the deterministic final ordering key
	Priority int
	Due      time.Time
	Hours    float64

	// Deps holds the nodes this node depends on, in declaration order with
	// duplicates collapsed.
	Deps []*Node
	// Dependents holds the nodes that depend on this node, in input order.
	Dependents []*Node
}

// Graph is an immutable dependency graph over a fixed node set. Nodes keeps
// input order so every traversal in this package is reproducible for a
// given input.
type Graph struct {
	Nodes []*Node
}

// Build constructs a Graph from the given specs. It runs two passes: the
// first creates a node per spec, the second links dependency edges in both
// directions. A repeated ID or a dependency on an ID outside the spec set
// is rejected; a self-dependency is linked as a normal edge and left for
// DetectCycles to report.
func Build(ctx context.Context, specs []Spec) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building dependency graph.", "node_count", len(specs))

	nodes := make([]*Node, len(specs))
	byID := make(map[string]*Node, len(specs))
	for i, s := range specs {
		if _, ok := byID[s.ID]; ok {
			return nil, &Error{
				Kind:   ErrDuplicateNode,
				NodeID: s.ID,
				Msg:    fmt.Sprintf("duplicate node %q", s.ID),
			}
		}
		n := &Node{ID: s.ID, Pos: i, Priority: s.Priority, Due: s.Due, Hours: s.Hours}
		nodes[i] = n
		byID[s.ID] = n
	}

	edges := 0
	for i, s := range specs {
		n := nodes[i]
		seen := make(map[string]bool, len(s.DependsOn))
		for _, depID := range s.DependsOn {
			if seen[depID] {
				continue
			}
			seen[depID] = true

			dep, ok := byID[depID]
			if !ok {
				return nil, &Error{
					Kind:   ErrUnknownNode,
					NodeID: s.ID,
					Msg:    fmt.Sprintf("node %q depends on unknown node %q", s.ID, depID),
				}
			}
			n.Deps = append(n.Deps, dep)
			dep.Dependents = append(dep.Dependents, n)
			edges++
		}
	}

	logger.Debug("Dependency graph built.", "node_count", len(nodes), "edge_count", edges)
	return &Graph{Nodes: nodes}, nil
}
