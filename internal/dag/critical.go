package dag

import (
	"context"

	"github.com/vk/taskrank/internal/ctxlog"
)

// Path is one dependency chain through the graph, dependency-first.
type Path struct {
	Positions []int   // node input positions along the chain
	Hours     float64 // total estimated hours along the chain
}

// CriticalPath returns the dependency chain with the greatest total
// estimated hours. It runs a forward pass over a topological order,
// recording for each node the heaviest chain finishing at it, then walks
// parent links back from the heaviest finisher. Ties prefer the node
// reached first in input order, so the result is stable for a fixed
// input. An empty graph yields an empty path.
func CriticalPath(ctx context.Context, g *Graph) (*Path, error) {
	logger := ctxlog.FromContext(ctx)

	order, err := Rank(ctx, g)
	if err != nil {
		return nil, err
	}

	finish := make([]float64, len(g.Nodes))
	parent := make([]int, len(g.Nodes))
	for i := range parent {
		parent[i] = -1
	}

	for _, pos := range order {
		n := g.Nodes[pos]
		finish[pos] = n.Hours
		for _, dep := range n.Deps {
			// Strictly-greater keeps the first maximum seen, which is the
			// dependency declared earliest.
			if finish[dep.Pos]+n.Hours > finish[pos] {
				finish[pos] = finish[dep.Pos] + n.Hours
				parent[pos] = dep.Pos
			}
		}
	}

	end := -1
	for _, n := range g.Nodes {
		if end == -1 || finish[n.Pos] > finish[end] {
			end = n.Pos
		}
	}
	if end == -1 {
		return &Path{}, nil
	}

	var reversed []int
	for pos := end; pos != -1; pos = parent[pos] {
		reversed = append(reversed, pos)
	}
	positions := make([]int, len(reversed))
	for i, pos := range reversed {
		positions[len(reversed)-1-i] = pos
	}

	logger.Debug("Critical path computed.", "length", len(positions), "hours", finish[end])
	return &Path{Positions: positions, Hours: finish[end]}, nil
}
