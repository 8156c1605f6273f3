package dag

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/taskrank/internal/ctxlog"
)

// Groups partitions the graph into dependency waves: wave 0 holds every
// node with no dependencies, wave k+1 every node whose dependencies all
// sit in earlier waves. Nodes inside a wave carry no ordering constraint
// between each other and are sorted by the ranking comparator. Waves are
// returned as input positions.
//
// Like Rank, Groups requires an acyclic graph and reports ErrCycle for
// nodes a surviving cycle strands.
func Groups(ctx context.Context, g *Graph) ([][]int, error) {
	logger := ctxlog.FromContext(ctx)

	remaining := make([]int, len(g.Nodes))
	var wave []*Node
	for _, n := range g.Nodes {
		remaining[n.Pos] = len(n.Deps)
		if len(n.Deps) == 0 {
			wave = append(wave, n)
		}
	}

	placed := 0
	waves := make([][]int, 0)
	for len(wave) > 0 {
		sort.Slice(wave, func(i, j int) bool { return less(wave[i], wave[j]) })

		positions := make([]int, len(wave))
		for i, n := range wave {
			positions[i] = n.Pos
		}
		waves = append(waves, positions)
		placed += len(wave)

		var next []*Node
		for _, n := range wave {
			for _, dependent := range n.Dependents {
				remaining[dependent.Pos]--
				if remaining[dependent.Pos] == 0 {
					next = append(next, dependent)
				}
			}
		}
		wave = next
	}

	if placed != len(g.Nodes) {
		for _, n := range g.Nodes {
			if remaining[n.Pos] > 0 {
				return nil, &Error{
					Kind:   ErrCycle,
					NodeID: n.ID,
					Msg:    fmt.Sprintf("cycle detected involving node %q", n.ID),
				}
			}
		}
	}

	logger.Debug("Wave grouping complete.", "waves", len(waves), "placed", placed)
	return waves, nil
}
