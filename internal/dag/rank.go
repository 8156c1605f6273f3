package dag

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/vk/taskrank/internal/ctxlog"
)

// less reports whether a wins over b when both are ready to place: higher
// priority first, then earlier deadline, then lower estimated hours, then
// earlier input position as the deterministic final key.
func less(a, b *Node) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if !a.Due.Equal(b.Due) {
		return a.Due.Before(b.Due)
	}
	if a.Hours != b.Hours {
		return a.Hours < b.Hours
	}
	return a.Pos < b.Pos
}

// readyHeap is a binary heap of ready nodes keyed by less, so the winner
// of the tie-break comparator sits at the root.
type readyHeap []*Node

func (h readyHeap) Len() int           { return len(h) }
func (h readyHeap) Less(i, j int) bool { return less(h[i], h[j]) }
func (h readyHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *readyHeap) Push(x any) {
	*h = append(*h, x.(*Node))
}

func (h *readyHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Rank produces a topological order of the graph that applies the
// priority/deadline/effort tie-break at every selection step, not as a
// global post-sort: the ready set is kept in a heap, the best ready node
// is appended, and each node whose last unplaced dependency was just
// placed becomes ready. Placement order is returned as input positions.
//
// The graph must already be certified acyclic; if a cycle survived, the
// nodes it strands are unplaceable and an ErrCycle error is returned.
func Rank(ctx context.Context, g *Graph) ([]int, error) {
	logger := ctxlog.FromContext(ctx)

	remaining := make([]int, len(g.Nodes))
	ready := make(readyHeap, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		remaining[n.Pos] = len(n.Deps)
		if len(n.Deps) == 0 {
			ready = append(ready, n)
		}
	}
	heap.Init(&ready)

	order := make([]int, 0, len(g.Nodes))
	for ready.Len() > 0 {
		n := heap.Pop(&ready).(*Node)
		order = append(order, n.Pos)

		for _, dependent := range n.Dependents {
			remaining[dependent.Pos]--
			if remaining[dependent.Pos] == 0 {
				heap.Push(&ready, dependent)
			}
		}
	}

	if len(order) != len(g.Nodes) {
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

	logger.Debug("Ranking complete.", "placed", len(order))
	return order, nil
}
