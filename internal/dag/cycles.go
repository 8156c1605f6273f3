package dag

import (
	"context"
	"fmt"

	"github.com/vk/taskrank/internal/ctxlog"
)

// visitState marks a node's progress during cycle detection.
type visitState uint8

const (
	// unvisited nodes have not been reached yet.
	unvisited visitState = iota
	// visiting nodes sit on the active traversal path.
	visiting
	// visited nodes are fully processed and proven cycle-free.
	visited
)

// DetectCycles checks the graph for dependency cycles. It returns a non-nil
// error naming the node at which the first cycle closes; nil certifies the
// graph acyclic. A self-dependency is a cycle of length one and is caught
// by the same walk.
//
// The depth-first walk runs on an explicit frame stack rather than
// language recursion, so arbitrarily long dependency chains cannot exhaust
// the call stack. Roots are taken in input order and edges in declaration
// order, keeping the reported node stable for a fixed input.
func DetectCycles(ctx context.Context, g *Graph) error {
	logger := ctxlog.FromContext(ctx)

	state := make([]visitState, len(g.Nodes))

	// frame remembers how far into a node's dependency list the walk got.
	type frame struct {
		node *Node
		next int
	}

	for _, root := range g.Nodes {
		if state[root.Pos] != unvisited {
			continue
		}

		stack := []frame{{node: root}}
		state[root.Pos] = visiting

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			if top.next < len(top.node.Deps) {
				dep := top.node.Deps[top.next]
				top.next++

				switch state[dep.Pos] {
				case visiting:
					// The edge closes back onto the active path.
					return &Error{
						Kind:   ErrCycle,
						NodeID: dep.ID,
						Msg:    fmt.Sprintf("cycle detected involving node %q", dep.ID),
					}
				case unvisited:
					state[dep.Pos] = visiting
					stack = append(stack, frame{node: dep})
				}
				continue
			}

			state[top.node.Pos] = visited
			stack = stack[:len(stack)-1]
		}
	}

	logger.Debug("Cycle check passed.", "node_count", len(g.Nodes))
	return nil
}
