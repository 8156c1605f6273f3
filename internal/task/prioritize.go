package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/taskrank/internal/ctxlog"
	"github.com/vk/taskrank/internal/dag"
)

// Prioritize orders the tasks so every dependency precedes its
// dependents, choosing among ready tasks by priority (descending), then
// deadline (ascending), then estimated hours (ascending), then input
// position. The result is a permutation of the input values; deadlines
// keep their original representation. An empty input yields an empty
// output. Validation failures and dependency cycles abort the whole call
// with a classified *Error.
func Prioritize(ctx context.Context, tasks []Task) ([]Task, error) {
	g, err := buildGraph(ctx, tasks)
	if err != nil {
		return nil, err
	}

	order, err := dag.Rank(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("ranking tasks: %w", err)
	}

	out := make([]Task, len(order))
	for i, pos := range order {
		out[i] = tasks[pos]
	}
	ctxlog.FromContext(ctx).Debug("Tasks prioritized.", "count", len(out))
	return out, nil
}

// Groups partitions the tasks into dependency waves: wave 0 holds every
// task without dependencies, wave k+1 every task whose dependencies all
// sit in earlier waves. Tasks inside a wave could proceed concurrently;
// they are ordered by the same comparator Prioritize uses. Validation and
// cycle certification match Prioritize exactly.
func Groups(ctx context.Context, tasks []Task) ([][]Task, error) {
	g, err := buildGraph(ctx, tasks)
	if err != nil {
		return nil, err
	}

	waves, err := dag.Groups(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("grouping tasks: %w", err)
	}

	out := make([][]Task, len(waves))
	for i, wave := range waves {
		out[i] = make([]Task, len(wave))
		for j, pos := range wave {
			out[i][j] = tasks[pos]
		}
	}
	return out, nil
}

// CriticalPath returns the dependency chain with the greatest total
// estimated hours, dependency-first, along with that total. The chain is
// the lower bound on elapsed effort no amount of parallelism removes.
// Validation and cycle certification match Prioritize exactly.
func CriticalPath(ctx context.Context, tasks []Task) ([]Task, float64, error) {
	g, err := buildGraph(ctx, tasks)
	if err != nil {
		return nil, 0, err
	}

	path, err := dag.CriticalPath(ctx, g)
	if err != nil {
		return nil, 0, fmt.Errorf("computing critical path: %w", err)
	}

	out := make([]Task, len(path.Positions))
	for i, pos := range path.Positions {
		out[i] = tasks[pos]
	}
	return out, path.Hours, nil
}

// buildGraph validates the task set, assembles its dependency graph, and
// certifies the graph acyclic. Every entry point shares this stage so the
// error surface is identical everywhere.
func buildGraph(ctx context.Context, tasks []Task) (*dag.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	ids, err := indexTasks(tasks)
	if err != nil {
		return nil, err
	}
	dues, err := resolveDeadlines(tasks)
	if err != nil {
		return nil, err
	}
	if err := checkTasks(tasks, ids); err != nil {
		return nil, err
	}
	logger.Debug("Task set validated.", "count", len(tasks))

	specs := make([]dag.Spec, len(tasks))
	for i, t := range tasks {
		specs[i] = dag.Spec{
			ID:        t.ID,
			Priority:  t.Priority,
			Due:       dues[i],
			Hours:     t.EstimatedHours,
			DependsOn: t.DependsOn,
		}
	}

	g, err := dag.Build(ctx, specs)
	if err != nil {
		// Validation rules out duplicate and unknown IDs, so Build can only
		// fail here if the two layers fall out of step.
		return nil, fmt.Errorf("building dependency graph: %w", err)
	}

	if err := dag.DetectCycles(ctx, g); err != nil {
		var dagErr *dag.Error
		if errors.As(err, &dagErr) {
			return nil, errorf(ErrCircularDependency, dagErr.NodeID,
				"circular dependency detected involving task %q", dagErr.NodeID)
		}
		return nil, err
	}

	return g, nil
}
