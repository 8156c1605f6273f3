package app

import (
	"context"
	"fmt"

	"github.com/vk/taskrank/internal/ctxlog"
	"github.com/vk/taskrank/internal/task"
)

// Run executes the configured view against the loaded plan and renders the
// result to the application's output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	tasks, err := a.loadTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	if len(tasks) == 0 {
		a.logger.Warn("No tasks found in plan, nothing to prioritize.")
	}

	switch a.cfg.View {
	case ViewOrder:
		ordered, err := task.Prioritize(ctx, tasks)
		if err != nil {
			return err
		}
		if err := a.renderOrder(ordered); err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}
	case ViewGroups:
		waves, err := task.Groups(ctx, tasks)
		if err != nil {
			return err
		}
		if err := a.renderGroups(waves); err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}
	case ViewCritical:
		chain, hours, err := task.CriticalPath(ctx, tasks)
		if err != nil {
			return err
		}
		if err := a.renderCriticalPath(chain, hours); err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}
	default:
		return fmt.Errorf("unknown view %q", a.cfg.View)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
