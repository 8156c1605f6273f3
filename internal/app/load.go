package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/taskrank/internal/ctxlog"
	"github.com/vk/taskrank/internal/fsutil"
	"github.com/vk/taskrank/internal/task"
)

// Loader parses plan files of one particular format into tasks.
type Loader interface {
	// Extensions reports the file extensions the loader claims, dot included.
	Extensions() []string
	// LoadFile parses a single plan file into tasks, preserving file order.
	LoadFile(ctx context.Context, path string) ([]task.Task, error)
}

// loaderFor picks the configured loader claiming the given extension.
func (a *App) loaderFor(ext string) Loader {
	for _, l := range a.loaders {
		for _, e := range l.Extensions() {
			if e == ext {
				return l
			}
		}
	}
	return nil
}

// extensions returns every extension claimed by the configured loaders.
func (a *App) extensions() []string {
	var exts []string
	for _, l := range a.loaders {
		exts = append(exts, l.Extensions()...)
	}
	return exts
}

// loadTasks reads the configured plan path into a single task collection.
// A directory aggregates every plan file under it, in lexical path order,
// so cross-file dependencies resolve before validation.
func (a *App) loadTasks(ctx context.Context) ([]task.Task, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading plan.", "path", a.cfg.PlanPath)

	info, err := os.Stat(a.cfg.PlanPath)
	if err != nil {
		return nil, fmt.Errorf("error accessing plan path %s: %w", a.cfg.PlanPath, err)
	}

	if !info.IsDir() {
		loader := a.loaderFor(filepath.Ext(a.cfg.PlanPath))
		if loader == nil {
			return nil, fmt.Errorf("unsupported plan format %q", filepath.Ext(a.cfg.PlanPath))
		}
		return loader.LoadFile(ctx, a.cfg.PlanPath)
	}

	files, err := fsutil.FindFilesByExtensions(a.cfg.PlanPath, a.extensions()...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("No plan files found in directory.", "path", a.cfg.PlanPath)
		return []task.Task{}, nil
	}
	logger.Debug("Discovered plan files.", "count", len(files))

	var tasks []task.Task
	for _, file := range files {
		loader := a.loaderFor(filepath.Ext(file))
		if loader == nil {
			return nil, fmt.Errorf("unsupported plan format %q", filepath.Ext(file))
		}
		fileTasks, err := loader.LoadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, fileTasks...)
	}

	logger.Info("Plan loaded successfully.", "files", len(files), "tasks", len(tasks))
	return tasks, nil
}
