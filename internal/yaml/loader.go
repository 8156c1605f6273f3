// Package yaml provides the concrete YAML implementation of the plan
// loading interface defined in the `app` package. It accepts the same
// plan shape as the HCL loader, spelled as a `tasks:` document.
package yaml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/taskrank/internal/ctxlog"
	"github.com/vk/taskrank/internal/task"
	"gopkg.in/yaml.v3"
)

// planFile is the document shape of a YAML plan.
type planFile struct {
	Defaults *planDefaults `yaml:"defaults"`
	Tasks    []planTask    `yaml:"tasks"`
}

// planDefaults supplies values for task entries that omit them.
type planDefaults struct {
	Priority       *int     `yaml:"priority"`
	EstimatedHours *float64 `yaml:"estimated_hours"`
}

// planTask is a single task entry. Pointer fields distinguish "key absent"
// from a zero value so defaults can fill the gaps.
type planTask struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Deadline       string   `yaml:"deadline"`
	Priority       *int     `yaml:"priority"`
	DependsOn      []string `yaml:"depends_on"`
	EstimatedHours *float64 `yaml:"estimated_hours"`
}

// Loader is the YAML-specific implementation of the app.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions reports the file extensions this loader claims.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// LoadFile parses a single YAML plan file and returns its tasks in file
// order. Unknown keys anywhere in the document are decode errors.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]task.Task, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var plan planFile
	if err := dec.Decode(&plan); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty document is an empty plan.
			logger.Debug("YAML plan file is empty.", "path", path)
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	tasks, err := translatePlan(&plan)
	if err != nil {
		return nil, fmt.Errorf("invalid plan file %s: %w", path, err)
	}

	logger.Debug("YAML loading complete.", "path", path, "tasks", len(tasks))
	return tasks, nil
}

// translatePlan converts the document into domain tasks, filling absent
// keys from the document's defaults.
func translatePlan(plan *planFile) ([]task.Task, error) {
	defs := plan.Defaults
	if defs == nil {
		defs = &planDefaults{}
	}

	tasks := make([]task.Task, 0, len(plan.Tasks))
	for i, entry := range plan.Tasks {
		if entry.ID == "" {
			return nil, fmt.Errorf("task at index %d: missing required attribute %q", i, "id")
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("task %q: missing required attribute %q", entry.ID, "name")
		}
		if entry.Deadline == "" {
			return nil, fmt.Errorf("task %q: missing required attribute %q", entry.ID, "deadline")
		}

		t := task.Task{
			ID:        entry.ID,
			Name:      entry.Name,
			Deadline:  task.Deadline{Text: entry.Deadline},
			DependsOn: entry.DependsOn,
		}

		switch {
		case entry.Priority != nil:
			t.Priority = *entry.Priority
		case defs.Priority != nil:
			t.Priority = *defs.Priority
		default:
			return nil, fmt.Errorf("task %q: missing required attribute %q", entry.ID, "priority")
		}

		switch {
		case entry.EstimatedHours != nil:
			t.EstimatedHours = *entry.EstimatedHours
		case defs.EstimatedHours != nil:
			t.EstimatedHours = *defs.EstimatedHours
		default:
			return nil, fmt.Errorf("task %q: missing required attribute %q", entry.ID, "estimated_hours")
		}

		tasks = append(tasks, t)
	}
	return tasks, nil
}
