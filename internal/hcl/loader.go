package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/taskrank/internal/ctxlog"
	"github.com/vk/taskrank/internal/schema"
	"github.com/vk/taskrank/internal/task"
)

// Loader is the HCL-specific implementation of the app.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions reports the file extensions this loader claims.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// LoadFile parses a single HCL plan file and returns its tasks in file
// order. Attributes omitted from a task block are filled from the file's
// defaults block before translation.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]task.Task, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var plan schema.Plan
	diags = gohcl.DecodeBody(file.Body, nil, &plan)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	tasks, err := l.translatePlan(&plan)
	if err != nil {
		return nil, fmt.Errorf("invalid plan file %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.", "path", path, "tasks", len(tasks))
	return tasks, nil
}
