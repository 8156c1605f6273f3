// This file contains the logic for translating HCL plan schema structs
// (from the schema package) into domain tasks.

package hcl

import (
	"fmt"

	"github.com/vk/taskrank/internal/schema"
	"github.com/vk/taskrank/internal/task"
	"github.com/zclconf/go-cty/cty/gocty"
)

// defaults carries the resolved values of a plan's `defaults` block.
type defaults struct {
	priority       *int
	estimatedHours *float64
}

// decodeDefaults evaluates the attributes of a `defaults` block. Unknown
// attributes are rejected by name so a typo cannot silently change a plan.
func decodeDefaults(block *schema.Defaults) (*defaults, error) {
	d := &defaults{}
	if block == nil || block.Body == nil {
		return d, nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read defaults block: %w", diags)
	}

	for name, attr := range attrs {
		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			return nil, fmt.Errorf("invalid default %q: %w", name, valDiags)
		}

		switch name {
		case "priority":
			var p int
			if err := gocty.FromCtyValue(val, &p); err != nil {
				return nil, fmt.Errorf("invalid default %q: %w", name, err)
			}
			d.priority = &p
		case "estimated_hours":
			var h float64
			if err := gocty.FromCtyValue(val, &h); err != nil {
				return nil, fmt.Errorf("invalid default %q: %w", name, err)
			}
			d.estimatedHours = &h
		default:
			return nil, fmt.Errorf("unknown attribute %q in defaults block", name)
		}
	}
	return d, nil
}

// translatePlan converts the HCL plan schema into domain tasks, filling
// attributes omitted from a task block from the plan's defaults.
func (l *Loader) translatePlan(plan *schema.Plan) ([]task.Task, error) {
	defs, err := decodeDefaults(plan.Defaults)
	if err != nil {
		return nil, err
	}

	tasks := make([]task.Task, 0, len(plan.Tasks))
	for _, block := range plan.Tasks {
		t := task.Task{
			ID:        block.ID,
			Name:      block.Name,
			Deadline:  task.Deadline{Text: block.Deadline},
			DependsOn: block.DependsOn,
		}

		switch {
		case block.Priority != nil:
			t.Priority = *block.Priority
		case defs.priority != nil:
			t.Priority = *defs.priority
		default:
			return nil, fmt.Errorf("task %q: missing required attribute %q", block.ID, "priority")
		}

		switch {
		case block.EstimatedHours != nil:
			t.EstimatedHours = *block.EstimatedHours
		case defs.estimatedHours != nil:
			t.EstimatedHours = *defs.estimatedHours
		default:
			return nil, fmt.Errorf("task %q: missing required attribute %q", block.ID, "estimated_hours")
		}

		tasks = append(tasks, t)
	}
	return tasks, nil
}
