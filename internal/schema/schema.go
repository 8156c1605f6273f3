package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Task represents a `task` block from a user's plan file. Pointer fields
// distinguish "attribute absent" from a zero value so that file-level
// defaults can fill the gaps.
type Task struct {
	ID             string   `hcl:"id,label"`
	Name           string   `hcl:"name"`
	Deadline       string   `hcl:"deadline"`
	Priority       *int     `hcl:"priority,optional"`
	DependsOn      []string `hcl:"depends_on,optional"`
	EstimatedHours *float64 `hcl:"estimated_hours,optional"`
}

// Defaults represents the optional `defaults` block of a plan file. Its
// attributes are decoded by hand so unknown keys can be reported by name.
type Defaults struct {
	Body hcl.Body `hcl:",remain"`
}

// Plan represents the top-level structure of a user's plan file,
// containing all task blocks and the optional defaults.
type Plan struct {
	Tasks    []*Task   `hcl:"task,block"`
	Defaults *Defaults `hcl:"defaults,block"`
}
