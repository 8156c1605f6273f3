package task

// Priority bounds accepted by validation; MaxPriority is the most urgent.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Task is one unit of work to order. Tasks are treated as immutable for
// the duration of a call, and the ordered output returns these exact
// values, never normalized copies.
type Task struct {
	// ID uniquely identifies the task within one call.
	ID string
	// Name is a human-readable label, opaque to the ordering.
	Name string
	// Deadline is when the task is due.
	Deadline Deadline
	// Priority is the declared urgency in [MinPriority, MaxPriority].
	Priority int
	// DependsOn lists IDs of tasks that must be placed earlier. Entry
	// order carries no meaning and repeats add nothing.
	DependsOn []string
	// EstimatedHours is the expected effort. Never negative.
	EstimatedHours float64
}
