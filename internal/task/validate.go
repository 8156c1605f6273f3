package task

import "time"

// indexTasks maps task IDs to input positions. A repeated ID fails on its
// second occurrence, so the reported task is stable for a given input.
func indexTasks(tasks []Task) (map[string]int, error) {
	ids := make(map[string]int, len(tasks))
	for i, t := range tasks {
		if _, ok := ids[t.ID]; ok {
			return nil, errorf(ErrInvalidTask, t.ID, "duplicate task id %q", t.ID)
		}
		ids[t.ID] = i
	}
	return ids, nil
}

// resolveDeadlines parses every deadline in input order and returns the
// resolved instants by input position. The whole pass runs before the
// business-rule checks, mirroring the fixed stage order the pipeline
// promises for reproducible error selection.
func resolveDeadlines(tasks []Task) ([]time.Time, error) {
	dues := make([]time.Time, len(tasks))
	for i, t := range tasks {
		due, err := t.Deadline.Resolve()
		if err != nil {
			return nil, errorf(ErrInvalidDeadline, t.ID, "task %q has invalid deadline: %v", t.ID, err)
		}
		dues[i] = due
	}
	return dues, nil
}

// checkTasks runs the per-task business rules in input order, each task
// checked priority, then dependencies, then effort. The first violation
// aborts; nothing is accumulated and nothing is coerced.
func checkTasks(tasks []Task, ids map[string]int) error {
	for _, t := range tasks {
		if t.Priority < MinPriority || t.Priority > MaxPriority {
			return errorf(ErrInvalidPriority, t.ID,
				"task %q has invalid priority %d, must be between %d and %d",
				t.ID, t.Priority, MinPriority, MaxPriority)
		}
		for _, dep := range t.DependsOn {
			if _, ok := ids[dep]; !ok {
				return errorf(ErrInvalidDependency, t.ID,
					"task %q depends on non-existent task %q", t.ID, dep)
			}
		}
		if t.EstimatedHours < 0 {
			return errorf(ErrInvalidTask, t.ID,
				"task %q has negative estimated hours %v", t.ID, t.EstimatedHours)
		}
	}
	return nil
}

// Validate checks the task set against every structural and value rule
// without ordering it: unique IDs, parseable deadlines, priorities within
// bounds, referentially complete dependencies, non-negative effort.
// Dependency cycles are not validation failures; they surface from
// Prioritize and its siblings. The input is never mutated.
func Validate(tasks []Task) error {
	ids, err := indexTasks(tasks)
	if err != nil {
		return err
	}
	if _, err := resolveDeadlines(tasks); err != nil {
		return err
	}
	return checkTasks(tasks, ids)
}
