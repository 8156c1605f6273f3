package task

import (
	"errors"
	"fmt"
)

// Classified failure kinds surfaced by validation and ordering. Callers
// match them with errors.Is.
var (
	// ErrInvalidPriority reports a priority outside [MinPriority, MaxPriority].
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrInvalidDependency reports a dependency on an ID absent from the input.
	ErrInvalidDependency = errors.New("invalid dependency")
	// ErrCircularDependency reports a dependency cycle, self-reference included.
	ErrCircularDependency = errors.New("circular dependency")
	// ErrInvalidTask reports any other structural violation, such as
	// negative estimated hours or a duplicate ID.
	ErrInvalidTask = errors.New("invalid task")
	// ErrInvalidDeadline reports a deadline that cannot be interpreted as
	// an instant. It signals malformed input rather than a broken
	// business rule, which is why it is distinct from ErrInvalidTask.
	ErrInvalidDeadline = errors.New("invalid deadline")
)

// Error is a classified rejection of the input task set.
type Error struct {
	Kind   error  // one of the Err* kinds above
	TaskID string // offending task, when attributable to one
	Msg    string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Msg }

// Unwrap exposes the classification kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// errorf builds a classified *Error with a formatted message.
func errorf(kind error, taskID, format string, args ...any) *Error {
	return &Error{Kind: kind, TaskID: taskID, Msg: fmt.Sprintf(format, args...)}
}
