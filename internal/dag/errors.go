package dag

import "errors"

// Sentinel kinds for graph failures. Callers match them with errors.Is.
var (
	// ErrDuplicateNode reports two specs sharing one ID.
	ErrDuplicateNode = errors.New("duplicate node")
	// ErrUnknownNode reports a dependency on an ID absent from the spec set.
	ErrUnknownNode = errors.New("unknown node")
	// ErrCycle reports a dependency cycle.
	ErrCycle = errors.New("cycle detected")
)

// Error describes why a graph operation rejected its input.
type Error struct {
	Kind   error  // sentinel classifying the failure
	NodeID string // node the failure is attributed to
	Msg    string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Msg }

// Unwrap exposes the classification kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }
