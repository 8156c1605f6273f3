package task

import (
	"fmt"
	"time"
)

// deadlineLayouts are the accepted date-string forms, tried in order. RFC
// 3339 covers full timestamps with a zone; the remaining layouts accept
// progressively barer local forms down to a plain date.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Deadline is a task due time, supplied either as an already-resolved
// instant or as a date string still to be parsed. Set Time for the
// resolved form or Text for the string form; Text wins when both are set.
// The zero value is not a valid deadline.
type Deadline struct {
	Time time.Time
	Text string
}

// String returns the caller-facing representation of the deadline: the
// original text when the deadline was given as a string, RFC 3339
// otherwise.
func (d Deadline) String() string {
	if d.Text != "" {
		return d.Text
	}
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(time.RFC3339)
}

// Resolve returns the deadline as a comparable instant. A Text deadline is
// parsed against the accepted layouts; an instant is returned as-is. An
// unset deadline or an unrecognized string fails with ErrInvalidDeadline.
func (d Deadline) Resolve() (time.Time, error) {
	if d.Text == "" {
		if d.Time.IsZero() {
			return time.Time{}, &Error{Kind: ErrInvalidDeadline, Msg: `invalid date format: ""`}
		}
		return d.Time, nil
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, d.Text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &Error{
		Kind: ErrInvalidDeadline,
		Msg:  fmt.Sprintf("invalid date format: %q", d.Text),
	}
}
