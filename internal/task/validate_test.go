package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valid returns a task that passes every rule, for tests to break one
// field at a time.
func valid(id string) Task {
	return Task{
		ID:             id,
		Name:           "task " + id,
		Deadline:       Deadline{Text: "2024-01-15"},
		Priority:       3,
		EstimatedHours: 1,
	}
}

func TestValidate(t *testing.T) {
	t.Run("well-formed set passes", func(t *testing.T) {
		a := valid("a")
		b := valid("b")
		b.DependsOn = []string{"a"}
		assert.NoError(t, Validate([]Task{a, b}))
	})

	t.Run("empty set passes", func(t *testing.T) {
		assert.NoError(t, Validate(nil))
	})

	t.Run("boundary priorities are accepted", func(t *testing.T) {
		lo := valid("lo")
		lo.Priority = 1
		hi := valid("hi")
		hi.Priority = 5
		assert.NoError(t, Validate([]Task{lo, hi}))
	})

	t.Run("priority below range is rejected", func(t *testing.T) {
		bad := valid("a")
		bad.Priority = 0
		err := Validate([]Task{bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPriority)
		assert.ErrorContains(t, err, `task "a" has invalid priority 0`)
		assert.ErrorContains(t, err, "between 1 and 5")
	})

	t.Run("priority above range is rejected", func(t *testing.T) {
		bad := valid("a")
		bad.Priority = 6
		err := Validate([]Task{bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPriority)
		assert.ErrorContains(t, err, "invalid priority 6")
	})

	t.Run("unknown dependency is rejected", func(t *testing.T) {
		bad := valid("a")
		bad.DependsOn = []string{"missing"}
		err := Validate([]Task{bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDependency)
		assert.ErrorContains(t, err, "non-existent task")
		assert.ErrorContains(t, err, `"missing"`)
	})

	t.Run("negative hours are rejected", func(t *testing.T) {
		bad := valid("a")
		bad.EstimatedHours = -2.5
		err := Validate([]Task{bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTask)
		assert.ErrorContains(t, err, `task "a" has negative estimated hours`)
	})

	t.Run("zero hours are accepted", func(t *testing.T) {
		free := valid("a")
		free.EstimatedHours = 0
		assert.NoError(t, Validate([]Task{free}))
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		err := Validate([]Task{valid("a"), valid("b"), valid("a")})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTask)
		assert.ErrorContains(t, err, `duplicate task id "a"`)
	})

	t.Run("unparseable deadline is rejected", func(t *testing.T) {
		bad := valid("a")
		bad.Deadline = Deadline{Text: "soonish"}
		err := Validate([]Task{bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDeadline)
		assert.ErrorContains(t, err, `task "a" has invalid deadline`)
		assert.ErrorContains(t, err, "invalid date format")
	})

	t.Run("self dependency passes validation", func(t *testing.T) {
		// A self-reference is referentially complete; the cycle stage
		// owns rejecting it.
		selfish := valid("a")
		selfish.DependsOn = []string{"a"}
		assert.NoError(t, Validate([]Task{selfish}))
	})

	t.Run("deadline errors win over later business-rule errors", func(t *testing.T) {
		// All deadlines resolve before any field check runs, so the bad
		// deadline on the second task is reported, not the bad priority
		// on the first.
		badPriority := valid("first")
		badPriority.Priority = 9
		badDeadline := valid("second")
		badDeadline.Deadline = Deadline{Text: "???"}

		err := Validate([]Task{badPriority, badDeadline})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDeadline)
	})

	t.Run("first offender in input order is reported", func(t *testing.T) {
		first := valid("first")
		first.Priority = 0
		second := valid("second")
		second.Priority = 6

		err := Validate([]Task{first, second})
		require.Error(t, err)
		assert.ErrorContains(t, err, `task "first"`)
	})

	t.Run("priority is checked before dependencies within a task", func(t *testing.T) {
		bad := valid("a")
		bad.Priority = 0
		bad.DependsOn = []string{"missing"}

		err := Validate([]Task{bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPriority)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := []Task{valid("a"), valid("b")}
		in[1].DependsOn = []string{"a"}
		snapshot := []Task{in[0], in[1]}

		require.NoError(t, Validate(in))
		assert.Equal(t, snapshot, in)
	})
}

func TestValidateDeadlineForms(t *testing.T) {
	t.Run("instant and string forms mix in one set", func(t *testing.T) {
		a := valid("a")
		a.Deadline = Deadline{Time: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}
		b := valid("b")
		b.Deadline = Deadline{Text: "2024-01-16T09:00:00Z"}
		assert.NoError(t, Validate([]Task{a, b}))
	})
}
