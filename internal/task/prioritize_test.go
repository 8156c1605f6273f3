package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mk builds a task in one line for scenario tables.
func mk(id string, priority int, deadline string, hours float64, deps ...string) Task {
	return Task{
		ID:             id,
		Name:           "task " + id,
		Deadline:       Deadline{Text: deadline},
		Priority:       priority,
		DependsOn:      deps,
		EstimatedHours: hours,
	}
}

func orderedIDs(tasks []Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// assertPermutation checks that out reorders exactly the tasks of in.
func assertPermutation(t *testing.T, in, out []Task) {
	t.Helper()
	require.Len(t, out, len(in))
	assert.ElementsMatch(t, orderedIDs(in), orderedIDs(out))
}

// assertDependenciesFirst checks that every dependency is placed at a
// strictly earlier index than its dependent.
func assertDependenciesFirst(t *testing.T, out []Task) {
	t.Helper()
	placed := make(map[string]int, len(out))
	for i, task := range out {
		placed[task.ID] = i
	}
	for i, task := range out {
		for _, dep := range task.DependsOn {
			require.Contains(t, placed, dep)
			assert.Less(t, placed[dep], i,
				"task %q placed before its dependency %q", task.ID, dep)
		}
	}
}

func TestPrioritize(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input yields empty output", func(t *testing.T) {
		got, err := Prioritize(ctx, []Task{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("nil input yields empty output", func(t *testing.T) {
		got, err := Prioritize(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("single task comes back alone", func(t *testing.T) {
		got, err := Prioritize(ctx, []Task{mk("1", 3, "2024-01-15", 2)})
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, orderedIDs(got))
	})

	t.Run("dependency precedes dependent", func(t *testing.T) {
		got, err := Prioritize(ctx, []Task{
			mk("1", 5, "2024-01-15", 1),
			mk("2", 4, "2024-01-20", 1, "1"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, orderedIDs(got))
	})

	t.Run("chain stays a chain regardless of priorities", func(t *testing.T) {
		got, err := Prioritize(ctx, []Task{
			mk("c", 5, "2024-01-15", 1, "b"),
			mk("b", 4, "2024-01-15", 1, "a"),
			mk("a", 1, "2024-01-15", 1),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, orderedIDs(got))
	})

	t.Run("independent tasks order by priority", func(t *testing.T) {
		got, err := Prioritize(ctx, []Task{
			mk("p2", 2, "2024-01-15", 1),
			mk("p5", 5, "2024-01-15", 1),
			mk("p3", 3, "2024-01-15", 1),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"p5", "p3", "p2"}, orderedIDs(got))
	})

	t.Run("equal priority orders by deadline", func(t *testing.T) {
		got, err := Prioritize(ctx, []Task{
			mk("late", 3, "2024-02-01", 1),
			mk("early", 3, "2024-01-10", 1),
			mk("mid", 3, "2024-01-20", 1),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"early", "mid", "late"}, orderedIDs(got))
	})

	t.Run("equal priority and deadline orders by hours", func(t *testing.T) {
		got, err := Prioritize(ctx, []Task{
			mk("heavy", 3, "2024-01-15", 8),
			mk("light", 3, "2024-01-15", 0.5),
			mk("mid", 3, "2024-01-15", 3),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"light", "mid", "heavy"}, orderedIDs(got))
	})

	t.Run("full tie falls back to input order", func(t *testing.T) {
		got, err := Prioritize(ctx, []Task{
			mk("first", 3, "2024-01-15", 2),
			mk("second", 3, "2024-01-15", 2),
			mk("third", 3, "2024-01-15", 2),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, orderedIDs(got))
	})

	t.Run("instant and string deadlines compare as instants", func(t *testing.T) {
		instant := Task{
			ID:             "instant",
			Name:           "instant",
			Deadline:       Deadline{Time: time.Date(2024, 1, 14, 23, 0, 0, 0, time.UTC)},
			Priority:       3,
			EstimatedHours: 1,
		}
		got, err := Prioritize(ctx, []Task{mk("text", 3, "2024-01-15", 1), instant})
		require.NoError(t, err)
		assert.Equal(t, []string{"instant", "text"}, orderedIDs(got))
	})

	t.Run("diamond places root first and merge last", func(t *testing.T) {
		in := []Task{
			mk("1", 3, "2024-01-15", 1),
			mk("2", 3, "2024-01-15", 1, "1"),
			mk("3", 3, "2024-01-15", 1, "1"),
			mk("4", 3, "2024-01-15", 1, "2", "3"),
		}
		got, err := Prioritize(ctx, in)
		require.NoError(t, err)

		ids := orderedIDs(got)
		assert.Equal(t, "1", ids[0])
		assert.Equal(t, "4", ids[3])
		assert.ElementsMatch(t, []string{"2", "3"}, ids[1:3])
		assertDependenciesFirst(t, got)
	})

	t.Run("project plan interleaves by priority under dependencies", func(t *testing.T) {
		in := []Task{
			mk("1", 5, "2024-01-25", 2),
			mk("2", 4, "2024-01-26", 5, "1"),
			mk("3", 5, "2024-01-27", 3, "1"),
			mk("4", 4, "2024-01-28", 8, "2", "3"),
			mk("5", 3, "2024-01-29", 2, "4"),
		}
		got, err := Prioritize(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "3", "2", "4", "5"}, orderedIDs(got))
		assertPermutation(t, in, got)
		assertDependenciesFirst(t, got)
	})

	t.Run("waiting high priority is never overtaken once ready", func(t *testing.T) {
		in := []Task{
			mk("root", 5, "2024-01-15", 1),
			mk("urgent", 4, "2024-01-15", 1, "root"),
			mk("filler", 2, "2024-01-15", 1),
		}
		got, err := Prioritize(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, []string{"root", "urgent", "filler"}, orderedIDs(got))
	})

	t.Run("wide graph keeps every invariant", func(t *testing.T) {
		in := []Task{
			mk("infra", 4, "2024-01-10", 4),
			mk("schema", 5, "2024-01-12", 2, "infra"),
			mk("api", 4, "2024-01-18", 6, "schema"),
			mk("ui", 3, "2024-01-20", 6, "api"),
			mk("docs", 1, "2024-02-01", 2),
			mk("tests", 5, "2024-01-19", 3, "api"),
			mk("deploy", 2, "2024-01-25", 1, "tests", "ui"),
			mk("announce", 1, "2024-02-02", 0.5, "deploy"),
		}
		got, err := Prioritize(ctx, in)
		require.NoError(t, err)
		assertPermutation(t, in, got)
		assertDependenciesFirst(t, got)
	})

	t.Run("repeated calls return identical output", func(t *testing.T) {
		in := []Task{
			mk("a", 3, "2024-01-15", 2),
			mk("b", 3, "2024-01-15", 2),
			mk("c", 3, "2024-01-15", 2, "a"),
			mk("d", 5, "2024-01-15", 1, "a"),
		}
		first, err := Prioritize(ctx, in)
		require.NoError(t, err)
		second, err := Prioritize(ctx, in)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("runs disagree (-first +second):\n%s", diff)
		}
	})

	t.Run("output keeps the original task values", func(t *testing.T) {
		in := []Task{
			mk("b", 3, "2024-01-20", 2, "a"),
			mk("a", 3, "2024-01-15", 1),
		}
		got, err := Prioritize(ctx, in)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, orderedIDs(got))

		// The values come back as given: deadline text untouched, no
		// normalized instants leaking out.
		if diff := cmp.Diff(in[1], got[0]); diff != "" {
			t.Errorf("task %q changed (-in +out):\n%s", "a", diff)
		}
		if diff := cmp.Diff(in[0], got[1]); diff != "" {
			t.Errorf("task %q changed (-in +out):\n%s", "b", diff)
		}
	})
}

func TestPrioritizeErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("self dependency is a circular dependency", func(t *testing.T) {
		_, err := Prioritize(ctx, []Task{mk("1", 3, "2024-01-15", 1, "1")})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCircularDependency)
		assert.ErrorContains(t, err, `circular dependency detected involving task "1"`)
	})

	t.Run("two task cycle is rejected", func(t *testing.T) {
		_, err := Prioritize(ctx, []Task{
			mk("1", 3, "2024-01-15", 1, "2"),
			mk("2", 3, "2024-01-15", 1, "1"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCircularDependency)
		assert.ErrorContains(t, err, "circular dependency detected")
	})

	t.Run("three task cycle is rejected", func(t *testing.T) {
		_, err := Prioritize(ctx, []Task{
			mk("1", 3, "2024-01-15", 1, "3"),
			mk("2", 3, "2024-01-15", 1, "1"),
			mk("3", 3, "2024-01-15", 1, "2"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCircularDependency)
	})

	t.Run("cycle error names a cycle member", func(t *testing.T) {
		_, err := Prioritize(ctx, []Task{
			mk("outside", 3, "2024-01-15", 1, "in1"),
			mk("in1", 3, "2024-01-15", 1, "in2"),
			mk("in2", 3, "2024-01-15", 1, "in1"),
		})
		require.Error(t, err)

		var taskErr *Error
		require.ErrorAs(t, err, &taskErr)
		assert.Contains(t, []string{"in1", "in2"}, taskErr.TaskID)
	})

	t.Run("validation failures abort before ranking", func(t *testing.T) {
		_, err := Prioritize(ctx, []Task{
			mk("ok", 3, "2024-01-15", 1),
			mk("broken", 7, "2024-01-15", 1),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPriority)
	})

	t.Run("unknown dependency aborts the call", func(t *testing.T) {
		_, err := Prioritize(ctx, []Task{mk("1", 3, "2024-01-15", 1, "999")})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDependency)
		assert.ErrorContains(t, err, `task "1" depends on non-existent task "999"`)
	})

	t.Run("duplicate ids abort the call", func(t *testing.T) {
		_, err := Prioritize(ctx, []Task{
			mk("1", 3, "2024-01-15", 1),
			mk("1", 4, "2024-01-16", 2),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTask)
		assert.ErrorContains(t, err, `duplicate task id "1"`)
	})

	t.Run("nothing partial comes back with an error", func(t *testing.T) {
		got, err := Prioritize(ctx, []Task{
			mk("1", 3, "2024-01-15", 1),
			mk("2", 3, "not a date", 1),
		})
		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestGroups(t *testing.T) {
	ctx := context.Background()

	t.Run("diamond groups into three waves", func(t *testing.T) {
		waves, err := Groups(ctx, []Task{
			mk("1", 3, "2024-01-15", 1),
			mk("2", 3, "2024-01-15", 1, "1"),
			mk("3", 3, "2024-01-15", 1, "1"),
			mk("4", 3, "2024-01-15", 1, "2", "3"),
		})
		require.NoError(t, err)

		got := make([][]string, len(waves))
		for i, wave := range waves {
			got[i] = orderedIDs(wave)
		}
		assert.Equal(t, [][]string{{"1"}, {"2", "3"}, {"4"}}, got)
	})

	t.Run("wave members order by the ranking comparator", func(t *testing.T) {
		waves, err := Groups(ctx, []Task{
			mk("low", 1, "2024-01-15", 1),
			mk("high", 5, "2024-01-15", 1),
		})
		require.NoError(t, err)
		require.Len(t, waves, 1)
		assert.Equal(t, []string{"high", "low"}, orderedIDs(waves[0]))
	})

	t.Run("empty input yields no waves", func(t *testing.T) {
		waves, err := Groups(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, waves)
	})

	t.Run("cycles are rejected the same way prioritize rejects them", func(t *testing.T) {
		_, err := Groups(ctx, []Task{mk("1", 3, "2024-01-15", 1, "1")})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCircularDependency)
	})
}

func TestCriticalPath(t *testing.T) {
	ctx := context.Background()

	t.Run("heaviest chain wins with its total", func(t *testing.T) {
		chain, hours, err := CriticalPath(ctx, []Task{
			mk("root", 3, "2024-01-15", 1),
			mk("light", 3, "2024-01-15", 2, "root"),
			mk("heavy", 3, "2024-01-15", 10, "root"),
			mk("merge", 3, "2024-01-15", 1, "light", "heavy"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"root", "heavy", "merge"}, orderedIDs(chain))
		assert.InDelta(t, 12, hours, 1e-9)
	})

	t.Run("empty input yields an empty path", func(t *testing.T) {
		chain, hours, err := CriticalPath(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, chain)
		assert.Zero(t, hours)
	})

	t.Run("validation failures propagate", func(t *testing.T) {
		_, _, err := CriticalPath(ctx, []Task{mk("1", 0, "2024-01-15", 1)})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPriority)
	})
}
