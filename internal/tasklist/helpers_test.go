package tasklist

import (
	"testing"
	"time"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPriorities = map[string]int{"daily": 1, "weekly": 2, "monthly": 3}

var day0 = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

func addTask(a *Arena, name, frequency string) Handle {
	return a.New(domain.Task{Name: name, Frequency: frequency, Status: domain.StatusDue})
}

func sleeper(a *Arena, name string, inDays int) Handle {
	until := day0.AddDate(0, 0, inDays)
	return a.New(domain.Task{Name: name, Frequency: "daily", Status: domain.StatusAsleep, Until: &until})
}

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Task.Name)
	}
	return out
}

// assertLinked checks the link, size and head/tail invariants of a sequence
// and returns the walked handles.
func assertLinked(t *testing.T, s *Sequence) []Handle {
	t.Helper()
	var walked []Handle
	if s.size == 0 {
		assert.Equal(t, Nil, s.head, "empty sequence head")
		assert.Equal(t, Nil, s.tail, "empty sequence tail")
		return nil
	}
	require.NotEqual(t, Nil, s.head)
	assert.Equal(t, Nil, s.arena.Prev(s.head), "head.prev must be empty")
	assert.Equal(t, Nil, s.arena.Next(s.tail), "tail.next must be empty")

	prev := Nil
	for h := s.head; h != Nil; h = s.arena.Next(h) {
		assert.Equal(t, prev, s.arena.Prev(h), "back link of %q", s.arena.name(h))
		walked = append(walked, h)
		prev = h
		require.LessOrEqual(t, len(walked), s.size+1, "cycle detected")
	}
	assert.Equal(t, s.size, len(walked), "size must equal walked count")
	assert.Equal(t, s.tail, prev, "walk must end at tail")
	return walked
}

// assertSequence checks a standalone sequence and its own glossary.
func assertSequence(t *testing.T, s *Sequence) {
	t.Helper()
	walked := assertLinked(t, s)
	own, ok := s.names.(ownGlossary)
	require.True(t, ok, "standalone sequence must own its glossary")
	assert.Len(t, own, len(walked), "glossary size")
	for _, h := range walked {
		got, ok := own[s.arena.name(h)]
		assert.True(t, ok, "%q missing from glossary", s.arena.name(h))
		assert.Equal(t, h, got)
	}
}

// assertGroup checks every member, the shared glossary, the aggregate size
// and the ordering.
func assertGroup(t *testing.T, g *Group, priorities map[string]int) {
	t.Helper()
	total := 0
	seen := map[string]Handle{}
	for frequency, m := range g.members {
		assert.Positive(t, m.size, "empty member %q must be pruned", frequency)
		for _, h := range assertLinked(t, m) {
			assert.Equal(t, frequency, g.arena.Task(h).Frequency)
			seen[g.arena.name(h)] = h
		}
		total += m.size
	}
	assert.Equal(t, total, g.size, "group size must equal the sum of member sizes")
	assert.Equal(t, seen, g.names, "glossary must match linked tasks")

	require.Len(t, g.ordering, len(g.members))
	for i, frequency := range g.ordering {
		_, ok := g.members[frequency]
		assert.True(t, ok, "ordering entry %q has no member", frequency)
		if i > 0 {
			assert.LessOrEqual(t, priorityOf(priorities, g.ordering[i-1]), priorityOf(priorities, frequency),
				"ordering must be sorted by priority")
		}
	}
}

func assertSorted(t *testing.T, s *Sleepers) {
	t.Helper()
	assertSequence(t, s.Sequence)
	var last time.Time
	for h := s.head; h != Nil; h = s.arena.Next(h) {
		u := s.until(h)
		assert.False(t, u.Before(last), "sleepers must be non-decreasing by wake date")
		last = u
	}
}
