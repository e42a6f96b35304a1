package tasklist

import (
	"testing"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioGroup builds A(daily), B(daily), C(weekly).
func scenarioGroup(t *testing.T) (*Group, map[string]Handle) {
	t.Helper()
	arena := NewArena()
	g := NewGroup(arena)
	h := map[string]Handle{
		"A": addTask(arena, "A", "daily"),
		"B": addTask(arena, "B", "daily"),
		"C": addTask(arena, "C", "weekly"),
	}
	g.Append(h["A"], testPriorities)
	g.Append(h["B"], testPriorities)
	g.Append(h["C"], testPriorities)
	assertGroup(t, g, testPriorities)
	return g, h
}

func memberNames(t *testing.T, g *Group, frequency string) []string {
	t.Helper()
	m, ok := g.Member(frequency)
	require.True(t, ok, "member %q", frequency)
	return names(m.Entries())
}

func TestGroup_AppendAndFetch(t *testing.T) {
	g, h := scenarioGroup(t)

	assert.Equal(t, []string{"daily", "weekly"}, g.Ordering())
	for pos, n := range []string{"A", "B", "C"} {
		got, err := g.At(pos + 1)
		require.NoError(t, err)
		assert.Equal(t, h[n], got, "position %d", pos+1)
	}
	for _, pos := range []int{0, 4} {
		_, err := g.At(pos)
		assert.ErrorIs(t, err, domain.ErrOutOfRange)
	}
}

func TestGroup_AtWalksBothHalves(t *testing.T) {
	arena := NewArena()
	g := NewGroup(arena)
	var want []Handle
	for _, row := range []struct{ name, freq string }{
		{"m1", "monthly"}, {"d1", "daily"}, {"w1", "weekly"}, {"d2", "daily"},
		{"m2", "monthly"}, {"w2", "weekly"}, {"d3", "daily"},
	} {
		g.Append(addTask(arena, row.name, row.freq), testPriorities)
	}
	for _, n := range []string{"d1", "d2", "d3", "w1", "w2", "m1", "m2"} {
		h, err := g.Lookup(n)
		require.NoError(t, err)
		want = append(want, h)
	}

	for i, h := range want {
		got, err := g.At(i + 1)
		require.NoError(t, err)
		assert.Equal(t, h, got, "position %d", i+1)
	}
	assertGroup(t, g, testPriorities)
}

func TestGroup_OrderingFollowsPriority(t *testing.T) {
	arena := NewArena()
	g := NewGroup(arena)

	g.Append(addTask(arena, "m", "monthly"), testPriorities)
	g.Append(addTask(arena, "d", "daily"), testPriorities)
	g.Append(addTask(arena, "x", "custom"), testPriorities)
	g.Append(addTask(arena, "w", "weekly"), testPriorities)

	assert.Equal(t, []string{"daily", "weekly", "monthly", "custom"}, g.Ordering())
	assertGroup(t, g, testPriorities)
}

func TestGroup_EqualPrioritiesKeepCreationOrder(t *testing.T) {
	arena := NewArena()
	g := NewGroup(arena)
	priorities := map[string]int{"chores": 2, "errands": 2, "daily": 1}

	g.Append(addTask(arena, "e", "errands"), priorities)
	g.Append(addTask(arena, "c", "chores"), priorities)
	g.Append(addTask(arena, "d", "daily"), priorities)
	g.Append(addTask(arena, "x", "gone2"), priorities)
	g.Append(addTask(arena, "y", "gone1"), priorities)

	assert.Equal(t, []string{"daily", "errands", "chores", "gone2", "gone1"}, g.Ordering())
	assertGroup(t, g, priorities)
}

func TestGroup_InitiateMemberIsIdempotent(t *testing.T) {
	g, _ := scenarioGroup(t)
	before, _ := g.Member("daily")

	got := g.InitiateMember("daily", testPriorities)

	assert.Same(t, before, got)
	assert.Equal(t, []string{"daily", "weekly"}, g.Ordering())
}

func TestGroup_MoveAcross(t *testing.T) {
	g, h := scenarioGroup(t)

	g.MoveAcross(h["B"], "weekly", testPriorities)

	assertGroup(t, g, testPriorities)
	daily, _ := g.Member("daily")
	assert.Equal(t, 1, daily.Len())
	assert.Equal(t, []string{"A"}, memberNames(t, g, "daily"))
	assert.Equal(t, []string{"C", "B"}, memberNames(t, g, "weekly"))
	assert.Equal(t, "weekly", g.arena.Task(h["B"]).Frequency)
}

func TestGroup_ChangeFrequencyCreatesAndPrunesMembers(t *testing.T) {
	g, h := scenarioGroup(t)

	g.ChangeFrequency(h["C"], "monthly", testPriorities)

	assertGroup(t, g, testPriorities)
	assert.Equal(t, []string{"daily", "monthly"}, g.Ordering())
	_, ok := g.Member("weekly")
	assert.False(t, ok, "emptied member must be pruned")
}

func TestGroup_DetachPrunesEmptyMember(t *testing.T) {
	g, h := scenarioGroup(t)

	g.Detach(h["C"])

	assertGroup(t, g, testPriorities)
	assert.Equal(t, []string{"daily"}, g.Ordering())
	assert.Equal(t, 2, g.Len())
}

func TestGroup_DetachByName(t *testing.T) {
	g, h := scenarioGroup(t)

	got, err := g.DetachByName("A")
	require.NoError(t, err)
	assert.Equal(t, h["A"], got)
	assertGroup(t, g, testPriorities)

	_, err = g.DetachByName("ghost")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Equal(t, 2, g.Len())
	assertGroup(t, g, testPriorities)
}

func TestGroup_DeleteMember(t *testing.T) {
	g, h := scenarioGroup(t)

	removed, err := g.DeleteMember("daily")

	require.NoError(t, err)
	assert.Equal(t, []Handle{h["A"], h["B"]}, removed)
	assertGroup(t, g, testPriorities)
	assert.Equal(t, []string{"weekly"}, g.Ordering())
	assert.Equal(t, 1, g.Len())

	_, err = g.DeleteMember("daily")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestGroup_TearDownByDeletingMembers(t *testing.T) {
	g, _ := scenarioGroup(t)

	for _, frequency := range g.Ordering() {
		for _, h := range mustDelete(t, g, frequency) {
			g.arena.Release(h)
		}
	}

	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Ordering())
	assert.Equal(t, 0, g.arena.Len())
	assertGroup(t, g, testPriorities)
}

func mustDelete(t *testing.T, g *Group, frequency string) []Handle {
	t.Helper()
	out, err := g.DeleteMember(frequency)
	require.NoError(t, err)
	return out
}

func TestGroup_MoveBefore_SameFrequency(t *testing.T) {
	g, h := scenarioGroup(t)

	mv, err := g.MoveBefore(h["B"], h["A"])

	require.NoError(t, err)
	assert.False(t, mv.Pending)
	assert.False(t, mv.CrossGroup())
	assertGroup(t, g, testPriorities)
	assert.Equal(t, []string{"B", "A"}, memberNames(t, g, "daily"))
}

func TestGroup_MoveBefore_CrossFrequencyNeedsCommit(t *testing.T) {
	g, h := scenarioGroup(t)

	mv, err := g.MoveBefore(h["C"], h["B"])

	require.NoError(t, err)
	assert.True(t, mv.Pending)
	assert.Equal(t, "weekly", mv.From)
	assert.Equal(t, "daily", mv.To)
	// Detecting the move must not change anything.
	assert.Equal(t, []string{"A", "B"}, memberNames(t, g, "daily"))
	assert.Equal(t, []string{"C"}, memberNames(t, g, "weekly"))

	changed, err := g.CommitMove(mv, true)

	require.NoError(t, err)
	assert.True(t, changed)
	assertGroup(t, g, testPriorities)
	assert.Equal(t, []string{"A", "C", "B"}, memberNames(t, g, "daily"))
	assert.Equal(t, []string{"daily"}, g.Ordering())
	assert.Equal(t, "daily", g.arena.Task(h["C"]).Frequency)
}

func TestGroup_CommitMove_Refused(t *testing.T) {
	g, h := scenarioGroup(t)
	mv, err := g.MoveBefore(h["A"], h["C"])
	require.NoError(t, err)

	changed, err := g.CommitMove(mv, false)

	require.NoError(t, err)
	assert.False(t, changed)
	assertGroup(t, g, testPriorities)
	assert.Equal(t, []string{"A", "B"}, memberNames(t, g, "daily"))
	assert.Equal(t, []string{"C"}, memberNames(t, g, "weekly"))
}

func TestGroup_CommitMove_StaleTask(t *testing.T) {
	g, h := scenarioGroup(t)
	mv, err := g.MoveBefore(h["A"], h["C"])
	require.NoError(t, err)
	g.Detach(h["C"])

	_, err = g.CommitMove(mv, true)

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assertGroup(t, g, testPriorities)
}

func TestGroup_MoveTo(t *testing.T) {
	g, h := scenarioGroup(t)

	mv, err := g.MoveTo(h["B"], 1)
	require.NoError(t, err)
	assert.False(t, mv.Pending)
	assert.Equal(t, []string{"B", "A"}, memberNames(t, g, "daily"))

	mv, err = g.MoveTo(h["A"], 3)
	require.NoError(t, err)
	assert.True(t, mv.Pending)

	_, err = g.MoveTo(h["A"], 9)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	assertGroup(t, g, testPriorities)
}

func TestGroup_Rename(t *testing.T) {
	g, h := scenarioGroup(t)

	g.Rename(h["C"], "Chores")

	assertGroup(t, g, testPriorities)
	got, err := g.Lookup("Chores")
	require.NoError(t, err)
	assert.Equal(t, h["C"], got)
	assert.Equal(t, 3, g.Len())
}

func TestGroup_Rename_OverwritesExistingEntry(t *testing.T) {
	g, h := scenarioGroup(t)

	g.Rename(h["A"], "C")

	got, err := g.Lookup("C")
	require.NoError(t, err)
	assert.Equal(t, h["A"], got)
	assert.Equal(t, 3, g.Len())
	assert.Len(t, g.names, 2)
}

func TestGroup_Entries(t *testing.T) {
	g, h := scenarioGroup(t)
	g.SetStatus(h["A"], domain.StatusFinished)
	g.SetDescription(h["C"], "laundry")

	all := g.Entries()
	assert.Equal(t, []string{"A", "B", "C"}, names(all))
	for i, e := range all {
		assert.Equal(t, i+1, e.Index)
	}
	assert.Equal(t, "laundry", all[2].Task.Description)

	open := g.EntriesWhere(func(t *domain.Task) bool { return t.IsOpen() })
	assert.Equal(t, []string{"B", "C"}, names(open))
	assert.Equal(t, 1, open[0].Index)
	assert.Equal(t, 2, open[1].Index)
}
