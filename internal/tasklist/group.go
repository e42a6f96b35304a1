package tasklist

import (
	"fmt"
	"math"
	"slices"

	"github.com/runoshun/todo-iq/internal/domain"
)

// Group partitions tasks into one member sequence per frequency.
// Members share the group's name index, and the group's size is the sum of
// its members' sizes. A member exists only while it holds at least one task.
type Group struct {
	arena    *Arena
	members  map[string]*Sequence
	names    map[string]Handle
	ordering []string // Member frequencies sorted by priority
	size     int
}

// NewGroup creates an empty group.
func NewGroup(arena *Arena) *Group {
	return &Group{
		arena:   arena,
		members: make(map[string]*Sequence),
		names:   make(map[string]Handle),
	}
}

// Move describes a move of Node in front of Before.
// Fields are ordered to minimize memory padding.
type Move struct {
	From    string // Frequency of Node before the move
	To      string // Frequency of Before
	Node    Handle
	Before  Handle
	Pending bool // Crosses frequencies and waits for CommitMove
}

// CrossGroup reports whether the move changes the task's frequency.
func (m Move) CrossGroup() bool {
	return m.From != m.To
}

// Len returns the number of tasks across all members.
func (g *Group) Len() int {
	return g.size
}

// Ordering returns the member frequencies in display order.
func (g *Group) Ordering() []string {
	return slices.Clone(g.ordering)
}

// Member returns the member sequence for a frequency.
func (g *Group) Member(frequency string) (*Sequence, bool) {
	m, ok := g.members[frequency]
	return m, ok
}

// Lookup returns the handle registered under name.
func (g *Group) Lookup(name string) (Handle, error) {
	h, ok := g.names[name]
	if !ok {
		return Nil, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, name)
	}
	return h, nil
}

func priorityOf(priorities map[string]int, frequency string) int {
	if p, ok := priorities[frequency]; ok {
		return p
	}
	return math.MaxInt
}

// InitiateMember creates an empty member for frequency and places it in the
// ordering in front of the first member with a higher priority, so members
// sharing a priority keep the order they were created in.
// Frequencies missing from priorities sort last.
func (g *Group) InitiateMember(frequency string, priorities map[string]int) *Sequence {
	if m, ok := g.members[frequency]; ok {
		return m
	}
	m := &Sequence{arena: g.arena, names: groupGlossary{group: g}}
	g.members[frequency] = m

	p := priorityOf(priorities, frequency)
	i := 0
	for i < len(g.ordering) && priorityOf(priorities, g.ordering[i]) <= p {
		i++
	}
	g.ordering = slices.Insert(g.ordering, i, frequency)
	return m
}

func (g *Group) dropMember(frequency string) {
	delete(g.members, frequency)
	if i := slices.Index(g.ordering, frequency); i >= 0 {
		g.ordering = slices.Delete(g.ordering, i, i+1)
	}
}

// DeleteMember detaches every task of a member and removes the member.
// The detached handles are returned in list order for the caller to release.
func (g *Group) DeleteMember(frequency string) ([]Handle, error) {
	m, ok := g.members[frequency]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrMemberNotFound, frequency)
	}
	g.dropMember(frequency)
	out := make([]Handle, 0, m.size)
	for m.head != Nil {
		h := m.head
		m.Detach(h)
		out = append(out, h)
	}
	return out, nil
}

// Append adds h to the member of its frequency, creating the member if needed.
func (g *Group) Append(h Handle, priorities map[string]int) {
	frequency := g.arena.Task(h).Frequency
	m, ok := g.members[frequency]
	if !ok {
		m = g.InitiateMember(frequency, priorities)
	}
	m.Append(h)
}

// Detach removes h from its member and prunes the member if it empties.
func (g *Group) Detach(h Handle) {
	frequency := g.arena.Task(h).Frequency
	m := g.members[frequency]
	m.Detach(h)
	if m.size == 0 {
		g.dropMember(frequency)
	}
}

// DetachByName detaches the task registered under name.
func (g *Group) DetachByName(name string) (Handle, error) {
	h, err := g.Lookup(name)
	if err != nil {
		return Nil, err
	}
	g.Detach(h)
	return h, nil
}

// At returns the handle at a group-wide position. Members are walked from
// the front or the back depending on which half pos falls in.
func (g *Group) At(pos int) (Handle, error) {
	if pos < 1 || pos > g.size {
		return Nil, fmt.Errorf("%w: %d not in [1, %d]", domain.ErrOutOfRange, pos, g.size)
	}
	m, local := g.locate(pos)
	return m.At(local)
}

// locate translates a valid group-wide position into a member and a local position.
func (g *Group) locate(pos int) (*Sequence, int) {
	if pos > g.size/2 {
		rest := g.size - pos + 1 // position counted from the back
		for i := len(g.ordering) - 1; ; i-- {
			m := g.members[g.ordering[i]]
			if rest <= m.size {
				return m, m.size - rest + 1
			}
			rest -= m.size
		}
	}
	rest := pos
	for i := 0; ; i++ {
		m := g.members[g.ordering[i]]
		if rest <= m.size {
			return m, rest
		}
		rest -= m.size
	}
}

// MoveAcross moves h to the end of the member for frequency.
func (g *Group) MoveAcross(h Handle, frequency string, priorities map[string]int) {
	g.Detach(h)
	g.arena.Task(h).Frequency = frequency
	g.Append(h, priorities)
}

// ChangeFrequency reassigns the frequency of h, moving it to the end of the
// matching member.
func (g *Group) ChangeFrequency(h Handle, frequency string, priorities map[string]int) {
	g.MoveAcross(h, frequency, priorities)
}

// MoveBefore moves a in front of b when both share a frequency. When they
// don't, nothing changes and the returned Move is Pending: the caller decides
// and applies it with CommitMove.
func (g *Group) MoveBefore(a, b Handle) (Move, error) {
	if !g.arena.Valid(a) || !g.arena.Valid(b) {
		return Move{}, fmt.Errorf("move: %w", domain.ErrTaskNotFound)
	}
	mv := Move{
		Node:   a,
		Before: b,
		From:   g.arena.Task(a).Frequency,
		To:     g.arena.Task(b).Frequency,
	}
	if mv.CrossGroup() {
		mv.Pending = true
		return mv, nil
	}
	g.members[mv.From].MoveBefore(a, b)
	return mv, nil
}

// CommitMove applies a pending move if approved. It reports whether the
// group changed.
func (g *Group) CommitMove(mv Move, approved bool) (bool, error) {
	if !mv.Pending || !approved {
		return false, nil
	}
	if !g.holds(mv.Node) || !g.holds(mv.Before) {
		return false, fmt.Errorf("commit move: %w", domain.ErrTaskNotFound)
	}
	to := g.arena.Task(mv.Before).Frequency
	if g.arena.Task(mv.Node).Frequency == to {
		g.members[to].MoveBefore(mv.Node, mv.Before)
		return true, nil
	}
	g.Detach(mv.Node)
	g.arena.Task(mv.Node).Frequency = to
	g.members[to].InsertBefore(mv.Node, mv.Before)
	return true, nil
}

// holds reports whether h is a live task registered in this group.
func (g *Group) holds(h Handle) bool {
	if !g.arena.Valid(h) {
		return false
	}
	got, ok := g.names[g.arena.name(h)]
	return ok && got == h
}

// MoveTo moves h in front of the task currently at a group-wide position.
func (g *Group) MoveTo(h Handle, pos int) (Move, error) {
	b, err := g.At(pos)
	if err != nil {
		return Move{}, err
	}
	return g.MoveBefore(h, b)
}

// Rename changes the name of h within its member.
func (g *Group) Rename(h Handle, name string) {
	g.members[g.arena.Task(h).Frequency].Rename(h, name)
}

// SetDescription replaces the description of h.
func (g *Group) SetDescription(h Handle, description string) {
	g.arena.Task(h).Description = description
}

// SetStatus replaces the status of h.
func (g *Group) SetStatus(h Handle, status domain.Status) {
	g.arena.Task(h).Status = status
}

// Entries returns every task grouped by frequency, numbered from 1 across
// the whole group.
func (g *Group) Entries() []Entry {
	out := make([]Entry, 0, g.size)
	next := 1
	for _, frequency := range g.ordering {
		entries := g.members[frequency].EntriesFrom(next)
		next += len(entries)
		out = append(out, entries...)
	}
	return out
}

// EntriesWhere returns the tasks matching keep, grouped by frequency and
// numbered consecutively across the whole group.
func (g *Group) EntriesWhere(keep func(*domain.Task) bool) []Entry {
	var out []Entry
	next := 1
	for _, frequency := range g.ordering {
		entries := g.members[frequency].entriesWhereFrom(keep, next)
		next += len(entries)
		out = append(out, entries...)
	}
	return out
}
