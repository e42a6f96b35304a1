package tasklist

import (
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
)

// Location tells which structure of a Board holds a task.
type Location int

const (
	InAgenda Location = iota + 1
	InSleepers
)

// Board is the complete task state: every non-sleeping task in an agenda
// group and every sleeping task in a sleeper sequence, backed by one arena.
type Board struct {
	arena      *Arena
	Agenda     *Group
	Sleepers   *Sleepers
	priorities map[string]int
}

// NewBoard creates an empty board ordering frequency lists by priorities.
func NewBoard(priorities map[string]int) *Board {
	arena := NewArena()
	return &Board{
		arena:      arena,
		Agenda:     NewGroup(arena),
		Sleepers:   NewSleepers(arena),
		priorities: priorities,
	}
}

// Restore rebuilds a board by replaying a snapshot in display order.
// Frequency lists are created in the saved ordering first, so lists sharing
// a priority come back in the order they were saved. Sleepers are re-sorted
// by wake date.
func Restore(snap *domain.Snapshot, priorities map[string]int) (*Board, error) {
	b := NewBoard(priorities)
	if snap == nil {
		return b, nil
	}
	for _, frequency := range snap.Ordering {
		b.Agenda.InitiateMember(frequency, priorities)
	}
	for _, t := range snap.Agenda {
		if _, _, err := b.Find(t.Name); err == nil {
			return nil, fmt.Errorf("restore %q: %w", t.Name, domain.ErrDuplicateName)
		}
		b.Agenda.Append(b.arena.New(t), priorities)
	}
	for _, t := range snap.Sleepers {
		if _, _, err := b.Find(t.Name); err == nil {
			return nil, fmt.Errorf("restore %q: %w", t.Name, domain.ErrDuplicateName)
		}
		b.Sleepers.Add(b.arena.New(t))
	}
	for _, frequency := range snap.Ordering {
		if m, ok := b.Agenda.Member(frequency); ok && m.Len() == 0 {
			b.Agenda.dropMember(frequency)
		}
	}
	return b, nil
}

// Snapshot returns every task in display order.
func (b *Board) Snapshot() *domain.Snapshot {
	snap := &domain.Snapshot{
		Ordering: b.Agenda.Ordering(),
		Agenda:   make([]domain.Task, 0, b.Agenda.Len()),
		Sleepers: make([]domain.Task, 0, b.Sleepers.Len()),
	}
	for _, e := range b.Agenda.Entries() {
		snap.Agenda = append(snap.Agenda, e.Task)
	}
	for _, e := range b.Sleepers.Entries() {
		snap.Sleepers = append(snap.Sleepers, e.Task)
	}
	return snap
}

// Priorities returns the frequency priorities used for new frequency lists.
func (b *Board) Priorities() map[string]int {
	return b.priorities
}

// Len returns the number of tasks on the board.
func (b *Board) Len() int {
	return b.Agenda.Len() + b.Sleepers.Len()
}

// Task returns the task stored at h, or nil if h is not live.
func (b *Board) Task(h Handle) *domain.Task {
	return b.arena.Task(h)
}

// NewTask stores t without linking it. Link it with Agenda.Append or
// Sleepers.Add.
func (b *Board) NewTask(t domain.Task) Handle {
	return b.arena.New(t)
}

// Release frees a detached task and returns it.
func (b *Board) Release(h Handle) domain.Task {
	return b.arena.Release(h)
}

// Find looks a task up by name in the agenda, then in the sleepers.
func (b *Board) Find(name string) (Handle, Location, error) {
	if h, err := b.Agenda.Lookup(name); err == nil {
		return h, InAgenda, nil
	}
	if h, err := b.Sleepers.Lookup(name); err == nil {
		return h, InSleepers, nil
	}
	return Nil, 0, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, name)
}

// Remove detaches a task from wherever it lives and releases it.
func (b *Board) Remove(h Handle, loc Location) domain.Task {
	switch loc {
	case InAgenda:
		b.Agenda.Detach(h)
	case InSleepers:
		b.Sleepers.Detach(h)
	}
	return b.arena.Release(h)
}
