package tasklist

import (
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
)

// Entry is one numbered task produced by enumeration.
type Entry struct {
	Task   domain.Task
	Index  int // 1-based display index
	Handle Handle
}

// Sequence is an ordered, doubly-linked list of tasks with a name index.
//
// Positions are 1-based. Every mutating method that takes a handle expects
// the caller to pass a task currently linked in this sequence (or, for the
// inserting methods, one that is not linked anywhere).
type Sequence struct {
	arena *Arena
	names glossary
	head  Handle
	tail  Handle
	size  int
}

// NewSequence creates an empty sequence with its own name index.
func NewSequence(arena *Arena) *Sequence {
	return &Sequence{arena: arena, names: ownGlossary{}}
}

// Len returns the number of linked tasks.
func (s *Sequence) Len() int {
	return s.size
}

// Head returns the first handle, or Nil if the sequence is empty.
func (s *Sequence) Head() Handle {
	return s.head
}

// Tail returns the last handle, or Nil if the sequence is empty.
func (s *Sequence) Tail() Handle {
	return s.tail
}

// Lookup returns the handle registered under name.
func (s *Sequence) Lookup(name string) (Handle, error) {
	h, ok := s.names.lookup(name)
	if !ok {
		return Nil, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, name)
	}
	return h, nil
}

func (s *Sequence) register(h Handle) {
	s.names.register(s.arena.name(h), h)
	s.size++
}

func (s *Sequence) deregister(h Handle) {
	s.names.deregister(s.arena.name(h))
	s.size--
}

// Append links h after the current tail.
func (s *Sequence) Append(h Handle) {
	if s.size == 0 {
		s.head, s.tail = h, h
	} else {
		s.arena.setNext(s.tail, h)
		s.arena.setPrev(h, s.tail)
		s.tail = h
	}
	s.register(h)
}

// Detach unlinks h, clears its links and removes it from the name index.
func (s *Sequence) Detach(h Handle) {
	prev, next := s.arena.Prev(h), s.arena.Next(h)
	if prev == Nil {
		s.head = next
	} else {
		s.arena.setNext(prev, next)
	}
	if next == Nil {
		s.tail = prev
	} else {
		s.arena.setPrev(next, prev)
	}
	s.arena.setPrev(h, Nil)
	s.arena.setNext(h, Nil)
	s.deregister(h)
}

// DetachByName detaches the task registered under name.
func (s *Sequence) DetachByName(name string) (Handle, error) {
	h, err := s.Lookup(name)
	if err != nil {
		return Nil, err
	}
	s.Detach(h)
	return h, nil
}

// At returns the handle at pos, walking from whichever end is closer.
func (s *Sequence) At(pos int) (Handle, error) {
	if pos < 1 || pos > s.size {
		return Nil, fmt.Errorf("%w: %d not in [1, %d]", domain.ErrOutOfRange, pos, s.size)
	}
	if pos > s.size/2 {
		cur := s.tail
		for i := 0; i < s.size-pos; i++ {
			cur = s.arena.Prev(cur)
		}
		return cur, nil
	}
	cur := s.head
	for i := 1; i < pos; i++ {
		cur = s.arena.Next(cur)
	}
	return cur, nil
}

// InsertAt links h in front of the task currently at pos.
// Only 1 <= pos <= Len() is accepted: Append is the only way to reach the end.
func (s *Sequence) InsertAt(h Handle, pos int) error {
	if pos < 1 || pos > s.size {
		return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrOutOfRange, pos, s.size)
	}
	if pos == 1 {
		s.arena.setNext(h, s.head)
		s.arena.setPrev(s.head, h)
		s.head = h
		s.register(h)
		return nil
	}
	pred, err := s.At(pos - 1)
	if err != nil {
		return err
	}
	next := s.arena.Next(pred)
	s.arena.setNext(h, next)
	s.arena.setPrev(h, pred)
	s.arena.setNext(pred, h)
	if next == Nil {
		s.tail = h
	} else {
		s.arena.setPrev(next, h)
	}
	s.register(h)
	return nil
}

// InsertBefore links a directly in front of b, which must be linked here.
func (s *Sequence) InsertBefore(a, b Handle) {
	prev := s.arena.Prev(b)
	s.arena.setNext(a, b)
	s.arena.setPrev(a, prev)
	if prev == Nil {
		s.head = a
	} else {
		s.arena.setNext(prev, a)
	}
	s.arena.setPrev(b, a)
	s.register(a)
}

// Move relocates h so that it ends up at pos. Moving to the last position
// appends h, since InsertAt refuses the slot past the tail.
func (s *Sequence) Move(h Handle, pos int) error {
	if pos < 1 || pos > s.size {
		return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrOutOfRange, pos, s.size)
	}
	s.Detach(h)
	if pos > s.size {
		s.Append(h)
		return nil
	}
	return s.InsertAt(h, pos)
}

// MoveBefore relocates a directly in front of b.
func (s *Sequence) MoveBefore(a, b Handle) {
	if a == b {
		return
	}
	s.Detach(a)
	s.InsertBefore(a, b)
}

// Rename changes the name of h and re-registers it.
// An existing task registered under name loses its index entry.
func (s *Sequence) Rename(h Handle, name string) {
	s.deregister(h)
	s.arena.Task(h).Name = name
	s.register(h)
}

// SetDescription replaces the description of h.
func (s *Sequence) SetDescription(h Handle, description string) {
	s.arena.Task(h).Description = description
}

// SetStatus replaces the status of h.
func (s *Sequence) SetStatus(h Handle, status domain.Status) {
	s.arena.Task(h).Status = status
}

// Entries returns every task numbered from 1.
func (s *Sequence) Entries() []Entry {
	return s.EntriesFrom(1)
}

// EntriesFrom returns every task numbered from start.
func (s *Sequence) EntriesFrom(start int) []Entry {
	out := make([]Entry, 0, s.size)
	for h := s.head; h != Nil; h = s.arena.Next(h) {
		out = append(out, Entry{Index: start, Handle: h, Task: *s.arena.Task(h)})
		start++
	}
	return out
}

// EntriesWhere returns the tasks matching keep, numbered consecutively from 1.
func (s *Sequence) EntriesWhere(keep func(*domain.Task) bool) []Entry {
	return s.entriesWhereFrom(keep, 1)
}

func (s *Sequence) entriesWhereFrom(keep func(*domain.Task) bool, start int) []Entry {
	var out []Entry
	for h := s.head; h != Nil; h = s.arena.Next(h) {
		t := s.arena.Task(h)
		if !keep(t) {
			continue
		}
		out = append(out, Entry{Index: start, Handle: h, Task: *t})
		start++
	}
	return out
}
