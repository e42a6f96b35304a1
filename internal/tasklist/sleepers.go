package tasklist

import (
	"fmt"
	"time"

	"github.com/runoshun/todo-iq/internal/domain"
)

// Sleepers is a sequence kept in ascending order of wake date.
type Sleepers struct {
	*Sequence
}

// NewSleepers creates an empty sleeper sequence with its own name index.
func NewSleepers(arena *Arena) *Sleepers {
	return &Sleepers{Sequence: NewSequence(arena)}
}

func (s *Sleepers) until(h Handle) time.Time {
	if u := s.arena.Task(h).Until; u != nil {
		return *u
	}
	return time.Time{}
}

// Add links h in front of the first task that wakes strictly later,
// so tasks sharing a wake date keep their insertion order.
// A task without a wake date sorts first.
func (s *Sleepers) Add(h Handle) {
	until := s.until(h)
	cur := s.head
	for cur != Nil && !s.until(cur).After(until) {
		cur = s.arena.Next(cur)
	}
	if cur == Nil {
		s.Sequence.Append(h)
		return
	}
	s.Sequence.InsertBefore(h, cur)
}

// Append links h at its wake-date position. Sleepers has no unsorted tail
// insertion.
func (s *Sleepers) Append(h Handle) {
	s.Add(h)
}

// WakeHead detaches the earliest task and clears its wake date.
func (s *Sleepers) WakeHead() (Handle, error) {
	h := s.head
	if h == Nil {
		return Nil, fmt.Errorf("wake sleeper: %w", domain.ErrEmptyCollection)
	}
	s.Detach(h)
	s.arena.Task(h).Until = nil
	return h, nil
}

// PeekUntil returns the wake date of the head task.
func (s *Sleepers) PeekUntil() (time.Time, bool) {
	if s.head == Nil {
		return time.Time{}, false
	}
	return s.until(s.head), true
}

// DetachAllOfFrequency detaches every task of the given frequency and
// returns their handles in list order.
func (s *Sleepers) DetachAllOfFrequency(frequency string) []Handle {
	var out []Handle
	for cur := s.head; cur != Nil; {
		next := s.arena.Next(cur)
		if s.arena.Task(cur).Frequency == frequency {
			s.Detach(cur)
			out = append(out, cur)
		}
		cur = next
	}
	return out
}

// SetFrequency changes the frequency of a sleeping task.
func (s *Sleepers) SetFrequency(h Handle, frequency string) {
	s.arena.Task(h).Frequency = frequency
}
