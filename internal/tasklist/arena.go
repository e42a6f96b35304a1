// Package tasklist implements the task storage structures: doubly-linked
// task sequences with a name index, a wake-ordered sleeper sequence and a
// group that partitions tasks into per-frequency sequences sharing one index.
//
// Tasks live in an Arena and are addressed by Handle. Sequences link
// handles, never pointers, so a detached task can't leave a dangling link.
package tasklist

import "github.com/runoshun/todo-iq/internal/domain"

// Handle addresses a task slot in an Arena.
// The zero Handle is the empty link.
type Handle uint32

// Nil is the empty link.
const Nil Handle = 0

// slot holds one task and its position links.
// Fields are ordered to minimize memory padding.
type slot struct {
	task domain.Task
	prev Handle
	next Handle
	live bool
}

// Arena owns task storage for every sequence built on it.
type Arena struct {
	slots []slot // slots[0] backs Nil and is never live
	free  []Handle
	live  int
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	return &Arena{slots: make([]slot, 1)}
}

// New stores a task and returns its handle. The task is not linked anywhere.
func (a *Arena) New(t domain.Task) Handle {
	a.live++
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h] = slot{task: t, live: true}
		return h
	}
	a.slots = append(a.slots, slot{task: t, live: true})
	return Handle(len(a.slots) - 1)
}

// Release frees a detached task's slot and returns the task.
// Releasing Nil or an already released handle is a no-op.
func (a *Arena) Release(h Handle) domain.Task {
	if !a.Valid(h) {
		return domain.Task{}
	}
	t := a.slots[h].task
	a.slots[h] = slot{}
	a.free = append(a.free, h)
	a.live--
	return t
}

// Valid reports whether h addresses a live slot.
func (a *Arena) Valid(h Handle) bool {
	return h != Nil && int(h) < len(a.slots) && a.slots[h].live
}

// Len returns the number of live tasks.
func (a *Arena) Len() int {
	return a.live
}

// Task returns the task stored at h, or nil if h is not live.
// The pointer is only valid until the next call to New.
func (a *Arena) Task(h Handle) *domain.Task {
	if !a.Valid(h) {
		return nil
	}
	return &a.slots[h].task
}

// Prev returns the handle linked before h.
func (a *Arena) Prev(h Handle) Handle {
	return a.slots[h].prev
}

// Next returns the handle linked after h.
func (a *Arena) Next(h Handle) Handle {
	return a.slots[h].next
}

func (a *Arena) setPrev(h, p Handle) {
	if h != Nil {
		a.slots[h].prev = p
	}
}

func (a *Arena) setNext(h, n Handle) {
	if h != Nil {
		a.slots[h].next = n
	}
}

func (a *Arena) name(h Handle) string {
	return a.slots[h].task.Name
}
