// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tasklist"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// ListFilter selects which tasks ListTasks returns.
type ListFilter string

// List filters.
const (
	ListOpen          ListFilter = "open" // due and overdue
	ListDue           ListFilter = "due"
	ListOverdue       ListFilter = "overdue"
	ListAsleep        ListFilter = "asleep"
	ListFinished      ListFilter = "finished"
	ListFinishedToday ListFilter = "finished_today"
	ListAll           ListFilter = "all"
)

// ListFilters returns every accepted filter.
func ListFilters() []ListFilter {
	return []ListFilter{ListOpen, ListDue, ListOverdue, ListAsleep, ListFinished, ListFinishedToday, ListAll}
}

// ParseListFilter converts user input into a ListFilter.
func ParseListFilter(s string) (ListFilter, error) {
	if s == "" {
		return ListOpen, nil
	}
	for _, f := range ListFilters() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Frequency string     // Frequency to show (empty = all)
	Filter    ListFilter // Status filter (empty = open)
}

// ListedTask is one task in a listing.
// Fields are ordered to minimize memory padding.
type ListedTask struct {
	Task     domain.Task
	Position int // Agenda position usable as a target (0 for sleeping tasks)
	DaysLeft int // Days until a sleeping task wakes
}

// TaskSection holds the listed tasks of one frequency.
type TaskSection struct {
	Frequency string
	Tasks     []ListedTask
}

// ListTasksOutput contains the listing.
type ListTasksOutput struct {
	Sections []TaskSection // Agenda tasks grouped by frequency in display order
	Sleepers []ListedTask  // Sleeping tasks in wake order
}

// Total returns the number of listed tasks.
func (o *ListTasksOutput) Total() int {
	n := len(o.Sleepers)
	for _, s := range o.Sections {
		n += len(s.Tasks)
	}
	return n
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks       domain.BoardRepository
	clock       domain.Clock
	frequencies domain.Frequencies
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.BoardRepository, frequencies domain.Frequencies, clock domain.Clock) *ListTasks {
	return &ListTasks{tasks: tasks, frequencies: frequencies, clock: clock}
}

// Execute returns the tasks matching the input.
// Positions are the tasks' places in the full agenda, so they stay valid
// targets whatever the filter.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	filter := in.Filter
	if filter == "" {
		filter = ListOpen
	}
	if _, err := ParseListFilter(string(filter)); err != nil {
		return nil, err
	}
	if in.Frequency != "" {
		if _, err := uc.frequencies.Get(in.Frequency); err != nil {
			return nil, err
		}
	}

	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	today := domain.Day(uc.clock.Now())
	return listBoard(board, in.Frequency, statusMatcher(filter, today), filter == ListAsleep || filter == ListAll, today), nil
}

func statusMatcher(filter ListFilter, today time.Time) func(*domain.Task) bool {
	switch filter {
	case ListDue:
		return func(t *domain.Task) bool { return t.Status == domain.StatusDue }
	case ListOverdue:
		return func(t *domain.Task) bool { return t.Status == domain.StatusOverdue }
	case ListFinished:
		return func(t *domain.Task) bool { return t.Status == domain.StatusFinished }
	case ListFinishedToday:
		return func(t *domain.Task) bool { return t.FinishedOn(today) }
	case ListAll:
		return func(*domain.Task) bool { return true }
	case ListAsleep:
		return func(*domain.Task) bool { return false }
	default:
		return func(t *domain.Task) bool { return t.IsOpen() }
	}
}

// listBoard collects agenda tasks matching keep, and the sleepers when
// withSleepers is set, restricted to frequency unless it is empty.
func listBoard(board *tasklist.Board, frequency string, keep func(*domain.Task) bool, withSleepers bool, today time.Time) *ListTasksOutput {
	out := &ListTasksOutput{}
	var section *TaskSection
	for _, e := range board.Agenda.Entries() {
		if frequency != "" && e.Task.Frequency != frequency {
			continue
		}
		if !keep(&e.Task) {
			continue
		}
		if section == nil || section.Frequency != e.Task.Frequency {
			out.Sections = append(out.Sections, TaskSection{Frequency: e.Task.Frequency})
			section = &out.Sections[len(out.Sections)-1]
		}
		section.Tasks = append(section.Tasks, ListedTask{Task: e.Task, Position: e.Index})
	}

	if withSleepers {
		for _, e := range board.Sleepers.Entries() {
			if frequency != "" && e.Task.Frequency != frequency {
				continue
			}
			lt := ListedTask{Task: e.Task}
			if e.Task.Until != nil {
				lt.DaysLeft = domain.DaysBetween(today, *e.Task.Until)
			}
			out.Sleepers = append(out.Sleepers, lt)
		}
	}
	return out
}
