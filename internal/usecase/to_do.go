package usecase

import (
	"context"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// ToDoInput contains the parameters for the to-do list.
type ToDoInput struct{}

// ToDoOutput contains today's agenda.
// Fields are ordered to minimize memory padding.
type ToDoOutput struct {
	Sections      []TaskSection // Due and overdue tasks grouped by frequency
	Due           int
	Overdue       int
	FinishedToday int
	NextWake      int // Days until the next sleeper wakes (-1 if none)
}

// ToDo is the use case for today's agenda.
type ToDo struct {
	tasks       domain.BoardRepository
	clock       domain.Clock
	frequencies domain.Frequencies
}

// NewToDo creates a new ToDo use case.
func NewToDo(tasks domain.BoardRepository, frequencies domain.Frequencies, clock domain.Clock) *ToDo {
	return &ToDo{tasks: tasks, frequencies: frequencies, clock: clock}
}

// Execute returns the open tasks with a short summary.
func (uc *ToDo) Execute(_ context.Context, _ ToDoInput) (*ToDoOutput, error) {
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	today := domain.Day(uc.clock.Now())

	out := &ToDoOutput{NextWake: -1}
	out.Sections = listBoard(board, "", func(t *domain.Task) bool { return t.IsOpen() }, false, today).Sections
	for _, e := range board.Agenda.Entries() {
		switch {
		case e.Task.Status == domain.StatusDue:
			out.Due++
		case e.Task.Status == domain.StatusOverdue:
			out.Overdue++
		case e.Task.FinishedOn(today):
			out.FinishedToday++
		}
	}
	if until, ok := board.Sleepers.PeekUntil(); ok {
		out.NextWake = max(domain.DaysBetween(today, until), 0)
	}
	return out, nil
}
