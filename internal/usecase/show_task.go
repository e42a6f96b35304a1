package usecase

import (
	"context"
	"time"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tasklist"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	Target string // Task name or agenda position
}

// ShowTaskOutput contains the details of a task.
// Fields are ordered to minimize memory padding.
type ShowTaskOutput struct {
	NextDue   *time.Time // When a finished task is renewed, or a due task escalates
	Frequency domain.Frequency
	Task      domain.Task
	Location  tasklist.Location
	Position  int // Agenda position (0 for sleeping tasks)
	DaysLeft  int // Days until a sleeping task wakes
}

// ShowTask is the use case for displaying one task.
type ShowTask struct {
	tasks       domain.BoardRepository
	clock       domain.Clock
	frequencies domain.Frequencies
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.BoardRepository, frequencies domain.Frequencies, clock domain.Clock) *ShowTask {
	return &ShowTask{tasks: tasks, frequencies: frequencies, clock: clock}
}

// Execute returns the target task with its derived details.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	target, err := shared.ResolveTarget(board, in.Target)
	if err != nil {
		return nil, err
	}

	task := *target.Task
	today := domain.Day(uc.clock.Now())
	out := &ShowTaskOutput{
		Task:     task,
		Location: target.Location,
	}
	// A frequency removed from the config still shows by name.
	out.Frequency, err = uc.frequencies.Get(task.Frequency)
	if err != nil {
		out.Frequency = domain.Frequency{Name: task.Frequency}
	}

	switch target.Location {
	case tasklist.InAgenda:
		for _, e := range board.Agenda.Entries() {
			if e.Handle == target.Handle {
				out.Position = e.Index
				break
			}
		}
		if out.Frequency.Recurs() && task.Status != domain.StatusOverdue {
			next := out.Frequency.NextAfter(task.Since)
			out.NextDue = &next
		}
	case tasklist.InSleepers:
		if task.Until != nil {
			out.DaysLeft = domain.DaysBetween(today, *task.Until)
		}
	}
	return out, nil
}
