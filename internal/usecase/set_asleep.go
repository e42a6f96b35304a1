package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tasklist"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// SetAsleepInput contains the parameters for putting a task to sleep.
// Fields are ordered to minimize memory padding.
type SetAsleepInput struct {
	Until  time.Time // Wake date, after today
	Target string    // Task name or agenda position
}

// SetAsleepOutput contains the result of putting a task to sleep.
type SetAsleepOutput struct {
	Task        domain.Task
	Rescheduled bool // True if the task was already asleep
}

// SetAsleep is the use case for deferring a task until a wake date.
type SetAsleep struct {
	tasks       domain.BoardRepository
	clock       domain.Clock
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewSetAsleep creates a new SetAsleep use case.
func NewSetAsleep(tasks domain.BoardRepository, frequencies domain.Frequencies, clock domain.Clock, logger domain.Logger) *SetAsleep {
	return &SetAsleep{tasks: tasks, frequencies: frequencies, clock: clock, logger: logger}
}

// Execute moves a due or overdue task from the agenda to the sleepers.
// A task that is already asleep gets the new wake date and is re-sorted.
func (uc *SetAsleep) Execute(_ context.Context, in SetAsleepInput) (*SetAsleepOutput, error) {
	today := domain.Day(uc.clock.Now())
	until := domain.Day(in.Until)
	if !until.After(today) {
		return nil, fmt.Errorf("%w: %s", domain.ErrWakeDateNotFuture, until.Format(time.DateOnly))
	}

	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	target, err := shared.ResolveTarget(board, in.Target)
	if err != nil {
		return nil, err
	}

	rescheduled := target.Location == tasklist.InSleepers
	if rescheduled {
		board.Sleepers.Detach(target.Handle)
	} else {
		if !target.Task.Status.CanTransitionTo(domain.StatusAsleep) {
			return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, target.Task.Status, domain.StatusAsleep)
		}
		board.Agenda.Detach(target.Handle)
		board.Task(target.Handle).SetStatus(domain.StatusAsleep, today)
	}
	board.Task(target.Handle).Until = &until
	board.Sleepers.Add(target.Handle)

	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	task := *board.Task(target.Handle)
	uc.logger.Info("task", fmt.Sprintf("%q asleep until %s", task.Name, until.Format(time.DateOnly)))
	return &SetAsleepOutput{Task: task, Rescheduled: rescheduled}, nil
}
