package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tasklist"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// RenewTaskInput contains the parameters for making a task due again.
type RenewTaskInput struct {
	Target string // Task name or agenda position
}

// RenewTaskOutput contains the result of renewing a task.
type RenewTaskOutput struct {
	From domain.Status // Status before renewal
	Task domain.Task
}

// RenewTask is the use case for putting a finished or sleeping task back on
// the agenda.
type RenewTask struct {
	tasks       domain.BoardRepository
	clock       domain.Clock
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewRenewTask creates a new RenewTask use case.
func NewRenewTask(tasks domain.BoardRepository, frequencies domain.Frequencies, clock domain.Clock, logger domain.Logger) *RenewTask {
	return &RenewTask{tasks: tasks, frequencies: frequencies, clock: clock, logger: logger}
}

// Execute marks the target task due. A sleeping task is woken early and
// appended to the agenda.
func (uc *RenewTask) Execute(_ context.Context, in RenewTaskInput) (*RenewTaskOutput, error) {
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	target, err := shared.ResolveTarget(board, in.Target)
	if err != nil {
		return nil, err
	}

	from := target.Task.Status
	if !from.CanTransitionTo(domain.StatusDue) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, domain.StatusDue)
	}

	today := domain.Day(uc.clock.Now())
	if target.Location == tasklist.InSleepers {
		board.Sleepers.Detach(target.Handle)
		task := board.Task(target.Handle)
		task.Until = nil
		task.SetStatus(domain.StatusDue, today)
		board.Agenda.Append(target.Handle, board.Priorities())
	} else {
		board.Task(target.Handle).SetStatus(domain.StatusDue, today)
	}

	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	task := *board.Task(target.Handle)
	uc.logger.Info("task", fmt.Sprintf("%q renewed (%s -> due)", task.Name, from))
	return &RenewTaskOutput{From: from, Task: task}, nil
}
