package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// MarkOverdueInput contains the parameters for marking a task overdue.
type MarkOverdueInput struct {
	Target string // Task name or agenda position
}

// MarkOverdueOutput contains the result of marking a task overdue.
type MarkOverdueOutput struct {
	Task domain.Task
}

// MarkOverdue is the use case for flagging a due task as overdue.
type MarkOverdue struct {
	tasks       domain.BoardRepository
	clock       domain.Clock
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewMarkOverdue creates a new MarkOverdue use case.
func NewMarkOverdue(tasks domain.BoardRepository, frequencies domain.Frequencies, clock domain.Clock, logger domain.Logger) *MarkOverdue {
	return &MarkOverdue{tasks: tasks, frequencies: frequencies, clock: clock, logger: logger}
}

// Execute changes a due task to overdue.
func (uc *MarkOverdue) Execute(_ context.Context, in MarkOverdueInput) (*MarkOverdueOutput, error) {
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	target, err := shared.ResolveTarget(board, in.Target)
	if err != nil {
		return nil, err
	}
	if !target.Task.Status.CanTransitionTo(domain.StatusOverdue) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, target.Task.Status, domain.StatusOverdue)
	}

	target.Task.SetStatus(domain.StatusOverdue, uc.clock.Now())

	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("%q marked overdue", target.Task.Name))
	return &MarkOverdueOutput{Task: *target.Task}, nil
}
