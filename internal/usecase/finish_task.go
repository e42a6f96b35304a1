package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// FinishTaskInput contains the parameters for finishing a task.
type FinishTaskInput struct {
	Target string // Task name or agenda position
}

// FinishTaskOutput contains the result of finishing a task.
type FinishTaskOutput struct {
	Task    domain.Task
	Removed bool // True if a one-off task was deleted instead
}

// FinishTask is the use case for completing a task for its current period.
type FinishTask struct {
	tasks       domain.BoardRepository
	clock       domain.Clock
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewFinishTask creates a new FinishTask use case.
func NewFinishTask(tasks domain.BoardRepository, frequencies domain.Frequencies, clock domain.Clock, logger domain.Logger) *FinishTask {
	return &FinishTask{tasks: tasks, frequencies: frequencies, clock: clock, logger: logger}
}

// Execute marks a due or overdue task finished. Tasks of the "once"
// frequency never come back, so they are removed.
func (uc *FinishTask) Execute(_ context.Context, in FinishTaskInput) (*FinishTaskOutput, error) {
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	target, err := shared.ResolveTarget(board, in.Target)
	if err != nil {
		return nil, err
	}
	if !target.Task.Status.CanTransitionTo(domain.StatusFinished) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, target.Task.Status, domain.StatusFinished)
	}

	out := &FinishTaskOutput{}
	if target.Task.Frequency == domain.FrequencyOnce {
		out.Task = board.Remove(target.Handle, target.Location)
		out.Task.SetStatus(domain.StatusFinished, uc.clock.Now())
		out.Removed = true
	} else {
		target.Task.SetStatus(domain.StatusFinished, uc.clock.Now())
		out.Task = *target.Task
	}

	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("%q finished (removed=%t)", out.Task.Name, out.Removed))
	return out, nil
}
