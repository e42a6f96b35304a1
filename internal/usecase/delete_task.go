package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Target string // Task name or agenda position
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task domain.Task // The removed task
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks       domain.BoardRepository
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.BoardRepository, frequencies domain.Frequencies, logger domain.Logger) *DeleteTask {
	return &DeleteTask{tasks: tasks, frequencies: frequencies, logger: logger}
}

// Execute removes the target task from the agenda or the sleepers.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	target, err := shared.ResolveTarget(board, in.Target)
	if err != nil {
		return nil, err
	}

	removed := board.Remove(target.Handle, target.Location)

	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("deleted %q", removed.Name))
	return &DeleteTaskOutput{Task: removed}, nil
}
