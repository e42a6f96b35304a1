package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tasklist"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// ChangeDescriptionInput contains the parameters for changing a description.
type ChangeDescriptionInput struct {
	Target      string // Task name or agenda position
	Description string // New description (empty clears it)
}

// ChangeDescriptionOutput contains the result of changing a description.
type ChangeDescriptionOutput struct {
	Task domain.Task
}

// ChangeDescription is the use case for replacing a task's description.
type ChangeDescription struct {
	tasks       domain.BoardRepository
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewChangeDescription creates a new ChangeDescription use case.
func NewChangeDescription(tasks domain.BoardRepository, frequencies domain.Frequencies, logger domain.Logger) *ChangeDescription {
	return &ChangeDescription{tasks: tasks, frequencies: frequencies, logger: logger}
}

// Execute replaces the description of the target task.
func (uc *ChangeDescription) Execute(_ context.Context, in ChangeDescriptionInput) (*ChangeDescriptionOutput, error) {
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	target, err := shared.ResolveTarget(board, in.Target)
	if err != nil {
		return nil, err
	}

	switch target.Location {
	case tasklist.InAgenda:
		board.Agenda.SetDescription(target.Handle, in.Description)
	case tasklist.InSleepers:
		board.Sleepers.SetDescription(target.Handle, in.Description)
	}

	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	uc.logger.Debug("task", fmt.Sprintf("description of %q changed", target.Task.Name))
	return &ChangeDescriptionOutput{Task: *board.Task(target.Handle)}, nil
}
