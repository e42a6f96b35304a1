package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tasklist"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// RenameTaskInput contains the parameters for renaming a task.
type RenameTaskInput struct {
	Target  string // Task name or agenda position
	NewName string // New unique name
}

// RenameTaskOutput contains the result of renaming a task.
type RenameTaskOutput struct {
	OldName string
	Task    domain.Task
}

// RenameTask is the use case for renaming a task.
type RenameTask struct {
	tasks       domain.BoardRepository
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewRenameTask creates a new RenameTask use case.
func NewRenameTask(tasks domain.BoardRepository, frequencies domain.Frequencies, logger domain.Logger) *RenameTask {
	return &RenameTask{tasks: tasks, frequencies: frequencies, logger: logger}
}

// Execute renames the target task. Unlike the list structures, which
// overwrite the index entry of a clashing name, it refuses names in use.
func (uc *RenameTask) Execute(_ context.Context, in RenameTaskInput) (*RenameTaskOutput, error) {
	newName := strings.TrimSpace(in.NewName)
	if newName == "" {
		return nil, domain.ErrEmptyName
	}

	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	target, err := shared.ResolveTarget(board, in.Target)
	if err != nil {
		return nil, err
	}
	oldName := target.Task.Name
	if oldName == newName {
		return &RenameTaskOutput{OldName: oldName, Task: *target.Task}, nil
	}
	if err := shared.CheckNameFree(board, newName); err != nil {
		return nil, err
	}

	switch target.Location {
	case tasklist.InAgenda:
		board.Agenda.Rename(target.Handle, newName)
	case tasklist.InSleepers:
		board.Sleepers.Rename(target.Handle, newName)
	}

	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("renamed %q to %q", oldName, newName))
	return &RenameTaskOutput{OldName: oldName, Task: *board.Task(target.Handle)}, nil
}
