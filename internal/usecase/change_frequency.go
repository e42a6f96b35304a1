package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tasklist"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// ChangeFrequencyInput contains the parameters for changing a task's frequency.
type ChangeFrequencyInput struct {
	Target    string // Task name or agenda position
	Frequency string // New frequency name
}

// ChangeFrequencyOutput contains the result of changing a task's frequency.
type ChangeFrequencyOutput struct {
	From string // Previous frequency
	Task domain.Task
}

// ChangeFrequency is the use case for moving a task to another frequency.
type ChangeFrequency struct {
	tasks       domain.BoardRepository
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewChangeFrequency creates a new ChangeFrequency use case.
func NewChangeFrequency(tasks domain.BoardRepository, frequencies domain.Frequencies, logger domain.Logger) *ChangeFrequency {
	return &ChangeFrequency{tasks: tasks, frequencies: frequencies, logger: logger}
}

// Execute reassigns the frequency. An agenda task moves to the end of the
// new frequency's list.
func (uc *ChangeFrequency) Execute(_ context.Context, in ChangeFrequencyInput) (*ChangeFrequencyOutput, error) {
	if _, err := uc.frequencies.Get(in.Frequency); err != nil {
		return nil, err
	}

	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	target, err := shared.ResolveTarget(board, in.Target)
	if err != nil {
		return nil, err
	}
	from := target.Task.Frequency
	if from == in.Frequency {
		return &ChangeFrequencyOutput{From: from, Task: *target.Task}, nil
	}

	switch target.Location {
	case tasklist.InAgenda:
		board.Agenda.ChangeFrequency(target.Handle, in.Frequency, board.Priorities())
	case tasklist.InSleepers:
		board.Sleepers.SetFrequency(target.Handle, in.Frequency)
	}

	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	task := *board.Task(target.Handle)
	uc.logger.Info("task", fmt.Sprintf("%q frequency %s -> %s", task.Name, from, in.Frequency))
	return &ChangeFrequencyOutput{From: from, Task: task}, nil
}
