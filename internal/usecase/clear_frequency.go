package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// ClearFrequencyInput contains the parameters for clearing a frequency.
type ClearFrequencyInput struct {
	Frequency string
}

// ClearFrequencyOutput contains the removed tasks.
type ClearFrequencyOutput struct {
	Removed []domain.Task // Agenda tasks first, then sleepers
}

// ClearFrequency is the use case for deleting every task of one frequency.
type ClearFrequency struct {
	tasks       domain.BoardRepository
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewClearFrequency creates a new ClearFrequency use case.
func NewClearFrequency(tasks domain.BoardRepository, frequencies domain.Frequencies, logger domain.Logger) *ClearFrequency {
	return &ClearFrequency{tasks: tasks, frequencies: frequencies, logger: logger}
}

// Execute drops the frequency's agenda list and its sleeping tasks.
// Tasks of frequencies no longer configured can be cleared too.
func (uc *ClearFrequency) Execute(_ context.Context, in ClearFrequencyInput) (*ClearFrequencyOutput, error) {
	if in.Frequency == "" {
		return nil, domain.ErrUnknownFrequency
	}
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}

	handles, err := board.Agenda.DeleteMember(in.Frequency)
	if err != nil && !errors.Is(err, domain.ErrMemberNotFound) {
		return nil, err
	}
	handles = append(handles, board.Sleepers.DetachAllOfFrequency(in.Frequency)...)
	if len(handles) == 0 {
		if _, err := uc.frequencies.Get(in.Frequency); err != nil {
			return nil, err
		}
		return &ClearFrequencyOutput{}, nil
	}

	out := &ClearFrequencyOutput{Removed: make([]domain.Task, 0, len(handles))}
	for _, h := range handles {
		out.Removed = append(out.Removed, board.Release(h))
	}

	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("cleared %d %s tasks", len(out.Removed), in.Frequency))
	return out, nil
}
