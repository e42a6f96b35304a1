package usecase

import (
	"context"
	"errors"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// ListFrequenciesInput contains the parameters for listing frequencies.
type ListFrequenciesInput struct{}

// FrequencyInfo describes one configured frequency.
type FrequencyInfo struct {
	Frequency domain.Frequency
	Tasks     int // Tasks of this frequency on the board
}

// ListFrequenciesOutput contains the configured frequencies in display order.
type ListFrequenciesOutput struct {
	Frequencies []FrequencyInfo
}

// ListFrequencies is the use case for listing the configured frequencies.
type ListFrequencies struct {
	tasks       domain.BoardRepository
	frequencies domain.Frequencies
}

// NewListFrequencies creates a new ListFrequencies use case.
func NewListFrequencies(tasks domain.BoardRepository, frequencies domain.Frequencies) *ListFrequencies {
	return &ListFrequencies{tasks: tasks, frequencies: frequencies}
}

// Execute returns every frequency with its task count. An uninitialized
// store counts as empty.
func (uc *ListFrequencies) Execute(_ context.Context, _ ListFrequenciesInput) (*ListFrequenciesOutput, error) {
	counts := make(map[string]int)
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	switch {
	case err == nil:
		for _, e := range board.Agenda.Entries() {
			counts[e.Task.Frequency]++
		}
		for _, e := range board.Sleepers.Entries() {
			counts[e.Task.Frequency]++
		}
	case !errors.Is(err, domain.ErrNotInitialized):
		return nil, err
	}

	out := &ListFrequenciesOutput{}
	for _, f := range uc.frequencies.Sorted() {
		out.Frequencies = append(out.Frequencies, FrequencyInfo{Frequency: f, Tasks: counts[f.Name]})
	}
	return out, nil
}
