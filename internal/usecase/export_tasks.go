package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
	"gopkg.in/yaml.v3"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct{}

// ExportTasksOutput contains the exported YAML document.
type ExportTasksOutput struct {
	Content []byte
	Count   int
}

// ExportTasks is the use case for writing every task as a YAML document
// that ImportTasks accepts.
type ExportTasks struct {
	tasks       domain.BoardRepository
	frequencies domain.Frequencies
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.BoardRepository, frequencies domain.Frequencies) *ExportTasks {
	return &ExportTasks{tasks: tasks, frequencies: frequencies}
}

// Execute renders the agenda in display order followed by the sleepers.
// Finished tasks are exported as due, since an import starts a new period.
func (uc *ExportTasks) Execute(_ context.Context, _ ExportTasksInput) (*ExportTasksOutput, error) {
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	snap := board.Snapshot()

	doc := taskDocument{Tasks: make([]taskEntry, 0, len(snap.Agenda)+len(snap.Sleepers))}
	for _, t := range append(snap.Agenda, snap.Sleepers...) {
		entry := taskEntry{
			Name:        t.Name,
			Frequency:   t.Frequency,
			Description: t.Description,
			Status:      string(t.Status),
		}
		if t.Status == domain.StatusFinished {
			entry.Status = string(domain.StatusDue)
		}
		if t.Until != nil {
			entry.Until = t.Until.Format(time.DateOnly)
		}
		doc.Tasks = append(doc.Tasks, entry)
	}

	content, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return &ExportTasksOutput{Content: content, Count: len(doc.Tasks)}, nil
}
