package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
	"gopkg.in/yaml.v3"
)

// taskDocument is the YAML layout shared by import and export.
type taskDocument struct {
	Tasks []taskEntry `yaml:"tasks"`
}

// taskEntry is one task in a YAML document.
type taskEntry struct {
	Name        string `yaml:"name"`
	Frequency   string `yaml:"frequency"`
	Description string `yaml:"description,omitempty"`
	Status      string `yaml:"status,omitempty"`
	Until       string `yaml:"until,omitempty"` // YYYY-MM-DD
}

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Content []byte // YAML document
	DryRun  bool   // Validate without saving
}

// ImportTasksOutput contains the imported tasks.
type ImportTasksOutput struct {
	Tasks  []domain.Task // Created tasks (or tasks that would be created)
	DryRun bool
}

// ImportTasks is the use case for bulk-creating tasks from YAML.
type ImportTasks struct {
	tasks       domain.BoardRepository
	clock       domain.Clock
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.BoardRepository, frequencies domain.Frequencies, clock domain.Clock, logger domain.Logger) *ImportTasks {
	return &ImportTasks{tasks: tasks, frequencies: frequencies, clock: clock, logger: logger}
}

// Execute validates every entry against the board and the entries before it,
// then saves them all. Nothing is saved if any entry is invalid.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	doc, err := parseTaskDocument(in.Content)
	if err != nil {
		return nil, err
	}

	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	today := domain.Day(uc.clock.Now())

	out := &ImportTasksOutput{DryRun: in.DryRun, Tasks: make([]domain.Task, 0, len(doc.Tasks))}
	for i, entry := range doc.Tasks {
		create := CreateTaskInput{
			Name:        entry.Name,
			Frequency:   entry.Frequency,
			Description: entry.Description,
			Status:      entry.Status,
		}
		if entry.Until != "" {
			until, err := time.ParseInLocation(time.DateOnly, entry.Until, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("task %d (%q): %w: until %q is not YYYY-MM-DD", i+1, entry.Name, domain.ErrInvalidImport, entry.Until)
			}
			create.Until = &until
		}
		task, err := newTask(board, uc.frequencies, today, create)
		if err != nil {
			return nil, fmt.Errorf("task %d (%q): %w", i+1, entry.Name, err)
		}
		addTask(board, task)
		out.Tasks = append(out.Tasks, task)
	}

	if in.DryRun || len(out.Tasks) == 0 {
		return out, nil
	}
	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("imported %d tasks", len(out.Tasks)))
	return out, nil
}

func parseTaskDocument(content []byte) (*taskDocument, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var doc taskDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidImport, err)
	}
	return &doc, nil
}
