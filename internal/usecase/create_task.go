// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tasklist"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// CreateTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type CreateTaskInput struct {
	Until       *time.Time // Wake date (required when Status is asleep)
	Name        string     // Task name (required)
	Frequency   string     // Frequency name (required)
	Description string     // Task description (optional)
	Status      string     // Initial status (optional, empty = due)
}

// CreateTaskOutput contains the result of creating a new task.
type CreateTaskOutput struct {
	Task     domain.Task
	Location tasklist.Location
}

// CreateTask is the use case for creating a new task.
type CreateTask struct {
	tasks       domain.BoardRepository
	clock       domain.Clock
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(tasks domain.BoardRepository, frequencies domain.Frequencies, clock domain.Clock, logger domain.Logger) *CreateTask {
	return &CreateTask{
		tasks:       tasks,
		frequencies: frequencies,
		clock:       clock,
		logger:      logger,
	}
}

// Execute validates the input and adds the task to the agenda, or to the
// sleepers when it starts asleep.
func (uc *CreateTask) Execute(_ context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}

	task, err := newTask(board, uc.frequencies, domain.Day(uc.clock.Now()), in)
	if err != nil {
		return nil, err
	}
	loc := addTask(board, task)

	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("created %q (%s, %s)", task.Name, task.Frequency, task.Status))
	return &CreateTaskOutput{Task: task, Location: loc}, nil
}

// newTask validates a task definition against the board and returns the task
// stamped with today's date.
func newTask(board *tasklist.Board, frequencies domain.Frequencies, today time.Time, in CreateTaskInput) (domain.Task, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Task{}, domain.ErrEmptyName
	}
	if err := shared.CheckNameFree(board, name); err != nil {
		return domain.Task{}, err
	}
	if _, err := frequencies.Get(in.Frequency); err != nil {
		return domain.Task{}, err
	}

	status := domain.StatusDue
	if in.Status != "" {
		s, err := domain.ParseStatus(strings.ToLower(in.Status))
		if err != nil {
			return domain.Task{}, err
		}
		status = s
	}

	task := domain.Task{
		Name:        name,
		Frequency:   in.Frequency,
		Description: in.Description,
	}
	task.SetStatus(status, today)

	if status == domain.StatusAsleep {
		if in.Until == nil {
			return domain.Task{}, domain.ErrMissingWakeDate
		}
		until := domain.Day(*in.Until)
		if !until.After(today) {
			return domain.Task{}, fmt.Errorf("%w: %s", domain.ErrWakeDateNotFuture, until.Format(time.DateOnly))
		}
		task.Until = &until
	}
	return task, nil
}

// addTask links a validated task where its status says it belongs.
func addTask(board *tasklist.Board, task domain.Task) tasklist.Location {
	h := board.NewTask(task)
	if task.IsAsleep() {
		board.Sleepers.Add(h)
		return tasklist.InSleepers
	}
	board.Agenda.Append(h, board.Priorities())
	return tasklist.InAgenda
}
