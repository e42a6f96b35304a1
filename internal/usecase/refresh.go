// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// RefreshInput contains the parameters for refreshing the to-do list.
type RefreshInput struct{}

// RefreshOutput lists the tasks changed by a refresh, by name.
type RefreshOutput struct {
	Woken     []string // Sleepers whose wake date arrived
	Renewed   []string // Finished tasks whose period elapsed
	Escalated []string // Due tasks whose period elapsed
}

// Changed reports whether the refresh changed anything.
func (o *RefreshOutput) Changed() bool {
	return len(o.Woken)+len(o.Renewed)+len(o.Escalated) > 0
}

// Refresh is the use case for bringing the to-do list up to date.
type Refresh struct {
	tasks       domain.BoardRepository
	clock       domain.Clock
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewRefresh creates a new Refresh use case.
func NewRefresh(tasks domain.BoardRepository, frequencies domain.Frequencies, clock domain.Clock, logger domain.Logger) *Refresh {
	return &Refresh{tasks: tasks, frequencies: frequencies, clock: clock, logger: logger}
}

// Execute applies, in order:
//   - sleepers whose wake date is today or earlier become due and join the agenda
//   - finished tasks whose period has elapsed since they were finished become due
//   - due tasks whose period has elapsed since they became due become overdue
//
// Tasks whose frequency doesn't recur are never renewed or escalated.
// A task changed by one step is not changed again by a later step.
func (uc *Refresh) Execute(_ context.Context, _ RefreshInput) (*RefreshOutput, error) {
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	today := domain.Day(uc.clock.Now())
	out := &RefreshOutput{}

	for {
		until, ok := board.Sleepers.PeekUntil()
		if !ok || until.After(today) {
			break
		}
		h, err := board.Sleepers.WakeHead()
		if err != nil {
			return nil, err
		}
		task := board.Task(h)
		task.SetStatus(domain.StatusDue, today)
		board.Agenda.Append(h, board.Priorities())
		out.Woken = append(out.Woken, task.Name)
	}

	for _, e := range board.Agenda.Entries() {
		if e.Task.Since.Equal(today) {
			continue
		}
		freq, err := uc.frequencies.Get(e.Task.Frequency)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownFrequency) {
				uc.logger.Warn("refresh", fmt.Sprintf("%q has unknown frequency %q", e.Task.Name, e.Task.Frequency))
			}
			continue
		}
		if !freq.Elapsed(e.Task.Since, today) {
			continue
		}
		switch e.Task.Status {
		case domain.StatusFinished:
			board.Agenda.SetStatus(e.Handle, domain.StatusDue)
			out.Renewed = append(out.Renewed, e.Task.Name)
		case domain.StatusDue:
			board.Agenda.SetStatus(e.Handle, domain.StatusOverdue)
			out.Escalated = append(out.Escalated, e.Task.Name)
		default:
			continue
		}
		board.Task(e.Handle).Since = today
	}

	if !out.Changed() {
		uc.logger.Debug("refresh", "nothing to do")
		return out, nil
	}
	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	uc.logger.Info("refresh", fmt.Sprintf("woken=[%s] renewed=[%s] escalated=[%s]",
		strings.Join(out.Woken, ", "), strings.Join(out.Renewed, ", "), strings.Join(out.Escalated, ", ")))
	return out, nil
}
