package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tasklist"
	"github.com/runoshun/todo-iq/internal/usecase/shared"
)

// MoveTaskInput contains the parameters for reordering a task.
// Fields are ordered to minimize memory padding.
type MoveTaskInput struct {
	Confirmed *bool  // Answer for a cross-frequency move (nil = not asked yet)
	Target    string // Task name or agenda position
	Before    string // Task to place the target in front of (name or position)
}

// MoveTaskOutput contains the result of a move.
// Fields are ordered to minimize memory padding.
type MoveTaskOutput struct {
	From    string // Frequency of the task before the move
	To      string // Frequency of the task it is placed in front of
	Task    domain.Task
	Pending bool // Cross-frequency move waiting for confirmation
	Moved   bool // The agenda changed
}

// MoveTask is the use case for reordering agenda tasks.
//
// Moves within a frequency list happen immediately. A move in front of a
// task of another frequency also changes the task's frequency, so the first
// call only reports it as Pending. The caller asks the user and calls again
// with Confirmed set.
type MoveTask struct {
	tasks       domain.BoardRepository
	logger      domain.Logger
	frequencies domain.Frequencies
}

// NewMoveTask creates a new MoveTask use case.
func NewMoveTask(tasks domain.BoardRepository, frequencies domain.Frequencies, logger domain.Logger) *MoveTask {
	return &MoveTask{tasks: tasks, frequencies: frequencies, logger: logger}
}

// Execute moves the target in front of Before.
func (uc *MoveTask) Execute(_ context.Context, in MoveTaskInput) (*MoveTaskOutput, error) {
	board, err := shared.LoadBoard(uc.tasks, uc.frequencies)
	if err != nil {
		return nil, err
	}
	node, err := agendaTarget(board, in.Target)
	if err != nil {
		return nil, err
	}
	before, err := agendaTarget(board, in.Before)
	if err != nil {
		return nil, err
	}

	mv, err := board.Agenda.MoveBefore(node.Handle, before.Handle)
	if err != nil {
		return nil, err
	}
	out := &MoveTaskOutput{From: mv.From, To: mv.To}

	if mv.Pending {
		if in.Confirmed == nil {
			out.Pending = true
			out.Task = *board.Task(mv.Node)
			return out, nil
		}
		changed, err := board.Agenda.CommitMove(mv, *in.Confirmed)
		if err != nil {
			return nil, err
		}
		if !changed {
			uc.logger.Debug("task", fmt.Sprintf("move of %q to %s declined", node.Task.Name, mv.To))
			out.Task = *board.Task(mv.Node)
			return out, nil
		}
	}
	out.Moved = true
	out.Task = *board.Task(mv.Node)

	if err := shared.SaveBoard(uc.tasks, board); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("moved %q before %q (%s -> %s)", out.Task.Name, board.Task(mv.Before).Name, mv.From, mv.To))
	return out, nil
}

func agendaTarget(board *tasklist.Board, ref string) (shared.Target, error) {
	target, err := shared.ResolveTarget(board, ref)
	if err != nil {
		return shared.Target{}, err
	}
	if target.Location != tasklist.InAgenda {
		return shared.Target{}, fmt.Errorf("%w: %q is asleep", domain.ErrNotOnAgenda, target.Task.Name)
	}
	return target, nil
}
