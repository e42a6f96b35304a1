package shared

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tasklist"
)

// Target is a resolved task reference.
// Fields are ordered to minimize memory padding.
type Target struct {
	Task     *domain.Task // Valid until the board allocates another task
	Handle   tasklist.Handle
	Location tasklist.Location
}

// ResolveTarget finds a task by name or, failing that, by its 1-based
// position in the agenda numbering.
//
// Names win over positions, so a task named "3" is found by name even when
// the agenda has a third entry.
func ResolveTarget(board *tasklist.Board, target string) (Target, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return Target{}, domain.ErrEmptyName
	}

	h, loc, err := board.Find(target)
	if err == nil {
		return Target{Task: board.Task(h), Handle: h, Location: loc}, nil
	}

	pos, convErr := strconv.Atoi(target)
	if convErr != nil {
		return Target{}, err
	}
	h, err = board.Agenda.At(pos)
	if err != nil {
		return Target{}, fmt.Errorf("%w: no task named %q and %w", domain.ErrTaskNotFound, target, err)
	}
	return Target{Task: board.Task(h), Handle: h, Location: tasklist.InAgenda}, nil
}

// CheckNameFree returns ErrDuplicateName if a task already uses name.
func CheckNameFree(board *tasklist.Board, name string) error {
	if _, _, err := board.Find(name); err == nil {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateName, name)
	}
	return nil
}
