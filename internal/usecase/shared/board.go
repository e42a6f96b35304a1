// Package shared provides helpers shared by the use cases.
package shared

import (
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tasklist"
)

// LoadBoard reads the stored snapshot and rebuilds the board, ordering
// frequency lists by the configured priorities.
func LoadBoard(repo domain.BoardRepository, frequencies domain.Frequencies) (*tasklist.Board, error) {
	snap, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	board, err := tasklist.Restore(snap, frequencies.Priorities())
	if err != nil {
		return nil, fmt.Errorf("rebuild board: %w", err)
	}
	return board, nil
}

// SaveBoard stores the board's snapshot.
func SaveBoard(repo domain.BoardRepository, board *tasklist.Board) error {
	if err := repo.Save(board.Snapshot()); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}
