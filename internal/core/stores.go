package core

import (
	"errors"

	"github.com/valter-silva-au/raptorflow/pkg/models"
)

var (
	// ErrMoveNotFound is returned when a move id is not in the store.
	ErrMoveNotFound = errors.New("move not found")
	// ErrTaskNotFound is returned when a task id is not in a move.
	ErrTaskNotFound = errors.New("task not found")
)

// MoveStore persists launched Moves. Defining it here keeps core
// independent of the storage package.
type MoveStore interface {
	AddMove(move models.Move) error
	GetMove(moveID string) (*models.Move, error)
	ListMoves(filter MoveFilter) ([]models.Move, error)
	UpdateTaskStatus(moveID, taskID string, status models.TaskStatus) (*models.Move, error)
	Load() error
	Save() error
}

// MoveFilter narrows ListMoves. Empty fields match everything.
type MoveFilter struct {
	WorkspaceID string
	Category    models.Category
}
