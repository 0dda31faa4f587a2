package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valter-silva-au/raptorflow/pkg/models"
)

// MoveManager receives launched plans and manages their task state.
type MoveManager interface {
	Launch(source string, category models.Category, context string, brief models.Brief, execution []models.ExecutionDay) (*models.Move, error)
	Completion(source string) CompletionFunc
	GetMove(moveID string) (*models.Move, error)
	ListMoves(filter MoveFilter) ([]models.Move, error)
	ToggleTask(moveID, taskID string) (*models.Move, error)
	SetTaskStatus(moveID, taskID string, status models.TaskStatus) (*models.Move, error)
}

type moveManager struct {
	workspaceID string
	store       MoveStore
	events      EventLogger
	now         func() time.Time
}

// NewMoveManager creates a MoveManager that saves Moves for workspaceID
// into store. events may be nil.
func NewMoveManager(workspaceID string, store MoveStore, events EventLogger) MoveManager {
	return &moveManager{
		workspaceID: workspaceID,
		store:       store,
		events:      events,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Launch persists a finished plan as a new Move. source records which
// surface handed the plan off.
func (mm *moveManager) Launch(source string, category models.Category, context string, brief models.Brief, execution []models.ExecutionDay) (*models.Move, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("launching move: %w %q", ErrUnknownCategory, category)
	}
	if err := mm.store.Load(); err != nil {
		return nil, fmt.Errorf("launching move: %w", err)
	}

	now := mm.now()
	move := models.Move{
		ID:          uuid.NewString(),
		WorkspaceID: mm.workspaceID,
		Category:    category,
		Context:     context,
		Brief:       brief,
		Execution:   execution,
		Source:      source,
		Created:     now,
		Updated:     now,
	}
	if err := mm.store.AddMove(move); err != nil {
		return nil, fmt.Errorf("launching move: %w", err)
	}
	if err := mm.store.Save(); err != nil {
		return nil, fmt.Errorf("launching move: %w", err)
	}

	mm.logEvent("move.launched", map[string]any{
		"move_id":  move.ID,
		"category": string(category),
		"duration": brief.Duration,
		"source":   source,
	})
	return &move, nil
}

// Completion adapts Launch to the wizard's CompletionFunc.
func (mm *moveManager) Completion(source string) CompletionFunc {
	return func(category models.Category, context string, brief models.Brief, execution []models.ExecutionDay) error {
		_, err := mm.Launch(source, category, context, brief, execution)
		return err
	}
}

// GetMove returns a Move of the manager's workspace. Moves saved by other
// workspaces are reported as ErrMoveNotFound.
func (mm *moveManager) GetMove(moveID string) (*models.Move, error) {
	if err := mm.store.Load(); err != nil {
		return nil, fmt.Errorf("getting move: %w", err)
	}
	return mm.ownMove(moveID)
}

// ListMoves lists Moves of the manager's workspace; filter.WorkspaceID is
// always replaced by it.
func (mm *moveManager) ListMoves(filter MoveFilter) ([]models.Move, error) {
	if err := mm.store.Load(); err != nil {
		return nil, fmt.Errorf("listing moves: %w", err)
	}
	filter.WorkspaceID = mm.workspaceID
	return mm.store.ListMoves(filter)
}

// ownMove looks a Move up in the already loaded store.
func (mm *moveManager) ownMove(moveID string) (*models.Move, error) {
	move, err := mm.store.GetMove(moveID)
	if err != nil {
		return nil, err
	}
	if move.WorkspaceID != mm.workspaceID {
		return nil, fmt.Errorf("%w: %s", ErrMoveNotFound, moveID)
	}
	return move, nil
}

// ToggleTask flips a task between pending and done.
func (mm *moveManager) ToggleTask(moveID, taskID string) (*models.Move, error) {
	move, err := mm.GetMove(moveID)
	if err != nil {
		return nil, err
	}
	task := findTask(move, taskID)
	if task == nil {
		return nil, fmt.Errorf("%w: %s in move %s", ErrTaskNotFound, taskID, moveID)
	}
	return mm.SetTaskStatus(moveID, taskID, task.Status.Toggle())
}

// SetTaskStatus stores a new status for one task and saves the Move.
func (mm *moveManager) SetTaskStatus(moveID, taskID string, status models.TaskStatus) (*models.Move, error) {
	if err := mm.store.Load(); err != nil {
		return nil, fmt.Errorf("updating task status: %w", err)
	}
	before, err := mm.ownMove(moveID)
	if err != nil {
		return nil, err
	}
	prev := findTask(before, taskID)
	if prev == nil {
		return nil, fmt.Errorf("%w: %s in move %s", ErrTaskNotFound, taskID, moveID)
	}
	oldStatus := prev.Status

	move, err := mm.store.UpdateTaskStatus(moveID, taskID, status)
	if err != nil {
		return nil, fmt.Errorf("updating task status: %w", err)
	}
	if err := mm.store.Save(); err != nil {
		return nil, fmt.Errorf("updating task status: %w", err)
	}

	mm.logEvent("task.status_changed", map[string]any{
		"move_id":    moveID,
		"task_id":    taskID,
		"old_status": string(oldStatus),
		"new_status": string(status),
	})
	return move, nil
}

func (mm *moveManager) logEvent(eventType string, data map[string]any) {
	if mm.events == nil {
		return
	}
	_ = mm.events.LogEvent(eventType, data) // Non-fatal.
}

func findTask(move *models.Move, taskID string) *models.TaskItem {
	for i := range move.Execution {
		for _, t := range move.Execution[i].Tasks() {
			if t.ID == taskID {
				return t
			}
		}
	}
	return nil
}
