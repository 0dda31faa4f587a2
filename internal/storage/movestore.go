// Package storage provides YAML file-backed stores for launched Moves and
// workspace audiences.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/valter-silva-au/raptorflow/internal/core"
	"github.com/valter-silva-au/raptorflow/pkg/models"
	"gopkg.in/yaml.v3"
)

// MoveFile represents the top-level structure of moves.yaml.
type MoveFile struct {
	Version string                 `yaml:"version"`
	Moves   map[string]models.Move `yaml:"moves"`
}

type fileMoveStore struct {
	basePath string
	data     MoveFile
}

// NewMoveStore creates a core.MoveStore backed by a moves.yaml file in the
// given base directory.
func NewMoveStore(basePath string) core.MoveStore {
	return &fileMoveStore{
		basePath: basePath,
		data:     emptyMoveFile(),
	}
}

func emptyMoveFile() MoveFile {
	return MoveFile{
		Version: "1.0",
		Moves:   make(map[string]models.Move),
	}
}

func (s *fileMoveStore) filePath() string {
	return filepath.Join(s.basePath, "moves.yaml")
}

func (s *fileMoveStore) AddMove(move models.Move) error {
	if move.ID == "" {
		return fmt.Errorf("adding move: ID must not be empty")
	}
	if _, exists := s.data.Moves[move.ID]; exists {
		return fmt.Errorf("adding move: move %s already exists", move.ID)
	}
	s.data.Moves[move.ID] = move
	return nil
}

func (s *fileMoveStore) GetMove(moveID string) (*models.Move, error) {
	move, exists := s.data.Moves[moveID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", core.ErrMoveNotFound, moveID)
	}
	return &move, nil
}

func (s *fileMoveStore) ListMoves(filter core.MoveFilter) ([]models.Move, error) {
	moves := make([]models.Move, 0, len(s.data.Moves))
	for _, move := range s.data.Moves {
		if filter.WorkspaceID != "" && move.WorkspaceID != filter.WorkspaceID {
			continue
		}
		if filter.Category != "" && move.Category != filter.Category {
			continue
		}
		moves = append(moves, move)
	}
	sort.Slice(moves, func(i, j int) bool {
		if !moves[i].Created.Equal(moves[j].Created) {
			return moves[i].Created.Before(moves[j].Created)
		}
		return moves[i].ID < moves[j].ID
	})
	return moves, nil
}

func (s *fileMoveStore) UpdateTaskStatus(moveID, taskID string, status models.TaskStatus) (*models.Move, error) {
	move, exists := s.data.Moves[moveID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", core.ErrMoveNotFound, moveID)
	}

	// Copy the execution so callers holding an earlier GetMove result do not
	// see the change.
	execution := make([]models.ExecutionDay, len(move.Execution))
	for i, day := range move.Execution {
		day.ClusterActions = append([]models.TaskItem(nil), day.ClusterActions...)
		execution[i] = day
	}

	found := false
	for i := range execution {
		for _, task := range execution[i].Tasks() {
			if task.ID == taskID {
				task.Status = status
				found = true
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s in move %s", core.ErrTaskNotFound, taskID, moveID)
	}

	move.Execution = execution
	s.data.Moves[moveID] = move
	return &move, nil
}

func (s *fileMoveStore) Load() error {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			s.data = emptyMoveFile()
			return nil
		}
		return fmt.Errorf("loading moves: %w", err)
	}

	var mf MoveFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return fmt.Errorf("loading moves: parsing YAML: %w", err)
	}
	if mf.Moves == nil {
		mf.Moves = make(map[string]models.Move)
	}
	s.data = mf
	return nil
}

func (s *fileMoveStore) Save() error {
	if err := os.MkdirAll(s.basePath, 0o750); err != nil {
		return fmt.Errorf("saving moves: creating directory: %w", err)
	}
	data, err := yaml.Marshal(&s.data)
	if err != nil {
		return fmt.Errorf("saving moves: marshaling YAML: %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0o600); err != nil {
		return fmt.Errorf("saving moves: writing file: %w", err)
	}
	return nil
}
