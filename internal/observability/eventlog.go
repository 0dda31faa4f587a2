package observability

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Event types emitted by the planner.
const (
	EventMoveLaunched      = "move.launched"
	EventTaskStatusChanged = "task.status_changed"
	EventSampleGenerated   = "sample.generated"
)

// Log levels.
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// maxLineSize bounds a single JSONL record. Contexts are free text, so the
// default 64 KiB scanner buffer is too small for pathological inputs.
const maxLineSize = 1 << 20

// Event is one line of the planning event log.
type Event struct {
	Time    time.Time      `json:"time"`
	Level   string         `json:"level"`
	Type    string         `json:"type"`
	Message string         `json:"msg"`
	Data    map[string]any `json:"data,omitempty"`
}

// MoveID returns the move the event refers to, or "".
func (e Event) MoveID() string {
	id, _ := e.Data["move_id"].(string)
	return id
}

// EventFilter narrows a Read. Zero fields match everything.
type EventFilter struct {
	Since  *time.Time
	Until  *time.Time
	Type   string
	Level  string
	MoveID string
}

// EventLog appends and reads planning events.
type EventLog interface {
	Write(event Event) error
	Read(filter EventFilter) ([]Event, error)
	Close() error
}

type jsonlEventLog struct {
	path string
	file *os.File
	mu   sync.Mutex
	now  func() time.Time
}

// NewJSONLEventLog opens (or creates) the JSONL event log at path.
func NewJSONLEventLog(path string) (EventLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}
	return &jsonlEventLog{path: path, file: f, now: time.Now}, nil
}

// Write appends event as one JSON line. A zero Time is stamped with the
// current UTC time and an empty Level defaults to INFO.
func (l *jsonlEventLog) Write(event Event) error {
	if event.Type == "" {
		return fmt.Errorf("writing event: missing type")
	}
	if event.Time.IsZero() {
		event.Time = l.now().UTC()
	}
	if event.Level == "" {
		event.Level = LevelInfo
	}

	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("writing event %s: marshalling: %w", event.Type, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("writing event %s: %w", event.Type, err)
	}
	return nil
}

// Read returns the events matching filter in file order. A missing log
// reads as empty and malformed lines are skipped.
func (l *jsonlEventLog) Read(filter EventFilter) ([]Event, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading event log: %w", err)
	}
	defer func() { _ = f.Close() }()

	var events []Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		var event Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			continue
		}
		if filter.matches(event) {
			events = append(events, event)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading event log: %w", err)
	}
	return events, nil
}

func (l *jsonlEventLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("closing event log: %w", err)
	}
	return nil
}

func (f EventFilter) matches(e Event) bool {
	switch {
	case f.Since != nil && e.Time.Before(*f.Since):
		return false
	case f.Until != nil && e.Time.After(*f.Until):
		return false
	case f.Type != "" && e.Type != f.Type:
		return false
	case f.Level != "" && e.Level != f.Level:
		return false
	case f.MoveID != "" && e.MoveID() != f.MoveID:
		return false
	}
	return true
}
