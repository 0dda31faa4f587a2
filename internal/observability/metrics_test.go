package observability

import (
	"testing"
	"time"
)

func TestMetricsCalculator_Calculate(t *testing.T) {
	log, _ := openLog(t)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []Event{
		{Time: base, Type: EventMoveLaunched, Data: map[string]any{"move_id": "m1", "category": "capture", "duration": 7}},
		{Time: base.Add(time.Hour), Type: EventMoveLaunched, Data: map[string]any{"move_id": "m2", "category": "repair", "duration": 10}},
		{Time: base.Add(2 * time.Hour), Type: EventMoveLaunched, Data: map[string]any{"move_id": "m3", "category": "capture", "duration": 7}},
		{Time: base.Add(3 * time.Hour), Type: EventTaskStatusChanged, Data: map[string]any{"move_id": "m1", "new_status": "done"}},
		{Time: base.Add(4 * time.Hour), Type: EventTaskStatusChanged, Data: map[string]any{"move_id": "m1", "new_status": "done"}},
		{Time: base.Add(5 * time.Hour), Type: EventTaskStatusChanged, Data: map[string]any{"move_id": "m1", "new_status": "pending"}},
		{Time: base.Add(6 * time.Hour), Type: EventSampleGenerated},
	}
	for _, e := range events {
		if err := log.Write(e); err != nil {
			t.Fatalf("writing event: %v", err)
		}
	}

	m, err := NewMetricsCalculator(log).Calculate(base.Add(-time.Hour))
	if err != nil {
		t.Fatalf("calculating metrics: %v", err)
	}

	if m.MovesLaunched != 3 {
		t.Errorf("expected 3 moves launched, got %d", m.MovesLaunched)
	}
	if m.MovesByCategory["capture"] != 2 || m.MovesByCategory["repair"] != 1 {
		t.Errorf("unexpected category counts: %v", m.MovesByCategory)
	}
	if m.PlannedDays != 24 {
		t.Errorf("expected 24 planned days, got %d", m.PlannedDays)
	}
	if m.TasksCompleted != 2 {
		t.Errorf("expected 2 completions, got %d", m.TasksCompleted)
	}
	if m.TasksReopened != 1 {
		t.Errorf("expected 1 reopen, got %d", m.TasksReopened)
	}
	if m.SamplesGenerated != 1 {
		t.Errorf("expected 1 sample, got %d", m.SamplesGenerated)
	}
	if m.EventCount != len(events) {
		t.Errorf("expected %d events, got %d", len(events), m.EventCount)
	}
	if m.OldestEvent == nil || !m.OldestEvent.Equal(base) {
		t.Errorf("unexpected oldest event: %v", m.OldestEvent)
	}
	if m.NewestEvent == nil || !m.NewestEvent.Equal(base.Add(6*time.Hour)) {
		t.Errorf("unexpected newest event: %v", m.NewestEvent)
	}
}

func TestMetricsCalculator_SinceExcludesOlder(t *testing.T) {
	log, _ := openLog(t)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_ = log.Write(Event{Time: base, Type: EventMoveLaunched, Data: map[string]any{"category": "ignite"}})
	_ = log.Write(Event{Time: base.Add(48 * time.Hour), Type: EventMoveLaunched, Data: map[string]any{"category": "rally"}})

	m, err := NewMetricsCalculator(log).Calculate(base.Add(24 * time.Hour))
	if err != nil {
		t.Fatalf("calculating metrics: %v", err)
	}
	if m.MovesLaunched != 1 || m.MovesByCategory["rally"] != 1 || m.MovesByCategory["ignite"] != 0 {
		t.Errorf("unexpected metrics: %+v", m)
	}
}

func TestMetricsCalculator_EmptyLog(t *testing.T) {
	log, _ := openLog(t)
	m, err := NewMetricsCalculator(log).Calculate(time.Time{})
	if err != nil {
		t.Fatalf("calculating metrics: %v", err)
	}
	if m.EventCount != 0 || m.OldestEvent != nil || m.NewestEvent != nil {
		t.Errorf("expected empty metrics, got %+v", m)
	}
	if m.MovesByCategory == nil {
		t.Error("expected non-nil category map")
	}
}
