package observability

import (
	"fmt"
	"time"
)

// Metrics holds planning metrics derived from the event log.
type Metrics struct {
	MovesLaunched    int            `json:"moves_launched"`
	MovesByCategory  map[string]int `json:"moves_by_category"`
	TasksCompleted   int            `json:"tasks_completed"`
	TasksReopened    int            `json:"tasks_reopened"`
	SamplesGenerated int            `json:"samples_generated"`
	PlannedDays      int            `json:"planned_days"`
	EventCount       int            `json:"event_count"`
	OldestEvent      *time.Time     `json:"oldest_event,omitempty"`
	NewestEvent      *time.Time     `json:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a MetricsCalculator reading from eventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate aggregates every event since the given time.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{MovesByCategory: make(map[string]int)}
	m.EventCount = len(events)

	for i, event := range events {
		t := event.Time
		if i == 0 {
			m.OldestEvent = &t
		}
		m.NewestEvent = &t

		switch event.Type {
		case EventMoveLaunched:
			m.MovesLaunched++
			if category, ok := event.Data["category"].(string); ok {
				m.MovesByCategory[category]++
			}
			// JSON numbers decode as float64.
			if d, ok := event.Data["duration"].(float64); ok {
				m.PlannedDays += int(d)
			}
		case EventTaskStatusChanged:
			switch event.Data["new_status"] {
			case "done":
				m.TasksCompleted++
			case "pending":
				m.TasksReopened++
			}
		case EventSampleGenerated:
			m.SamplesGenerated++
		}
	}
	return m, nil
}
