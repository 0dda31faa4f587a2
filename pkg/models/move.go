package models

import (
	"fmt"
	"time"
)

// QuestionID identifies one of the fixed clarification questions.
type QuestionID string

const (
	QuestionOutcome    QuestionID = "outcome"
	QuestionOffer      QuestionID = "offer"
	QuestionResistance QuestionID = "resistance"
)

// Answers holds the free-text responses to the clarification questions.
type Answers struct {
	Resistance string `yaml:"resistance,omitempty" json:"resistance,omitempty"`
	Offer      string `yaml:"offer,omitempty" json:"offer,omitempty"`
	Outcome    string `yaml:"outcome,omitempty" json:"outcome,omitempty"`
}

// Get returns the answer for the given question.
func (a Answers) Get(id QuestionID) string {
	switch id {
	case QuestionResistance:
		return a.Resistance
	case QuestionOffer:
		return a.Offer
	case QuestionOutcome:
		return a.Outcome
	}
	return ""
}

// Set stores text as the answer for the given question.
func (a *Answers) Set(id QuestionID, text string) {
	switch id {
	case QuestionResistance:
		a.Resistance = text
	case QuestionOffer:
		a.Offer = text
	case QuestionOutcome:
		a.Outcome = text
	}
}

// TimeCommitment is the daily effort bucket chosen for a Move. The zero
// value means no bucket was chosen.
type TimeCommitment string

const (
	TimeNone    TimeCommitment = ""
	Time15m     TimeCommitment = "15m"
	Time30m     TimeCommitment = "30m"
	TimeHourish TimeCommitment = "1h+"
)

// ParseTimeCommitment accepts "", "none", "15m", "30m" and "1h+".
func ParseTimeCommitment(s string) (TimeCommitment, error) {
	switch s {
	case "", "none":
		return TimeNone, nil
	case string(Time15m), string(Time30m), string(TimeHourish):
		return TimeCommitment(s), nil
	}
	return TimeNone, fmt.Errorf("invalid time commitment %q, must be one of: 15m, 30m, 1h+", s)
}

// TaskStatus is the lifecycle state of a generated task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskDone       TaskStatus = "done"
	TaskInProgress TaskStatus = "in-progress"
	TaskBlocked    TaskStatus = "blocked"
	TaskAttention  TaskStatus = "attention"
	TaskIdea       TaskStatus = "idea"
)

// Toggle flips pending and done. Display-only statuses toggle to done.
func (s TaskStatus) Toggle() TaskStatus {
	if s == TaskDone {
		return TaskPending
	}
	return TaskDone
}

// Channel is where a task is carried out.
type Channel string

const (
	ChannelContent  Channel = "content"
	ChannelLinkedIn Channel = "linkedin"
	ChannelOps      Channel = "ops"
	ChannelDM       Channel = "dm"
)

// TaskItem is a single actionable task within an ExecutionDay.
type TaskItem struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Status      TaskStatus `yaml:"status" json:"status"`
	Channel     Channel    `yaml:"channel" json:"channel"`
}

// ExecutionDay is one day's pillar, cluster and network tasks.
type ExecutionDay struct {
	Day            int        `yaml:"day" json:"day"`
	Phase          string     `yaml:"phase" json:"phase"`
	PillarTask     TaskItem   `yaml:"pillar_task" json:"pillar_task"`
	ClusterActions []TaskItem `yaml:"cluster_actions" json:"cluster_actions"`
	NetworkAction  TaskItem   `yaml:"network_action" json:"network_action"`
}

// Tasks returns pointers to every task of the day in display order.
func (d *ExecutionDay) Tasks() []*TaskItem {
	tasks := make([]*TaskItem, 0, len(d.ClusterActions)+2)
	tasks = append(tasks, &d.PillarTask)
	for i := range d.ClusterActions {
		tasks = append(tasks, &d.ClusterActions[i])
	}
	tasks = append(tasks, &d.NetworkAction)
	return tasks
}

// Brief is the strategic summary that precedes the day-by-day plan.
type Brief struct {
	Name     string   `yaml:"name" json:"name"`
	Category Category `yaml:"category" json:"category"`
	Goal     string   `yaml:"goal" json:"goal"`
	Tone     string   `yaml:"tone" json:"tone"`
	Duration int      `yaml:"duration" json:"duration"`
	ICP      string   `yaml:"icp" json:"icp"`
	Strategy string   `yaml:"strategy" json:"strategy"`
	Metrics  []string `yaml:"metrics" json:"metrics"`
}

// Hand-off sources recorded on a Move.
const (
	SourceWizard = "wizard"
	SourceCLI    = "cli"
	SourceMCP    = "mcp"
)

// Move is a launched plan as persisted by the move store.
type Move struct {
	ID          string         `yaml:"id" json:"id"`
	WorkspaceID string         `yaml:"workspace_id" json:"workspace_id"`
	Category    Category       `yaml:"category" json:"category"`
	Context     string         `yaml:"context" json:"context"`
	Brief       Brief          `yaml:"brief" json:"brief"`
	Execution   []ExecutionDay `yaml:"execution" json:"execution"`
	Source      string         `yaml:"source,omitempty" json:"source,omitempty"`
	Created     time.Time      `yaml:"created" json:"created"`
	Updated     time.Time      `yaml:"updated" json:"updated"`
}

// Progress returns the number of done tasks and the total task count.
func (m *Move) Progress() (done, total int) {
	for i := range m.Execution {
		for _, t := range m.Execution[i].Tasks() {
			total++
			if t.Status == TaskDone {
				done++
			}
		}
	}
	return done, total
}
