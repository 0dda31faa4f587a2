package core

import (
	"strings"

	"github.com/valter-silva-au/raptorflow/pkg/models"
)

// Question is one fixed clarification prompt.
type Question struct {
	ID     models.QuestionID
	Prompt string
	Hint   string
}

// Questions lists the clarification prompts in the order they are asked.
var Questions = []Question{
	{
		ID:     models.QuestionOutcome,
		Prompt: "What outcome would make this Move a win?",
		Hint:   "e.g. 20 bookings, 50 waitlist signups",
	},
	{
		ID:     models.QuestionOffer,
		Prompt: "What are you offering people in return?",
		Hint:   "e.g. a free audit, a launch discount",
	},
	{
		ID:     models.QuestionResistance,
		Prompt: "What usually stops your audience from saying yes?",
		Hint:   "e.g. too pricey, no time, already has a vendor",
	},
}

// AnswerCollector accumulates answers one question at a time. Moving
// forward requires a non-blank draft; moving back restores the answer
// previously given to that question.
type AnswerCollector struct {
	index   int
	draft   string
	answers models.Answers
}

// NewAnswerCollector returns a collector positioned on the first question.
func NewAnswerCollector() *AnswerCollector {
	return &AnswerCollector{}
}

// Index returns the zero-based position of the current question.
func (c *AnswerCollector) Index() int {
	return c.index
}

// Question returns the current question. Once all questions are answered
// it keeps returning the last one.
func (c *AnswerCollector) Question() Question {
	if c.index >= len(Questions) {
		return Questions[len(Questions)-1]
	}
	return Questions[c.index]
}

// Draft returns the text currently entered for the question.
func (c *AnswerCollector) Draft() string {
	return c.draft
}

// SetDraft replaces the text entered for the current question.
func (c *AnswerCollector) SetDraft(text string) {
	c.draft = text
}

// CanAdvance reports whether the current draft is non-blank.
func (c *AnswerCollector) CanAdvance() bool {
	return !c.Done() && strings.TrimSpace(c.draft) != ""
}

// Next records the trimmed draft as the current answer and moves on. It
// reports false without changing anything when the draft is blank.
func (c *AnswerCollector) Next() bool {
	if !c.CanAdvance() {
		return false
	}
	c.answers.Set(Questions[c.index].ID, strings.TrimSpace(c.draft))
	c.index++
	c.draft = ""
	if c.index < len(Questions) {
		c.draft = c.answers.Get(Questions[c.index].ID)
	}
	return true
}

// Back returns to the previous question and restores its answer as the
// draft. It reports false on the first question.
func (c *AnswerCollector) Back() bool {
	if c.index == 0 {
		return false
	}
	c.index--
	c.draft = c.answers.Get(Questions[c.index].ID)
	return true
}

// Done reports whether every question has been answered.
func (c *AnswerCollector) Done() bool {
	return c.index >= len(Questions)
}

// Answers returns the answers recorded so far.
func (c *AnswerCollector) Answers() models.Answers {
	return c.answers
}
