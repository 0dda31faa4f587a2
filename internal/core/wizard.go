package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/valter-silva-au/raptorflow/pkg/models"
)

// Step names the stage a Wizard is in.
type Step string

const (
	StepObjective Step = "objective"
	StepContext   Step = "context"
	StepClarify   Step = "clarify"
	StepPreview   Step = "preview"
)

var (
	// ErrStepIncomplete is returned by Wizard.Next when the current step
	// is missing required input.
	ErrStepIncomplete = errors.New("step incomplete")
	// ErrAlreadyLaunched is returned when Launch is called a second time.
	ErrAlreadyLaunched = errors.New("move already launched")
)

// AudienceProvider lists the audiences available in a workspace.
type AudienceProvider interface {
	ListAudiences(ctx context.Context, workspaceID string) ([]models.Audience, error)
}

// CompletionFunc receives a finished plan. The wizard calls it once.
type CompletionFunc func(category models.Category, context string, brief models.Brief, execution []models.ExecutionDay) error

// WizardOptions configures a Wizard.
type WizardOptions struct {
	WorkspaceID           string
	Audiences             AudienceProvider
	DefaultAudienceID     string
	DefaultTimeCommitment models.TimeCommitment
	Duration              int
}

// Wizard sequences the objective, context, clarify and preview steps that
// lead to a launched Move.
type Wizard struct {
	opts WizardOptions
	step Step

	category       models.Category
	context        string
	audiences      []models.Audience
	audienceID     string
	timeCommitment models.TimeCommitment
	collector      *AnswerCollector
	loadErr        string

	brief     models.Brief
	execution []models.ExecutionDay
	launched  bool
}

// NewWizard returns a wizard positioned on the objective step.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{
		opts:           opts,
		step:           StepObjective,
		timeCommitment: opts.DefaultTimeCommitment,
		collector:      NewAnswerCollector(),
	}
}

// LoadAudiences fetches the audience options once. A failure is kept as a
// display message and the wizard carries on with the general audience.
func (w *Wizard) LoadAudiences(ctx context.Context) {
	if w.opts.Audiences == nil {
		return
	}
	list, err := w.opts.Audiences.ListAudiences(ctx, w.opts.WorkspaceID)
	if err != nil {
		w.loadErr = fmt.Sprintf("Could not load audiences: %v", err)
		return
	}
	w.loadErr = ""
	w.audiences = list
	if w.audienceID == "" && w.findAudience(w.opts.DefaultAudienceID) != nil {
		w.audienceID = w.opts.DefaultAudienceID
	}
}

// LoadError returns the audience load failure message, if any.
func (w *Wizard) LoadError() string {
	return w.loadErr
}

// Audiences returns the loaded audience options.
func (w *Wizard) Audiences() []models.Audience {
	return w.audiences
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Category returns the selected category.
func (w *Wizard) Category() models.Category {
	return w.category
}

// SetCategory selects the Move category.
func (w *Wizard) SetCategory(c models.Category) error {
	if !c.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownCategory, c)
	}
	w.category = c
	return nil
}

// Context returns the free-text context entered so far.
func (w *Wizard) Context() string {
	return w.context
}

// SetContext replaces the free-text context.
func (w *Wizard) SetContext(text string) {
	w.context = text
}

// SelectAudience picks an audience by id. An empty id clears the selection.
func (w *Wizard) SelectAudience(id string) error {
	if id == "" {
		w.audienceID = ""
		return nil
	}
	if w.findAudience(id) == nil {
		return fmt.Errorf("audience %q not found", id)
	}
	w.audienceID = id
	return nil
}

// AudienceName returns the selected audience's name or GeneralAudience.
func (w *Wizard) AudienceName() string {
	if a := w.findAudience(w.audienceID); a != nil && strings.TrimSpace(a.Name) != "" {
		return a.Name
	}
	return models.GeneralAudience
}

// TimeCommitment returns the chosen daily effort bucket.
func (w *Wizard) TimeCommitment() models.TimeCommitment {
	return w.timeCommitment
}

// SetTimeCommitment chooses the daily effort bucket.
func (w *Wizard) SetTimeCommitment(tc models.TimeCommitment) {
	w.timeCommitment = tc
}

// Collector returns the answer collector driven by the clarify step.
func (w *Wizard) Collector() *AnswerCollector {
	return w.collector
}

// CanAdvance reports whether Next would move forward.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepObjective:
		return w.category.Valid()
	case StepContext:
		return strings.TrimSpace(w.context) != ""
	case StepClarify:
		return w.collector.CanAdvance()
	}
	return false
}

// Next advances to the following step or question. Finishing the last
// question synthesizes the plan and moves to the preview.
func (w *Wizard) Next() error {
	if !w.CanAdvance() {
		return fmt.Errorf("%w: %s", ErrStepIncomplete, w.step)
	}
	switch w.step {
	case StepObjective:
		w.step = StepContext
	case StepContext:
		w.step = StepClarify
	case StepClarify:
		w.collector.Next()
		if w.collector.Done() {
			if err := w.synthesize(); err != nil {
				return err
			}
			w.step = StepPreview
		}
	}
	return nil
}

// Back moves to the previous question or step. It reports false on the
// objective step and after launch.
func (w *Wizard) Back() bool {
	if w.launched {
		return false
	}
	switch w.step {
	case StepContext:
		w.step = StepObjective
	case StepClarify:
		if !w.collector.Back() {
			w.step = StepContext
		}
	case StepPreview:
		w.collector.Back()
		w.step = StepClarify
	default:
		return false
	}
	return true
}

// PlanInput returns the synthesizer input for the current selections.
func (w *Wizard) PlanInput() PlanInput {
	return PlanInput{
		Category:       w.category,
		Context:        w.context,
		AudienceName:   w.AudienceName(),
		Answers:        w.collector.Answers(),
		TimeCommitment: w.timeCommitment,
		Duration:       w.opts.Duration,
	}
}

func (w *Wizard) synthesize() error {
	in := w.PlanInput()
	brief, err := SynthesizeBrief(in)
	if err != nil {
		return err
	}
	execution, err := SynthesizeExecutionPlan(brief, in)
	if err != nil {
		return err
	}
	w.brief = brief
	w.execution = execution
	return nil
}

// Brief returns the synthesized brief. It is the zero value before the
// preview step.
func (w *Wizard) Brief() models.Brief {
	return w.brief
}

// Execution returns the synthesized execution plan.
func (w *Wizard) Execution() []models.ExecutionDay {
	return w.execution
}

// Launch hands the previewed plan to done. It only succeeds once.
func (w *Wizard) Launch(done CompletionFunc) error {
	if w.launched {
		return ErrAlreadyLaunched
	}
	if w.step != StepPreview {
		return fmt.Errorf("%w: cannot launch from %s", ErrStepIncomplete, w.step)
	}
	w.launched = true
	if done == nil {
		return nil
	}
	return done(w.category, w.context, w.brief, w.execution)
}

// Launched reports whether Launch has been called successfully.
func (w *Wizard) Launched() bool {
	return w.launched
}

func (w *Wizard) findAudience(id string) *models.Audience {
	if id == "" {
		return nil
	}
	for i := range w.audiences {
		if w.audiences[i].ID == id {
			return &w.audiences[i]
		}
	}
	return nil
}
