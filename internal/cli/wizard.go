package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/raptorflow/internal/core"
	"github.com/valter-silva-au/raptorflow/pkg/models"
	"go.uber.org/zap"
)

var timeOptions = []models.TimeCommitment{models.TimeNone, models.Time15m, models.Time30m, models.TimeHourish}

var stepOrder = []core.Step{core.StepObjective, core.StepContext, core.StepClarify, core.StepPreview}

// previewDays caps how many days the preview step prints.
const previewDays = 3

type wizardModel struct {
	wiz  *core.Wizard
	done core.CompletionFunc

	input       textinput.Model
	cursor      int
	audienceIdx int // 0 is the general audience, i is Audiences()[i-1]

	err      error
	launched bool
	quitting bool
}

func newWizardModel(w *core.Wizard, done core.CompletionFunc) wizardModel {
	ti := textinput.New()
	ti.CharLimit = 280
	ti.Width = 72

	m := wizardModel{wiz: w, done: done, input: ti}
	for i, a := range w.Audiences() {
		if a.Name == w.AudienceName() {
			m.audienceIdx = i + 1
		}
	}
	return m
}

func (m wizardModel) Init() tea.Cmd {
	return nil
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.wiz.Step() {
	case core.StepObjective:
		return m.updateObjective(key)
	case core.StepContext:
		return m.updateContext(key)
	case core.StepClarify:
		return m.updateClarify(key)
	case core.StepPreview:
		return m.updatePreview(key)
	}
	return m, nil
}

func (m wizardModel) updateObjective(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := models.Categories()
	switch key.String() {
	case "up", "k":
		m.cursor = (m.cursor - 1 + len(categories)) % len(categories)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(categories)
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if err := m.wiz.SetCategory(categories[m.cursor]); err != nil {
			m.err = err
			return m, nil
		}
		m.err = m.wiz.Next()
		if m.err == nil {
			return m, m.editText(m.wiz.Context(), "What is going on? e.g. launching a new analytics add-on")
		}
	}
	return m, nil
}

func (m wizardModel) updateContext(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		m.wiz.SetContext(m.input.Value())
		if m.err = m.wiz.Next(); m.err != nil {
			return m, nil
		}
		return m, m.editQuestion()
	case tea.KeyEsc:
		m.wiz.SetContext(m.input.Value())
		m.wiz.Back()
		m.input.Blur()
		m.err = nil
		return m, nil
	case tea.KeyTab:
		audiences := m.wiz.Audiences()
		m.audienceIdx = (m.audienceIdx + 1) % (len(audiences) + 1)
		id := ""
		if m.audienceIdx > 0 {
			id = audiences[m.audienceIdx-1].ID
		}
		m.err = m.wiz.SelectAudience(id)
		return m, nil
	case tea.KeyCtrlT:
		m.wiz.SetTimeCommitment(nextTimeOption(m.wiz.TimeCommitment()))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	m.wiz.SetContext(m.input.Value())
	return m, cmd
}

func (m wizardModel) updateClarify(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	collector := m.wiz.Collector()
	switch key.Type {
	case tea.KeyEnter:
		collector.SetDraft(m.input.Value())
		if m.err = m.wiz.Next(); m.err != nil {
			return m, nil
		}
		if m.wiz.Step() == core.StepPreview {
			m.input.Blur()
			return m, nil
		}
		return m, m.editQuestion()
	case tea.KeyEsc:
		collector.SetDraft(m.input.Value())
		m.wiz.Back()
		m.err = nil
		if m.wiz.Step() == core.StepContext {
			return m, m.editText(m.wiz.Context(), "")
		}
		return m, m.editQuestion()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	collector.SetDraft(m.input.Value())
	return m, cmd
}

func (m wizardModel) updatePreview(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter", "l":
		m.err = m.wiz.Launch(m.done)
		if errors.Is(m.err, core.ErrAlreadyLaunched) {
			return m, nil
		}
		m.launched = m.wiz.Launched()
		return m, tea.Quit
	case "esc", "b":
		m.wiz.Back()
		m.err = nil
		return m, m.editQuestion()
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *wizardModel) editText(value, placeholder string) tea.Cmd {
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *wizardModel) editQuestion() tea.Cmd {
	c := m.wiz.Collector()
	return m.editText(c.Draft(), c.Question().Hint)
}

func nextTimeOption(tc models.TimeCommitment) models.TimeCommitment {
	for i, o := range timeOptions {
		if o == tc {
			return timeOptions[(i+1)%len(timeOptions)]
		}
	}
	return timeOptions[0]
}

func timeLabel(tc models.TimeCommitment) string {
	if tc == models.TimeNone {
		return "not set"
	}
	return string(tc) + " a day"
}

func (m wizardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.launched {
		if m.err != nil {
			return errorStyle.Render("Launch failed: "+m.err.Error()) + "\n"
		}
		return statusDone.Render("Move launched.") + " Run `rf move list` to track it.\n"
	}

	step := m.wiz.Step()
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(" RaptorFlow "))
	for i, s := range stepOrder {
		if s == step {
			fmt.Fprintf(&sb, "  %s", headerStyle.Render(fmt.Sprintf("Step %d/%d · %s", i+1, len(stepOrder), strings.ToUpper(string(s[:1]))+string(s[1:]))))
		}
	}
	sb.WriteString("\n\n")

	var help string
	switch step {
	case core.StepObjective:
		sb.WriteString("Choose the objective for this Move:\n\n")
		for i, p := range core.Profiles() {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			fmt.Fprintf(&sb, "%s%-10s %s\n", cursor, p.Name, labelStyle.Render(p.Tagline))
		}
		help = "up/down: choose | enter: select | q: quit"

	case core.StepContext:
		fmt.Fprintf(&sb, "%s %s\n\n", headerStyle.Render(m.profileName()), "What is the situation?")
		sb.WriteString(m.input.View())
		fmt.Fprintf(&sb, "\n\n  %s %s\n", labelStyle.Render("Audience:"), m.wiz.AudienceName())
		fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render("Time:    "), timeLabel(m.wiz.TimeCommitment()))
		if msg := m.wiz.LoadError(); msg != "" {
			fmt.Fprintf(&sb, "\n%s\n", errorStyle.Render(msg))
		}
		help = "enter: next | tab: audience | ctrl+t: time | esc: back"

	case core.StepClarify:
		c := m.wiz.Collector()
		fmt.Fprintf(&sb, "Question %d/%d: %s\n\n", c.Index()+1, len(core.Questions), c.Question().Prompt)
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
		help = "enter: next | esc: back"

	case core.StepPreview:
		days := m.wiz.Execution()
		sb.WriteString(renderBrief(m.wiz.Brief()))
		shown := days
		if len(shown) > previewDays {
			shown = shown[:previewDays]
		}
		sb.WriteString(renderExecution(shown, false))
		if len(days) > len(shown) {
			fmt.Fprintf(&sb, "\n  %s\n", labelStyle.Render(fmt.Sprintf("... and %d more days", len(days)-len(shown))))
		}
		help = "enter: launch | esc: back | q: quit"
	}

	if m.err != nil {
		fmt.Fprintf(&sb, "\n%s\n", errorStyle.Render(wizardErrorText(m.err)))
	}
	fmt.Fprintf(&sb, "\n%s\n", helpStyle.Render(help))
	return sb.String()
}

func (m wizardModel) profileName() string {
	p, err := core.Profile(m.wiz.Category())
	if err != nil {
		return ""
	}
	return p.Name
}

func wizardErrorText(err error) string {
	if errors.Is(err, core.ErrStepIncomplete) {
		return "Please fill this in before continuing."
	}
	return err.Error()
}

var moveWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Plan a Move interactively",
	Long: `Walk through the four planning steps: objective, context, clarify and
preview. Launching from the preview saves the Move.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if MoveMgr == nil {
			return fmt.Errorf("move manager not initialized")
		}
		cfg := workspaceConfig()
		opts := core.WizardOptions{
			WorkspaceID:           workspaceID(),
			DefaultAudienceID:     cfg.DefaultAudience,
			DefaultTimeCommitment: cfg.DefaultTimeCommitment,
			Duration:              cfg.DefaultDuration,
		}
		if Audiences != nil {
			opts.Audiences = Audiences
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		w := core.NewWizard(opts)
		w.LoadAudiences(ctx)
		if msg := w.LoadError(); msg != "" {
			Logger.Warn("audiences unavailable", zap.String("error", msg))
		}

		final, err := tea.NewProgram(newWizardModel(w, MoveMgr.Completion(models.SourceWizard))).Run()
		if err != nil {
			return fmt.Errorf("running wizard: %w", err)
		}
		if m, ok := final.(wizardModel); ok && m.launched && m.err != nil {
			return fmt.Errorf("launching move: %w", m.err)
		}
		return nil
	},
}

func init() {
	moveCmd.AddCommand(moveWizardCmd)
}
