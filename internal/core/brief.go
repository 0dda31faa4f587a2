package core

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/raptorflow/pkg/models"
)

// DefaultDuration is the number of days in a Move unless overridden.
const DefaultDuration = 7

// MaxDuration is the longest Move the configuration accepts.
const MaxDuration = 28

// Character budgets for the generated copy.
const (
	nameOutcomeLimit   = 40
	targetClauseLimit  = 42
	offerClauseLimit   = 70
	addressClauseLimit = 70
	contextClauseLimit = 90
	pillarClauseLimit  = 52
	pillarContextLimit = 120
	resistanceDMLimit  = 48
)

// PlanInput carries everything the synthesizers need. Zero values are
// valid for every field except Category.
type PlanInput struct {
	Category       models.Category
	Context        string
	AudienceName   string
	Answers        models.Answers
	TimeCommitment models.TimeCommitment
	// Duration overrides DefaultDuration when positive.
	Duration int
}

// Audience returns the trimmed audience name, or GeneralAudience when blank.
func (in PlanInput) Audience() string {
	if name := strings.TrimSpace(in.AudienceName); name != "" {
		return name
	}
	return models.GeneralAudience
}

// SynthesizeBrief builds the strategic brief for a Move. It is a pure
// function of its input.
func SynthesizeBrief(in PlanInput) (models.Brief, error) {
	profile, err := Profile(in.Category)
	if err != nil {
		return models.Brief{}, fmt.Errorf("synthesizing brief: %w", err)
	}

	outcome := strings.TrimSpace(in.Answers.Outcome)
	audience := in.Audience()

	name := profile.Name + " Sprint"
	goal := profile.DefaultGoal
	if outcome != "" {
		name = profile.Name + ": " + Truncate(outcome, nameOutcomeLimit)
		goal = outcome
	}

	duration := DefaultDuration
	if in.Duration > 0 {
		duration = in.Duration
	}

	clauses := []string{
		clause("Target", audience, targetClauseLimit),
		clause("Offer", in.Answers.Offer, offerClauseLimit),
		clause("Address", in.Answers.Resistance, addressClauseLimit),
		clause("Context", in.Context, contextClauseLimit),
	}

	return models.Brief{
		Name:     name,
		Category: in.Category,
		Goal:     goal,
		Tone:     profile.Tone,
		Duration: duration,
		ICP:      audience,
		Strategy: joinNonEmpty(clauses, " "),
		Metrics:  profile.Metrics[:],
	}, nil
}

// clause renders "Label: text." with text truncated to limit, or "" when
// text is blank.
func clause(label, text string, limit int) string {
	t := Truncate(text, limit)
	if t == "" {
		return ""
	}
	if !strings.HasSuffix(t, ellipsis) && !strings.ContainsAny(t[len(t)-1:], ".!?") {
		t += "."
	}
	return label + ": " + t
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
