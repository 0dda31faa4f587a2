package core

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/raptorflow/pkg/models"
)

// launchPhases is the day-by-day rotation used by the planning wizard.
var launchPhases = []string{"Tease", "Reveal", "Proof", "Urgency", "Close", "Sustain", "Review"}

// clusterTemplate describes one supporting task offered every day.
type clusterTemplate struct {
	title       string
	description string
	channel     models.Channel
}

var clusterTemplates = [3]clusterTemplate{
	{
		title:       "Repurpose the pillar into a short post",
		description: "Cut one idea from today's %s task into a standalone post.",
		channel:     models.ChannelContent,
	},
	{
		title:       "Comment on 5 posts from your audience",
		description: "Leave useful comments that tie back to today's %s angle.",
		channel:     models.ChannelLinkedIn,
	},
	{
		title:       "Log results and adjust tomorrow's plan",
		description: "Note what moved during %s and tweak the next day.",
		channel:     models.ChannelOps,
	},
}

// ClusterCount returns how many supporting tasks a day gets for the given
// time commitment.
func ClusterCount(tc models.TimeCommitment) int {
	switch tc {
	case models.Time15m:
		return 1
	case models.TimeHourish:
		return 3
	default:
		return 2
	}
}

// SynthesizeExecutionPlan expands a brief into one ExecutionDay per day of
// brief.Duration. Days past the end of the phase and pillar tables reuse the
// last phase and get a generic pillar title.
func SynthesizeExecutionPlan(brief models.Brief, in PlanInput) ([]models.ExecutionDay, error) {
	profile, err := Profile(brief.Category)
	if err != nil {
		return nil, fmt.Errorf("synthesizing execution plan: %w", err)
	}
	if brief.Duration <= 0 {
		return []models.ExecutionDay{}, nil
	}

	audience := in.Audience()
	pillarDesc := pillarDescription(in)
	networkTitle := networkTitle(audience, in.Answers.Resistance)
	clusters := ClusterCount(in.TimeCommitment)

	days := make([]models.ExecutionDay, brief.Duration)
	for i := range days {
		day := i + 1
		phase := phaseAt(launchPhases, i)

		title := fmt.Sprintf("Execute Day %d", day)
		if i < len(profile.Pillars) {
			title = profile.Pillars[i]
		}

		actions := make([]models.TaskItem, clusters)
		for j := range actions {
			tmpl := clusterTemplates[j]
			actions[j] = models.TaskItem{
				ID:          fmt.Sprintf("cluster-%d-%d", day, j+1),
				Title:       tmpl.title,
				Description: fmt.Sprintf(tmpl.description, strings.ToLower(phase)),
				Status:      models.TaskPending,
				Channel:     tmpl.channel,
			}
		}

		days[i] = models.ExecutionDay{
			Day:   day,
			Phase: phase,
			PillarTask: models.TaskItem{
				ID:          fmt.Sprintf("pillar-%d", day),
				Title:       title,
				Description: pillarDesc,
				Status:      models.TaskPending,
				Channel:     models.ChannelContent,
			},
			ClusterActions: actions,
			NetworkAction: models.TaskItem{
				ID:          fmt.Sprintf("network-%d", day),
				Title:       networkTitle,
				Description: fmt.Sprintf("Send a personal message tied to the %s step.", strings.ToLower(phase)),
				Status:      models.TaskPending,
				Channel:     models.ChannelDM,
			},
		}
	}
	return days, nil
}

// phaseAt returns phases[i], or the last phase once i runs past the table.
func phaseAt(phases []string, i int) string {
	if i < len(phases) {
		return phases[i]
	}
	return phases[len(phases)-1]
}

func pillarDescription(in PlanInput) string {
	var parts []string
	if o := Truncate(in.Answers.Outcome, pillarClauseLimit); o != "" {
		parts = append(parts, "Outcome: "+o)
	}
	if o := Truncate(in.Answers.Offer, pillarClauseLimit); o != "" {
		parts = append(parts, "Offer: "+o)
	}
	if len(parts) == 0 {
		return Truncate(in.Context, pillarContextLimit)
	}
	return strings.Join(parts, " | ")
}

func networkTitle(audience, resistance string) string {
	title := "DM 3 people in " + audience
	if r := Truncate(resistance, resistanceDMLimit); r != "" {
		title += ` and address "` + r + `"`
	}
	return title
}
