package core

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/valter-silva-au/raptorflow/pkg/models"
)

// samplePhases is the rotation used for illustrative sample Moves.
var samplePhases = []string{"Setup", "Asset", "Launch", "Distribution", "Follow-up", "Optimize", "Review"}

// categoryKeywords maps context keywords to the category they suggest.
// A keyword matches at the start of a word. Entries are checked in order;
// the first match wins.
var categoryKeywords = []struct {
	category models.Category
	words    []string
}{
	{models.CategoryRepair, []string{"churn", "complaint", "refund", "lost", "angry", "win back", "cancel"}},
	{models.CategoryRally, []string{"community", "event", "challenge", "meetup", "members", "ugc"}},
	{models.CategoryIgnite, []string{"launch", "release", "announce", "waitlist"}},
	{models.CategoryAuthority, []string{"expert", "guide", "thought", "credib", "framework", "teach"}},
	{models.CategoryCapture, []string{"lead", "book", "demo", "sales", "tables", "fill", "pipeline"}},
}

var sampleNames = map[models.Category][]string{
	models.CategoryIgnite:    {"Spark Week", "Launch Runway", "First Light"},
	models.CategoryCapture:   {"Pipeline Push", "Full Tables", "Booked Solid"},
	models.CategoryAuthority: {"Proof Sprint", "Expert Week", "Playbook Drop"},
	models.CategoryRepair:    {"Comeback Week", "Trust Rebuild", "Second Look"},
	models.CategoryRally:     {"Crew Call", "Community Surge", "All Hands In"},
}

var sampleTones = []string{"Bold", "Direct", "Playful", "Warm", "Expert", "Urgent"}

var sampleClusters = []clusterTemplate{
	{title: "Draft supporting copy", description: "Write copy for the %s step.", channel: models.ChannelContent},
	{title: "Share in two LinkedIn groups", description: "Post the %s asset where the audience gathers.", channel: models.ChannelLinkedIn},
	{title: "Update the tracking sheet", description: "Record %s numbers.", channel: models.ChannelOps},
}

// SampleGenerator produces illustrative Moves for demos and fixtures.
// Output depends on the injected random source, so a fixed seed gives
// reproducible samples.
type SampleGenerator struct {
	rng *rand.Rand
}

// NewSampleGenerator returns a generator seeded with seed.
func NewSampleGenerator(seed int64) *SampleGenerator {
	s := uint64(seed)
	return NewSampleGeneratorFrom(rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)))
}

// NewSampleGeneratorFrom returns a generator drawing from rng.
func NewSampleGeneratorFrom(rng *rand.Rand) *SampleGenerator {
	return &SampleGenerator{rng: rng}
}

// DetectCategory guesses a category from keywords in free text, falling
// back to capture.
func DetectCategory(text string) models.Category {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	normalized := " " + strings.Join(words, " ")
	for _, entry := range categoryKeywords {
		for _, w := range entry.words {
			if strings.Contains(normalized, " "+w) {
				return entry.category
			}
		}
	}
	return models.CategoryCapture
}

// SampleBrief builds a randomized brief for the given context and audience.
func (g *SampleGenerator) SampleBrief(context, audience string) models.Brief {
	category := DetectCategory(context)
	profile := catalog[category]
	in := PlanInput{Context: context, AudienceName: audience}

	names := sampleNames[category]
	return models.Brief{
		Name:     names[g.rng.IntN(len(names))],
		Category: category,
		Goal:     profile.DefaultGoal,
		Tone:     sampleTones[g.rng.IntN(len(sampleTones))],
		Duration: DefaultDuration,
		ICP:      in.Audience(),
		Strategy: joinNonEmpty([]string{
			clause("Target", in.Audience(), targetClauseLimit),
			clause("Context", context, contextClauseLimit),
		}, " "),
		Metrics: profile.Metrics[:],
	}
}

// SampleExecution builds a randomized execution plan for brief. The number
// of supporting tasks is drawn once and shared by every day.
func (g *SampleGenerator) SampleExecution(brief models.Brief) []models.ExecutionDay {
	profile, ok := catalog[brief.Category]
	if !ok {
		profile = catalog[models.CategoryCapture]
	}
	audience := brief.ICP
	if audience == "" {
		audience = models.GeneralAudience
	}
	clusters := 1 + g.rng.IntN(len(sampleClusters))
	outreach := 2 + g.rng.IntN(4)

	days := make([]models.ExecutionDay, 0, max(brief.Duration, 0))
	for i := 0; i < brief.Duration; i++ {
		day := i + 1
		phase := phaseAt(samplePhases, i)

		title := fmt.Sprintf("Execute Day %d", day)
		if i < len(profile.Pillars) {
			title = profile.Pillars[i]
		}

		actions := make([]models.TaskItem, clusters)
		for j := range actions {
			tmpl := sampleClusters[j]
			actions[j] = models.TaskItem{
				ID:          fmt.Sprintf("cluster-%d-%d", day, j+1),
				Title:       tmpl.title,
				Description: fmt.Sprintf(tmpl.description, strings.ToLower(phase)),
				Status:      models.TaskPending,
				Channel:     tmpl.channel,
			}
		}

		days = append(days, models.ExecutionDay{
			Day:   day,
			Phase: phase,
			PillarTask: models.TaskItem{
				ID:          fmt.Sprintf("pillar-%d", day),
				Title:       title,
				Description: brief.Goal,
				Status:      models.TaskPending,
				Channel:     models.ChannelContent,
			},
			ClusterActions: actions,
			NetworkAction: models.TaskItem{
				ID:          fmt.Sprintf("network-%d", day),
				Title:       fmt.Sprintf("DM %d people in %s", outreach, audience),
				Description: "Start a conversation, no pitch.",
				Status:      models.TaskPending,
				Channel:     models.ChannelDM,
			},
		})
	}
	return days
}
