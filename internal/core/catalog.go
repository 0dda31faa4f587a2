// Package core contains the planning logic for RaptorFlow: the category
// catalog, the brief and execution-plan synthesizers, the answer collector
// and wizard that feed them, the randomized sample-data generator, and the
// move manager that receives launched plans.
package core

import (
	"errors"
	"fmt"

	"github.com/valter-silva-au/raptorflow/pkg/models"
)

// ErrUnknownCategory is returned when a category is not in the catalog.
var ErrUnknownCategory = errors.New("unknown category")

// catalog holds the static profile of every category.
var catalog = map[models.Category]models.CategoryProfile{
	models.CategoryIgnite: {
		Category:    models.CategoryIgnite,
		Name:        "Ignite",
		Tagline:     "Spark attention for something new",
		DefaultGoal: "Build awareness and early demand for a launch",
		Tone:        "Bold",
		Pillars: [7]string{
			"Post a teaser that hints at what is coming",
			"Reveal the launch with a hero announcement",
			"Share an early customer reaction",
			"Announce the limited launch window",
			"Make the direct ask to join or buy",
			"Recap the launch and thank early adopters",
			"Review reach and capture launch learnings",
		},
		Metrics: [3]string{"Reach", "Engagement rate", "Waitlist signups"},
	},
	models.CategoryCapture: {
		Category:    models.CategoryCapture,
		Name:        "Capture",
		Tagline:     "Turn attention into pipeline",
		DefaultGoal: "Convert warm attention into booked conversations",
		Tone:        "Direct",
		Pillars: [7]string{
			"Tease the offer to your warmest audience",
			"Publish the offer with a clear call to action",
			"Share a result a customer got from the offer",
			"Remind people the offer is closing soon",
			"Send the last call and close open threads",
			"Follow up with everyone who engaged",
			"Review leads and conversion numbers",
		},
		Metrics: [3]string{"Leads", "Meetings booked", "Conversion rate"},
	},
	models.CategoryAuthority: {
		Category:    models.CategoryAuthority,
		Name:        "Authority",
		Tagline:     "Prove you know the problem best",
		DefaultGoal: "Establish credibility with proof-driven content",
		Tone:        "Expert",
		Pillars: [7]string{
			"Name the problem your audience keeps hitting",
			"Publish your framework for solving it",
			"Share a case study that backs the framework",
			"Debunk a common myth in your space",
			"Invite questions in a live or async session",
			"Package the week into a reusable guide",
			"Review saves, shares and inbound mentions",
		},
		Metrics: [3]string{"Profile views", "Saves and shares", "Inbound mentions"},
	},
	models.CategoryRepair: {
		Category:    models.CategoryRepair,
		Name:        "Repair",
		Tagline:     "Win back trust and lapsed customers",
		DefaultGoal: "Re-engage lapsed customers and reduce churn risk",
		Tone:        "Empathetic",
		Pillars: [7]string{
			"Acknowledge what went wrong openly",
			"Show what has changed since",
			"Share proof from a customer who came back",
			"Offer a time-boxed comeback incentive",
			"Personally invite lapsed customers back",
			"Check in with everyone who returned",
			"Review reactivations and remaining churn risk",
		},
		Metrics: [3]string{"Reactivations", "Reply rate", "Churn prevented"},
	},
	models.CategoryRally: {
		Category:    models.CategoryRally,
		Name:        "Rally",
		Tagline:     "Mobilize your community around a moment",
		DefaultGoal: "Mobilize your community around a shared moment",
		Tone:        "Energetic",
		Pillars: [7]string{
			"Tease the community moment",
			"Reveal the challenge or event details",
			"Spotlight the first participants",
			"Count down to the deadline",
			"Close entries and celebrate the peak",
			"Share highlights and user content",
			"Review participation and referrals",
		},
		Metrics: [3]string{"Participants", "UGC posts", "Referrals"},
	},
}

// Profile returns the static profile of c.
func Profile(c models.Category) (models.CategoryProfile, error) {
	p, ok := catalog[c]
	if !ok {
		return models.CategoryProfile{}, fmt.Errorf("%w %q", ErrUnknownCategory, c)
	}
	return p, nil
}

// Profiles returns every category profile in catalog order.
func Profiles() []models.CategoryProfile {
	cats := models.Categories()
	out := make([]models.CategoryProfile, 0, len(cats))
	for _, c := range cats {
		out = append(out, catalog[c])
	}
	return out
}
