package core

import (
	"testing"

	"github.com/valter-silva-au/raptorflow/pkg/models"
)

func TestAnswerCollector_BlankDraftBlocksNext(t *testing.T) {
	c := NewAnswerCollector()
	if c.CanAdvance() {
		t.Fatal("empty draft should not allow advancing")
	}
	c.SetDraft("   ")
	if c.Next() {
		t.Fatal("whitespace draft should not advance")
	}
	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
}

func TestAnswerCollector_FullPass(t *testing.T) {
	c := NewAnswerCollector()
	inputs := map[models.QuestionID]string{
		models.QuestionOutcome:    "  20 bookings ",
		models.QuestionOffer:      "Free dessert",
		models.QuestionResistance: "Too pricey",
	}
	for !c.Done() {
		c.SetDraft(inputs[c.Question().ID])
		if !c.Next() {
			t.Fatalf("Next failed on %s", c.Question().ID)
		}
	}

	got := c.Answers()
	want := models.Answers{Outcome: "20 bookings", Offer: "Free dessert", Resistance: "Too pricey"}
	if got != want {
		t.Errorf("Answers = %+v, want %+v", got, want)
	}
	if c.CanAdvance() {
		t.Error("completed collector should not advance")
	}
}

func TestAnswerCollector_BackRestoresDraft(t *testing.T) {
	c := NewAnswerCollector()
	c.SetDraft("20 bookings")
	c.Next()
	c.SetDraft("Free dessert")
	c.Next()

	if !c.Back() {
		t.Fatal("Back should succeed")
	}
	if c.Question().ID != models.QuestionOffer {
		t.Fatalf("Question = %s, want offer", c.Question().ID)
	}
	if c.Draft() != "Free dessert" {
		t.Errorf("Draft = %q, want restored answer", c.Draft())
	}

	c.Back()
	if c.Draft() != "20 bookings" {
		t.Errorf("Draft = %q, want restored answer", c.Draft())
	}
	if c.Back() {
		t.Error("Back on first question should report false")
	}

	// Moving forward again restores the later answer too.
	c.Next()
	if c.Draft() != "Free dessert" {
		t.Errorf("Draft after re-advancing = %q", c.Draft())
	}
}
