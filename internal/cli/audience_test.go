package cli

import (
	"strings"
	"testing"

	"github.com/valter-silva-au/raptorflow/internal/storage"
)

func TestAudienceCommands(t *testing.T) {
	dir := withServices(t)
	origID, origDesc := audienceID, audienceDescription
	defer func() { audienceID, audienceDescription = origID, origDesc }()

	listOut := captureOutput(t, audienceListCmd)
	if err := audienceListCmd.RunE(audienceListCmd, nil); err != nil {
		t.Fatalf("audience list: %v", err)
	}
	if !strings.Contains(listOut.String(), "General Audience") {
		t.Errorf("empty list should mention the general audience: %q", listOut.String())
	}

	addOut := captureOutput(t, audienceAddCmd)
	audienceID, audienceDescription = "", "Owners of 1-3 locations"
	if err := audienceAddCmd.RunE(audienceAddCmd, []string{"Restaurant Owners"}); err != nil {
		t.Fatalf("audience add: %v", err)
	}
	if !strings.Contains(addOut.String(), "restaurant-owners") {
		t.Errorf("unexpected add output: %q", addOut.String())
	}

	if err := audienceAddCmd.RunE(audienceAddCmd, []string{"Restaurant Owners"}); err == nil {
		t.Error("expected duplicate audience error")
	}

	listOut.Reset()
	if err := audienceListCmd.RunE(audienceListCmd, nil); err != nil {
		t.Fatalf("audience list: %v", err)
	}
	if !strings.Contains(listOut.String(), "Owners of 1-3 locations") {
		t.Errorf("list missing added audience:\n%s", listOut.String())
	}

	fresh := storage.NewAudienceStore(dir)
	if err := fresh.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	list, err := fresh.ListAudiences(t.Context(), workspaceID())
	if err != nil || len(list) != 1 {
		t.Fatalf("expected 1 saved audience, got %d (%v)", len(list), err)
	}
}

func TestAudienceCommands_NilStore(t *testing.T) {
	orig := Audiences
	defer func() { Audiences = orig }()
	Audiences = nil

	if err := audienceListCmd.RunE(audienceListCmd, nil); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("list: expected not initialized error, got %v", err)
	}
	if err := audienceAddCmd.RunE(audienceAddCmd, []string{"x"}); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("add: expected not initialized error, got %v", err)
	}
}
