package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/raptorflow/internal/core"
	"github.com/valter-silva-au/raptorflow/internal/observability"
	"github.com/valter-silva-au/raptorflow/internal/storage"
)

// withServices points the package service vars at stores in a temp dir and
// restores the previous values when the test ends.
func withServices(t *testing.T) string {
	t.Helper()
	origCfg, origMgr, origAud := Cfg, MoveMgr, Audiences
	origLog, origCalc := EventLog, MetricsCalc
	t.Cleanup(func() {
		Cfg, MoveMgr, Audiences = origCfg, origMgr, origAud
		EventLog, MetricsCalc = origLog, origCalc
	})

	dir := t.TempDir()
	eventLog, err := observability.NewJSONLEventLog(filepath.Join(dir, ".rf_events.jsonl"))
	if err != nil {
		t.Fatalf("creating event log: %v", err)
	}
	t.Cleanup(func() { _ = eventLog.Close() })

	Cfg = core.DefaultConfig()
	MoveMgr = core.NewMoveManager(Cfg.WorkspaceID, storage.NewMoveStore(dir), nil)
	Audiences = storage.NewAudienceStore(dir)
	EventLog = eventLog
	MetricsCalc = observability.NewMetricsCalculator(eventLog)
	return dir
}

// captureOutput redirects cmd's stdout into a buffer for the test.
func captureOutput(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	t.Cleanup(func() { cmd.SetOut(nil) })
	return &buf
}
