package cli

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := appVersion, appCommit, appDate
	defer func() { appVersion, appCommit, appDate = origVersion, origCommit, origDate }()

	SetVersionInfo("1.2.3", "abc1234", "2026-02-13")

	if appVersion != "1.2.3" {
		t.Errorf("appVersion = %q, want 1.2.3", appVersion)
	}
	if appCommit != "abc1234" {
		t.Errorf("appCommit = %q, want abc1234", appCommit)
	}
	if appDate != "2026-02-13" {
		t.Errorf("appDate = %q, want 2026-02-13", appDate)
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"nonexistent-command"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := Execute()
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecute_VersionSubcommand(t *testing.T) {
	origVersion, origCommit, origDate := appVersion, appCommit, appDate
	defer func() { appVersion, appCommit, appDate = origVersion, origCommit, origDate }()
	SetVersionInfo("test-ver", "test-commit", "test-date")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	if err := Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"rf test-ver", "commit: test-commit", "built:  test-date"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output %q missing %q", out, want)
		}
	}
}

func TestCommandRegistration(t *testing.T) {
	top := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		top[cmd.Name()] = true
	}
	for _, name := range []string{"version", "move", "sample", "categories", "audience", "metrics", "mcp"} {
		if !top[name] {
			t.Errorf("command %q not registered on root", name)
		}
	}

	sub := map[string]bool{}
	for _, cmd := range moveCmd.Commands() {
		sub[cmd.Name()] = true
	}
	for _, name := range []string{"new", "wizard", "list", "show", "toggle"} {
		if !sub[name] {
			t.Errorf("subcommand move %q not registered", name)
		}
	}
}

func TestVerboseFlag(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("verbose")
	if f == nil {
		t.Fatal("expected persistent --verbose flag")
	}
	if f.Shorthand != "v" {
		t.Errorf("shorthand = %q, want v", f.Shorthand)
	}
}

func TestNewLogger(t *testing.T) {
	for _, level := range []zapcore.Level{zapcore.DebugLevel, zapcore.WarnLevel, zapcore.ErrorLevel} {
		logger, err := NewLogger(level)
		if err != nil {
			t.Fatalf("NewLogger(%s): %v", level, err)
		}
		if !logger.Core().Enabled(level) {
			t.Errorf("logger should enable %s", level)
		}
		if level > zapcore.DebugLevel && logger.Core().Enabled(zapcore.DebugLevel) {
			t.Errorf("logger at %s should not enable debug", level)
		}
	}
}

func TestCategoriesCmd(t *testing.T) {
	out := captureOutput(t, categoriesCmd)
	origJSON := categoriesJSON
	defer func() { categoriesJSON = origJSON }()

	categoriesJSON = false
	if err := categoriesCmd.RunE(categoriesCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Ignite", "Capture", "Authority", "Repair", "Rally", "Leads, Meetings booked, Conversion rate"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("categories output missing %q", want)
		}
	}

	out.Reset()
	categoriesJSON = true
	if err := categoriesCmd.RunE(categoriesCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), `"category": "rally"`) {
		t.Errorf("JSON output missing rally: %s", out.String())
	}
}
