package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valter-silva-au/raptorflow/pkg/models"
	"pgregory.net/rapid"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName+".yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cm := NewConfigurationManager(t.TempDir())
	cfg, err := cm.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_ReadsValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `workspace:
  id: acme
defaults:
  audience: foodies
  time_commitment: "1h+"
  duration: 10
sample:
  seed: 99
log:
  level: DEBUG
`)
	cfg, err := NewConfigurationManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.WorkspaceConfig{
		WorkspaceID:           "acme",
		DefaultAudience:       "foodies",
		DefaultTimeCommitment: models.TimeHourish,
		DefaultDuration:       10,
		SampleSeed:            99,
		LogLevel:              "debug",
	}
	if *cfg != want {
		t.Errorf("cfg = %+v, want %+v", *cfg, want)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "workspace:\n  id: solo\n")
	cfg, err := NewConfigurationManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WorkspaceID != "solo" || cfg.DefaultDuration != DefaultDuration || cfg.LogLevel != "warn" {
		t.Errorf("unexpected cfg %+v", cfg)
	}
}

func TestLoadConfig_InvalidTimeCommitment(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "defaults:\n  time_commitment: 2h\n")
	if _, err := NewConfigurationManager(dir).LoadConfig(); err == nil {
		t.Fatal("expected error for invalid time commitment")
	}
}

func TestLoadConfig_ReportsEveryInvalidField(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "defaults:\n  time_commitment: 2h\n  duration: 99\nlog:\n  level: loud\n")
	_, err := NewConfigurationManager(dir).LoadConfig()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"defaults.time_commitment", "defaults.duration", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestLoadConfig_NoneTimeCommitment(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "defaults:\n  time_commitment: none\n")
	cfg, err := NewConfigurationManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultTimeCommitment != models.TimeNone {
		t.Errorf("DefaultTimeCommitment = %q, want empty", cfg.DefaultTimeCommitment)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "workspace: [unclosed\n")
	if _, err := NewConfigurationManager(dir).LoadConfig(); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidateConfig_ReportsAllErrors(t *testing.T) {
	cm := NewConfigurationManager(t.TempDir())
	err := cm.ValidateConfig(&models.WorkspaceConfig{
		WorkspaceID:           "",
		DefaultTimeCommitment: "2h",
		DefaultDuration:       MaxDuration + 1,
		LogLevel:              "loud",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"workspace.id", "defaults.time_commitment", "defaults.duration", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
	if err := cm.ValidateConfig(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

// Property: any duration in range with a known log level validates.
func TestValidateConfig_ValidDurations(t *testing.T) {
	cm := NewConfigurationManager(".")
	rapid.Check(t, func(t *rapid.T) {
		cfg := DefaultConfig()
		cfg.DefaultDuration = rapid.IntRange(1, MaxDuration).Draw(t, "duration")
		cfg.LogLevel = rapid.SampledFrom([]string{"debug", "info", "warn", "error"}).Draw(t, "level")
		if err := cm.ValidateConfig(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
