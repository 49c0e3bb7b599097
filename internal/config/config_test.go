package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load with defaults: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\", nil) = %+v, want defaults %+v", cfg, Default())
	}
	if err := cfg.Scheduler.Params().Validate(); err != nil {
		t.Errorf("default scheduler params invalid: %v", err)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
scheduler:
  min_ease: 1.5
  disable_jitter: true
goal:
  available_minutes: 45
deck:
  dir: /decks
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scheduler.MinEase != 1.5 {
		t.Errorf("MinEase = %v, want 1.5", cfg.Scheduler.MinEase)
	}
	if !cfg.Scheduler.DisableJitter {
		t.Error("DisableJitter should be true")
	}
	if cfg.Goal.AvailableMinutes != 45 {
		t.Errorf("AvailableMinutes = %v, want 45", cfg.Goal.AvailableMinutes)
	}
	if cfg.Deck.Dir != "/decks" {
		t.Errorf("Deck.Dir = %q, want /decks", cfg.Deck.Dir)
	}
	// Untouched keys keep their defaults.
	if cfg.Scheduler.SecondInterval != 6 {
		t.Errorf("SecondInterval = %d, want default 6", cfg.Scheduler.SecondInterval)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("goal:\n  available_minutes: 45\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("VOCABSRS_GOAL__AVAILABLE_MINUTES", "60")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Goal.AvailableMinutes != 60 {
		t.Errorf("AvailableMinutes = %v, want env value 60", cfg.Goal.AvailableMinutes)
	}
}

func TestLoadFlagsHighestPrecedence(t *testing.T) {
	t.Setenv("VOCABSRS_DECK__DIR", "/from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("deck.dir", ".", "")
	if err := flags.Parse([]string{"--deck.dir=/from-flag"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Deck.Dir != "/from-flag" {
		t.Errorf("Deck.Dir = %q, want flag value", cfg.Deck.Dir)
	}
}

func TestLoadUnchangedFlagKeepsEnvValue(t *testing.T) {
	t.Setenv("VOCABSRS_DECK__DIR", "/from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("deck.dir", ".", "")
	if err := flags.Parse(nil); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Deck.Dir != "/from-env" {
		t.Errorf("Deck.Dir = %q, want env value to survive unchanged flag", cfg.Deck.Dir)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("VOCABSRS_GOAL__AVAILABLE_MINUTES", "-5")

	if _, err := Load("", nil); err == nil {
		t.Error("Load should reject a negative time budget")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Error("Load should fail for a missing config file")
	}
}
