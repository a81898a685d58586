package balance

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree: whichever
	// the loader ends up using, the game plays the same.
	var cfg Config
	if err := yaml.Unmarshal(defaultBalanceYAML, &cfg); err != nil {
		t.Fatalf("Embedded YAML failed to parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Embedded YAML diverges from Default():\n%+v\nvs\n%+v", cfg, Default())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero stress time", func(c *Config) { c.Decay.StressSaturateSecs = 0 }},
		{"negative famine time", func(c *Config) { c.Decay.FamineSaturateSecs = -5 }},
		{"variation at 1", func(c *Config) { c.Decay.VariationRange = 1 }},
		{"negative variation", func(c *Config) { c.Decay.VariationRange = -0.1 }},
		{"inverted peck range", func(c *Config) { c.Actions.PeckMoneyMin = 10; c.Actions.PeckMoneyMax = 5 }},
		{"win rate above 1", func(c *Config) { c.Minigame.BaseWinRate = 1.5 }},
		{"zero freedom epsilon", func(c *Config) { c.Economy.FreedomEpsilon = 0 }},
		{"zero ambient interval", func(c *Config) { c.Dialogue.AmbientIntervalSecs = 0 }},
	}

	for _, c := range cases {
		cfg := Default()
		c.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error, got nil", c.name)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "balance.yaml")

	content := `
decay:
  stress_saturate_secs: 240
  famine_saturate_secs: 60
  health_decay_secs: 10
  vigor_refill_secs: 1.5
  variation_range: 0.1
actions:
  peck_money_min: 3
  peck_money_max: 9
gamble:
  jackpot_chance: 3
  jackpot_amount: 100000
minigame:
  base_win_rate: 0.5
  win_money_min: 15
  win_money_max: 45
economy:
  freedom_target: 48750
  freedom_epsilon: 0.001
  start_money: 100
dialogue:
  ambient_interval_secs: 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Decay.StressSaturateSecs != 240 {
		t.Errorf("Custom value not loaded: got %v", cfg.Decay.StressSaturateSecs)
	}
	if cfg.Economy.StartMoney != 100 {
		t.Errorf("Expected start money 100, got %v", cfg.Economy.StartMoney)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for a missing custom path")
	}
}
