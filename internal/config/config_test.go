package config

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestZoneDefaultsToIST(t *testing.T) {
	cfg := DefaultConfig()

	utc := time.Date(2026, time.January, 28, 15, 30, 0, 0, time.UTC)
	if got := utc.In(cfg.Zone()).Hour(); got != 21 {
		t.Errorf("hour in default zone = %d, want 21 (IST)", got)
	}
}

func TestZoneOverride(t *testing.T) {
	offset := 0
	cfg := &Config{UTCOffsetMinutes: &offset}

	utc := time.Date(2026, time.January, 28, 15, 30, 0, 0, time.UTC)
	if got := utc.In(cfg.Zone()).Hour(); got != 15 {
		t.Errorf("hour in override zone = %d, want 15", got)
	}
}

func TestConfigUnmarshal(t *testing.T) {
	raw := `
default_mode: NetBanking
default_status: Processing
snippets:
  - label: Greeting
    text: Hi, thanks for waiting.
  - category: Closing
    label: Wrap-up
    text: Is there anything else I can help with?
`

	var cfg Config
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if cfg.DefaultMode != "NetBanking" {
		t.Errorf("DefaultMode = %q", cfg.DefaultMode)
	}
	if len(cfg.Snippets) != 2 {
		t.Fatalf("snippets = %d, want 2", len(cfg.Snippets))
	}
	if cfg.Snippets[1].Category != "Closing" {
		t.Errorf("snippet category = %q", cfg.Snippets[1].Category)
	}
}
