package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultClimbConfig()) {
		t.Errorf("embedded YAML and DefaultClimbConfig differ:\nyaml:    %+v\nbuiltin: %+v", cfg, DefaultClimbConfig())
	}
}

func TestParseRejectsEmptyDocument(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no bytes", ""},
		{"whitespace", "\n  \n"},
		{"comment only", "# nothing here\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrEmptyConfig) {
				t.Errorf("Parse(%q) error = %v, expected ErrEmptyConfig", tt.data, err)
			}
		})
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
character:
  gravity: 0.5
powerups:
  super_jump:
    duration: 1500ms
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Character.Gravity != 0.5 {
		t.Errorf("gravity = %f, expected 0.5", cfg.Character.Gravity)
	}
	if cfg.PowerUps.SuperJump.Duration != 1500*time.Millisecond {
		t.Errorf("super jump duration = %v, expected 1.5s", cfg.PowerUps.SuperJump.Duration)
	}
	// Untouched keys keep their defaults
	if cfg.Character.JumpPower != -11 {
		t.Errorf("jump_power = %f, expected default -11", cfg.Character.JumpPower)
	}
	if cfg.PowerUps.Invincibility.Duration != 5*time.Second {
		t.Errorf("invincibility duration = %v, expected default 5s", cfg.PowerUps.Invincibility.Duration)
	}
}

func TestInputHoldTicks(t *testing.T) {
	tests := []struct {
		hold time.Duration
		rate int
		want int
	}{
		{500 * time.Millisecond, 60, 30},
		{500 * time.Millisecond, 30, 15},
		{500 * time.Millisecond, 0, 30},
		{100 * time.Millisecond, 25, 3},
		{time.Millisecond, 60, 1},
	}

	for _, tt := range tests {
		in := InputConfig{Hold: tt.hold}
		if got := in.HoldTicks(tt.rate); got != tt.want {
			t.Errorf("HoldTicks(%d) with hold %v = %d, expected %d", tt.rate, tt.hold, got, tt.want)
		}
	}
}

// Key repeat starts after roughly 250-600ms, so the default hold must bridge it.
func TestDefaultHoldOutlastsKeyRepeatDelay(t *testing.T) {
	if hold := DefaultClimbConfig().Input.Hold; hold < 500*time.Millisecond {
		t.Errorf("default hold = %v, expected at least 500ms", hold)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero viewport", "viewport:\n  width: 0\n"},
		{"upward jump power", "character:\n  jump_power: 5\n"},
		{"chance above one", "enemies:\n  spawn_chance: 1.5\n"},
		{"unknown clock", "timing:\n  clock: sundial\n"},
		{"no weights", "platforms:\n  normal: {weight: 0}\n  bouncy: {weight: 0}\n  breaking: {weight: 0}\n  moving: {weight: 0}\n"},
		{"zero duration", "powerups:\n  invincibility:\n    duration: 0s\n"},
		{"zero hold", "input:\n  hold: 0s\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("character: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadClimbCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  lead: 250\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadClimb(path)
	if err != nil {
		t.Fatalf("LoadClimb failed: %v", err)
	}
	if cfg.Camera.Lead != 250 {
		t.Errorf("camera lead = %f, expected 250", cfg.Camera.Lead)
	}
	if Resolve(path) != path {
		t.Errorf("Resolve(%q) = %q", path, Resolve(path))
	}
}

func TestLoadClimbMissingCustomPath(t *testing.T) {
	cfg, err := LoadClimb(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("missing explicit config should be an error")
	}
	// Callers may still run with the returned defaults
	if cfg.Viewport.Width != 600 {
		t.Errorf("fallback config should be the default, got width %f", cfg.Viewport.Width)
	}
}

func TestApplyClimbPreset(t *testing.T) {
	cfg := DefaultClimbConfig()
	ApplyClimbPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%f", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyClimbPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyClimbPreset(&cfg, "")
	if !reflect.DeepEqual(before, cfg) {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("easy should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse as empty")
	}
}
