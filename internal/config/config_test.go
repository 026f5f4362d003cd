package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	parsed, err := Parse(defaultTowerRushYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(parsed, DefaultTowerRushConfig()) {
		t.Errorf("embedded YAML and DefaultTowerRushConfig disagree:\n%+v\n%+v", parsed, DefaultTowerRushConfig())
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := DefaultTowerRushConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestVariantUnlockFloors(t *testing.T) {
	cfg := DefaultTowerRushConfig()
	expected := map[string]int{"raider": 1, "brute": 3, "warden": 5, "speedster": 4, "artillery": 6}
	for name, floor := range expected {
		v, ok := cfg.Enemies.Variant(name)
		if !ok {
			t.Fatalf("variant %q missing", name)
		}
		if v.UnlockFloor != floor {
			t.Errorf("%s unlocks at %d, expected %d", name, v.UnlockFloor, floor)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TowerRushConfig)
	}{
		{"zero arena", func(c *TowerRushConfig) { c.Arena.Width = 0 }},
		{"no variants", func(c *TowerRushConfig) { c.Enemies.Variants = nil }},
		{"ranged without profile", func(c *TowerRushConfig) { c.Enemies.Variants[4].Ranged = nil }},
		{"unknown behavior", func(c *TowerRushConfig) { c.Enemies.Variants[0].Behavior = "teleport" }},
		{"missing power-up", func(c *TowerRushConfig) { c.PowerUps.Kinds = c.PowerUps.Kinds[1:] }},
		{"missing upgrade", func(c *TowerRushConfig) { c.Meta.Upgrades = c.Meta.Upgrades[:5] }},
		{"zero boss interval", func(c *TowerRushConfig) { c.Floors.BossInterval = 0 }},
		{"negative floor delay", func(c *TowerRushConfig) { c.Floors.DelayMS = -1 }},
		{"negative power-up duration", func(c *TowerRushConfig) { c.PowerUps.DurationMS = -1 }},
		{"inverted wander range", func(c *TowerRushConfig) {
			c.Enemies.WanderMinSeconds, c.Enemies.WanderMaxSeconds = 2, 1
		}},
		{"negative wander min", func(c *TowerRushConfig) { c.Enemies.WanderMinSeconds = -0.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTowerRushConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  base_lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTowerRush(path)
	if err != nil {
		t.Fatalf("LoadTowerRush() error: %v", err)
	}
	if cfg.Player.BaseLives != 7 {
		t.Errorf("BaseLives = %d, expected 7", cfg.Player.BaseLives)
	}
	if cfg.Player.Speed != 240 {
		t.Errorf("unspecified keys should keep defaults, Speed = %v", cfg.Player.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadTowerRush(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("floors:\n  boss_interval: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTowerRush(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultTowerRushConfig())
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, DefaultTowerRushConfig()) {
		t.Error("marshalled config does not parse back to the same value")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultTowerRushConfig()

	easy := ApplyPreset(base, DifficultyEasy)
	if easy.Player.BaseLives != base.Player.BaseLives+2 {
		t.Errorf("easy lives = %d", easy.Player.BaseLives)
	}
	hard := ApplyPreset(base, DifficultyHard)
	if hard.Enemies.BaseSpeed <= base.Enemies.BaseSpeed {
		t.Error("hard should speed enemies up")
	}
	if normal := ApplyPreset(base, DifficultyNormal); !reflect.DeepEqual(normal, base) {
		t.Error("normal should not change the config")
	}
	if base.Player.BaseLives != 3 {
		t.Error("ApplyPreset must not mutate its input")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
