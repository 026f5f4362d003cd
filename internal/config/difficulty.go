package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset accepts "", "easy", "normal" or "hard". Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset adjusts lives, enemy pace and power-up cadence. It returns
// a modified copy; normal leaves the tables untouched.
func ApplyPreset(cfg TowerRushConfig, preset DifficultyPreset) TowerRushConfig {
	switch preset {
	case DifficultyEasy:
		cfg.Player.BaseLives += 2
		cfg.Enemies.BaseSpeed *= 0.85
		cfg.PowerUps.IntervalMS = cfg.PowerUps.IntervalMS * 4 / 5
	case DifficultyHard:
		cfg.Player.BaseLives = max(1, cfg.Player.BaseLives-1)
		cfg.Enemies.BaseSpeed *= 1.2
		cfg.Boss.BaseSpeed *= 1.15
		cfg.PowerUps.IntervalMS = cfg.PowerUps.IntervalMS * 6 / 5
	}
	return cfg
}
