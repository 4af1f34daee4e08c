package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded configuration untouched.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.PerLevel = max(1, cfg.Enemies.PerLevel*7/10)
		cfg.Enemies.StepInterval = cfg.Enemies.StepInterval * 3 / 2
		cfg.Bullets.LevelBonus += 10
		cfg.Bullets.MaxOnScreen += 2
	case DifficultyHard:
		cfg.Enemies.PerLevel = cfg.Enemies.PerLevel * 3 / 2
		cfg.Enemies.StepInterval = max(10*time.Millisecond, cfg.Enemies.StepInterval*3/4)
		cfg.Bullets.LevelBonus = max(0, cfg.Bullets.LevelBonus-5)
		cfg.Coins.SpawnInterval = cfg.Coins.SpawnInterval * 4 / 5
	}
}
