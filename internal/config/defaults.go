package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration. It mirrors
// defaults/shooter.yaml and is the fallback if the embedded file is broken.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:  10,
			Speed: 5,
		},
		Enemies: EnemyConfig{
			Size:             10,
			Speed:            2.5,
			StepInterval:     100 * time.Millisecond,
			PerLevel:         10,
			SafeRadius:       100,
			MaxSpawnAttempts: 1000,
		},
		Bullets: BulletConfig{
			Size:        5,
			Speed:       0.5,
			MaxOnScreen: 5,
			LevelBonus:  10,
		},
		Coins: CoinConfig{
			Size:          10,
			SpawnInterval: 5 * time.Second,
			Score:         5,
		},
		Shop: ShopConfig{
			ItemCost:         100,
			BulletsBonus:     20,
			RemoveEnemies:    5,
			ScoreBoostChance: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
