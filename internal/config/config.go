// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the shooter.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// ShooterConfig contains every tunable of the simulation.
type ShooterConfig struct {
	Window  WindowConfig `yaml:"window"`
	Player  PlayerConfig `yaml:"player"`
	Enemies EnemyConfig  `yaml:"enemies"`
	Bullets BulletConfig `yaml:"bullets"`
	Coins   CoinConfig   `yaml:"coins"`
	Shop    ShopConfig   `yaml:"shop"`
}

// WindowConfig defines the playfield in window-space units.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // Units per movement command
}

// EnemyConfig defines enemy squares, their pursuit and level scaling.
type EnemyConfig struct {
	Size             float64       `yaml:"size"`
	Speed            float64       `yaml:"speed"`              // Units per step, per axis
	StepInterval     time.Duration `yaml:"step_interval"`      // Minimum time between steps of one enemy
	PerLevel         int           `yaml:"per_level"`          // Enemies spawned = per_level * level
	SafeRadius       float64       `yaml:"safe_radius"`        // Minimum spawn distance from the player
	MaxSpawnAttempts int           `yaml:"max_spawn_attempts"` // Rejection-sampling cap
}

// BulletConfig defines bullets and ammunition.
type BulletConfig struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`         // Units per tick
	MaxOnScreen int     `yaml:"max_on_screen"` // Simultaneous bullet cap
	LevelBonus  int     `yaml:"level_bonus"`   // Ammo granted on top of the enemy count
}

// CoinConfig defines coins. A coin lives exactly one spawn interval.
type CoinConfig struct {
	Size          float64       `yaml:"size"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	Score         int           `yaml:"score"`
}

// ShopConfig defines shop prices and effects.
type ShopConfig struct {
	ItemCost         int     `yaml:"item_cost"`
	BulletsBonus     int     `yaml:"bullets_bonus"`
	RemoveEnemies    int     `yaml:"remove_enemies"`
	ScoreBoostChance float64 `yaml:"score_boost_chance"` // Probability the gamble doubles the score
}

// Validate checks that the configuration describes a playable game.
func (c ShooterConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window must have positive size, got %vx%v", c.Window.Width, c.Window.Height)
	check(c.Player.Size > 0 && c.Player.Size < min(c.Window.Width, c.Window.Height), "player.size %v does not fit the window", c.Player.Size)
	check(c.Player.Speed > 0, "player.speed must be positive")
	check(c.Enemies.Size > 0 && c.Enemies.Size < min(c.Window.Width, c.Window.Height), "enemies.size %v does not fit the window", c.Enemies.Size)
	check(c.Enemies.Speed > 0, "enemies.speed must be positive")
	check(c.Enemies.StepInterval > 0, "enemies.step_interval must be positive")
	check(c.Enemies.PerLevel > 0, "enemies.per_level must be positive")
	check(c.Enemies.SafeRadius >= 0, "enemies.safe_radius must not be negative")
	check(c.Enemies.MaxSpawnAttempts > 0, "enemies.max_spawn_attempts must be positive")
	check(c.Bullets.Size > 0, "bullets.size must be positive")
	check(c.Bullets.Speed > 0, "bullets.speed must be positive")
	check(c.Bullets.MaxOnScreen > 0, "bullets.max_on_screen must be positive")
	check(c.Bullets.LevelBonus >= 0, "bullets.level_bonus must not be negative")
	check(c.Coins.Size > 0 && c.Coins.Size < min(c.Window.Width, c.Window.Height), "coins.size %v does not fit the window", c.Coins.Size)
	check(c.Coins.SpawnInterval > 0, "coins.spawn_interval must be positive")
	check(c.Shop.ItemCost >= 0, "shop.item_cost must not be negative")
	check(c.Shop.BulletsBonus >= 0, "shop.bullets_bonus must not be negative")
	check(c.Shop.RemoveEnemies >= 0, "shop.remove_enemies must not be negative")
	check(c.Shop.ScoreBoostChance >= 0 && c.Shop.ScoreBoostChance <= 1, "shop.score_boost_chance must be within [0, 1]")

	if c.Enemies.Size < min(c.Window.Width, c.Window.Height) {
		reach := c.SpawnReach()
		check(c.Enemies.SafeRadius < reach,
			"enemies.safe_radius %v leaves no spawn area (must be below %.1f)", c.Enemies.SafeRadius, reach)
	}

	return errors.Join(errs...)
}

// SpawnReach is the distance from the centre of the enemy spawn area to its
// corners. A safe radius below it guarantees that, wherever the player
// stands, some spawn position satisfies the radius.
func (c ShooterConfig) SpawnReach() float64 {
	w := c.Window.Width - c.Enemies.Size
	h := c.Window.Height - c.Enemies.Size
	return math.Hypot(w/2, h/2)
}
