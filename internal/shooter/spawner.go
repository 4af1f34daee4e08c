package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// spawnEnemy places one enemy uniformly in the window, redrawing while it
// lands inside the safe radius around the player. After MaxSpawnAttempts
// draws the farthest candidate seen is used instead.
func (g *Game) spawnEnemy() {
	size := g.cfg.Enemies.Size
	maxX := g.cfg.Window.Width - size
	maxY := g.cfg.Window.Height - size

	var best Enemy
	bestDist := -1.0
	for attempt := 0; attempt < g.cfg.Enemies.MaxSpawnAttempts; attempt++ {
		x := uniform(g.rng, maxX)
		y := uniform(g.rng, maxY)
		dist := core.Distance(x, y, g.player.X, g.player.Y)
		if dist >= g.cfg.Enemies.SafeRadius {
			g.enemies = append(g.enemies, Enemy{X: x, Y: y, LastStep: g.clock.Now()})
			return
		}
		if dist > bestDist {
			best = Enemy{X: x, Y: y}
			bestDist = dist
		}
	}

	best.LastStep = g.clock.Now()
	g.enemies = append(g.enemies, best)
	g.emit(core.EventSpawnFallback, len(g.enemies), fmt.Sprintf("distance %.1f", bestDist))
}

// startLevel repopulates enemies for the current level and refills ammo.
func (g *Game) startLevel() {
	g.enemies = g.enemies[:0]

	count := g.cfg.Enemies.PerLevel * g.level
	for range count {
		g.spawnEnemy()
	}
	g.bulletsLimit = count + g.cfg.Bullets.LevelBonus

	g.emit(core.EventLevelStarted, g.level, fmt.Sprintf("%d enemies", count))
}

// spawnCoin places a coin anywhere in the window and restarts the spawn timer.
func (g *Game) spawnCoin() {
	size := g.cfg.Coins.Size
	now := g.clock.Now()
	c := Coin{
		X:         uniform(g.rng, g.cfg.Window.Width-size),
		Y:         uniform(g.rng, g.cfg.Window.Height-size),
		SpawnedAt: now,
	}
	g.coins = append(g.coins, c)
	g.lastCoinSpawn = now

	g.emit(core.EventCoinSpawned, len(g.coins), "")
}

// updateCoins spawns a coin once per interval and expires coins older than
// one interval.
func (g *Game) updateCoins() {
	interval := g.cfg.Coins.SpawnInterval
	now := g.clock.Now()

	if now.Sub(g.lastCoinSpawn) >= interval {
		g.spawnCoin()
	}

	kept := g.coins[:0]
	for _, c := range g.coins {
		if now.Sub(c.SpawnedAt) >= interval {
			g.emit(core.EventCoinExpired, 0, "")
			continue
		}
		kept = append(kept, c)
	}
	g.coins = kept
}
