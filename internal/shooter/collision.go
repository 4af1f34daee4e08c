package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// detectCollisions removes every bullet and enemy that overlap a counterpart.
// Each entity is removed at most once no matter how many pairs it is part of.
func (g *Game) detectCollisions() {
	if len(g.bullets) == 0 || len(g.enemies) == 0 {
		return
	}

	hitBullets := make([]bool, len(g.bullets))
	hitEnemies := make([]bool, len(g.enemies))
	for bi, b := range g.bullets {
		br := g.bulletRect(b)
		for ei, e := range g.enemies {
			if br.Overlaps(g.enemyRect(e)) {
				hitBullets[bi] = true
				hitEnemies[ei] = true
			}
		}
	}

	enemies := g.enemies[:0]
	for i, e := range g.enemies {
		if hitEnemies[i] {
			g.score++
			g.emit(core.EventEnemyKilled, g.score, "")
			continue
		}
		enemies = append(enemies, e)
	}
	g.enemies = enemies

	bullets := g.bullets[:0]
	for i, b := range g.bullets {
		if hitBullets[i] {
			g.bulletsOnScreen--
			continue
		}
		bullets = append(bullets, b)
	}
	g.bullets = bullets
}

// PlayerHit reports whether the player overlaps any enemy. It has no side
// effects.
func (g *Game) PlayerHit() bool {
	pr := g.playerRect()
	for _, e := range g.enemies {
		if pr.Overlaps(g.enemyRect(e)) {
			return true
		}
	}
	return false
}

// handleCoinCollisions collects every coin the player touches.
func (g *Game) handleCoinCollisions() {
	pr := g.playerRect()
	kept := g.coins[:0]
	for _, c := range g.coins {
		if pr.Overlaps(g.coinRect(c)) {
			g.score += g.cfg.Coins.Score
			g.emit(core.EventCoinCollected, g.cfg.Coins.Score, "")
			continue
		}
		kept = append(kept, c)
	}
	g.coins = kept
}
