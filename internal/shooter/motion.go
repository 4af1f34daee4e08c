package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// moveEnemies steps every enemy whose own cooldown has elapsed one fixed
// step toward the player on each axis.
func (g *Game) moveEnemies() {
	now := g.clock.Now()
	speed := g.cfg.Enemies.Speed

	for i := range g.enemies {
		e := &g.enemies[i]
		if now.Sub(e.LastStep) < g.cfg.Enemies.StepInterval {
			continue
		}
		e.X += core.Sign(g.player.X-e.X) * speed
		e.Y += core.Sign(g.player.Y-e.Y) * speed
		e.LastStep = now
	}
}

// updateBullets removes bullets that were already outside the window before
// this tick and displaces the rest by their velocity.
func (g *Game) updateBullets() {
	w, h := g.cfg.Window.Width, g.cfg.Window.Height

	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if b.X < 0 || b.X > w || b.Y < 0 || b.Y > h {
			g.bulletsOnScreen--
			continue
		}
		b.X += b.DX
		b.Y += b.DY
		kept = append(kept, b)
	}
	g.bullets = kept
}
