package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Lost reports whether the player has been caught, including while the menu
// was opened over a lost game.
func (g *Game) Lost() bool {
	return g.phase == PhaseLost || (g.phase == PhaseMenu && g.resume == PhaseLost)
}

// LevelCleared reports the momentary "won" condition: playing with no
// enemies left. The next tick starts the following level.
func (g *Game) LevelCleared() bool {
	return g.phase == PhasePlaying && len(g.enemies) == 0
}

// acceptsActions gates movement and shooting.
func (g *Game) acceptsActions() bool {
	return g.phase == PhasePlaying && len(g.enemies) > 0
}

// acceptsShopping gates purchases: allowed while a level is running, either
// in play or from a menu opened over it.
func (g *Game) acceptsShopping() bool {
	switch g.phase {
	case PhasePlaying:
		return len(g.enemies) > 0
	case PhaseMenu:
		return g.resume == PhasePlaying && len(g.enemies) > 0
	default:
		return false
	}
}

// ToggleMenu opens the menu, or closes it and returns to the phase it was
// opened from.
func (g *Game) ToggleMenu() {
	if g.phase == PhaseMenu {
		g.phase = g.resume
	} else {
		g.resume = g.phase
		g.phase = PhaseMenu
	}
	g.emit(core.EventMenuToggled, 0, g.phase.String())
}

// Restart begins a new run at level 1. Only accepted after a loss or while
// the level is cleared.
func (g *Game) Restart() bool {
	if g.phase != PhaseLost && !g.LevelCleared() {
		return false
	}

	g.newRun()
	g.phase = PhasePlaying
	g.emit(core.EventRestart, g.level, "")
	return true
}

// evaluatePhase runs the transitions that follow a simulation pass.
func (g *Game) evaluatePhase() {
	if g.phase != PhasePlaying {
		return
	}

	if g.PlayerHit() {
		g.phase = PhaseLost
		g.emit(core.EventPlayerLost, g.score, "")
		return
	}

	if len(g.enemies) == 0 {
		g.level++
		g.startLevel()
	}
}
