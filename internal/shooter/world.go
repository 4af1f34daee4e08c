package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Phase is the explicit game phase. "Won" is not a phase: it is the
// momentary Playing state with an empty enemy collection, see LevelCleared.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Player is the controlled square. X, Y is the top-left corner.
type Player struct {
	X, Y float64
}

// Enemy homes toward the player in discrete steps.
type Enemy struct {
	X, Y     float64
	LastStep time.Time // When this enemy last moved
}

// Bullet travels in a straight line at a fixed velocity.
type Bullet struct {
	X, Y   float64
	DX, DY float64 // Displacement per tick
}

// Coin is a time-limited score pickup.
type Coin struct {
	X, Y      float64
	SpawnedAt time.Time
}

func (g *Game) playerRect() core.Rect {
	return core.Square(g.player.X, g.player.Y, g.cfg.Player.Size)
}

func (g *Game) enemyRect(e Enemy) core.Rect {
	return core.Square(e.X, e.Y, g.cfg.Enemies.Size)
}

func (g *Game) bulletRect(b Bullet) core.Rect {
	return core.Square(b.X, b.Y, g.cfg.Bullets.Size)
}

func (g *Game) coinRect(c Coin) core.Rect {
	return core.Square(c.X, c.Y, g.cfg.Coins.Size)
}

// centerPlayer puts the player's corner at the window centre.
func (g *Game) centerPlayer() {
	g.player = Player{
		X: g.cfg.Window.Width / 2,
		Y: g.cfg.Window.Height / 2,
	}
}
