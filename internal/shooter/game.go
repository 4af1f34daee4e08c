// Package shooter implements the square shooter simulation: the player
// evades and shoots homing enemy squares, collects expiring coins and spends
// score in a shop. The package is host-agnostic; hosts call Update once per
// frame and Apply for each discrete command.
package shooter

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Game holds the complete world state for one run.
type Game struct {
	cfg   config.ShooterConfig
	clock Clock
	rng   Random

	// Fixed sources are kept across Reset instead of being reseeded.
	fixedRandom bool

	player  Player
	enemies []Enemy
	bullets []Bullet
	coins   []Coin

	score           int
	level           int
	bulletsLimit    int // Remaining shots for the level
	bulletsOnScreen int
	lastCoinSpawn   time.Time

	phase    Phase
	resume   Phase // Restored when the menu is closed
	quitting bool
	tick     uint64

	events []core.Event // Collected during the current Update/Apply call
}

// Option customizes a Game.
type Option func(*Game)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithRandom replaces the seeded RNG. Reset will not reseed it.
func WithRandom(r Random) Option {
	return func(g *Game) {
		g.rng = r
		g.fixedRandom = true
	}
}

// New creates a game with the given tunables. Call Reset before use.
func New(cfg config.ShooterConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		clock: SystemClock{},
		rng:   rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Square Shooter"
}

// Config returns the tunables the game runs with.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// Reset initializes the game at level 1 with the menu showing.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.fixedRandom {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.events = nil
	g.quitting = false
	g.tick = 0
	g.newRun()
	g.phase = PhaseMenu
	g.resume = PhasePlaying
}

// newRun restores a fresh run at level 1.
func (g *Game) newRun() {
	g.centerPlayer()
	g.score = 0
	g.level = 1
	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.coins = g.coins[:0]
	g.bulletsOnScreen = 0
	g.lastCoinSpawn = g.clock.Now()
	g.startLevel()
}

// Update advances the simulation by one tick. Nothing moves while the menu
// is showing; after a loss the world keeps running until a restart.
func (g *Game) Update() core.StepResult {
	g.events = nil

	if g.phase == PhaseMenu {
		return g.result()
	}

	g.tick++

	g.moveEnemies()
	g.updateBullets()
	g.detectCollisions()
	g.updateCoins()
	g.handleCoinCollisions()

	g.evaluatePhase()

	return g.result()
}

// Apply executes a single command immediately.
func (g *Game) Apply(cmd core.Command) core.StepResult {
	g.events = nil

	switch cmd {
	case core.CommandToggleMenu:
		g.ToggleMenu()
	case core.CommandRestart:
		g.Restart()
	case core.CommandQuit:
		g.quitting = true
	case core.CommandBuyBullets:
		g.Buy(ItemBullets)
	case core.CommandBuyRemoveEnemies:
		g.Buy(ItemRemoveEnemies)
	case core.CommandBuyScoreBoost:
		g.Buy(ItemScoreBoost)
	default:
		if dir, ok := cmd.MoveDirection(); ok {
			g.Move(dir)
		} else if dir, ok := cmd.ShootDirection(); ok {
			g.Shoot(dir)
		}
	}

	return g.result()
}

// Move steps the player one unit of speed in dir, clamped to the window.
// Ignored unless actions are accepted.
func (g *Game) Move(dir core.Direction) bool {
	if !g.acceptsActions() {
		return false
	}

	dx, dy := dir.Delta()
	speed := g.cfg.Player.Speed
	size := g.cfg.Player.Size
	if dx != 0 {
		g.player.X = core.ClampF(g.player.X+dx*speed, 0, g.cfg.Window.Width-size)
	}
	if dy != 0 {
		g.player.Y = core.ClampF(g.player.Y+dy*speed, 0, g.cfg.Window.Height-size)
	}
	return true
}

// Shoot fires a bullet from the player's centre. Ignored without ammunition,
// at the on-screen cap, or unless actions are accepted.
func (g *Game) Shoot(dir core.Direction) bool {
	if !g.acceptsActions() {
		return false
	}
	if g.bulletsLimit <= 0 || g.bulletsOnScreen >= g.cfg.Bullets.MaxOnScreen {
		return false
	}

	dx, dy := dir.Delta()
	speed := g.cfg.Bullets.Speed
	cx, cy := g.playerRect().Center()
	half := g.cfg.Bullets.Size / 2
	g.bullets = append(g.bullets, Bullet{
		X:  cx - half,
		Y:  cy - half,
		DX: dx * speed,
		DY: dy * speed,
	})
	g.bulletsLimit--
	g.bulletsOnScreen++
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.score,
		Level:        g.level,
		Bullets:      g.bulletsLimit,
		InMenu:       g.phase == PhaseMenu,
		GameOver:     g.Lost(),
		LevelCleared: g.LevelCleared(),
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Quitting reports whether a quit command was received.
func (g *Game) Quitting() bool {
	return g.quitting
}

func (g *Game) emit(kind core.EventKind, value int, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value, Detail: detail})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}
