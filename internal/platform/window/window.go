// Package window hosts the shooter in a native window with Ebitengine,
// drawing the world at its own 800x600 resolution.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// Movement repeats while a key is held, in ticks.
const (
	repeatDelay    = 12
	repeatInterval = 2
)

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x18, 0xff}
	colorPlayer     = color.RGBA{0xe0, 0x40, 0x40, 0xff}
	colorEnemy      = color.RGBA{0x40, 0x70, 0xe0, 0xff}
	colorBullet     = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	colorCoin       = color.RGBA{0xf0, 0xd0, 0x30, 0xff}
)

type binding struct {
	keys   []ebiten.Key
	cmd    core.Command
	repeat bool
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, core.CommandMoveUp, true},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, core.CommandMoveDown, true},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, core.CommandMoveLeft, true},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, core.CommandMoveRight, true},
	{[]ebiten.Key{ebiten.KeyK}, core.CommandShootUp, false},
	{[]ebiten.Key{ebiten.KeyJ}, core.CommandShootDown, false},
	{[]ebiten.Key{ebiten.KeyH}, core.CommandShootLeft, false},
	{[]ebiten.Key{ebiten.KeyL}, core.CommandShootRight, false},
	{[]ebiten.Key{ebiten.KeyEscape}, core.CommandToggleMenu, false},
	{[]ebiten.Key{ebiten.Key1, ebiten.KeyNumpad1}, core.CommandBuyBullets, false},
	{[]ebiten.Key{ebiten.Key2, ebiten.KeyNumpad2}, core.CommandBuyRemoveEnemies, false},
	{[]ebiten.Key{ebiten.Key3, ebiten.KeyNumpad3}, core.CommandBuyScoreBoost, false},
	{[]ebiten.Key{ebiten.KeyQ}, core.CommandQuit, false},
}

// Game adapts a shooter.Game to ebiten.Game.
type Game struct {
	game   *shooter.Game
	logger *log.Logger
	state  core.GameState
	width  int
	height int
}

// New resets game and wraps it for Ebitengine. A nil logger discards events.
func New(game *shooter.Game, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(cfg)

	wc := game.Config().Window
	return &Game{
		game:   game,
		logger: logger,
		state:  game.State(),
		width:  int(wc.Width),
		height: int(wc.Height),
	}
}

// Update applies this frame's key presses and runs one simulation tick.
func (g *Game) Update() error {
	for _, b := range bindings {
		if g.pressed(b) {
			g.apply(b.cmd)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.state.InMenu {
			g.apply(core.CommandToggleMenu)
		} else {
			g.apply(core.CommandRestart)
		}
	}

	if g.game.Quitting() {
		g.logger.Info("quit", "score", g.state.Score, "level", g.state.Level)
		return ebiten.Termination
	}

	res := g.game.Update()
	g.state = res.State
	g.logEvents(res.Events)
	return nil
}

func (g *Game) pressed(b binding) bool {
	for _, k := range b.keys {
		if !b.repeat {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
			continue
		}
		d := inpututil.KeyPressDuration(k)
		if d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0) {
			return true
		}
	}
	return false
}

func (g *Game) apply(cmd core.Command) {
	res := g.game.Apply(cmd)
	g.state = res.State
	g.logEvents(res.Events)
}

func (g *Game) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventPlayerLost, core.EventRestart, core.EventLevelStarted, core.EventPurchase:
			g.logger.Info(ev.Kind.String(), "value", ev.Value, "detail", ev.Detail, "score", g.state.Score)
		case core.EventSpawnFallback:
			g.logger.Warn(ev.Kind.String(), "enemies", ev.Value, "detail", ev.Detail)
		default:
			g.logger.Debug(ev.Kind.String(), "value", ev.Value)
		}
	}
}

// Draw renders the world, the HUD and the menu.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if g.state.InMenu {
		g.drawMenu(screen)
		return
	}

	snap := g.game.Snapshot()
	for _, r := range snap.Coins {
		fillRect(screen, r, colorCoin)
	}
	for _, r := range snap.Enemies {
		fillRect(screen, r, colorEnemy)
	}
	for _, r := range snap.Bullets {
		fillRect(screen, r, colorBullet)
	}
	fillRect(screen, snap.Player, colorPlayer)

	ebitenutil.DebugPrintAt(screen, g.game.HUDText(), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), g.width-80, 10)

	if msg := g.game.OverlayText(); msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, g.width/2-len(msg)*3, g.height/2)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	x, y := g.width/2-150, g.height/2-80
	ebitenutil.DebugPrintAt(screen, "MENU", x, y)
	ebitenutil.DebugPrintAt(screen, g.game.HUDText(), x, y+20)
	if g.state.GameOver {
		ebitenutil.DebugPrintAt(screen, "you lost, press space after closing the menu", x, y+36)
	}
	for i, item := range g.game.ShopItems() {
		line := fmt.Sprintf("[%s] %s - %d", item.Key, item.Description, item.Cost)
		ebitenutil.DebugPrintAt(screen, line, x, y+60+i*16)
	}
	ebitenutil.DebugPrintAt(screen, "WASD move  HJKL shoot  Esc/Space resume  Q quit", x, y+120)
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Layout keeps the logical screen at the configured window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *shooter.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	g := New(game, cfg, logger)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(g.width, g.height)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	return ebiten.RunGame(g)
}
