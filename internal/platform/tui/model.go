package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// fpsMeter counts frames and publishes a rate once per second.
type fpsMeter struct {
	frames int
	since  time.Time
	fps    int
}

func (f *fpsMeter) frame(now time.Time) {
	if f.since.IsZero() {
		f.since = now
	}
	f.frames++
	if elapsed := now.Sub(f.since); elapsed >= time.Second {
		f.fps = int(float64(f.frames) / elapsed.Seconds())
		f.frames = 0
		f.since = now
	}
}

// Model is the Bubble Tea model hosting one shooter game.
type Model struct {
	game     *shooter.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	shop     table.Model
	logger   *log.Logger
	state    core.GameState
	fps      *fpsMeter
	width    int
	height   int
	quitting bool
}

// NewModel creates a Bubble Tea model for game and resets it. A nil logger
// discards events.
func NewModel(game *shooter.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		shop:   newShopTable(),
		logger: logger,
		state:  game.State(),
		fps:    &fpsMeter{},
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.refreshShop()
	logger.Info("game started", "seed", cfg.Seed, "tick_rate", cfg.TickRate)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey applies the bound command immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keys.Command(msg, m.state)
	if cmd == core.CommandNone {
		return m, nil
	}

	res := m.game.Apply(cmd)
	m.state = res.State
	m.logEvents(res.Events)
	m.refreshShop()

	if m.game.Quitting() {
		m.logger.Info("quit", "score", m.state.Score, "level", m.state.Level)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the world intact and only resizes the view.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation pass.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	res := m.game.Update()
	m.state = res.State
	m.logEvents(res.Events)
	m.fps.frame(now)
	if len(res.Events) > 0 {
		m.refreshShop()
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) refreshShop() {
	m.shop.SetRows(shopRows(m.game.ShopItems(), m.state.Score))
}

func (m Model) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventPlayerLost, core.EventRestart, core.EventLevelStarted, core.EventPurchase:
			m.logger.Info(ev.Kind.String(), "value", ev.Value, "detail", ev.Detail, "score", m.state.Score)
		case core.EventSpawnFallback:
			m.logger.Warn(ev.Kind.String(), "enemies", ev.Value, "detail", ev.Detail)
		default:
			m.logger.Debug(ev.Kind.String(), "value", ev.Value)
		}
	}
}

// FPS returns the last measured frame rate.
func (m Model) FPS() int {
	return m.fps.fps
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state.InMenu {
		return m.menuView()
	}

	m.game.Render(m.screen)
	fps := fmt.Sprintf("FPS: %d", m.fps.fps)
	m.screen.DrawText(m.screen.Width()-len(fps)-1, 0, fps)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game *shooter.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
