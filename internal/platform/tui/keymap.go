package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	MoveUp     key.Binding
	MoveDown   key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	ShootUp    key.Binding
	ShootDown  key.Binding
	ShootLeft  key.Binding
	ShootRight key.Binding
	Menu       key.Binding
	Space      key.Binding // Closes the menu, otherwise restarts
	Buy1       key.Binding
	Buy2       key.Binding
	Buy3       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveUp, k.ShootUp, k.Menu, k.Space, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveUp, k.MoveDown, k.MoveLeft, k.MoveRight},
		{k.ShootUp, k.ShootDown, k.ShootLeft, k.ShootRight},
		{k.Buy1, k.Buy2, k.Buy3},
		{k.Menu, k.Space, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: WASD (or arrows) moves,
// HJKL shoots.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		MoveUp: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("wasd", "move"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/down", "move down"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/left", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/right", "move right"),
		),
		ShootUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("hjkl", "shoot"),
		),
		ShootDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "shoot down"),
		),
		ShootLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "shoot left"),
		),
		ShootRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "shoot right"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "resume/restart"),
		),
		Buy1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "buy bullets"),
		),
		Buy2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "buy enemy removal"),
		),
		Buy3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "gamble score"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key message into a game command given the current
// state. Returns core.CommandNone for unbound keys.
func (k KeyMap) Command(msg tea.KeyMsg, state core.GameState) core.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return core.CommandQuit
	case key.Matches(msg, k.Menu):
		return core.CommandToggleMenu
	case key.Matches(msg, k.Space):
		if state.InMenu {
			return core.CommandToggleMenu
		}
		return core.CommandRestart
	case key.Matches(msg, k.Buy1):
		return core.CommandBuyBullets
	case key.Matches(msg, k.Buy2):
		return core.CommandBuyRemoveEnemies
	case key.Matches(msg, k.Buy3):
		return core.CommandBuyScoreBoost
	case key.Matches(msg, k.MoveUp):
		return core.CommandMoveUp
	case key.Matches(msg, k.MoveDown):
		return core.CommandMoveDown
	case key.Matches(msg, k.MoveLeft):
		return core.CommandMoveLeft
	case key.Matches(msg, k.MoveRight):
		return core.CommandMoveRight
	case key.Matches(msg, k.ShootUp):
		return core.CommandShootUp
	case key.Matches(msg, k.ShootDown):
		return core.CommandShootDown
	case key.Matches(msg, k.ShootLeft):
		return core.CommandShootLeft
	case key.Matches(msg, k.ShootRight):
		return core.CommandShootRight
	}
	return core.CommandNone
}
