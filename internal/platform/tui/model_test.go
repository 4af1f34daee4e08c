package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()
	playing := core.GameState{}
	inMenu := core.GameState{InMenu: true}

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		state core.GameState
		want  core.Command
	}{
		{"w moves up", runeKey("w"), playing, core.CommandMoveUp},
		{"arrow moves up", tea.KeyMsg{Type: tea.KeyUp}, playing, core.CommandMoveUp},
		{"a moves left", runeKey("a"), playing, core.CommandMoveLeft},
		{"s moves down", runeKey("s"), playing, core.CommandMoveDown},
		{"d moves right", runeKey("d"), playing, core.CommandMoveRight},
		{"h shoots left", runeKey("h"), playing, core.CommandShootLeft},
		{"j shoots down", runeKey("j"), playing, core.CommandShootDown},
		{"k shoots up", runeKey("k"), playing, core.CommandShootUp},
		{"l shoots right", runeKey("l"), playing, core.CommandShootRight},
		{"esc toggles menu", tea.KeyMsg{Type: tea.KeyEsc}, playing, core.CommandToggleMenu},
		{"space in menu resumes", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, inMenu, core.CommandToggleMenu},
		{"space in game restarts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, playing, core.CommandRestart},
		{"1 buys bullets", runeKey("1"), inMenu, core.CommandBuyBullets},
		{"2 buys removal", runeKey("2"), inMenu, core.CommandBuyRemoveEnemies},
		{"3 gambles", runeKey("3"), inMenu, core.CommandBuyScoreBoost},
		{"q quits", runeKey("q"), playing, core.CommandQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, playing, core.CommandQuit},
		{"unbound", runeKey("z"), playing, core.CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Command(tc.msg, tc.state); got != tc.want {
				t.Errorf("Command(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	game := shooter.New(config.DefaultShooterConfig())
	return NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}, nil)
}

func TestModelStartsInMenu(t *testing.T) {
	m := newTestModel(t)

	if !m.State().InMenu {
		t.Fatal("model should start with the menu open")
	}
	view := m.View()
	if !strings.Contains(view, "SQUARE SHOOTER") {
		t.Error("menu view should show the title")
	}
	if !strings.Contains(view, "[1]") || !strings.Contains(view, "+20 bullets") {
		t.Error("menu view should list the shop")
	}
}

func TestModelSpaceStartsGame(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = updated.(Model)

	if m.State().InMenu {
		t.Fatal("space should close the menu")
	}
	view := m.View()
	if !strings.Contains(view, "Score: 0") || !strings.Contains(view, "FPS:") {
		t.Errorf("game view should show the HUD, got:\n%s", view)
	}
}

func TestModelTickKeepsTicking(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(runeKey(" "))
	m = updated.(Model)

	now := time.Now()
	var cmd tea.Cmd
	for i := range 3 {
		updated, cmd = m.Update(TickMsg(now.Add(time.Duration(i) * 600 * time.Millisecond)))
		m = updated.(Model)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.FPS() == 0 {
		t.Error("FPS should be measured after a second of ticks")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(runeKey("q"))
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsWorld(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(runeKey(" "))
	m = updated.(Model)
	updated, _ = m.Update(runeKey("w"))
	m = updated.(Model)
	before := m.game.Snapshot()

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	after := m.game.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("resizing should not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestShopRows(t *testing.T) {
	game := shooter.New(config.DefaultShooterConfig())
	rows := shopRows(game.ShopItems(), 150)

	if len(rows) != 3 {
		t.Fatalf("rows = %d, expected 3", len(rows))
	}
	if rows[0][0] != "[1]" || rows[0][2] != "100" || rows[0][3] != "available" {
		t.Errorf("unexpected first row: %v", rows[0])
	}

	rows = shopRows(game.ShopItems(), 10)
	if rows[2][3] != "too poor" {
		t.Errorf("unexpected status: %v", rows[2])
	}
}

func TestSessionRows(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sessionRows([]storage.Session{
		{User: "alice", Remote: "r1", StartedAt: start, EndedAt: start.Add(time.Minute), Duration: time.Minute, EndReason: "closed"},
		{User: "bob", Remote: "r2", StartedAt: start},
	})

	if rows[0][3] != "1m0s" || rows[0][4] != "closed" {
		t.Errorf("unexpected closed row: %v", rows[0])
	}
	if rows[1][3] != "-" || rows[1][4] != "open" {
		t.Errorf("unexpected open row: %v", rows[1])
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawText(0, 0, "hi")
	scr.SetColored(3, 0, '$', core.ColorYellow)

	out := RenderScreen(scr)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "$") {
		t.Errorf("rendered output lost content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestEndReason(t *testing.T) {
	quit := shooter.New(config.DefaultShooterConfig())
	quit.Reset(core.RuntimeConfig{Seed: 1})
	quit.Apply(core.CommandQuit)

	running := shooter.New(config.DefaultShooterConfig())
	running.Reset(core.RuntimeConfig{Seed: 1})

	tests := []struct {
		name string
		game *shooter.Game
		want string
	}{
		{"player quit", quit, "quit"},
		{"connection closed", running, "closed"},
		{"no game", nil, "closed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := endReason(tc.game); got != tc.want {
				t.Errorf("endReason() = %q, expected %q", got, tc.want)
			}
		})
	}
}
