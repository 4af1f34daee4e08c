package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

const (
	runePlayer = '█'
	runeEnemy  = '■'
	runeBullet = '•'
	runeCoin   = '$'
)

// Render draws the world into dst. Row 0 holds the HUD; the remaining rows
// show the window scaled down to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == PhaseMenu {
		g.renderMenu(dst)
		return
	}

	g.renderHUD(dst)

	for _, c := range g.coins {
		g.fillWorldRect(dst, g.coinRect(c), runeCoin, core.ColorYellow)
	}
	for _, e := range g.enemies {
		g.fillWorldRect(dst, g.enemyRect(e), runeEnemy, core.ColorBlue)
	}
	for _, b := range g.bullets {
		g.fillWorldRect(dst, g.bulletRect(b), runeBullet, core.ColorWhite)
	}
	g.fillWorldRect(dst, g.playerRect(), runePlayer, core.ColorRed)

	g.renderOverlay(dst)
}

// HUDText is the status line shown above the playfield.
func (g *Game) HUDText() string {
	return fmt.Sprintf("Score: %d  Level: %d  Bullets: %d", g.score, g.level, g.bulletsLimit)
}

// OverlayText is the centred message for the current phase, if any.
func (g *Game) OverlayText() string {
	switch {
	case g.Lost():
		return "you lost, press space"
	case g.LevelCleared():
		return "You won!"
	default:
		return ""
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, g.HUDText())
}

func (g *Game) renderOverlay(dst *core.Screen) {
	msg := g.OverlayText()
	if msg == "" {
		return
	}
	color := core.ColorGreen
	if g.Lost() {
		color = core.ColorRed
	}
	y := dst.Height() / 2
	dst.DrawTextColored((dst.Width()-len(msg))/2, y, msg, color)
}

func (g *Game) renderMenu(dst *core.Screen) {
	items := g.ShopItems()
	lines := make([]string, len(items))
	width := 0
	for i, item := range items {
		lines[i] = fmt.Sprintf("[%s] %s - %d", item.Key, item.Description, item.Cost)
		width = max(width, len([]rune(lines[i])))
	}
	width += 4

	x := (dst.Width() - width) / 2
	y := dst.Height()/2 - 5
	dst.DrawTextCentered(y, "MENU")
	dst.DrawHLine(x, y+1, width, '─')
	dst.DrawTextCentered(y+2, g.HUDText())

	dst.DrawBox(x, y+3, width, len(lines)+2)
	for i, line := range lines {
		dst.DrawText(x+2, y+4+i, line)
	}
	dst.DrawTextCentered(y+len(lines)+6, "Esc/Space: resume  Q: quit")
}

// fillWorldRect maps a window-space rectangle onto the playfield rows and
// fills at least one cell. Rectangles with no corner inside the window are
// skipped.
func (g *Game) fillWorldRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	window := core.Rect{W: g.cfg.Window.Width, H: g.cfg.Window.Height}
	if !window.Contains(r.X, r.Y) && !window.Contains(r.Right(), r.Bottom()) {
		return
	}

	cols := dst.Width()
	rows := dst.Height() - 1
	if cols <= 0 || rows <= 0 {
		return
	}

	toCol := func(x float64) int { return int(x * float64(cols) / g.cfg.Window.Width) }
	toRow := func(y float64) int { return int(y * float64(rows) / g.cfg.Window.Height) }

	x0 := toCol(r.X)
	y0 := toRow(r.Y)
	x1 := max(x0+1, toCol(r.Right()))
	y1 := max(y0+1, toRow(r.Bottom()))

	x0 = core.Clamp(x0, 0, cols-1)
	y0 = core.Clamp(y0, 0, rows-1)
	x1 = core.Clamp(x1, x0+1, cols)
	y1 = core.Clamp(y1, y0+1, rows)

	dst.FillRect(x0, y0+1, x1-x0, y1-y0, ch, c)
}
