package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	menuStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	menuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	menuLostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// newShopTable creates the table listing the shop items.
func newShopTable() table.Model {
	columns := []table.Column{
		{Title: "Key", Width: 5},
		{Title: "Item", Width: 44},
		{Title: "Cost", Width: 6},
		{Title: "", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(4),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// shopRows builds the table rows for the current score.
func shopRows(items []shooter.ShopEntry, score int) []table.Row {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		status := "too poor"
		if score >= it.Cost {
			status = "available"
		}
		rows[i] = table.Row{
			"[" + it.Key + "]",
			it.Description,
			fmt.Sprintf("%d", it.Cost),
			status,
		}
	}
	return rows
}

// menuView renders the pause menu with the shop.
func (m Model) menuView() string {
	var b strings.Builder

	b.WriteString(menuTitleStyle.Render(strings.ToUpper(m.game.Title())))
	b.WriteString("\n\n")
	b.WriteString(menuStatusStyle.Render(m.game.HUDText()))
	b.WriteString("\n")
	if m.state.GameOver {
		b.WriteString(menuLostStyle.Render("you lost, press space after closing the menu"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("Shop\n")
	b.WriteString(menuBoxStyle.Render(m.shop.View()))
	b.WriteString("\n\n")
	full := m.help
	full.ShowAll = true
	b.WriteString(helpStyle.Render(full.View(m.keys)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
