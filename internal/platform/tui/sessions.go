package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// SessionsKeyMap defines the key bindings for the session journal view.
type SessionsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultSessionsKeyMap returns default key bindings.
func DefaultSessionsKeyMap() SessionsKeyMap {
	return SessionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// SessionsModel shows the SSH session journal in a table.
type SessionsModel struct {
	sessions []storage.Session
	stats    *storage.Stats
	table    table.Model
	help     help.Model
	keys     SessionsKeyMap
	width    int
	height   int
	quitting bool
}

// NewSessionsModel creates the journal view for the given entries.
func NewSessionsModel(sessions []storage.Session, stats *storage.Stats, width, height int) SessionsModel {
	m := SessionsModel{
		sessions: sessions,
		stats:    stats,
		help:     help.New(),
		keys:     DefaultSessionsKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.table.SetRows(sessionRows(sessions))
	return m
}

// createTable creates a new table sized to the terminal.
func (m *SessionsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "User", Width: 14},
		{Title: "Remote", Width: 22},
		{Title: "Started", Width: 14},
		{Title: "Duration", Width: 10},
		{Title: "End", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// sessionRows formats journal entries as table rows.
func sessionRows(sessions []storage.Session) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		duration := s.Duration.Round(time.Second).String()
		end := s.EndReason
		if s.Open() {
			duration = "-"
			end = "open"
		}
		rows[i] = table.Row{
			s.User,
			s.Remote,
			s.StartedAt.Local().Format("Jan 02 15:04"),
			duration,
			end,
		}
	}
	return rows
}

// Init initializes the model.
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal view.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(sessionRows(m.sessions))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m SessionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(menuTitleStyle.Render("SSH SESSIONS"))
	b.WriteString("\n")
	if m.stats != nil {
		b.WriteString(menuStatusStyle.Render(fmt.Sprintf("%d sessions, %d users, %s played",
			m.stats.Sessions, m.stats.UniqueUsers, m.stats.TotalDuration.Round(time.Second))))
	}
	b.WriteString("\n\n")

	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No sessions recorded yet.\nStart a server with `shooter serve`."))
	} else {
		b.WriteString(menuBoxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunSessions shows the journal until the user quits.
func RunSessions(sessions []storage.Session, stats *storage.Stats, width, height int) error {
	p := tea.NewProgram(
		NewSessionsModel(sessions, stats, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
