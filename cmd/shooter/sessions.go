package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagSessionsUser  string
	flagSessionsLimit int
	flagSessionsPlain bool
	flagPruneDays     int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show the SSH session journal",
	Long: `Display recent SSH sessions recorded by 'shooter serve'.

Examples:
  shooter sessions
  shooter sessions --user alice
  shooter sessions --plain --limit 50
  shooter sessions --prune 30`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&flagSessionsUser, "user", "", "Only show sessions of this user")
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 100, "Maximum number of sessions to show")
	sessionsCmd.Flags().BoolVar(&flagSessionsPlain, "plain", false, "Print a plain table instead of the interactive view")
	sessionsCmd.Flags().IntVar(&flagPruneDays, "prune", 0, "Delete closed sessions older than this many days")
}

func runSessions(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening session journal: %w", err)
	}
	defer store.Close()

	if flagPruneDays > 0 {
		n, err := store.PruneBefore(time.Now().AddDate(0, 0, -flagPruneDays))
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d sessions\n", n)
		return nil
	}

	var sessions []storage.Session
	if flagSessionsUser != "" {
		sessions, err = store.UserSessions(flagSessionsUser, flagSessionsLimit)
	} else {
		sessions, err = store.RecentSessions(flagSessionsLimit)
	}
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	if flagSessionsPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printSessions(sessions, stats)
		return nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunSessions(sessions, stats, width, height)
}

func printSessions(sessions []storage.Session, stats *storage.Stats) {
	fmt.Printf("SSH Sessions - %d total, %d users\n", stats.Sessions, stats.UniqueUsers)
	fmt.Println("----------------------------------------------------------------")

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	for _, s := range sessions {
		duration := s.Duration.Round(time.Second).String()
		if s.Open() {
			duration = "open"
		}
		fmt.Printf("%-14s  %-22s  %s  %s\n",
			s.User,
			s.Remote,
			s.StartedAt.Local().Format("Jan 02 15:04"),
			duration,
		)
	}
}
