package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal. The game opens on the menu;
press Space to begin.

Controls:
  W/A/S/D, arrows - Move
  H/J/K/L         - Shoot left/down/up/right
  Esc             - Menu (shop)
  1/2/3           - Buy bullets / remove enemies / gamble score
  Space           - Close menu, or restart after losing or winning
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Fewer, slower enemies and more ammunition
  normal - The configured values
  hard   - More, faster enemies and less ammunition

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --seed 42 --log-file shooter.log --log-level debug
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	shooterCfg, err := loadShooterConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger("shooter", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game := shooter.New(shooterCfg)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
