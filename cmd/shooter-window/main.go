// shooter-window plays Square Shooter in a native window.
//
// Usage:
//
//	shooter-window [--seed N] [--fps N] [--config path] [--difficulty preset]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/window"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter-window",
	Short: "Play Square Shooter in a window",
	Long: `Open an 800x600 window and play.

Controls:
  W/A/S/D, arrows - Move
  H/J/K/L         - Shoot left/down/up/right
  Esc             - Menu (shop)
  1/2/3           - Buy bullets / remove enemies / gamble score
  Space           - Close menu, or restart after losing or winning
  Q               - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter-window",
		Level:           level,
	})

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.ApplyShooterPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("game started", "seed", seed, "difficulty", preset)

	return window.Run(shooter.New(cfg), core.RuntimeConfig{TickRate: flagFPS, Seed: seed}, logger)
}
