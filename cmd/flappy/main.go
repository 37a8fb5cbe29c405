// flappy is Flappy Bird XP: a side-scrolling one-button game for the
// terminal and the desktop.
//
// Usage:
//
//	flappy play              - Play in the terminal (Bubble Tea)
//	flappy term              - Play in the terminal (tcell, raw loop)
//	flappy window            - Play in a desktop window
//	flappy frontends         - List available frontends
//	flappy tuning            - Print the effective tuning constants
//	flappy sim               - Run a headless, deterministic session
//
// Global flags:
//
//	--seed <value>       - RNG seed for gap heights (default: time based)
//	--asset <path>       - Bird bitmap (default: assets/bird.bmp)
//	--log-file <path>    - Log destination (default: ~/.flappy/flappy.log)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-xp/internal/assets"
	"github.com/vovakirdan/flappy-xp/internal/games/flappy"
	"github.com/vovakirdan/flappy-xp/internal/logging"

	// Import frontends to register them
	_ "github.com/vovakirdan/flappy-xp/internal/platform/term"
	_ "github.com/vovakirdan/flappy-xp/internal/platform/tui"
	_ "github.com/vovakirdan/flappy-xp/internal/platform/window"
)

var (
	// Global flags
	flagSeed     int64
	flagAsset    string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	if errors.Is(err, assets.ErrResourceLoad) {
		fmt.Fprintln(os.Stderr, errorBox(flappy.Title+" | Error", err.Error()))
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird XP - fly through the pipes",
	Long: `Flappy Bird XP is a side-scrolling one-button game. The bird falls under
gravity; flap to climb and pass through the gaps between the pipes.

Available commands:
  play       - Play in the terminal (Bubble Tea)
  term       - Play in the terminal (tcell)
  window     - Play in a desktop window
  frontends  - Show all available frontends
  tuning     - Print the tuning constants
  sim        - Headless deterministic run

Examples:
  flappy play
  flappy window --seed 42
  flappy sim --seed 7 --ticks 2000 --flap-every 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagAsset, "asset", assets.DefaultSpritePath, "Path to the bird bitmap")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultPath, "Path to the log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(tuningCmd)
	rootCmd.AddCommand(simCmd)
}
