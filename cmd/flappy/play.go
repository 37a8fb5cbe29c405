package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-xp/internal/platform/tui"
	termfe "github.com/vovakirdan/flappy-xp/internal/platform/term"
	"github.com/vovakirdan/flappy-xp/internal/platform/window"
	"github.com/vovakirdan/flappy-xp/internal/registry"
)

const controlsHelp = `Controls:
  Space/Up/W  - Flap
  Enter       - Restart (after game over)
  Q/Esc       - Quit`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Flappy Bird XP in the terminal with a Bubble Tea program.
The 640x360 playfield is scaled to the terminal, two pixels per cell.

` + controlsHelp + `
  Ctrl+S      - Save a PNG screenshot to ~/.flappy/screenshots

Examples:
  flappy play
  flappy play --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFrontend(cmd.Context(), tui.ID, true)
	},
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal with a raw tcell loop",
	Long: `Play Flappy Bird XP on a raw tcell screen. Each iteration drains input,
steps the game, redraws and then sleeps for the frame delay.

` + controlsHelp,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFrontend(cmd.Context(), termfe.ID, true)
	},
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Flappy Bird XP in a 640x360 desktop window.

` + controlsHelp,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFrontend(cmd.Context(), window.ID, false)
	},
}

// runFrontend builds a session and hands it to the registered frontend.
func runFrontend(ctx context.Context, id string, needsTTY bool) error {
	if needsTTY {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return fmt.Errorf("%s: stdout is not a terminal (try 'flappy sim')", id)
		}
	}

	fe, err := registry.Create(id)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	env, err := newEnv(logger)
	if err != nil {
		logger.Error("startup failed", "err", err)
		return err
	}

	if needsTTY {
		if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
			logger.Debug("terminal size", "cols", w, "rows", h)
		}
	}

	logger.Info("starting frontend", "id", fe.ID())
	err = fe.Run(ctx, env)
	logger.Info("session ended", "state", describeState(env.Game), "err", err)
	return err
}
