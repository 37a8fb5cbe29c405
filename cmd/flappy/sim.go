package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-xp/internal/config"
	"github.com/vovakirdan/flappy-xp/internal/core"
	"github.com/vovakirdan/flappy-xp/internal/games/flappy"
	"github.com/vovakirdan/flappy-xp/internal/logging"
	"github.com/vovakirdan/flappy-xp/internal/loop"
)

var (
	flagTicks       int
	flagFlapEvery   int
	flagAutoRestart bool
	flagSimVerbose  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless, deterministic session",
	Long: `Runs the game loop without a display. A flap is injected every
--flap-every ticks; with --restart a new run starts right after game over.
The same seed and flags always produce the same result.

Examples:
  flappy sim --seed 7
  flappy sim --seed 7 --ticks 5000 --flap-every 19 --restart`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tuning, err := config.Load()
		if err != nil {
			return err
		}

		logger := logging.Discard()
		if flagSimVerbose {
			logger, err = logging.New(cmd.ErrOrStderr(), flagLogLevel)
			if err != nil {
				return err
			}
		}

		opts := simOptions{
			Seed:        resolveSeed(),
			Ticks:       flagTicks,
			FlapEvery:   flagFlapEvery,
			AutoRestart: flagAutoRestart,
		}
		report := runSim(tuning, opts, logger)
		report.Print(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of loop iterations")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 18, "Flap every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagAutoRestart, "restart", false, "Restart right after game over")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log loop events to stderr")
}

type simOptions struct {
	Seed        int64
	Ticks       int
	FlapEvery   int
	AutoRestart bool
}

type simReport struct {
	Seed      int64
	Frames    int
	Runs      int
	BestScore int
	Final     string
}

// runSim drives the loop with scripted input and no presentation.
func runSim(t config.Tuning, opts simOptions, logger *log.Logger) simReport {
	game := flappy.NewSeeded(t, opts.Seed)
	queue := core.NewInputQueue()

	report := simReport{Seed: opts.Seed, Runs: 1}
	track := loop.PresenterFunc(func(g *flappy.Game) {
		if s := g.State().Score; s > report.BestScore {
			report.BestScore = s
		}
	})
	clock := loop.New(game, queue, track, loop.WithLogger(logger))

	for i := 0; i < opts.Ticks; i++ {
		if game.State().Over {
			if !opts.AutoRestart {
				break
			}
			queue.Push(core.ActionRestart)
			report.Runs++
		}
		if opts.FlapEvery > 0 && i%opts.FlapEvery == 0 {
			queue.Push(core.ActionFlap)
		}
		clock.Frame()
	}

	report.Frames = clock.Frames()
	report.Final = describeState(game)
	return report
}

// Print writes the report in a stable, line-oriented format.
func (r simReport) Print(w io.Writer) {
	fmt.Fprintf(w, "seed:   %d\n", r.Seed)
	fmt.Fprintf(w, "frames: %d\n", r.Frames)
	fmt.Fprintf(w, "runs:   %d\n", r.Runs)
	fmt.Fprintf(w, "best:   %d\n", r.BestScore)
	fmt.Fprintf(w, "final:  %s\n", r.Final)
}
