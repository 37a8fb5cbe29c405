// Package loop drives the game: every iteration drains pending input, advances
// the simulation by one fixed step, asks for a redraw and then sleeps for the
// frame delay. The delay approximates 60 Hz; drift is acceptable.
package loop

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-xp/internal/core"
	"github.com/vovakirdan/flappy-xp/internal/games/flappy"
	"github.com/vovakirdan/flappy-xp/internal/logging"
)

// Source yields pending input actions without blocking.
// Poll returns false once nothing is pending for this iteration.
type Source interface {
	Poll() (core.Action, bool)
}

// Presenter is asked to redraw after every iteration.
type Presenter interface {
	Present(g *flappy.Game)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(g *flappy.Game)

// Present calls f(g).
func (f PresenterFunc) Present(g *flappy.Game) {
	f(g)
}

// Clock owns the iteration order for one game.
type Clock struct {
	game   *flappy.Game
	source Source
	out    Presenter
	delay  time.Duration
	sleep  func(time.Duration)
	logger *log.Logger
	frames int
}

// Option configures a Clock.
type Option func(*Clock)

// WithFrameDelay sets the pause after each iteration.
func WithFrameDelay(d time.Duration) Option {
	return func(c *Clock) {
		c.delay = d
	}
}

// WithSleep replaces time.Sleep, mainly for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Clock) {
		c.sleep = fn
	}
}

// WithLogger sets the logger for run transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Clock) {
		c.logger = l
	}
}

// New creates a clock for game reading from source and presenting to out.
func New(game *flappy.Game, source Source, out Presenter, opts ...Option) *Clock {
	c := &Clock{
		game:   game,
		source: source,
		out:    out,
		delay:  core.DefaultFrameDelay,
		sleep:  time.Sleep,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Frame runs one iteration without the trailing delay.
// It returns false as soon as a quit action is seen; nothing after the quit
// is processed.
func (c *Clock) Frame() bool {
	for {
		a, ok := c.source.Poll()
		if !ok {
			break
		}
		if a == core.ActionQuit {
			c.logger.Info("quit requested", "frames", c.frames, "score", c.game.State().Score)
			return false
		}
		c.apply(a)
	}

	result := c.game.Step()
	if result.Recycled > 0 {
		c.logger.Debug("pipe recycled", "count", result.Recycled, "score", result.State.Score)
	}
	if result.Ended {
		c.logger.Info("run over", "score", result.State.Score, "ticks", c.game.Ticks())
	}

	c.out.Present(c.game)
	c.frames++
	return true
}

// apply hands one action to the game and logs restarts.
func (c *Clock) apply(a core.Action) {
	if !c.game.Handle(a) {
		c.logger.Debug("input ignored", "action", a, "phase", c.game.Phase())
		return
	}
	if a == core.ActionRestart {
		c.logger.Info("run restarted")
	}
}

// Run iterates until a quit action arrives or ctx is done.
func (c *Clock) Run(ctx context.Context) error {
	c.logger.Info("loop started", "delay", c.delay)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !c.Frame() {
			return nil
		}
		c.sleep(c.delay)
	}
}

// Frames returns the number of completed iterations.
func (c *Clock) Frames() int {
	return c.frames
}

// Game returns the game driven by this clock.
func (c *Clock) Game() *flappy.Game {
	return c.game
}
