package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-xp/internal/assets"
	"github.com/vovakirdan/flappy-xp/internal/config"
	"github.com/vovakirdan/flappy-xp/internal/core"
	"github.com/vovakirdan/flappy-xp/internal/games/flappy"
	"github.com/vovakirdan/flappy-xp/internal/logging"
	"github.com/vovakirdan/flappy-xp/internal/registry"
)

// openLogger opens the log file from the global flags.
// The returned closer must be called when the command ends.
func openLogger() (*log.Logger, io.Closer, error) {
	f, err := logging.OpenFile(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(f, flagLogLevel)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// resolveSeed returns the seed flag, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newEnv loads the tuning and the bird sprite and builds a fresh game.
// A missing or unreadable sprite is returned as an *assets.LoadError.
func newEnv(logger *log.Logger) (registry.Env, error) {
	tuning, err := config.Load()
	if err != nil {
		return registry.Env{}, err
	}

	sprite, err := assets.LoadSprite(flagAsset)
	if err != nil {
		return registry.Env{}, err
	}

	renderer, err := flappy.NewRenderer(tuning, sprite)
	if err != nil {
		return registry.Env{}, err
	}

	rc := core.DefaultConfig()
	rc.Seed = resolveSeed()
	if tuning.Loop.FrameDelay > 0 {
		rc.FrameDelay = tuning.Loop.FrameDelay
	}
	logger.Info("session ready", "seed", rc.Seed, "delay", rc.FrameDelay, "asset", flagAsset)

	return registry.Env{
		Game:       flappy.NewSeeded(tuning, rc.Seed),
		Renderer:   renderer,
		Logger:     logger,
		FrameDelay: rc.FrameDelay,
	}, nil
}

// describeState renders a one-line summary of a game for logs and the sim.
func describeState(g *flappy.Game) string {
	b := g.Bird()
	s := g.State()
	tilt := flappy.TiltDegrees(b.Velocity, g.Tuning().Physics.TiltReference)
	return fmt.Sprintf("phase=%s score=%d ticks=%d bird_y=%.1f velocity=%.1f tilt=%.0f",
		g.Phase(), s.Score, g.Ticks(), b.Y, b.Velocity, tilt)
}
