// Package flappy implements the Flappy Bird XP simulation: a bird falls under
// gravity, flaps upward on input and must pass through the gaps of two
// scrolling pipes. The package is pure game logic; frontends drive it through
// Handle and Step and draw it through a Renderer.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-xp/internal/config"
	"github.com/vovakirdan/flappy-xp/internal/core"
)

// Title is the display name used by frontends.
const Title = "Flappy Bird XP"

// Phase is the state of the run.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game is one play session: the bird, the pipe pair and the session state.
type Game struct {
	tuning    config.Tuning
	bird      Bird
	pipes     *Pipes
	state     core.GameState
	tickCount int // Ticks since the current run started
}

// New creates a running game. Gap heights are drawn from rng.
func New(t config.Tuning, rng Rand) *Game {
	return &Game{
		tuning: t,
		bird:   NewBird(t),
		pipes:  NewPipes(t, rng),
	}
}

// NewSeeded creates a running game whose gap heights come from a math/rand
// source seeded with seed.
func NewSeeded(t config.Tuning, seed int64) *Game {
	return New(t, rand.New(rand.NewSource(seed)))
}

// Handle applies one input action and reports whether it changed anything.
// Flap only works while running, restart only after game over; every other
// action is ignored.
func (g *Game) Handle(a core.Action) bool {
	switch a {
	case core.ActionFlap:
		return g.Flap()
	case core.ActionRestart:
		return g.Restart()
	default:
		return false
	}
}

// Flap gives the bird its upward impulse while the run is live.
func (g *Game) Flap() bool {
	if g.state.Over {
		return false
	}
	g.bird.Flap(g.tuning.Physics)
	return true
}

// Restart resets the bird, both pipes, the score and the game-over flag in a
// single transition. It has no effect while the run is live.
func (g *Game) Restart() bool {
	if !g.state.Over {
		return false
	}
	g.bird = NewBird(g.tuning)
	g.pipes.Reset()
	g.state = core.GameState{}
	g.tickCount = 0
	return true
}

// Step advances the simulation by one fixed tick. After game over it is a
// no-op until Restart.
func (g *Game) Step() core.StepResult {
	if g.state.Over {
		return core.StepResult{State: g.state}
	}

	g.tickCount++

	grounded := g.bird.Update(g.tuning.Physics, g.tuning.GroundLine())
	recycled := g.pipes.Update(&g.state)
	hit := g.pipes.Collides(g.bird)

	if grounded || hit {
		g.state.Over = true
	}

	return core.StepResult{
		State:    g.state,
		Recycled: recycled,
		Ended:    g.state.Over,
	}
}

// State returns the session state.
func (g *Game) State() core.GameState {
	return g.state
}

// Phase returns the current phase of the run.
func (g *Game) Phase() Phase {
	if g.state.Over {
		return PhaseGameOver
	}
	return PhaseRunning
}

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird {
	return g.bird
}

// Pipes returns a copy of both pipes.
func (g *Game) Pipes() [PipeCount]Pipe {
	return g.pipes.All()
}

// Tuning returns the constants the game was built with.
func (g *Game) Tuning() config.Tuning {
	return g.tuning
}

// Ticks returns the number of ticks simulated in the current run.
func (g *Game) Ticks() int {
	return g.tickCount
}
