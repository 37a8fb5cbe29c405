package flappy

import (
	"github.com/vovakirdan/flappy-xp/internal/config"
	"github.com/vovakirdan/flappy-xp/internal/core"
)

// PipeCount is the fixed number of pipes on the field.
const PipeCount = 2

// Rand is the source of gap heights. *rand.Rand satisfies it; tests inject
// scripted sequences.
type Rand interface {
	Intn(n int) int
}

// Pipe is a vertical obstacle with a gap for the bird to pass through.
type Pipe struct {
	X      int // Left edge
	GapTop int // Y where the gap starts
}

// NewPipe creates a pipe at x with a random gap.
func NewPipe(x int, t config.Tuning, rng Rand) Pipe {
	return Pipe{X: x, GapTop: randomGapTop(t, rng)}
}

// randomGapTop draws uniformly from the inclusive gap range.
func randomGapTop(t config.Tuning, rng Rand) int {
	lo, hi := t.GapTopRange()
	return lo + rng.Intn(hi-lo+1)
}

// Update scrolls the pipe left by one tick. A pipe that has left the screen
// entirely is moved back to the right edge with a fresh gap, and Update
// reports the recycle.
func (p *Pipe) Update(t config.Tuning, rng Rand) (recycled bool) {
	p.X -= t.Pipes.ScrollSpeed
	if p.X+t.Pipes.Width < 0 {
		p.X = t.Screen.Width
		p.GapTop = randomGapTop(t, rng)
		return true
	}
	return false
}

// Collides reports whether the bird's hit-box overlaps the pipe's column
// while sticking out above or below the gap.
func (p Pipe) Collides(b Bird, t config.Tuning) bool {
	column := core.NewRect(p.X, 0, t.Pipes.Width, t.Screen.GroundY())
	if !b.Rect(t).Intersects(column) {
		return false
	}

	gapBottom := float64(p.GapTop + t.Pipes.Gap)
	return b.Y < float64(p.GapTop) || b.Y+float64(t.Bird.Height) > gapBottom
}

// TopRect returns the section above the gap.
func (p Pipe) TopRect(t config.Tuning) core.Rect {
	return core.NewRect(p.X, 0, t.Pipes.Width, p.GapTop)
}

// BottomRect returns the section between the gap and the ground band.
func (p Pipe) BottomRect(t config.Tuning) core.Rect {
	bottomY := p.GapTop + t.Pipes.Gap
	return core.NewRect(p.X, bottomY, t.Pipes.Width, t.Screen.GroundY()-bottomY)
}

// StartOffsets returns the staggered X positions of a fresh pair of pipes:
// the right edge, and half a screen plus half a pipe beyond it.
func StartOffsets(t config.Tuning) [PipeCount]int {
	w := t.Screen.Width
	return [PipeCount]int{w, w + w/2 + t.Pipes.Width/2}
}

// Pipes owns the fixed pair of pipes. Pipes are never added or removed,
// only mutated in place.
type Pipes struct {
	list   [PipeCount]Pipe
	tuning config.Tuning
	rng    Rand
}

// NewPipes creates both pipes at their start offsets.
func NewPipes(t config.Tuning, rng Rand) *Pipes {
	ps := &Pipes{tuning: t, rng: rng}
	ps.Reset()
	return ps
}

// Reset puts both pipes back at their start offsets with fresh gaps.
func (ps *Pipes) Reset() {
	for i, x := range StartOffsets(ps.tuning) {
		ps.list[i] = NewPipe(x, ps.tuning, ps.rng)
	}
}

// Update scrolls both pipes and adds one point to state for every recycle.
// Returns the number of recycles this tick.
func (ps *Pipes) Update(state *core.GameState) int {
	recycled := 0
	for i := range ps.list {
		if ps.list[i].Update(ps.tuning, ps.rng) {
			recycled++
		}
	}
	state.Score += recycled
	return recycled
}

// Collides reports whether the bird hits either pipe.
func (ps *Pipes) Collides(b Bird) bool {
	for _, p := range ps.list {
		if p.Collides(b, ps.tuning) {
			return true
		}
	}
	return false
}

// All returns a copy of both pipes in creation order.
func (ps *Pipes) All() [PipeCount]Pipe {
	return ps.list
}
