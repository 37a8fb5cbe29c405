package flappy

import (
	"github.com/vovakirdan/flappy-xp/internal/config"
	"github.com/vovakirdan/flappy-xp/internal/core"
)

// Bird is the player entity. It never moves horizontally; only Y and
// Velocity change, once per tick.
type Bird struct {
	Y        float64 // Top of the hit-box, screen pixels
	Velocity float64 // Pixels per tick, positive = down
}

// NewBird returns a bird at the start height with zero velocity.
func NewBird(t config.Tuning) Bird {
	return Bird{Y: t.Bird.StartY}
}

// Flap replaces the current velocity with the upward impulse, whatever it was.
// Ignoring flaps after game over is the caller's job.
func (b *Bird) Flap(p config.PhysicsConfig) {
	b.Velocity = p.FlapImpulse
}

// Update applies one tick of gravity and moves the bird.
// Velocity is capped at the terminal fall speed. The bird is clamped to
// [0, groundLine]: touching the ceiling stops upward motion, crossing the
// ground line reports grounded so the caller can end the run.
func (b *Bird) Update(p config.PhysicsConfig, groundLine float64) (grounded bool) {
	b.Velocity += p.Gravity
	if b.Velocity > p.MaxFallSpeed {
		b.Velocity = p.MaxFallSpeed
	}
	b.Y += b.Velocity

	if b.Y > groundLine {
		b.Y = groundLine
		grounded = true
	}
	if b.Y < 0 {
		b.Y = 0
		b.Velocity = 0
	}
	return grounded
}

// Rect returns the bird's hit-box at its fixed column.
func (b Bird) Rect(t config.Tuning) core.Rect {
	return core.NewRect(t.Bird.X, int(b.Y), t.Bird.Width, t.Bird.Height)
}
