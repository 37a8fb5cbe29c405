package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load returns the tuning decoded from the embedded YAML document.
// If the document cannot be decoded the hard-coded defaults are returned.
func Load() (Tuning, error) {
	t, err := Parse(defaultTuningYAML)
	if err != nil {
		fallback := DefaultTuning()
		if verr := fallback.Validate(); verr != nil {
			return Tuning{}, fmt.Errorf("config: embedded tuning: %w", errors.Join(err, verr))
		}
		return fallback, nil
	}
	return t, nil
}

// Parse decodes and validates a tuning document.
func Parse(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Marshal encodes the tuning back to YAML.
func (t Tuning) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode tuning: %w", err)
	}
	return data, nil
}

// GroundLine returns the largest bird y that keeps the bird above the ground band.
func (t Tuning) GroundLine() float64 {
	return float64(t.Screen.GroundY() - t.Bird.Height)
}

// GapTopRange returns the inclusive range gap tops are drawn from.
func (t Tuning) GapTopRange() (lo, hi int) {
	return t.Pipes.Margin, t.Screen.Height - t.Pipes.Gap - t.Pipes.Margin
}

// Validate reports every field that would break the simulation.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(t.Screen.Width > 0, "screen.width must be positive, got %d", t.Screen.Width)
	check(t.Screen.Height > 0, "screen.height must be positive, got %d", t.Screen.Height)
	check(t.Screen.GroundHeight >= 0 && t.Screen.GroundHeight < t.Screen.Height,
		"screen.ground_height must be in [0, %d), got %d", t.Screen.Height, t.Screen.GroundHeight)

	check(t.Bird.Width > 0 && t.Bird.Height > 0,
		"bird size must be positive, got %dx%d", t.Bird.Width, t.Bird.Height)
	check(t.Bird.X >= 0 && t.Bird.X+t.Bird.Width <= t.Screen.Width,
		"bird.x must keep the bird on screen, got %d", t.Bird.X)
	check(t.GroundLine() >= 0, "bird does not fit above the ground band")
	check(t.Bird.StartY >= 0 && t.Bird.StartY <= t.GroundLine(),
		"bird.start_y must be in [0, %.0f], got %.2f", t.GroundLine(), t.Bird.StartY)

	check(t.Physics.Gravity > 0, "physics.gravity must be positive, got %.2f", t.Physics.Gravity)
	check(t.Physics.FlapImpulse < 0, "physics.flap_impulse must be negative (up), got %.2f", t.Physics.FlapImpulse)
	check(t.Physics.MaxFallSpeed > 0, "physics.max_fall_speed must be positive, got %.2f", t.Physics.MaxFallSpeed)
	check(t.Physics.TiltReference > 0, "physics.tilt_reference must be positive, got %.2f", t.Physics.TiltReference)

	check(t.Pipes.Width > 0, "pipes.width must be positive, got %d", t.Pipes.Width)
	check(t.Pipes.Gap > t.Bird.Height, "pipes.gap must be taller than the bird, got %d", t.Pipes.Gap)
	check(t.Pipes.Margin >= 0, "pipes.margin must not be negative, got %d", t.Pipes.Margin)
	check(t.Pipes.ScrollSpeed > 0, "pipes.scroll_speed must be positive, got %d", t.Pipes.ScrollSpeed)
	lo, hi := t.GapTopRange()
	check(hi >= lo, "pipes gap range [%d, %d] is empty", lo, hi)
	check(hi+t.Pipes.Gap <= t.Screen.GroundY(), "pipe gap can reach into the ground band")

	check(t.Loop.FrameDelay > 0, "loop.frame_delay must be positive, got %s", t.Loop.FrameDelay)

	if _, err := t.Palette.Parse(); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}

	return errors.Join(errs...)
}
