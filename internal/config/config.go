// Package config provides the embedded YAML tuning for the game: screen
// geometry, bird physics, pipe layout, loop timing and colors.
package config

import (
	"fmt"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Tuning contains every constant the simulation and renderer depend on.
type Tuning struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Bird    BirdConfig    `yaml:"bird"`
	Physics PhysicsConfig `yaml:"physics"`
	Pipes   PipesConfig   `yaml:"pipes"`
	Loop    LoopConfig    `yaml:"loop"`
	Palette PaletteConfig `yaml:"palette"`
}

// ScreenConfig defines the logical play field.
type ScreenConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundHeight int `yaml:"ground_height"` // Static band at the bottom
}

// GroundY returns the y-coordinate of the top of the ground band.
func (s ScreenConfig) GroundY() int {
	return s.Height - s.GroundHeight
}

// BirdConfig defines the bird's fixed column, start height and hit-box.
type BirdConfig struct {
	X      int     `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// PhysicsConfig defines per-tick bird physics.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	FlapImpulse   float64 `yaml:"flap_impulse"`   // Negative = up
	MaxFallSpeed  float64 `yaml:"max_fall_speed"` // Terminal velocity
	TiltReference float64 `yaml:"tilt_reference"` // Denominator of the tilt angle
}

// PipesConfig defines pipe geometry and scrolling.
type PipesConfig struct {
	Width       int `yaml:"width"`
	Gap         int `yaml:"gap"`
	Margin      int `yaml:"margin"`       // Minimum distance of the gap from top and bottom
	ScrollSpeed int `yaml:"scroll_speed"` // Pixels per tick
}

// LoopConfig defines the loop pacing.
type LoopConfig struct {
	FrameDelay time.Duration `yaml:"frame_delay"`
}

// PaletteConfig holds hex colors for the renderer.
type PaletteConfig struct {
	Sky     string `yaml:"sky"`
	Ground  string `yaml:"ground"`
	Pipe    string `yaml:"pipe"`
	Text    string `yaml:"text"`
	Overlay string `yaml:"overlay"`
}

// Palette is the parsed form of PaletteConfig.
type Palette struct {
	Sky     colorful.Color
	Ground  colorful.Color
	Pipe    colorful.Color
	Text    colorful.Color
	Overlay colorful.Color
}

// Parse converts the hex strings into colors.
func (p PaletteConfig) Parse() (Palette, error) {
	var out Palette
	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"sky", p.Sky, &out.Sky},
		{"ground", p.Ground, &out.Ground},
		{"pipe", p.Pipe, &out.Pipe},
		{"text", p.Text, &out.Text},
		{"overlay", p.Overlay, &out.Overlay},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s %q: %w", f.name, f.hex, err)
		}
		*f.dst = c
	}
	return out, nil
}
