package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the hard-coded tuning. It matches the embedded YAML
// and is used whenever that document cannot be decoded.
func DefaultTuning() Tuning {
	return Tuning{
		Screen: ScreenConfig{
			Width:        640,
			Height:       360,
			GroundHeight: 50,
		},
		Bird: BirdConfig{
			X:      100,
			StartY: 240,
			Width:  40,
			Height: 40,
		},
		Physics: PhysicsConfig{
			Gravity:       0.5,
			FlapImpulse:   -8.0,
			MaxFallSpeed:  10.0,
			TiltReference: 10.0,
		},
		Pipes: PipesConfig{
			Width:       80,
			Gap:         150,
			Margin:      50,
			ScrollSpeed: 4,
		},
		Loop: LoopConfig{
			FrameDelay: 16 * time.Millisecond,
		},
		Palette: PaletteConfig{
			Sky:     "#87CEEB",
			Ground:  "#228B22",
			Pipe:    "#00FF00",
			Text:    "#000000",
			Overlay: "#FFFFFF",
		},
	}
}

// DefaultYAML returns the embedded tuning document.
func DefaultYAML() []byte {
	return defaultTuningYAML
}
