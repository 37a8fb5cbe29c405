package window

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade dims the world once the run is over. It eases from transparent to
// MaxAlpha and holds there until Reset.
type Fade struct {
	tween    *gween.Tween
	alpha    float32
	duration float32
}

// MaxAlpha is the opacity of the dimming layer once the fade completes.
const MaxAlpha = 0.5

// NewFade creates a fade that takes duration seconds to complete.
func NewFade(duration float32) *Fade {
	return &Fade{duration: duration}
}

// Start begins the fade. Calling it while a fade is running or finished is a no-op.
func (f *Fade) Start() {
	if f.tween != nil {
		return
	}
	f.tween = gween.New(0, MaxAlpha, f.duration, ease.OutQuad)
}

// Reset clears the fade.
func (f *Fade) Reset() {
	f.tween = nil
	f.alpha = 0
}

// Update advances the fade by dt seconds and returns the current alpha.
func (f *Fade) Update(dt float32) float32 {
	if f.tween == nil {
		return 0
	}
	f.alpha, _ = f.tween.Update(dt)
	return f.alpha
}

// Alpha returns the current opacity in [0, MaxAlpha].
func (f *Fade) Alpha() float32 {
	return f.alpha
}
