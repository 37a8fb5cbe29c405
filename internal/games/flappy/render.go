package flappy

import (
	"fmt"
	"image"

	"github.com/vovakirdan/flappy-xp/internal/config"
	"github.com/vovakirdan/flappy-xp/internal/core"
)

// GameOverMessage is the overlay shown while the run is over.
const GameOverMessage = "Game Over! Press Enter To Restart!"

// Renderer draws a Game onto a core.Surface. It only reads game state.
type Renderer struct {
	tuning  config.Tuning
	palette config.Palette
	sprite  image.Image
}

// NewRenderer creates a renderer for the given tuning and bird sprite.
func NewRenderer(t config.Tuning, sprite image.Image) (*Renderer, error) {
	palette, err := t.Palette.Parse()
	if err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	return &Renderer{tuning: t, palette: palette, sprite: sprite}, nil
}

// Render draws the full frame.
func (r *Renderer) Render(dst core.Surface, g *Game) {
	r.RenderWorld(dst, g)
	r.RenderHUD(dst, g)
}

// RenderWorld draws the sky, the ground band, the bird and the pipes.
func (r *Renderer) RenderWorld(dst core.Surface, g *Game) {
	t := r.tuning
	w, h := dst.Size()

	dst.FillRect(core.NewRect(0, 0, w, h), r.palette.Sky)
	dst.FillRect(core.NewRect(0, t.Screen.GroundY(), w, h-t.Screen.GroundY()), r.palette.Ground)

	bird := g.Bird()
	if r.sprite != nil {
		dst.DrawSprite(r.sprite, bird.Rect(t), Tilt(bird.Velocity, t.Physics.TiltReference))
	}

	for _, p := range g.Pipes() {
		dst.FillRect(p.TopRect(t), r.palette.Pipe)
		dst.FillRect(p.BottomRect(t), r.palette.Pipe)
	}
}

// RenderHUD draws the score and, after game over, the restart prompt.
func (r *Renderer) RenderHUD(dst core.Surface, g *Game) {
	state := g.State()
	dst.DrawText(10, 10, fmt.Sprintf("Score: %d", state.Score), r.palette.Text)

	if state.Over {
		w, h := dst.Size()
		dst.DrawText((w-core.TextWidth(GameOverMessage))/2, h/2, GameOverMessage, r.palette.Overlay)
	}
}
