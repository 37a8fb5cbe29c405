package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-xp/internal/core"
	"github.com/vovakirdan/flappy-xp/internal/games/flappy"
)

// Presenter draws each frame onto a tcell screen.
type Presenter struct {
	screen   tcell.Screen
	canvas   *core.Canvas
	renderer *flappy.Renderer
}

// NewPresenter creates a presenter with a canvas of the game's logical size.
func NewPresenter(screen tcell.Screen, renderer *flappy.Renderer, width, height int) *Presenter {
	canvas := core.NewCanvas(width, height)
	canvas.SetRasterText(false)
	return &Presenter{screen: screen, canvas: canvas, renderer: renderer}
}

// Present renders g and copies the sampled cells to the screen.
func (p *Presenter) Present(g *flappy.Game) {
	p.canvas.Clear(color.Black)
	p.renderer.Render(p.canvas, g)

	cols, rows := p.screen.Size()
	for y, line := range p.canvas.Cells(cols, rows) {
		for x, c := range line {
			p.screen.SetContent(x, y, c.Rune, nil, style(c))
		}
	}
	p.screen.Show()
}

func style(c core.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgb(c.FG)).
		Background(rgb(c.BG))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
