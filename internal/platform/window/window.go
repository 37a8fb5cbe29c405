// Package window runs the game in a desktop window with Ebitengine.
// Ebitengine calls Update at 60 TPS; each call is one loop iteration.
package window

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-xp/internal/core"
	"github.com/vovakirdan/flappy-xp/internal/games/flappy"
	"github.com/vovakirdan/flappy-xp/internal/logging"
	"github.com/vovakirdan/flappy-xp/internal/loop"
	"github.com/vovakirdan/flappy-xp/internal/registry"
)

// ID is the registry identifier of this frontend.
const ID = "window"

// fadeSeconds is how long the game-over dimming takes.
const fadeSeconds = 0.6

func init() {
	registry.Register(ID, func() registry.Frontend { return frontend{} })
}

type frontend struct{}

func (frontend) ID() string    { return ID }
func (frontend) Title() string { return "Desktop window (Ebitengine)" }

func (frontend) Run(ctx context.Context, env registry.Env) error {
	return Run(ctx, env)
}

// App implements ebiten.Game around a loop.Clock.
type App struct {
	ctx      context.Context
	clock    *loop.Clock
	queue    *core.InputQueue
	renderer *flappy.Renderer
	surface  *Surface
	fade     *Fade
	width    int
	height   int
}

// NewApp wires the game in env to Ebitengine input and drawing.
func NewApp(ctx context.Context, env registry.Env) *App {
	if env.Logger == nil {
		env.Logger = logging.Discard()
	}
	t := env.Game.Tuning()

	a := &App{
		ctx:      ctx,
		queue:    core.NewInputQueue(),
		renderer: env.Renderer,
		surface:  NewSurface(),
		fade:     NewFade(fadeSeconds),
		width:    t.Screen.Width,
		height:   t.Screen.Height,
	}
	a.clock = loop.New(env.Game, a.queue, loop.PresenterFunc(a.present), loop.WithLogger(env.Logger))
	return a
}

// present advances presentation-only state; pixels are produced in Draw.
func (a *App) present(g *flappy.Game) {
	if g.State().Over {
		a.fade.Start()
	} else {
		a.fade.Reset()
	}
	a.fade.Update(1 / float32(ebiten.TPS()))
}

// Update runs one loop iteration.
func (a *App) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}
	pollKeys(a.queue, inpututil.IsKeyJustPressed)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.queue.Push(core.ActionFlap)
	}
	if !a.clock.Frame() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the world, the fade layer and then the HUD on top.
func (a *App) Draw(screen *ebiten.Image) {
	s := a.surface.Target(screen)
	g := a.clock.Game()

	a.renderer.RenderWorld(s, g)
	if alpha := a.fade.Alpha(); alpha > 0 {
		s.FillRect(core.NewRect(0, 0, a.width, a.height), color.RGBA{A: uint8(alpha * 255)})
	}
	a.renderer.RenderHUD(s, g)
}

// Layout keeps the logical resolution fixed; Ebitengine scales the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, env registry.Env) error {
	app := NewApp(ctx, env)

	ebiten.SetWindowTitle(flappy.Title)
	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(app)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return ctx.Err()
}
