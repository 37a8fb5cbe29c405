package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-xp/internal/logging"
	"github.com/vovakirdan/flappy-xp/internal/loop"
	"github.com/vovakirdan/flappy-xp/internal/registry"
)

// ID is the registry identifier of this frontend.
const ID = "term"

func init() {
	registry.Register(ID, func() registry.Frontend { return frontend{} })
}

type frontend struct{}

func (frontend) ID() string    { return ID }
func (frontend) Title() string { return "Terminal (tcell, fixed-delay loop)" }

func (frontend) Run(ctx context.Context, env registry.Env) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer screen.Fini()

	return Run(ctx, screen, env)
}

// Run plays one session on an initialized screen. The caller owns Fini.
func Run(ctx context.Context, screen tcell.Screen, env registry.Env) error {
	if env.Logger == nil {
		env.Logger = logging.Discard()
	}
	t := env.Game.Tuning()

	source := NewEventSource(Listen(screen), func() { screen.Sync() })
	out := NewPresenter(screen, env.Renderer, t.Screen.Width, t.Screen.Height)

	opts := []loop.Option{loop.WithLogger(env.Logger)}
	if env.FrameDelay > 0 {
		opts = append(opts, loop.WithFrameDelay(env.FrameDelay))
	}
	return loop.New(env.Game, source, out, opts...).Run(ctx)
}
