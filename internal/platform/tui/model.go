package tui

import (
	"context"
	"errors"
	"image/color"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-xp/internal/core"
	"github.com/vovakirdan/flappy-xp/internal/games/flappy"
	"github.com/vovakirdan/flappy-xp/internal/logging"
	"github.com/vovakirdan/flappy-xp/internal/loop"
	"github.com/vovakirdan/flappy-xp/internal/registry"
)

// ID is the registry identifier of this frontend.
const ID = "tui"

func init() {
	registry.Register(ID, func() registry.Frontend { return frontend{} })
}

type frontend struct{}

func (frontend) ID() string    { return ID }
func (frontend) Title() string { return "Terminal (Bubble Tea, half-block cells)" }

func (frontend) Run(ctx context.Context, env registry.Env) error {
	return Run(ctx, env)
}

// Model is the Bubble Tea model for one game session.
// Key presses are queued; each tick runs one loop iteration.
type Model struct {
	clock    *loop.Clock
	queue    *core.InputQueue
	canvas   *core.Canvas
	renderer *flappy.Renderer
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	delay    time.Duration
	shotDir  string
	status   string
	width    int
	height   int
	quitting bool
}

// NewModel creates a model around the game and renderer in env.
func NewModel(env registry.Env) Model {
	if env.FrameDelay <= 0 {
		env.FrameDelay = core.DefaultFrameDelay
	}
	if env.Logger == nil {
		env.Logger = logging.Discard()
	}

	t := env.Game.Tuning()
	canvas := core.NewCanvas(t.Screen.Width, t.Screen.Height)
	canvas.SetRasterText(false)

	queue := core.NewInputQueue()
	present := loop.PresenterFunc(func(g *flappy.Game) {
		canvas.Clear(color.Black)
		env.Renderer.Render(canvas, g)
	})

	m := Model{
		clock:    loop.New(env.Game, queue, present, loop.WithLogger(env.Logger), loop.WithFrameDelay(env.FrameDelay)),
		queue:    queue,
		canvas:   canvas,
		renderer: env.Renderer,
		logger:   env.Logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		delay:    env.FrameDelay,
		shotDir:  DefaultScreenshotDir,
		width:    80,
		height:   24,
	}
	present(env.Game)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(flappy.Title), tickCmd(m.delay))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}

	m.queue.Push(m.keys.Action(msg))
	return m, nil
}

// handleTick runs one iteration and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.clock.Frame() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.delay)
}

// saveScreenshot renders the current frame with raster text and writes it
// as a PNG. It returns a status line for the footer.
func (m Model) saveScreenshot() string {
	dir, err := logging.ExpandHome(m.shotDir)
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return "screenshot failed"
	}

	w, h := m.canvas.Size()
	shot := core.NewCanvas(w, h)
	m.renderer.Render(shot, m.clock.Game())

	path, err := SaveScreenshot(dir, shot.Image(), time.Now())
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the canvas above a one-line help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "  " + m.status
	}
	return RenderCanvas(m.canvas, m.width, rows) + "\n" + footer
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(ctx context.Context, env registry.Env) error {
	p := tea.NewProgram(
		NewModel(env),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
