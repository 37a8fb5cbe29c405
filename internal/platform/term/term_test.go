package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-xp/internal/config"
	"github.com/vovakirdan/flappy-xp/internal/core"
	"github.com/vovakirdan/flappy-xp/internal/games/flappy"
	"github.com/vovakirdan/flappy-xp/internal/registry"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Action
	}{
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.ActionFlap},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.ActionFlap},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionFlap},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.ActionRestart},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapKey(tt.ev); got != tt.want {
				t.Errorf("MapKey() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestEventSourcePollSkipsNoise(t *testing.T) {
	ch := make(chan tcell.Event, 8)
	resized := 0
	src := NewEventSource(ch, func() { resized++ })

	if _, ok := src.Poll(); ok {
		t.Fatal("empty channel should report nothing pending")
	}

	ch <- tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	ch <- tcell.NewEventResize(100, 40)
	ch <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	ch <- tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)

	var got []core.Action
	for {
		a, ok := src.Poll()
		if !ok {
			break
		}
		got = append(got, a)
	}

	if len(got) != 2 || got[0] != core.ActionFlap || got[1] != core.ActionRestart {
		t.Errorf("Poll() sequence = %v, expected [Flap Restart]", got)
	}
	if resized != 1 {
		t.Errorf("resize callback ran %d times, expected 1", resized)
	}
}

func TestEventSourceClosedMeansQuit(t *testing.T) {
	ch := make(chan tcell.Event)
	close(ch)

	a, ok := NewEventSource(ch, nil).Poll()
	if !ok || a != core.ActionQuit {
		t.Errorf("Poll() on closed channel = %v, %v; expected Quit", a, ok)
	}
}

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func newEnv(t *testing.T) registry.Env {
	t.Helper()
	tn := config.DefaultTuning()
	r, err := flappy.NewRenderer(tn, nil)
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	return registry.Env{Game: flappy.NewSeeded(tn, 3), Renderer: r, FrameDelay: time.Millisecond}
}

func rowText(s tcell.Screen, y, cols int) string {
	var sb strings.Builder
	for x := range cols {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestPresenterDrawsScore(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	env := newEnv(t)
	tn := env.Game.Tuning()

	NewPresenter(s, env.Renderer, tn.Screen.Width, tn.Screen.Height).Present(env.Game)

	if row := rowText(s, 0, 80); !strings.Contains(row, "Score: 0") {
		t.Errorf("top row = %q, expected the score", row)
	}
	if r, _, _, _ := s.GetContent(40, 23); r != core.HalfBlock {
		t.Errorf("bottom row should be half blocks, got %q", r)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	env := newEnv(t)

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Run(ctx, s, env); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
}

func TestFrontendRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("frontend %q should be registered", ID)
	}
}
