// Package term runs the game on a raw tcell screen with the plain loop:
// drain input, step, draw, sleep. Events are read by a goroutine and handed
// to the loop through a buffered channel so that polling never blocks.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-xp/internal/core"
)

// eventBuffer bounds the number of unread events.
const eventBuffer = 100

// MapKey translates a tcell key event to a game action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyEnter:
		return core.ActionRestart
	case tcell.KeyUp:
		return core.ActionFlap
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w':
			return core.ActionFlap
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// EventSource adapts a channel of tcell events to the loop's Source.
type EventSource struct {
	events   <-chan tcell.Event
	onResize func()
}

// NewEventSource reads events from ch. onResize, if set, runs on every
// resize event.
func NewEventSource(ch <-chan tcell.Event, onResize func()) *EventSource {
	return &EventSource{events: ch, onResize: onResize}
}

// Listen starts a goroutine that forwards screen events to a new channel.
// The goroutine ends once the screen is finalized.
func Listen(screen tcell.Screen) <-chan tcell.Event {
	ch := make(chan tcell.Event, eventBuffer)
	go func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			ch <- ev
		}
	}()
	return ch
}

// Poll returns the next pending action without blocking.
// A closed event channel reads as a quit request.
func (s *EventSource) Poll() (core.Action, bool) {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return core.ActionQuit, true
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a := MapKey(ev); a != core.ActionNone {
					return a, true
				}
			case *tcell.EventResize:
				if s.onResize != nil {
					s.onResize()
				}
			}
		default:
			return core.ActionNone, false
		}
	}
}
