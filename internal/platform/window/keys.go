package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-xp/internal/core"
)

// binding maps one key to an action.
type binding struct {
	key    ebiten.Key
	action core.Action
}

// bindings are checked in order every frame.
var bindings = []binding{
	{ebiten.KeySpace, core.ActionFlap},
	{ebiten.KeyArrowUp, core.ActionFlap},
	{ebiten.KeyW, core.ActionFlap},
	{ebiten.KeyEnter, core.ActionRestart},
	{ebiten.KeyNumpadEnter, core.ActionRestart},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// pollKeys queues an action for every key pressed since the last frame.
func pollKeys(q *core.InputQueue, justPressed func(ebiten.Key) bool) {
	for _, b := range bindings {
		if justPressed(b.key) {
			q.Push(b.action)
		}
	}
}
