package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-xp/internal/core"
)

func TestPollKeys(t *testing.T) {
	pressed := map[ebiten.Key]bool{
		ebiten.KeySpace: true,
		ebiten.KeyEnter: true,
	}
	q := core.NewInputQueue()
	pollKeys(q, func(k ebiten.Key) bool { return pressed[k] })

	var got []core.Action
	for {
		a, ok := q.Poll()
		if !ok {
			break
		}
		got = append(got, a)
	}
	if len(got) != 2 || got[0] != core.ActionFlap || got[1] != core.ActionRestart {
		t.Errorf("queued %v, expected [Flap Restart]", got)
	}
}

func TestPollKeysNothingPressed(t *testing.T) {
	q := core.NewInputQueue()
	pollKeys(q, func(ebiten.Key) bool { return false })
	if q.Len() != 0 {
		t.Errorf("queued %d actions, expected none", q.Len())
	}
}
