package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys, mouse buttons and window events into actions.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W, left click - upward impulse
	ActionRestart        // Enter - start a new run after game over
	ActionQuit           // Q, Esc, Ctrl+C, window close - leave the loop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputQueue is a FIFO of actions waiting to be consumed by the loop.
// Frontends push while handling platform events; the loop drains it with Poll.
// It is not safe for concurrent use: push and poll happen on the loop's thread.
type InputQueue struct {
	pending []Action
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{pending: make([]Action, 0, 8)}
}

// Push appends an action. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// Poll removes and returns the oldest pending action without blocking.
// The second result is false when the queue is empty.
func (q *InputQueue) Poll() (Action, bool) {
	if len(q.pending) == 0 {
		return ActionNone, false
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return a, true
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}
