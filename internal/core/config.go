package core

import "time"

// DefaultFrameDelay is the end-of-iteration pause that caps the loop near 60 Hz.
const DefaultFrameDelay = 16 * time.Millisecond

// RuntimeConfig contains settings chosen at process start and handed to the loop.
type RuntimeConfig struct {
	Seed       int64         // RNG seed for gap heights; 0 means use current time
	FrameDelay time.Duration // Sleep after each iteration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:       0,
		FrameDelay: DefaultFrameDelay,
	}
}

// GameState is the session-wide state of one play session.
// Over freezes every entity update until a restart resets the whole session.
type GameState struct {
	Over  bool // Whether the current run has ended
	Score int  // Pipes recycled during the current run
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State    GameState
	Recycled int  // Pipes recycled during this tick
	Ended    bool // True only on the tick that ended the run
}
