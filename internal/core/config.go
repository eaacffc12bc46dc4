package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameDelta returns the delta-time of one tick in seconds.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game session.
type GameState struct {
	Moves    int  // Commands handled since spawn
	Blocked  int  // Commands that needed a boundary correction
	Paused   bool // Whether the session is paused
	Animated bool // Whether any block is still moving toward its target
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
