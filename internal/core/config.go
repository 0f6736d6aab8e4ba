package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Logical ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the read-only view of a session handed to the platform
// after every tick or input.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives; -1 when the mode has no lives
	Buffer   string // Normalized in-progress word
	Tick     uint64 // Last tick processed
	GameOver bool   // Whether the game has ended
}

// StepResult is returned after each simulation tick or input frame.
// Events holds the feedback cues raised while processing it, in order.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result carries the given event.
func (r StepResult) Has(ev Event) bool {
	for _, e := range r.Events {
		if e == ev {
			return true
		}
	}
	return false
}

// Submission records one accepted word for end-of-game summaries.
type Submission struct {
	Word    string // Uppercase word
	Points  int    // Points awarded
	Bonus   bool   // Whether the full-board bonus applied
	Letters int    // Letters claimed from the board
}
