package core

// RuntimeConfig contains configuration passed to the front-ends at startup.
// Gameplay tuning lives in the config package; this is only about the host.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// GameState is the externally visible status of the simulation.
type GameState struct {
	Score   int  // Current score
	Lives   int  // Remaining lives
	Running bool // false before the first round and after game over
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
