package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// GameState summarizes the game for the platform after each tick.
type GameState struct {
	Phase     string // Name of the active screen
	Score     int    // Current score
	HighScore int    // Best score known to the session
	GameOver  bool   // Whether the round has ended
	Paused    bool   // Whether the game is paused
}

// StepResult is returned by the engine after each simulation tick.
type StepResult struct {
	State GameState

	// Quit is set when a quit request was consumed this tick. The platform
	// must shut down without stepping again.
	Quit bool

	// RoundOver is set on the tick a round leaves play, either by collision
	// or by reaching the bonus event.
	RoundOver bool
}
