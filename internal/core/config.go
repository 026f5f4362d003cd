package core

// RuntimeConfig contains configuration passed to the session and frontends.
type RuntimeConfig struct {
	ScreenW  int   // Output width (terminal cells or window pixels)
	ScreenH  int   // Output height
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

// GameState is the host-facing summary of a session.
type GameState struct {
	Mode     string // current state name: menu, playing, paused, meta_shop, game_over
	Score    int
	Floor    int
	Lives    int
	Coins    int // currency earned this run
	Bank     int // currency available across runs
	GameOver bool
	Paused   bool
	Quit     bool // the player asked to leave
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
	// RunEnded is true only on the tick where a run reached game over.
	RunEnded bool
}
