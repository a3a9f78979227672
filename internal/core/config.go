package core

import "time"

// DefaultTickInterval is the fixed time between two game ticks.
const DefaultTickInterval = 100 * time.Millisecond

// RuntimeConfig contains configuration passed to a game at initialization.
// Games use this to size the board and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Constant time between ticks
	Seed         int64         // RNG seed for deterministic gameplay

	// Board overrides. Zero values derive the board from the screen.
	GridW    int // Board width in cells
	GridH    int // Board height in cells
	CellSize int // Terminal columns per cell
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
		CellSize:     2,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Blocked  bool // Whether the game cannot run at the current screen size
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
