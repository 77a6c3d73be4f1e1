package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends build it from the loaded config and their own surface size.
type RuntimeConfig struct {
	GridW         int   // Playing field width in cells
	GridH         int   // Playing field height in cells
	TickRate      int   // Simulation ticks per second (default 60)
	MoveEvery     int   // Ticks between snake moves
	InitialLength int   // Target snake length after a reset
	Seed          int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig matching an 800x600 window of 20px cells
// moving 10 cells per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:         40,
		GridH:         30,
		TickRate:      60,
		MoveEvery:     6,
		InitialLength: 5,
		Seed:          0, // 0 means use current time in platform layer
	}
}

// MoveInterval converts a speed in moves per second into ticks per move.
// The result is at least one tick.
func MoveInterval(tickRate, movesPerSecond int) int {
	if tickRate <= 0 || movesPerSecond <= 0 {
		return 1
	}
	return Max(1, tickRate/movesPerSecond)
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score  int  // Food eaten since the last reset
	Best   int  // Best score this session
	Length int  // Current target length
	Paused bool // Whether the game is paused
}

// StepResult is returned by Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State   GameState
	Moved   bool // The snake advanced one cell this tick
	Ate     bool // The snake ate food this tick
	Crashed bool // The snake ran into itself and was reset
}
