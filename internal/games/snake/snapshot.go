package snake

import "github.com/vovakirdan/snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot is a value copy of the game state. Frontends draw from it and
// tests compare two of them for determinism.
type Snapshot struct {
	Tick    uint64
	Score   int
	Best    int
	Resets  int
	Length  int          // Target length
	Body    []core.Point // Head at index 0
	Dir     Direction
	Food    core.Point
	HasFood bool
	GridW   int
	GridH   int
	State   GameStateType
}

// Head returns the head cell, or (-1, -1) for an empty snapshot.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{X: -1, Y: -1}
	}
	return s.Body[0]
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Best:    g.best,
		Resets:  g.resets,
		Food:    g.food,
		HasFood: g.hasFood,
		GridW:   g.cfg.GridW,
		GridH:   g.cfg.GridH,
		State:   state,
	}
	if g.snake != nil {
		snap.Length = g.snake.Length
		snap.Dir = g.snake.Dir
		snap.Body = make([]core.Point, len(g.snake.Body))
		copy(snap.Body, g.snake.Body)
	}
	return snap
}
