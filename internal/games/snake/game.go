// Package snake implements the Snake game logic: a growing snake on a
// wrap-around grid, one piece of food, and a reset on self-collision.
// It has no rendering or input library dependencies.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/snake/internal/core"
)

// MinGridSize is the smallest playable field edge in cells.
const MinGridSize = 4

// Game implements the Snake game.
type Game struct {
	cfg        core.RuntimeConfig
	rng        *rand.Rand
	tick       uint64
	moveTicker int // Counts ticks until next move

	snake   *Snake
	food    core.Point
	hasFood bool

	score  int
	best   int // Best score since the game was created
	resets int // Self-collisions since the game was created

	paused   bool
	tooSmall bool
}

// New creates a Snake game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// Reset initializes/restarts the game with the given runtime config.
// The session best score survives a reset.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.MoveEvery <= 0 {
		cfg.MoveEvery = 1
	}
	if cfg.InitialLength <= 0 {
		cfg.InitialLength = core.DefaultConfig().InitialLength
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moveTicker = 0
	g.score = 0
	g.paused = false
	g.hasFood = false
	g.tooSmall = cfg.GridW < MinGridSize || cfg.GridH < MinGridSize
	if g.tooSmall {
		g.snake = nil
		return
	}

	g.spawnSnake()
	g.spawnFood()
}

// spawnSnake places a fresh one-cell snake at the grid center with a random heading.
func (g *Game) spawnSnake() {
	center := core.Point{X: g.cfg.GridW / 2, Y: g.cfg.GridH / 2}
	dir := allDirections[g.rng.Intn(len(allDirections))]
	g.snake = NewSnake(center, dir, g.cfg.InitialLength)
}

// spawnFood places food at a random cell not occupied by the snake.
// When every cell is taken the game carries on without food.
func (g *Game) spawnFood() {
	var emptyCells []core.Point
	for y := 0; y < g.cfg.GridH; y++ {
		for x := 0; x < g.cfg.GridW; x++ {
			p := core.Point{X: x, Y: y}
			if !g.snake.Occupies(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		g.hasFood = false
		g.food = core.Point{X: -1, Y: -1}
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
	g.hasFood = true
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if d, ok := directionFor(input.Direction()); ok {
		g.snake.Turn(d)
	}

	var result core.StepResult
	g.moveTicker++
	if g.moveTicker >= g.cfg.MoveEvery {
		g.moveTicker = 0
		result = g.Move()
	}

	result.State = g.State()
	return result
}

// Turn buffers a direction change for the next move.
// Returns false if the turn would reverse the snake onto itself.
func (g *Game) Turn(d Direction) bool {
	if g.snake == nil {
		return false
	}
	return g.snake.Turn(d)
}

// Move advances the snake one cell, wrapping around the grid edges.
// Running into its own body resets the snake; reaching the food grows it.
func (g *Game) Move() core.StepResult {
	if g.snake == nil {
		return core.StepResult{State: g.State()}
	}

	newHead := g.snake.NextHead(g.cfg.GridW, g.cfg.GridH)

	if g.snake.Collides(newHead) {
		g.crash()
		return core.StepResult{State: g.State(), Moved: true, Crashed: true}
	}

	g.snake.Advance(newHead)

	result := core.StepResult{Moved: true}
	if g.hasFood && newHead == g.food {
		g.snake.Grow()
		g.score++
		if g.score > g.best {
			g.best = g.score
		}
		g.spawnFood()
		result.Ate = true
	}

	result.State = g.State()
	return result
}

// crash resets the snake after a self-collision. The food stays where it is
// unless the new snake sits on it.
func (g *Game) crash() {
	g.resets++
	g.score = 0
	g.spawnSnake()
	if !g.hasFood || g.snake.Occupies(g.food) {
		g.spawnFood()
	}
}

// Snake returns the live snake. Nil while the field is too small.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food cell and whether food is on the field.
func (g *Game) Food() (core.Point, bool) {
	return g.food, g.hasFood
}

// GridSize returns the playing field dimensions in cells.
func (g *Game) GridSize() (int, int) {
	return g.cfg.GridW, g.cfg.GridH
}

// TooSmall reports whether the configured field is below MinGridSize.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	length := 0
	if g.snake != nil {
		length = g.snake.Length
	}
	return core.GameState{
		Score:  g.score,
		Best:   g.best,
		Length: length,
		Paused: g.paused,
	}
}
