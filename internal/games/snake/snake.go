package snake

import "github.com/vovakirdan/snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// allDirections is the pool a fresh snake picks its heading from.
var allDirections = [...]Direction{DirRight, DirDown, DirLeft, DirUp}

// Vector returns the one-cell step for the direction. Y grows downwards.
func (d Direction) Vector() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a directional action to a Direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirRight, false
}

// Snake is the player body: grid cells head first, a heading and a target length.
// The body grows one cell per move until it reaches Length.
type Snake struct {
	Body   []core.Point // Head at index 0
	Dir    Direction    // Direction of the last move
	Length int          // Target length

	next Direction // Buffered direction for the next move
}

// NewSnake creates a one-cell snake at start heading in dir.
func NewSnake(start core.Point, dir Direction, length int) *Snake {
	return &Snake{
		Body:   []core.Point{start},
		Dir:    dir,
		Length: core.Max(1, length),
		next:   dir,
	}
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.Body[0]
}

// heading returns the direction the next move will take.
func (s *Snake) heading() Direction {
	return s.next
}

// Turn buffers a new direction for the next move. A snake longer than one
// cell cannot reverse onto its own neck, so the exact opposite of the current
// direction is rejected. Returns whether the turn was accepted.
func (s *Snake) Turn(d Direction) bool {
	if s.Length > 1 && d.Vector() == s.Dir.Vector().Neg() {
		return false
	}
	s.next = d
	return true
}

// NextHead returns where the head lands on the next move, wrapped to a w x h grid.
func (s *Snake) NextHead(w, h int) core.Point {
	return s.Head().Add(s.next.Vector()).Wrapped(w, h)
}

// Occupies reports whether any body cell is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// Collides reports whether moving the head onto p runs into the body.
// The tail cell is excluded when it vacates on this move.
func (s *Snake) Collides(p core.Point) bool {
	checkLen := len(s.Body)
	if checkLen >= s.Length {
		checkLen-- // Tail will be removed
	}
	for i := 0; i < checkLen; i++ {
		if s.Body[i] == p {
			return true
		}
	}
	return false
}

// Advance applies the buffered direction, prepends newHead and drops tail
// cells beyond the target length.
func (s *Snake) Advance(newHead core.Point) {
	s.Dir = s.next
	s.Body = append([]core.Point{newHead}, s.Body...)
	if len(s.Body) > s.Length {
		s.Body = s.Body[:s.Length]
	}
}

// Grow raises the target length by exactly one cell.
func (s *Snake) Grow() {
	s.Length++
}
