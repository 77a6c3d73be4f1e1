// Package core provides fundamental types and utilities shared by the game
// logic and the frontends. It contains no external dependencies (no Ebiten,
// no Bubble Tea) to keep game logic pure and testable.
package core

// Point is a grid cell address.
type Point struct {
	X, Y int
}

// Add returns the point shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neg returns the point mirrored through the origin.
// For direction vectors this is the opposite direction.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Wrapped returns the point with both axes folded into [0, w) x [0, h).
func (p Point) Wrapped(w, h int) Point {
	return Point{X: Wrap(p.X, w), Y: Wrap(p.Y, h)}
}

// Rect represents an axis-aligned box, used for menu button hit testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Wrap folds v into [0, n). Unlike Go's % operator the result is never
// negative, so a snake leaving the left edge reappears on the right.
// Returns 0 when n <= 0.
func Wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
