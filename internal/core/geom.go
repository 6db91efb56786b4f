// Package core provides fundamental types and utilities shared by the snake
// simulation and its hosts. It contains no terminal dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import "golang.org/x/exp/constraints"

// Rect represents an axis-aligned rectangle, in pixels or cells.
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
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Wrap returns v modulo m in [0, m), so that Wrap(-1, m) == m-1.
// m must be positive. The result never exceeds m, so no intermediate
// value can overflow T.
func Wrap[T constraints.Signed](v, m T) T {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T constraints.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
