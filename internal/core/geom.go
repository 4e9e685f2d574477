// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in field coordinates.
// It is derived on demand from an entity's position and size, never stored.
type Rect struct {
	Left, Right float64
	Top, Bottom float64
}

// NewRect creates a rectangle from a top-left corner and a size.
// Negative sizes are folded so that Left <= Right and Top <= Bottom always hold.
func NewRect(x, y, w, h float64) Rect {
	r := Rect{Left: x, Right: x + w, Top: y, Bottom: y + h}
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// RectAround returns the bounding box of a circle.
func RectAround(cx, cy, radius float64) Rect {
	return NewRect(cx-radius, cy-radius, 2*radius, 2*radius)
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// Intersects reports whether two rectangles overlap.
// Intervals are closed: rectangles that only share an edge still intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Left <= other.Right &&
		r.Right >= other.Left &&
		r.Top <= other.Bottom &&
		r.Bottom >= other.Top
}

// Contains reports whether the point lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Inside reports whether r lies entirely within outer.
func (r Rect) Inside(outer Rect) bool {
	return r.Left >= outer.Left && r.Right <= outer.Right &&
		r.Top >= outer.Top && r.Bottom <= outer.Bottom
}

// Overlaps reports whether the interiors of two rectangles overlap.
// Unlike Intersects, touching edges do not count.
func (r Rect) Overlaps(other Rect) bool {
	return r.Left < other.Right &&
		r.Right > other.Left &&
		r.Top < other.Bottom &&
		r.Bottom > other.Top
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

// ClampF restricts a float64 value to be within [min, max].
// If max < min the range collapses to min.
func ClampF(val, min, max float64) float64 {
	if max < min {
		return min
	}
	return math.Max(min, math.Min(max, val))
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
