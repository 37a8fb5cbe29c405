// Package core provides fundamental types and utilities shared by the simulation
// and the frontends. It contains no terminal or window dependencies so that game
// logic stays pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen units.
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

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
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

// Affine is a 2D world transform laid out like a classic XFORM:
//
//	x' = x*M11 + y*M21 + Dx
//	y' = x*M12 + y*M22 + Dy
type Affine struct {
	M11, M12 float64
	M21, M22 float64
	Dx, Dy   float64
}

// Rotation returns a transform that rotates by angle radians (clockwise on a
// y-down screen) and then translates to (dx, dy).
func Rotation(angle, dx, dy float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		M11: cos, M12: sin,
		M21: -sin, M22: cos,
		Dx: dx, Dy: dy,
	}
}

// Apply maps the point (x, y) through the transform.
func (a Affine) Apply(x, y float64) (float64, float64) {
	return x*a.M11 + y*a.M21 + a.Dx, x*a.M12 + y*a.M22 + a.Dy
}

// Invert returns the inverse transform. A singular transform yields the
// identity so that callers never divide by zero.
func (a Affine) Invert() Affine {
	det := a.M11*a.M22 - a.M12*a.M21
	if det == 0 {
		return Affine{M11: 1, M22: 1}
	}
	inv := Affine{
		M11: a.M22 / det,
		M12: -a.M12 / det,
		M21: -a.M21 / det,
		M22: a.M11 / det,
	}
	inv.Dx = -(a.Dx*inv.M11 + a.Dy*inv.M21)
	inv.Dy = -(a.Dx*inv.M12 + a.Dy*inv.M22)
	return inv
}
