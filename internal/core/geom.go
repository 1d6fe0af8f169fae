// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a continuous 2D vector in arena units (pixels).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LenSq returns the squared length.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// WithLen rescales v to the given length, preserving direction.
func (v Vec2) WithLen(length float64) Vec2 {
	return v.Normalize().Scale(length)
}

// Rounded returns v with both components rounded to the nearest integer.
func (v Vec2) Rounded() Vec2 {
	return Vec2{X: math.Round(v.X), Y: math.Round(v.Y)}
}

// AABB is an axis-aligned box in arena units, stored as top-left corner plus size.
// Sizes are whole numbers so that a center-anchored box maps onto pixel edges.
type AABB struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewAABB creates a box from its top-left corner and size.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{X: x, Y: y, W: w, H: h}
}

// CenteredAt builds a w×h box whose center is the rounded position of c.
// The left/top edge sits floor(w/2) / floor(h/2) before the center, matching
// integer sprite rectangles.
func CenteredAt(c Vec2, w, h float64) AABB {
	r := c.Rounded()
	return AABB{X: r.X - math.Floor(w/2), Y: r.Y - math.Floor(h/2), W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r AABB) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r AABB) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r AABB) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r AABB) Bottom() float64 { return r.Y + r.H }

// Center returns the anchor point a CenteredAt box was built from.
func (r AABB) Center() Vec2 {
	return Vec2{X: r.X + math.Floor(r.W/2), Y: r.Y + math.Floor(r.H/2)}
}

// Valid reports whether the box has a positive area.
func (r AABB) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Intersects returns true if this box overlaps another.
// Touching edges do not count as overlap.
func (r AABB) Intersects(o AABB) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// ContainsPoint returns true if p lies inside the box (right/bottom exclusive).
func (r AABB) ContainsPoint(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsBox returns true if o lies fully inside r (edges may touch).
func (r AABB) ContainsBox(o AABB) bool {
	return o.X >= r.X && o.Right() <= r.Right() && o.Y >= r.Y && o.Bottom() <= r.Bottom()
}

// ClampInside moves r the minimum distance needed to lie fully inside bounds.
// A box larger than bounds on an axis is centered on that axis.
func (r AABB) ClampInside(bounds AABB) AABB {
	out := r
	switch {
	case r.W >= bounds.W:
		out.X = bounds.X + (bounds.W-r.W)/2
	case r.X < bounds.X:
		out.X = bounds.X
	case r.Right() > bounds.Right():
		out.X = bounds.Right() - r.W
	}
	switch {
	case r.H >= bounds.H:
		out.Y = bounds.Y + (bounds.H-r.H)/2
	case r.Y < bounds.Y:
		out.Y = bounds.Y
	case r.Bottom() > bounds.Bottom():
		out.Y = bounds.Bottom() - r.H
	}
	return out
}

// Translate returns the box moved by d.
func (r AABB) Translate(d Vec2) AABB {
	return AABB{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Inset returns the box shrunk by m on every side.
func (r AABB) Inset(m float64) AABB {
	return AABB{X: r.X + m, Y: r.Y + m, W: r.W - 2*m, H: r.H - 2*m}
}

// Rect represents an axis-aligned cell rectangle on a Screen.
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
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
