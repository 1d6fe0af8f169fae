// Package physics moves rectangles around an arena: velocity integration for the
// top-down and platformer control modes, arena boundary policies, and
// axis-separated pushout against static solids.
//
// Everything here is a pure function of its inputs. Nothing allocates per tick
// and nothing reads the clock or a global RNG.
package physics

import (
	"math"

	"github.com/vovakirdan/feel-arcade/internal/core"
)

// Body is a center-anchored moving rectangle. Pos is the single source of truth;
// Bounds are derived from it on demand.
type Body struct {
	Pos      core.Vec2
	Vel      core.Vec2
	W, H     float64
	OnGround bool
}

// Bounds returns the rectangle centered on the rounded position.
func (b *Body) Bounds() core.AABB {
	return core.CenteredAt(b.Pos, b.W, b.H)
}

func (b *Body) halfW() float64 { return math.Floor(b.W / 2) }
func (b *Body) halfH() float64 { return math.Floor(b.H / 2) }

// SetLeft moves the body so that its left edge is at x.
func (b *Body) SetLeft(x float64) { b.Pos.X = x + b.halfW() }

// SetRight moves the body so that its right edge is at x.
func (b *Body) SetRight(x float64) { b.Pos.X = x - b.W + b.halfW() }

// SetTop moves the body so that its top edge is at y.
func (b *Body) SetTop(y float64) { b.Pos.Y = y + b.halfH() }

// SetBottom moves the body so that its bottom edge is at y.
func (b *Body) SetBottom(y float64) { b.Pos.Y = y - b.H + b.halfH() }
