package physics

import (
	"math"

	"github.com/vovakirdan/feel-arcade/internal/core"
)

// Hits reports which sides of the body were stopped by a solid during a move.
type Hits struct {
	Left, Right, Up, Down bool
}

// Any reports whether any solid blocked the move.
func (h Hits) Any() bool { return h.Left || h.Right || h.Up || h.Down }

// Move displaces b by delta, resolving against solids one axis at a time: the
// full x step is applied and pushed out first, then the y step. A blocked axis
// snaps the leading edge to the nearest solid's near edge and zeroes that
// velocity component. Landing on a solid sets OnGround.
func Move(b *Body, delta core.Vec2, solids []core.AABB) Hits {
	var h Hits

	b.Pos.X += delta.X
	if delta.X != 0 && len(solids) > 0 {
		r := b.Bounds()
		if delta.X > 0 {
			if edge, ok := nearest(r, solids, func(s core.AABB) float64 { return s.Left() }, math.Min); ok {
				b.SetRight(edge)
				b.Vel.X = 0
				h.Right = true
			}
		} else {
			if edge, ok := nearest(r, solids, func(s core.AABB) float64 { return s.Right() }, math.Max); ok {
				b.SetLeft(edge)
				b.Vel.X = 0
				h.Left = true
			}
		}
	}

	b.Pos.Y += delta.Y
	if delta.Y != 0 && len(solids) > 0 {
		r := b.Bounds()
		if delta.Y > 0 {
			if edge, ok := nearest(r, solids, func(s core.AABB) float64 { return s.Top() }, math.Min); ok {
				b.SetBottom(edge)
				b.Vel.Y = 0
				b.OnGround = true
				h.Down = true
			}
		} else {
			if edge, ok := nearest(r, solids, func(s core.AABB) float64 { return s.Bottom() }, math.Max); ok {
				b.SetTop(edge)
				if b.Vel.Y < 0 {
					b.Vel.Y = 0
				}
				h.Up = true
			}
		}
	}
	return h
}

// nearest folds edge() over every solid overlapping r with pick (min or max),
// giving the most restrictive stop when several solids are hit at once.
func nearest(r core.AABB, solids []core.AABB, edge func(core.AABB) float64, pick func(a, b float64) float64) (float64, bool) {
	var (
		best  float64
		found bool
	)
	for _, s := range solids {
		if !r.Intersects(s) {
			continue
		}
		if !found {
			best, found = edge(s), true
			continue
		}
		best = pick(best, edge(s))
	}
	return best, found
}

// Overlaps returns the indices of boxes that intersect r.
func Overlaps(r core.AABB, boxes []core.AABB) []int {
	var idx []int
	for i, o := range boxes {
		if r.Intersects(o) {
			idx = append(idx, i)
		}
	}
	return idx
}
