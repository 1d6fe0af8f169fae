package world

import (
	"math/rand"

	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/physics"
)

// Collect removes every coin overlapping r and returns the removed coins.
// A coin is removed on its first overlap, so it can never be counted twice.
func (w *World) Collect(r core.AABB) []Entity {
	var taken []Entity
	kept := w.Coins[:0]
	for _, c := range w.Coins {
		if c.Tags.Has(Trigger) && r.Intersects(c.Bounds()) {
			taken = append(taken, c)
			continue
		}
		kept = append(kept, c)
	}
	w.Coins = kept
	return taken
}

// HazardsTouching returns the indices of damaging entities overlapping r.
func (w *World) HazardsTouching(r core.AABB) []int {
	var idx []int
	for i := range w.Hazards {
		if w.Hazards[i].Tags.Has(Damaging) && r.Intersects(w.Hazards[i].Bounds()) {
			idx = append(idx, i)
		}
	}
	return idx
}

// PadTouching returns the first launch pad overlapping r.
func (w *World) PadTouching(r core.AABB) (*Entity, bool) {
	for i := range w.Pads {
		if w.Pads[i].Tags.Has(Launcher) && r.Intersects(w.Pads[i].Bounds()) {
			return &w.Pads[i], true
		}
	}
	return nil, false
}

// Launch applies a pad to the player. Top-down play relocates the player to a
// random point; platformer play boosts upward velocity within
// [-1.6*jump, -jump].
func (w *World) Launch(p *Player, mode physics.ControlMode, jumpSpeed float64, rng *rand.Rand) core.Vec2 {
	if mode == physics.ControlPlatformer {
		vy := p.Vel.Y - 0.15*jumpSpeed
		p.Vel.Y = core.ClampF(vy, -1.6*jumpSpeed, -jumpSpeed)
		p.OnGround = false
		return p.Pos
	}
	margin := 80.0
	if w.spec.Pad != nil && w.spec.Pad.RelocateMargin > 0 {
		margin = w.spec.Pad.RelocateMargin
	}
	p.Pos = w.RandomPoint(rng, margin)
	return p.Pos
}

// GoalReached reports whether the player center is within the goal radius
// plus 30% of the player size.
func (w *World) GoalReached(p *Player) bool {
	if !w.Goal.Active {
		return false
	}
	reach := w.Goal.Radius + 0.3*p.W
	d := p.Pos.Sub(w.Goal.Pos)
	return d.LenSq() <= reach*reach
}

// AdvanceGoal consumes one reach. While repeats remain the goal relocates and
// false is returned; the final reach returns true.
func (w *World) AdvanceGoal(rng *rand.Rand) bool {
	if w.Goal.Remaining > 0 {
		w.Goal.Remaining--
		margin := 60.0
		if w.spec.Goal != nil {
			margin = w.spec.Goal.Margin
		}
		w.Goal.Pos = w.RandomPoint(rng, margin)
		return false
	}
	w.Goal.Active = false
	return true
}
