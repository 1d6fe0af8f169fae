// Package world holds the entities of one level and the rules for how the
// player interacts with them: pickups, damage, launch pads and the goal.
package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/feel-arcade/internal/anim"
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/physics"
)

// ErrInvalidBounds is returned when an entity would have a non-positive size.
var ErrInvalidBounds = errors.New("world: entity bounds must be positive")

// Tag is a capability bit set. Behavior is dispatched on tags, not on type.
type Tag uint8

const (
	Movable  Tag = 1 << iota // integrated and resolved each tick
	Solid                    // blocks movement
	Trigger                  // consumed on first overlap
	Damaging                 // hurts the player on overlap
	Launcher                 // relocates or boosts the player on overlap, never consumed
)

// Has reports whether every bit of want is set.
func (t Tag) Has(want Tag) bool { return t&want == want }

func (t Tag) String() string {
	names := []string{"movable", "solid", "trigger", "damaging", "launcher"}
	out := ""
	for i, n := range names {
		if t&(1<<i) != 0 {
			if out != "" {
				out += "|"
			}
			out += n
		}
	}
	if out == "" {
		return "none"
	}
	return out
}

// Patrol moves an entity back and forth along x around Home.
// A zero Range or Speed means the entity is stationary.
type Patrol struct {
	Home  float64
	Range float64
	Speed float64
	Dir   float64 // -1 or +1
}

// Step returns the next x for an entity currently at x, turning at either end.
func (p *Patrol) Step(x, dt float64) float64 {
	if p.Range <= 0 || p.Speed <= 0 {
		return x
	}
	if p.Dir == 0 {
		p.Dir = 1
	}
	x += p.Dir * p.Speed * dt
	switch {
	case x < p.Home-p.Range:
		x = p.Home - p.Range
		p.Dir = 1
	case x > p.Home+p.Range:
		x = p.Home + p.Range
		p.Dir = -1
	}
	return x
}

// Entity is any non-player object in a level.
type Entity struct {
	ID    int
	Tags  Tag
	Body  physics.Body
	Color core.Color

	Patrol Patrol
	Spin   float64 // degrees per second, cosmetic
	Angle  float64 // degrees in [0, 360)

	Clip   anim.Clip
	Cursor anim.Cursor
}

// NewEntity creates an entity of size w×h centered at c.
func NewEntity(tags Tag, c core.Vec2, w, h float64, color core.Color) (Entity, error) {
	if w <= 0 || h <= 0 {
		return Entity{}, fmt.Errorf("%w: %vx%v", ErrInvalidBounds, w, h)
	}
	return Entity{
		Tags:  tags,
		Body:  physics.Body{Pos: c, W: w, H: h},
		Color: color,
	}, nil
}

// Bounds returns the entity rectangle.
func (e *Entity) Bounds() core.AABB { return e.Body.Bounds() }

// Center returns the center of the entity rectangle.
func (e *Entity) Center() core.Vec2 { return e.Body.Bounds().Center() }

// Animate runs kinematic patrol and cosmetic spin/frame playback.
// Solids never move.
func (e *Entity) Animate(dt float64) {
	if dt <= 0 || e.Tags.Has(Solid) {
		return
	}
	e.Body.Pos.X = e.Patrol.Step(e.Body.Pos.X, dt)
	if e.Spin != 0 {
		e.Angle = math.Mod(e.Angle+e.Spin*dt, 360)
		if e.Angle < 0 {
			e.Angle += 360
		}
	}
	e.Cursor.Advance(e.Clip, dt)
}
