package physics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/feel-arcade/internal/core"
)

// ErrUnknownBoundaryMode is returned when parsing an unrecognized boundary name.
var ErrUnknownBoundaryMode = errors.New("physics: unknown boundary mode")

// BoundaryMode selects what happens when a body reaches the arena edge.
type BoundaryMode int

const (
	BoundaryClamp  BoundaryMode = iota // stop at the edge
	BoundaryWrap                       // leave one side, enter the other
	BoundaryBounce                     // reflect the velocity component
)

var boundaryNames = []string{"clamp", "wrap", "bounce"}

// String returns the lower-case config name of the mode.
func (m BoundaryMode) String() string {
	if m < 0 || int(m) >= len(boundaryNames) {
		return fmt.Sprintf("BoundaryMode(%d)", int(m))
	}
	return boundaryNames[m]
}

// Next cycles clamp -> wrap -> bounce -> clamp.
func (m BoundaryMode) Next() BoundaryMode {
	return BoundaryMode((int(m) + 1) % len(boundaryNames))
}

// ParseBoundaryMode converts a config name (case-insensitive) to a BoundaryMode.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range boundaryNames {
		if n == name {
			return BoundaryMode(i), nil
		}
	}
	return BoundaryClamp, fmt.Errorf("%w: %q", ErrUnknownBoundaryMode, s)
}

// Axes is a bit set of the axes a boundary pass may touch.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY

	AxesBoth = AxisX | AxisY
)

// Contact reports which arena edges a boundary pass acted on.
type Contact struct {
	Left, Right, Top, Bottom bool
	Wrapped                  bool
}

// Side reports a left or right edge contact.
func (c Contact) Side() bool { return c.Left || c.Right }

// Any reports whether the pass changed anything.
func (c Contact) Any() bool {
	return c.Left || c.Right || c.Top || c.Bottom || c.Wrapped
}

// ApplyBoundary keeps b inside arena according to mode, on the given axes only.
// Platformer movement passes AxisX and handles the vertical axis with
// ApplyPlatformerBounds, so the two passes never disturb each other's state.
func ApplyBoundary(b *Body, arena core.AABB, mode BoundaryMode, axes Axes) Contact {
	if !arena.Valid() {
		return Contact{}
	}
	switch mode {
	case BoundaryWrap:
		return wrap(b, arena, axes)
	case BoundaryBounce:
		return bounce(b, arena, axes)
	default:
		return clamp(b, arena, axes)
	}
}

// clamp clips the bounds into the arena. Velocity is left untouched.
func clamp(b *Body, arena core.AABB, axes Axes) Contact {
	var c Contact
	r := b.Bounds()
	clipped := r.ClampInside(arena)

	if axes&AxisX != 0 && clipped.X != r.X {
		c.Left = r.X < arena.X
		c.Right = !c.Left
		b.SetLeft(clipped.X)
	}
	if axes&AxisY != 0 && clipped.Y != r.Y {
		c.Top = r.Y < arena.Y
		c.Bottom = !c.Top
		b.SetTop(clipped.Y)
	}
	return c
}

// wrap relocates a body that has fully left one side so that it sits just
// inside the opposite side. Velocity is preserved.
func wrap(b *Body, arena core.AABB, axes Axes) Contact {
	var c Contact
	r := b.Bounds()

	if axes&AxisX != 0 {
		switch {
		case r.Right() < arena.Left():
			b.SetRight(arena.Right())
			c.Left, c.Wrapped = true, true
		case r.Left() > arena.Right():
			b.SetLeft(arena.Left())
			c.Right, c.Wrapped = true, true
		}
	}
	if axes&AxisY != 0 {
		switch {
		case r.Bottom() < arena.Top():
			b.SetBottom(arena.Bottom())
			c.Top, c.Wrapped = true, true
		case r.Top() > arena.Bottom():
			b.SetTop(arena.Top())
			c.Bottom, c.Wrapped = true, true
		}
	}
	return c
}

// bounce clips the bounds to the crossed edge and reflects the velocity
// component so that it points back into the arena.
func bounce(b *Body, arena core.AABB, axes Axes) Contact {
	var c Contact
	r := b.Bounds()

	if axes&AxisX != 0 {
		switch {
		case r.Left() < arena.Left():
			b.SetLeft(arena.Left())
			if b.Vel.X < 0 {
				b.Vel.X = -b.Vel.X
			}
			c.Left = true
		case r.Right() > arena.Right():
			b.SetRight(arena.Right())
			if b.Vel.X > 0 {
				b.Vel.X = -b.Vel.X
			}
			c.Right = true
		}
	}
	if axes&AxisY != 0 {
		switch {
		case r.Top() < arena.Top():
			b.SetTop(arena.Top())
			if b.Vel.Y < 0 {
				b.Vel.Y = -b.Vel.Y
			}
			c.Top = true
		case r.Bottom() > arena.Bottom():
			b.SetBottom(arena.Bottom())
			if b.Vel.Y > 0 {
				b.Vel.Y = -b.Vel.Y
			}
			c.Bottom = true
		}
	}
	return c
}

// ApplyPlatformerBounds treats the arena bottom as ground and the top as a ceiling.
// Landing zeroes vertical velocity and sets OnGround; hitting the ceiling only
// cancels upward velocity.
func ApplyPlatformerBounds(b *Body, arena core.AABB) Contact {
	var c Contact
	if !arena.Valid() {
		return c
	}

	if b.Bounds().Bottom() >= arena.Bottom() {
		b.SetBottom(arena.Bottom())
		b.Vel.Y = 0
		b.OnGround = true
		c.Bottom = true
	}
	if b.Bounds().Top() < arena.Top() {
		b.SetTop(arena.Top())
		if b.Vel.Y < 0 {
			b.Vel.Y = 0
		}
		c.Top = true
	}
	return c
}
