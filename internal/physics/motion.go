package physics

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/feel-arcade/internal/core"
)

// ErrUnknownControlMode is returned when parsing an unrecognized control name.
var ErrUnknownControlMode = errors.New("physics: unknown control mode")

// ControlMode selects how intent becomes velocity.
type ControlMode int

const (
	ControlTopDown    ControlMode = iota // free 2D movement with friction
	ControlPlatformer                    // horizontal run, gravity, jump
)

// String returns the config name of the mode.
func (m ControlMode) String() string {
	switch m {
	case ControlTopDown:
		return "topdown"
	case ControlPlatformer:
		return "platformer"
	default:
		return fmt.Sprintf("ControlMode(%d)", int(m))
	}
}

// Toggle switches between top-down and platformer.
func (m ControlMode) Toggle() ControlMode {
	if m == ControlPlatformer {
		return ControlTopDown
	}
	return ControlPlatformer
}

// ParseControlMode converts a config name to a ControlMode.
// "top-down" and "top_down" are accepted as spellings of topdown.
func ParseControlMode(s string) (ControlMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "", "_", "").Replace(name)
	switch name {
	case "topdown":
		return ControlTopDown, nil
	case "platformer":
		return ControlPlatformer, nil
	}
	return ControlTopDown, fmt.Errorf("%w: %q", ErrUnknownControlMode, s)
}

// Feel bundles the movement tuning that defines how control "feels".
type Feel struct {
	Name      string
	Accel     float64 // px/s^2 while input is held
	MaxSpeed  float64 // px/s cap applied after acceleration
	Friction  float64 // 1/s exponential decay rate with no input
	Gravity   float64 // px/s^2, platformer only
	JumpSpeed float64 // px/s, platformer only
}

// Built-in presets.
var (
	FeelClassic = Feel{Name: "classic", Accel: 2400, MaxSpeed: 520, Friction: 10, Gravity: 1200, JumpSpeed: 640}
	FeelTight   = Feel{Name: "tight", Accel: 3200, MaxSpeed: 520, Friction: 14, Gravity: 2600, JumpSpeed: 860}
	FeelFloaty  = Feel{Name: "floaty", Accel: 1900, MaxSpeed: 560, Friction: 6, Gravity: 1700, JumpSpeed: 760}
	FeelHeavy   = Feel{Name: "heavy", Accel: 1400, MaxSpeed: 440, Friction: 4.2, Gravity: 3200, JumpSpeed: 820}
)

// DefaultFeels returns the built-in presets in cycling order.
func DefaultFeels() []Feel {
	return []Feel{FeelTight, FeelFloaty, FeelHeavy, FeelClassic}
}

// decay returns the factor applied to velocity by one tick of friction.
// Clamped to [0, 1] so velocity approaches zero without crossing it.
func decay(friction, dt float64) float64 {
	return 1 - math.Min(1, math.Max(0, friction*dt))
}

// IntegrateTopDown accelerates b along dir (unit or zero), applies friction when
// there is no input, caps speed at f.MaxSpeed preserving direction, and returns
// the displacement for this tick. Position is not changed here.
func IntegrateTopDown(b *Body, dir core.Vec2, f Feel, dt float64) core.Vec2 {
	if dt <= 0 {
		return core.Vec2{}
	}

	b.Vel = b.Vel.Add(dir.Scale(f.Accel * dt))
	if dir.IsZero() {
		b.Vel = b.Vel.Scale(decay(f.Friction, dt))
	}
	if f.MaxSpeed > 0 && b.Vel.LenSq() > f.MaxSpeed*f.MaxSpeed {
		b.Vel = b.Vel.WithLen(f.MaxSpeed)
	}
	return b.Vel.Scale(dt)
}

// IntegratePlatformer runs the horizontal axis like top-down movement, honors a
// jump request only when grounded, and always applies gravity. OnGround is
// cleared here and re-derived by the ground checks that follow.
// Returns the displacement and whether a jump happened.
func IntegratePlatformer(b *Body, dirX float64, jump bool, f Feel, dt float64) (core.Vec2, bool) {
	if dt <= 0 {
		return core.Vec2{}, false
	}

	b.Vel.X += dirX * f.Accel * dt
	if dirX == 0 {
		b.Vel.X *= decay(f.Friction, dt)
	}
	if f.MaxSpeed > 0 {
		b.Vel.X = core.ClampF(b.Vel.X, -f.MaxSpeed, f.MaxSpeed)
	}

	jumped := false
	if jump && b.OnGround {
		b.Vel.Y = -f.JumpSpeed
		jumped = true
	}
	b.OnGround = false

	b.Vel.Y += f.Gravity * dt
	return b.Vel.Scale(dt), jumped
}

// Dasher is the dash ability: a one-shot impulse along the last movement
// direction, gated by a cooldown.
type Dasher struct {
	Impulse  float64   // px/s added to velocity
	Cooldown float64   // seconds between dashes
	Left     float64   // remaining cooldown
	LastDir  core.Vec2 // last nonzero movement direction, unit length
}

// NewDasher creates a ready dash facing +x.
func NewDasher(impulse, cooldown float64) Dasher {
	return Dasher{Impulse: impulse, Cooldown: cooldown, LastDir: core.V(1, 0)}
}

// Track records dir as the facing direction if it is nonzero.
func (d *Dasher) Track(dir core.Vec2) {
	if !dir.IsZero() {
		d.LastDir = dir.Normalize()
	}
}

// Tick counts the cooldown down toward zero.
func (d *Dasher) Tick(dt float64) {
	d.Left = math.Max(0, d.Left-dt)
}

// Ready reports whether a dash may fire now.
func (d *Dasher) Ready() bool {
	return d.Left <= 0
}

// TryDash adds the impulse to b's velocity if the cooldown allows it.
// The result may exceed the feel's max speed; later friction and clamping bring it back.
func (d *Dasher) TryDash(b *Body) bool {
	if !d.Ready() || d.Impulse <= 0 {
		return false
	}
	dir := d.LastDir
	if dir.IsZero() {
		dir = core.V(1, 0)
	}
	b.Vel = b.Vel.Add(dir.Normalize().Scale(d.Impulse))
	d.Left = d.Cooldown
	return true
}
