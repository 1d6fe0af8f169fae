// Package feedback owns the transient "juice" layered over the simulation:
// camera shake, hitstop, hit flash and particle bursts.
//
// None of it feeds back into gameplay. The simulation reads exactly one thing
// from here each tick, whether hitstop freezes the step.
package feedback

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/feel-arcade/internal/core"
)

// Channel identifies one independently toggleable feedback effect.
type Channel int

const (
	ChannelShake Channel = iota
	ChannelFlash
	ChannelHitstop
	ChannelParticles
)

// Channels lists every channel in HUD order.
var Channels = []Channel{ChannelShake, ChannelFlash, ChannelHitstop, ChannelParticles}

func (ch Channel) String() string {
	switch ch {
	case ChannelShake:
		return "shake"
	case ChannelFlash:
		return "flash"
	case ChannelHitstop:
		return "hitstop"
	case ChannelParticles:
		return "particles"
	default:
		return fmt.Sprintf("Channel(%d)", int(ch))
	}
}

// Toggles enables or disables each channel.
type Toggles struct {
	Shake     bool `yaml:"shake"`
	Flash     bool `yaml:"flash"`
	Hitstop   bool `yaml:"hitstop"`
	Particles bool `yaml:"particles"`
}

// AllOn returns toggles with every channel enabled.
func AllOn() Toggles {
	return Toggles{Shake: true, Flash: true, Hitstop: true, Particles: true}
}

func (t *Toggles) field(ch Channel) *bool {
	switch ch {
	case ChannelShake:
		return &t.Shake
	case ChannelFlash:
		return &t.Flash
	case ChannelHitstop:
		return &t.Hitstop
	case ChannelParticles:
		return &t.Particles
	}
	return nil
}

// Enabled reports whether ch is on.
func (t Toggles) Enabled(ch Channel) bool {
	if f := t.field(ch); f != nil {
		return *f
	}
	return false
}

// Toggle flips ch and returns its new state.
func (t *Toggles) Toggle(ch Channel) bool {
	f := t.field(ch)
	if f == nil {
		return false
	}
	*f = !*f
	return *f
}

// Tuning holds the strengths and durations of the built-in cues.
type Tuning struct {
	ShakeStrength float64 `yaml:"shake_strength"` // max camera offset in px
	PickupShake   float64 `yaml:"pickup_shake"`   // seconds
	HitShake      float64 `yaml:"hit_shake"`      // seconds
	HitHitstop    float64 `yaml:"hit_hitstop"`    // seconds
	HitFlash      float64 `yaml:"hit_flash"`      // seconds

	PickupParticles int     `yaml:"pickup_particles"`
	HitParticles    int     `yaml:"hit_particles"`
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedMax        float64 `yaml:"speed_max"`
	RadiusMin       float64 `yaml:"radius_min"`
	RadiusMax       float64 `yaml:"radius_max"`
	Life            float64 `yaml:"life"`
	MaxParticles    int     `yaml:"max_particles"`
}

// DefaultTuning returns the stock cue values.
func DefaultTuning() Tuning {
	return Tuning{
		ShakeStrength:   10,
		PickupShake:     0.10,
		HitShake:        0.18,
		HitHitstop:      0.06,
		HitFlash:        0.18,
		PickupParticles: 18,
		HitParticles:    26,
		SpeedMin:        80,
		SpeedMax:        240,
		RadiusMin:       2,
		RadiusMax:       5,
		Life:            0.35,
		MaxParticles:    512,
	}
}

// Particle is a purely cosmetic ballistic dot.
type Particle struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Color  core.Color
	Life   float64 // remaining seconds
	TTL    float64 // initial seconds
}

// Alpha is the remaining life fraction in [0, 1], for fading.
func (p Particle) Alpha() float64 {
	if p.TTL <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.TTL, 0, 1)
}

// Controller holds every feedback timer and the particle pool.
// It is not safe for concurrent use; the simulation is its only writer.
type Controller struct {
	Toggles Toggles
	Tuning  Tuning

	rng *rand.Rand

	shakeLeft  float64
	shakeTotal float64
	hitstop    float64
	camera     core.Vec2
	particles  []Particle
}

// NewController creates a controller drawing randomness from rng.
func NewController(tuning Tuning, toggles Toggles, rng *rand.Rand) *Controller {
	return &Controller{
		Toggles:   toggles,
		Tuning:    tuning,
		rng:       rng,
		particles: make([]Particle, 0, 64),
	}
}

// Shake starts (or extends) camera shake. A shorter request never cuts an
// active one short.
func (c *Controller) Shake(d float64) {
	if !c.Toggles.Shake || d <= c.shakeLeft {
		return
	}
	c.shakeLeft = d
	c.shakeTotal = d
}

// Hitstop freezes gameplay for d seconds, or longer if already frozen.
func (c *Controller) Hitstop(d float64) {
	if !c.Toggles.Hitstop {
		return
	}
	c.hitstop = math.Max(c.hitstop, d)
}

// Flash sets the caller-owned tint timer to d.
func (c *Controller) Flash(timer *float64, d float64) {
	if !c.Toggles.Flash || timer == nil {
		return
	}
	*timer = d
}

// Burst spawns n particles radiating from at in random directions.
// The pool is capped at Tuning.MaxParticles; excess particles are not spawned.
func (c *Controller) Burst(at core.Vec2, n int, color core.Color) {
	if !c.Toggles.Particles || n <= 0 {
		return
	}
	t := c.Tuning
	if t.MaxParticles > 0 {
		n = min(n, t.MaxParticles-len(c.particles))
	}
	for i := 0; i < n; i++ {
		angle := c.rng.Float64() * 2 * math.Pi
		speed := uniform(c.rng, t.SpeedMin, t.SpeedMax)
		c.particles = append(c.particles, Particle{
			Pos:    at,
			Vel:    core.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
			Radius: uniform(c.rng, t.RadiusMin, t.RadiusMax),
			Color:  color,
			Life:   t.Life,
			TTL:    t.Life,
		})
	}
}

// OnPickup plays the collect cue: a light shake and a small burst.
func (c *Controller) OnPickup(at core.Vec2, color core.Color) {
	c.Shake(c.Tuning.PickupShake)
	c.Burst(at, c.Tuning.PickupParticles, color)
}

// OnHit plays the damage cue: flash, hitstop, a heavy shake and a larger burst.
func (c *Controller) OnHit(at core.Vec2, color core.Color, flash *float64) {
	c.Flash(flash, c.Tuning.HitFlash)
	c.Hitstop(c.Tuning.HitHitstop)
	c.Shake(c.Tuning.HitShake)
	c.Burst(at, c.Tuning.HitParticles, color)
}

// Tick advances every timer by dt, ages particles, and resamples the camera
// offset. It reports whether hitstop was active for this tick, in which case
// the caller must skip gameplay.
func (c *Controller) Tick(dt float64) (frozen bool) {
	if dt < 0 {
		dt = 0
	}

	c.shakeLeft = math.Max(0, c.shakeLeft-dt)
	if c.shakeLeft == 0 {
		c.shakeTotal = 0
	}
	c.camera = c.sampleCamera()

	frozen = c.hitstop > 0
	c.hitstop = math.Max(0, c.hitstop-dt)

	c.ageParticles(dt)
	return frozen
}

func (c *Controller) sampleCamera() core.Vec2 {
	if !c.Toggles.Shake || c.shakeLeft <= 0 || c.shakeTotal <= 0 {
		return core.Vec2{}
	}
	amp := c.Tuning.ShakeStrength * core.ClampF(c.shakeLeft/c.shakeTotal, 0, 1)
	return core.V(uniform(c.rng, -amp, amp), uniform(c.rng, -amp, amp))
}

// ageParticles moves and ages particles, dropping dead ones in place.
func (c *Controller) ageParticles(dt float64) {
	alive := c.particles[:0]
	for _, p := range c.particles {
		p.Life = math.Max(0, p.Life-dt)
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	c.particles = alive
}

// Reset clears all timers and particles. Toggles and tuning are kept.
func (c *Controller) Reset() {
	c.shakeLeft, c.shakeTotal, c.hitstop = 0, 0, 0
	c.camera = core.Vec2{}
	c.particles = c.particles[:0]
}

// CameraOffset is the render-only offset for this tick.
func (c *Controller) CameraOffset() core.Vec2 { return c.camera }

// ShakeLeft returns remaining shake time.
func (c *Controller) ShakeLeft() float64 { return c.shakeLeft }

// HitstopLeft returns remaining hitstop time.
func (c *Controller) HitstopLeft() float64 { return c.hitstop }

// Particles returns the live particles. The slice is reused between ticks;
// callers must not retain or modify it.
func (c *Controller) Particles() []Particle { return c.particles }

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
