package world

import (
	"fmt"
	"math"

	"github.com/vovakirdan/feel-arcade/internal/anim"
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/physics"
)

// PlayerSpec configures the player at (re)spawn.
type PlayerSpec struct {
	Size         float64 `yaml:"size"`
	HP           int     `yaml:"hp"`
	Grace        float64 `yaml:"grace"`     // seconds of invincibility after a hit
	Knockback    float64 `yaml:"knockback"` // px/s
	DashImpulse  float64 `yaml:"dash_impulse"`
	DashCooldown float64 `yaml:"dash_cooldown"`
}

// DefaultPlayerSpec returns the stock player tuning.
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Size:         28,
		HP:           3,
		Grace:        0.85,
		Knockback:    540,
		DashImpulse:  760,
		DashCooldown: 0.65,
	}
}

// Player is the controlled entity.
type Player struct {
	physics.Body

	HP            int
	Score         int
	InvincibleFor float64
	FlashFor      float64

	Anim anim.Machine
	Dash physics.Dasher

	spec PlayerSpec
}

// NewPlayer creates a player centered at c.
func NewPlayer(spec PlayerSpec, c core.Vec2) (*Player, error) {
	if spec.Size <= 0 {
		return nil, fmt.Errorf("%w: player size %v", ErrInvalidBounds, spec.Size)
	}
	p := &Player{spec: spec}
	p.Reset(c)
	return p, nil
}

// Spec returns the tuning the player was built with.
func (p *Player) Spec() PlayerSpec { return p.spec }

// Reset restores hp and score and places the player at c, at rest.
func (p *Player) Reset(c core.Vec2) {
	p.HP = p.spec.HP
	p.Score = 0
	p.Respawn(c)
}

// Respawn places the player at c at rest, clearing timers but keeping hp and score.
func (p *Player) Respawn(c core.Vec2) {
	p.Body = physics.Body{Pos: c, W: p.spec.Size, H: p.spec.Size}
	p.InvincibleFor = 0
	p.FlashFor = 0
	p.Anim = anim.NewMachine()
	p.Dash = physics.NewDasher(p.spec.DashImpulse, p.spec.DashCooldown)
}

// Invincible reports whether the grace window is active.
func (p *Player) Invincible() bool { return p.InvincibleFor > 0 }

// Alive reports whether the player has hp left.
func (p *Player) Alive() bool { return p.HP > 0 }

// TickTimers counts the grace and flash timers down toward zero.
func (p *Player) TickTimers(dt float64) {
	p.InvincibleFor = math.Max(0, p.InvincibleFor-dt)
	p.FlashFor = math.Max(0, p.FlashFor-dt)
}

// Hurt applies one point of damage from a source centered at from, unless the
// grace window is active. The knockback replaces the current velocity and
// points from the source to the player, or along +x if the centers coincide.
func (p *Player) Hurt(from core.Vec2) bool {
	if p.Invincible() || !p.Alive() {
		return false
	}
	p.HP--
	p.InvincibleFor = p.spec.Grace

	push := p.Bounds().Center().Sub(from)
	if push.IsZero() {
		push = core.V(1, 0)
	}
	p.Vel = push.WithLen(p.spec.Knockback)
	return true
}
