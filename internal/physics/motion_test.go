package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/feel-arcade/internal/core"
)

func TestParseControlMode(t *testing.T) {
	tests := map[string]ControlMode{
		"topdown":    ControlTopDown,
		"Top-Down":   ControlTopDown,
		"top_down":   ControlTopDown,
		"platformer": ControlPlatformer,
	}
	for in, want := range tests {
		got, err := ParseControlMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseControlMode("racing")
	assert.ErrorIs(t, err, ErrUnknownControlMode)
	assert.Equal(t, ControlPlatformer, ControlTopDown.Toggle())
}

func TestFrictionDecayNeverOvershoots(t *testing.T) {
	b := Body{Vel: core.V(100, 0), W: 28, H: 28}
	f := Feel{Accel: 2400, MaxSpeed: 520, Friction: 10}

	prev := b.Vel.X
	for i := 0; i < 100; i++ {
		IntegrateTopDown(&b, core.Vec2{}, f, 0.05)
		require.GreaterOrEqual(t, b.Vel.X, 0.0, "tick %d crossed zero", i)
		require.LessOrEqual(t, b.Vel.X, prev)
		prev = b.Vel.X
	}
	assert.InDelta(t, 0, b.Vel.X, 1e-9)
	assert.Equal(t, 0.0, b.Vel.Y)
}

func TestFrictionFactorClampedAtOne(t *testing.T) {
	b := Body{Vel: core.V(100, -50)}
	IntegrateTopDown(&b, core.Vec2{}, Feel{Friction: 40}, 0.05)

	assert.Equal(t, core.V(0, 0), b.Vel)
}

func TestTopDownSpeedCapPreservesDirection(t *testing.T) {
	b := Body{}
	dir := core.V(1, 1).Normalize()

	for i := 0; i < 120; i++ {
		IntegrateTopDown(&b, dir, FeelClassic, 1.0/60)
	}

	assert.InDelta(t, FeelClassic.MaxSpeed, b.Vel.Len(), 1e-9)
	assert.InDelta(t, b.Vel.X, b.Vel.Y, 1e-9)
}

func TestTopDownReturnsDisplacement(t *testing.T) {
	b := Body{}
	d := IntegrateTopDown(&b, core.V(1, 0), FeelClassic, 0.01)

	assert.InDelta(t, 24.0, b.Vel.X, 1e-9)
	assert.InDelta(t, 0.24, d.X, 1e-9)
	assert.Equal(t, core.Vec2{}, b.Pos, "integration must not move the body")

	assert.Equal(t, core.Vec2{}, IntegrateTopDown(&b, core.V(1, 0), FeelClassic, 0))
}

func TestPlatformerJump(t *testing.T) {
	f := FeelClassic
	f.JumpSpeed = 640
	dt := 1.0 / 60

	b := Body{Pos: core.V(100, 468), W: 32, H: 32, OnGround: true}

	_, jumped := IntegratePlatformer(&b, 0, true, f, dt)
	require.True(t, jumped)
	assert.InDelta(t, -640+f.Gravity*dt, b.Vel.Y, 1e-9)
	assert.False(t, b.OnGround)

	// Airborne request is dropped, only gravity acts.
	before := b.Vel.Y
	_, jumped = IntegratePlatformer(&b, 0, true, f, dt)
	assert.False(t, jumped)
	assert.InDelta(t, before+f.Gravity*dt, b.Vel.Y, 1e-9)
}

func TestPlatformerJumpWithoutGravity(t *testing.T) {
	b := Body{OnGround: true}
	_, jumped := IntegratePlatformer(&b, 0, true, Feel{JumpSpeed: 640}, 0.016)

	require.True(t, jumped)
	assert.Equal(t, -640.0, b.Vel.Y)
	assert.False(t, b.OnGround)
}

func TestPlatformerHorizontalCap(t *testing.T) {
	b := Body{Vel: core.V(-2000, 0)}
	IntegratePlatformer(&b, -1, false, FeelTight, 1.0/60)

	assert.Equal(t, -FeelTight.MaxSpeed, b.Vel.X)
}

func TestDash(t *testing.T) {
	d := NewDasher(760, 0.65)
	b := Body{Vel: core.V(500, 0)}

	require.True(t, d.TryDash(&b))
	assert.Equal(t, 1260.0, b.Vel.X, "dash ignores the speed cap")
	assert.False(t, d.Ready())

	assert.False(t, d.TryDash(&b), "cooldown blocks a second dash")
	assert.Equal(t, 1260.0, b.Vel.X)

	for i := 0; i < 40; i++ {
		d.Tick(1.0 / 60)
	}
	assert.True(t, d.Ready())
	assert.Equal(t, 0.0, d.Left, "cooldown stops at zero")
}

func TestDashUsesLastDirection(t *testing.T) {
	d := NewDasher(100, 0.5)
	d.Track(core.V(0, -3))
	d.Track(core.Vec2{}) // zero input keeps the previous facing

	b := Body{}
	require.True(t, d.TryDash(&b))
	assert.InDelta(t, 0, b.Vel.X, 1e-9)
	assert.InDelta(t, -100, b.Vel.Y, 1e-9)

	// Uninitialized direction falls back to +x.
	var raw Dasher
	raw.Impulse = 50
	b = Body{}
	require.True(t, raw.TryDash(&b))
	assert.Equal(t, core.V(50, 0), b.Vel)
}
