package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/feel-arcade/internal/core"
)

func TestMoveIntoWallSnapsToNearEdge(t *testing.T) {
	wall := core.NewAABB(100, 0, 16, 400)
	b := Body{Pos: core.V(60, 200), Vel: core.V(3000, 0), W: 28, H: 28}
	y := b.Bounds().Y

	h := Move(&b, core.V(50, 0), []core.AABB{wall})

	require.True(t, h.Right)
	assert.Equal(t, wall.Left(), b.Bounds().Right())
	assert.Equal(t, y, b.Bounds().Y)
	assert.Equal(t, 0.0, b.Vel.X)
	assert.False(t, b.Bounds().Intersects(wall))
}

func TestMoveLeftIntoWall(t *testing.T) {
	wall := core.NewAABB(100, 0, 16, 400)
	b := Body{Pos: core.V(140, 200), W: 28, H: 28}

	h := Move(&b, core.V(-20, 0), []core.AABB{wall})

	require.True(t, h.Left)
	assert.Equal(t, wall.Right(), b.Bounds().Left())
}

func TestMoveDiagonalIntoConcaveCorner(t *testing.T) {
	right := core.NewAABB(200, 0, 16, 300)
	floor := core.NewAABB(0, 200, 216, 16)
	solids := []core.AABB{right, floor}

	for _, step := range []core.Vec2{core.V(30, 30), core.V(40, 10), core.V(10, 40), core.V(25, 25)} {
		b := Body{Pos: core.V(170, 170), W: 28, H: 28}
		for i := 0; i < 5; i++ {
			Move(&b, step, solids)
			r := b.Bounds()
			require.False(t, r.Intersects(right), "step %v overlaps right wall: %+v", step, r)
			require.False(t, r.Intersects(floor), "step %v overlaps floor: %+v", step, r)
		}
		assert.Equal(t, right.Left(), b.Bounds().Right())
		assert.Equal(t, floor.Top(), b.Bounds().Bottom())
		assert.True(t, b.OnGround)
	}
}

func TestMoveMostRestrictiveSolid(t *testing.T) {
	// Two solids overlapped on the same step: the nearer left edge wins.
	a := core.NewAABB(110, 0, 40, 400)
	b2 := core.NewAABB(104, 180, 10, 40)
	b := Body{Pos: core.V(80, 200), W: 28, H: 28}

	Move(&b, core.V(40, 0), []core.AABB{a, b2})

	assert.Equal(t, 104.0, b.Bounds().Right())
}

func TestMoveNoSolids(t *testing.T) {
	b := Body{Pos: core.V(10, 10), Vel: core.V(1, 1), W: 8, H: 8}
	h := Move(&b, core.V(5.5, -2.25), nil)

	assert.False(t, h.Any())
	assert.Equal(t, core.V(15.5, 7.75), b.Pos)
	assert.Equal(t, core.V(1, 1), b.Vel)
}

func TestMoveZeroDeltaDoesNotPushOut(t *testing.T) {
	wall := core.NewAABB(0, 0, 50, 50)
	b := Body{Pos: core.V(25, 25), W: 10, H: 10}

	h := Move(&b, core.Vec2{}, []core.AABB{wall})

	assert.False(t, h.Any())
	assert.Equal(t, core.V(25, 25), b.Pos)
}

func TestMoveCeiling(t *testing.T) {
	ceiling := core.NewAABB(0, 0, 400, 16)
	b := Body{Pos: core.V(100, 40), Vel: core.V(0, -600), W: 28, H: 28}

	h := Move(&b, core.V(0, -20), []core.AABB{ceiling})

	require.True(t, h.Up)
	assert.Equal(t, ceiling.Bottom(), b.Bounds().Top())
	assert.Equal(t, 0.0, b.Vel.Y)
	assert.False(t, b.OnGround)
}

func TestOverlaps(t *testing.T) {
	boxes := []core.AABB{
		core.NewAABB(0, 0, 10, 10),
		core.NewAABB(20, 0, 10, 10),
		core.NewAABB(5, 5, 10, 10),
	}
	assert.Equal(t, []int{0, 2}, Overlaps(core.NewAABB(8, 8, 2, 2), boxes))
	assert.Empty(t, Overlaps(core.NewAABB(100, 100, 2, 2), boxes))
}
