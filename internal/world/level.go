package world

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/feel-arcade/internal/anim"
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/physics"
)

// Rect is a rectangle given relative to the arena's top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// HazardSpec places one hazard relative to the arena center.
type HazardSpec struct {
	Offset core.Vec2
	Size   float64
	Range  float64 // patrol half-width, 0 for stationary
	Speed  float64
	Spin   float64 // degrees per second
}

// CoinSpec controls rejection sampling of pickups.
type CoinSpec struct {
	Count    int
	Attempts int     // candidates tried per coin before giving up on it
	Margin   float64 // keep-out distance from the arena edge
	Size     float64
}

// GoalSpec enables the reach-the-target win condition.
type GoalSpec struct {
	Radius     float64
	Margin     float64
	MaxRepeats int // repeat counter is drawn from [0, MaxRepeats]
}

// PadSpec places a launch pad relative to the arena's top-left corner.
// With a PlaceMargin the pad is centered on a random point instead and only
// its size is taken from Rect.
type PadSpec struct {
	Rect
	PlaceMargin    float64
	RelocateMargin float64
}

// LevelSpec is a level description. Building it twice with equal seeds
// produces equal worlds.
type LevelSpec struct {
	Arena      core.AABB
	Border     float64 // thickness of solid walls around the arena, 0 for an open arena
	Walls      []Rect
	Hazards    []HazardSpec
	Coins      CoinSpec
	Goal       *GoalSpec
	Pad        *PadSpec
	PlayerSize float64 // reserved spawn footprint at the arena center
}

// Goal is a circular target with a repeat counter.
type Goal struct {
	Pos       core.Vec2
	Radius    float64
	Remaining int // further reaches required after the next one
	Active    bool
}

// World is the mutable content of a running level.
type World struct {
	Arena   core.AABB
	Walls   []Entity
	Coins   []Entity
	Hazards []Entity
	Pads    []Entity
	Goal    Goal

	spec   LevelSpec
	solids []core.AABB
	nextID int
}

// Build creates a world from spec. Coins, the goal and pad relocation draw from rng.
func Build(spec LevelSpec, rng *rand.Rand) (*World, error) {
	if !spec.Arena.Valid() {
		return nil, fmt.Errorf("%w: arena %vx%v", ErrInvalidBounds, spec.Arena.W, spec.Arena.H)
	}
	w := &World{Arena: spec.Arena, spec: spec}

	if t := spec.Border; t > 0 {
		a := spec.Arena
		for _, r := range []Rect{
			{0, 0, a.W, t},
			{0, a.H - t, a.W, t},
			{0, 0, t, a.H},
			{a.W - t, 0, t, a.H},
		} {
			if err := w.addWall(r); err != nil {
				return nil, err
			}
		}
	}
	for _, r := range spec.Walls {
		if err := w.addWall(r); err != nil {
			return nil, err
		}
	}

	center := spec.Arena.Center()
	for _, hs := range spec.Hazards {
		size := hs.Size
		if size == 0 {
			size = 28
		}
		hz, err := NewEntity(Damaging|Movable, center.Add(hs.Offset), size, size, core.ColorHazard)
		if err != nil {
			return nil, fmt.Errorf("hazard: %w", err)
		}
		hz.Patrol = Patrol{Home: hz.Body.Pos.X, Range: hs.Range, Speed: hs.Speed, Dir: 1}
		hz.Spin = hs.Spin
		w.add(&w.Hazards, hz)
	}

	if ps := spec.Pad; ps != nil {
		at := w.local(ps.Rect).Center()
		if ps.PlaceMargin > 0 {
			at = w.RandomPoint(rng, ps.PlaceMargin)
		}
		pad, err := NewEntity(Launcher, at, ps.W, ps.H, core.ColorLauncher)
		if err != nil {
			return nil, fmt.Errorf("pad: %w", err)
		}
		w.add(&w.Pads, pad)
	}

	if gs := spec.Goal; gs != nil {
		w.Goal = Goal{Radius: gs.Radius, Active: true}
		w.Goal.Remaining = rng.Intn(gs.MaxRepeats + 1)
		w.Goal.Pos = w.RandomPoint(rng, gs.Margin)
	}

	var spawn []core.AABB
	if spec.PlayerSize > 0 {
		spawn = append(spawn, core.CenteredAt(w.PlayerStart(), spec.PlayerSize, spec.PlayerSize))
	}
	w.SpawnCoins(rng, spawn...)
	return w, nil
}

// local converts an arena-relative rectangle to world coordinates.
func (w *World) local(r Rect) core.AABB {
	return core.NewAABB(w.Arena.X+r.X, w.Arena.Y+r.Y, r.W, r.H)
}

func (w *World) addWall(r Rect) error {
	box := w.local(r)
	wall, err := NewEntity(Solid, box.Center(), box.W, box.H, core.ColorWall)
	if err != nil {
		return fmt.Errorf("wall: %w", err)
	}
	w.add(&w.Walls, wall)
	w.solids = append(w.solids, wall.Bounds())
	return nil
}

func (w *World) add(list *[]Entity, e Entity) {
	w.nextID++
	e.ID = w.nextID
	*list = append(*list, e)
}

// Spec returns the level description the world was built from.
func (w *World) Spec() LevelSpec { return w.spec }

// Solids returns wall rectangles. Walls never move, so the slice is shared.
func (w *World) Solids() []core.AABB { return w.solids }

// Walled reports whether the level has solid geometry.
func (w *World) Walled() bool { return len(w.solids) > 0 }

// PlayerStart is the spawn point, the arena center.
func (w *World) PlayerStart() core.Vec2 { return w.Arena.Center() }

// RandomPoint returns an integer point at least margin inside the arena.
func (w *World) RandomPoint(rng *rand.Rand, margin float64) core.Vec2 {
	in := w.Arena.Inset(margin)
	return core.V(
		randRange(rng, in.Left(), in.Right()),
		randRange(rng, in.Top(), in.Bottom()),
	)
}

// randRange returns an integer in [lo, hi], or lo if the range is empty.
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	l, h := int(lo), int(hi)
	if h <= l {
		return float64(l)
	}
	return float64(l + rng.Intn(h-l+1))
}

// SpawnCoins replaces the coin set with a fresh rejection-sampled layout.
// Candidates overlapping walls, hazards, other coins or any avoid box are
// rejected; a coin that finds no spot within its attempts is skipped.
func (w *World) SpawnCoins(rng *rand.Rand, avoid ...core.AABB) {
	w.Coins = w.Coins[:0]
	cs := w.spec.Coins
	if cs.Count <= 0 || cs.Size <= 0 {
		return
	}
	attempts := cs.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var blocked []core.AABB
	blocked = append(blocked, w.solids...)
	for i := range w.Hazards {
		blocked = append(blocked, w.Hazards[i].Bounds())
	}
	blocked = append(blocked, avoid...)

	for n := 0; n < cs.Count; n++ {
		for try := 0; try < attempts; try++ {
			c := w.RandomPoint(rng, cs.Margin)
			box := core.CenteredAt(c, cs.Size, cs.Size)
			if len(physics.Overlaps(box, blocked)) > 0 {
				continue
			}
			coin, err := NewEntity(Trigger, c, cs.Size, cs.Size, core.ColorCoin)
			if err != nil {
				return
			}
			coin.Clip = anim.CoinClip
			w.add(&w.Coins, coin)
			blocked = append(blocked, box)
			break
		}
	}
}

// Animate advances hazards and coins. It runs in every game state.
func (w *World) Animate(dt float64) {
	for i := range w.Hazards {
		w.Hazards[i].Animate(dt)
	}
	for i := range w.Coins {
		w.Coins[i].Animate(dt)
	}
}
