package scenario

import (
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/registry"
	"github.com/vovakirdan/feel-arcade/internal/sim"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

func init() {
	registry.Register("walls", func() registry.Scenario { return Walls{} })
}

// Walls is a walled room with solid interior walls, patrolling hazards and
// coins to collect.
type Walls struct{}

func (Walls) ID() string          { return "walls" }
func (Walls) Title() string       { return "Sprites & Collisions" }
func (Walls) Description() string { return "Collect every coin. Walls block, hazards hurt." }

func (Walls) Level() world.LevelSpec {
	return world.LevelSpec{
		Arena:  core.Playfield(56, 12),
		Border: 16,
		Walls: []world.Rect{
			{X: 120, Y: 90, W: 18, H: 280},
			{X: 380, Y: 40, W: 18, H: 240},
			{X: 540, Y: 220, W: 240, H: 18},
		},
		Hazards: []world.HazardSpec{
			{Offset: core.V(180, -80), Range: 140, Speed: 180},
			{Offset: core.V(-140, 140), Range: 110, Speed: 220},
		},
		Coins: world.CoinSpec{Count: 8, Attempts: 100, Margin: 40, Size: 18},
	}
}

func (Walls) Configure(opts *sim.Options) {}
