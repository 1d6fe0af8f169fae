package scenario

import (
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/registry"
	"github.com/vovakirdan/feel-arcade/internal/sim"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

func init() {
	registry.Register("bounds", func() registry.Scenario { return Bounds{} })
}

// Bounds is an open arena for trying the boundary policies: reach the goal
// before the timer runs out, with a pad that throws the player around.
type Bounds struct{}

func (Bounds) ID() string    { return "bounds" }
func (Bounds) Title() string { return "Movement & Bounds" }
func (Bounds) Description() string {
	return "Reach the goal before time runs out. 1 cycles clamp/wrap/bounce."
}

func (Bounds) Level() world.LevelSpec {
	return world.LevelSpec{
		Arena: core.Playfield(54, 10),
		Goal:  &world.GoalSpec{Radius: 16, Margin: 60, MaxRepeats: 2},
		Pad: &world.PadSpec{
			Rect:           world.Rect{W: 40, H: 40},
			PlaceMargin:    70,
			RelocateMargin: 80,
		},
	}
}

func (Bounds) Configure(opts *sim.Options) {
	preferFeel(opts, "classic")
	opts.TimeLimit = 30
	opts.StartInTitle = true
}
