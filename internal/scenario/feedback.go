package scenario

import (
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/registry"
	"github.com/vovakirdan/feel-arcade/internal/sim"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

func init() {
	registry.Register("feedback", func() registry.Scenario { return Feedback{} })
}

// Feedback is an endless walled level for tuning game feel: every cue can be
// switched on and off while playing.
type Feedback struct{}

func (Feedback) ID() string    { return "feedback" }
func (Feedback) Title() string { return "Animation & Feedback" }
func (Feedback) Description() string {
	return "Endless coins with shake, flash, hitstop and particles on keys 3-6."
}

func (Feedback) Level() world.LevelSpec {
	return world.LevelSpec{
		Arena:  core.Playfield(56, 12),
		Border: 16,
		Walls: []world.Rect{
			{X: 180, Y: 110, W: 18, H: 240},
			{X: 420, Y: 40, W: 18, H: 240},
			{X: 560, Y: 240, W: 260, H: 18},
		},
		Hazards: []world.HazardSpec{
			{Offset: core.V(190, -80), Size: 34, Spin: 210},
			{Offset: core.V(-150, 140), Size: 34, Spin: 260},
		},
		Coins: world.CoinSpec{Count: 10, Attempts: 120, Margin: 50, Size: 18},
	}
}

func (Feedback) Configure(opts *sim.Options) {
	opts.Endless = true
	opts.StartInTitle = true
}
