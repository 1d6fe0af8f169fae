package scenario

import (
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/registry"
	"github.com/vovakirdan/feel-arcade/internal/sim"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

func init() {
	registry.Register("loop", func() registry.Scenario { return Loop{} })
}

// Loop is the complete game loop in an open arena: ten coins to win, three
// hits to lose.
type Loop struct{}

func (Loop) ID() string          { return "loop" }
func (Loop) Title() string       { return "Collision Game Loop" }
func (Loop) Description() string { return "Collect 10 coins before the hazards take your 3 HP." }

func (Loop) Level() world.LevelSpec {
	return world.LevelSpec{
		Arena: core.Playfield(56, 12),
		Hazards: []world.HazardSpec{
			{Offset: core.V(220, -80), Range: 140, Speed: 180},
			{Offset: core.V(-160, 120), Range: 110, Speed: 220},
		},
		Coins: world.CoinSpec{Count: 10, Attempts: 200, Margin: 30, Size: 18},
	}
}

func (Loop) Configure(opts *sim.Options) {
	opts.CoinsToWin = 10
}
