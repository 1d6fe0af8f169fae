package scenario

import (
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/registry"
	"github.com/vovakirdan/feel-arcade/internal/sim"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

func init() {
	registry.Register("feel", func() registry.Scenario { return Feel{} })
}

// Feel is an empty arena for comparing movement presets and the dash.
type Feel struct{}

func (Feel) ID() string          { return "feel" }
func (Feel) Title() string       { return "Input & Control Feel" }
func (Feel) Description() string { return "Compare feel presets with F, dash with Shift." }

func (Feel) Level() world.LevelSpec {
	return world.LevelSpec{Arena: core.Playfield(54, 10)}
}

func (Feel) Configure(opts *sim.Options) {
	preferFeel(opts, "tight")
	opts.StartInTitle = true
}
