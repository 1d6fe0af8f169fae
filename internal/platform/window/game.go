// Package window is the desktop front end. It runs the simulation inside an
// ebiten game loop at a fixed logical resolution of one pixel per arena unit.
package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/feel-arcade/internal/config"
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/physics"
	"github.com/vovakirdan/feel-arcade/internal/registry"
	"github.com/vovakirdan/feel-arcade/internal/sim"
)

// Options configures a desktop session.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Watcher *config.Watcher // nil disables hot reload
}

// Game implements ebiten.Game.
type Game struct {
	sim      *sim.Simulation
	scenario registry.Scenario
	clock    *sim.Clock
	input    input
	watcher  *config.Watcher
	log      *log.Logger
	debug    bool
}

// NewGame wraps a simulation for the ebiten loop.
func NewGame(s *sim.Simulation, sc registry.Scenario, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		sim:      s,
		scenario: sc,
		clock:    sim.NewClock(opts.Runtime.MaxDelta),
		watcher:  opts.Watcher,
		log:      logger.With("scenario", sc.ID()),
	}
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	g.pollConfig()

	intent := g.input.poll(g.sim.Control() == physics.ControlPlatformer)
	if intent.Has(core.ActionQuit) {
		g.log.Info("quit", "score", g.sim.Player().Score, "ticks", g.sim.Ticks())
		return ebiten.Termination
	}
	if intent.Has(core.ActionToggleDebug) {
		g.debug = !g.debug
	}
	if intent.Has(core.ActionCycleScheme) {
		g.log.Debug("control scheme", "scheme", g.input.scheme)
	}

	res := g.sim.Step(intent, g.clock.Tick())
	for _, e := range res.Events {
		switch e.Kind {
		case sim.EventStateChanged:
			g.log.Info("state", "to", e.State)
		case sim.EventToggle, sim.EventModeChanged, sim.EventFeelChanged:
			g.log.Info(e.Kind.String(), "detail", e.Detail)
		case sim.EventHit:
			g.log.Debug("hit", "hp", e.Count)
		}
	}
	return nil
}

// pollConfig applies a pending hot reload without blocking the frame.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Updates:
		if !ok {
			g.watcher = nil
			return
		}
		if err := cfg.Apply(g.sim); err != nil {
			g.log.Warn("config reload rejected", "err", err)
			return
		}
		g.log.Info("config reloaded", "boundary", g.sim.Boundary(), "feel", g.sim.Feel().Name)
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("config reload rejected", "err", err)
		}
	default:
	}
}

// Layout fixes the logical screen to the arena size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ArenaWidth, core.ArenaHeight
}

// Run opens a window and blocks until it is closed or the player quits.
func Run(s *sim.Simulation, sc registry.Scenario, opts Options) error {
	w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	if w <= 0 || h <= 0 {
		w, h = core.ArenaWidth, core.ArenaHeight
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("feel arcade: " + sc.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	err := ebiten.RunGame(NewGame(s, sc, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
