package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/physics"
	"github.com/vovakirdan/feel-arcade/internal/registry"
	"github.com/vovakirdan/feel-arcade/internal/sim"
)

var (
	flagTicks     int
	flagAutopilot bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario>",
	Short: "Run a scenario headless and print a summary",
	Long: `Run a scenario without a front end at a fixed step of 1/fps seconds.

With --autopilot the player steers toward the nearest coin, then the goal,
dashing on long stretches and jumping in platformer mode; terminal states are
confirmed so the run keeps going. Without it the player stands still.

The printed hash covers the whole simulation state, so two runs with the same
seed, flags and config print the same hash.

Examples:
  arcade simulate loop --seed 7
  arcade simulate bounds --boundary wrap --ticks 3600
  arcade simulate walls --autopilot=false --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 1800, "Number of ticks to run")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Steer the player automatically")
}

// tally counts what happened during a headless run.
type tally struct {
	pickups, hits, jumps, dashes int
	wins, losses, gameOvers      int
}

func (t *tally) add(events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventPickup:
			t.pickups += e.Count
		case sim.EventHit:
			t.hits++
		case sim.EventJump:
			t.jumps++
		case sim.EventDash:
			t.dashes++
		case sim.EventStateChanged:
			switch e.State {
			case sim.StateWin:
				t.wins++
			case sim.StateLose:
				t.losses++
			case sim.StateGameOver:
				t.gameOvers++
			}
		}
	}
}

func runSimulate(_ *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown scenario %q, run 'arcade list' to see available scenarios", id)
	}
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative")
	}

	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	sm, sc, err := s.newSimulation(id)
	if err != nil {
		return err
	}

	dt := 1 / float64(s.runtime.TickRate)
	var t tally
	for i := range flagTicks {
		in := core.NewIntent(0, 0)
		if flagAutopilot {
			in = steer(sm, i)
		} else if sm.State() == sim.StateTitle {
			in.Set(core.ActionConfirm)
		}
		res := sm.Step(in, dt)
		t.add(res.Events)
		for _, e := range res.Events {
			s.log.Debug(e.Kind.String(), "tick", sm.Ticks(), "detail", e.Detail, "count", e.Count)
		}
	}

	snap := sm.Snapshot()
	fmt.Printf("Scenario:  %s (%s)\n", sc.Title(), sc.ID())
	fmt.Printf("Seed:      %d\n", s.runtime.Seed)
	fmt.Printf("Modes:     %s / %s / %s\n", sm.Boundary(), sm.Control(), sm.Feel().Name)
	fmt.Printf("Ticks:     %d (%.1fs simulated)\n", sm.Ticks(), float64(flagTicks)*dt)
	fmt.Printf("State:     %s, level %d\n", sm.State(), sm.Level())
	fmt.Printf("Player:    hp %d, score %d, at (%.0f, %.0f)\n", snap.HP, snap.Score, snap.PosX, snap.PosY)
	fmt.Printf("Events:    %d pickups, %d hits, %d jumps, %d dashes\n", t.pickups, t.hits, t.jumps, t.dashes)
	fmt.Printf("Outcomes:  %d wins, %d losses, %d game overs\n", t.wins, t.losses, t.gameOvers)
	fmt.Printf("Hash:      %016x\n", snap.Hash())
	return nil
}

// dashEvery is how often, in ticks, the autopilot tries a dash.
const dashEvery = 45

// steer returns the autopilot's intent for tick i.
func steer(s *sim.Simulation, i int) core.Intent {
	if s.State() != sim.StatePlay {
		return core.NewIntent(0, 0, core.ActionConfirm)
	}

	p := s.Player()
	from := p.Bounds().Center()
	target, ok := nearestCoin(s, from)
	if !ok && s.World().Goal.Active {
		target, ok = s.World().Goal.Pos, true
	}
	if !ok {
		// Circle the arena so pads and walls still get exercised.
		a := float64(i) / 90
		c := s.World().Arena.Center()
		target = core.V(c.X+200*math.Cos(a), c.Y+120*math.Sin(a))
	}

	d := target.Sub(from)
	var actions []core.Action
	if i%dashEvery == 0 && d.Len() > 150 {
		actions = append(actions, core.ActionDash)
	}
	if s.Control() == physics.ControlPlatformer {
		if d.Y < -p.H && p.OnGround {
			actions = append(actions, core.ActionJump)
		}
		return core.NewIntent(d.X, 0, actions...)
	}
	return core.NewIntent(d.X, d.Y, actions...)
}

func nearestCoin(s *sim.Simulation, from core.Vec2) (core.Vec2, bool) {
	coins := s.World().Coins
	best, bestD := core.Vec2{}, math.Inf(1)
	for i := range coins {
		c := coins[i].Center()
		if d := c.Sub(from).LenSq(); d < bestD {
			best, bestD = c, d
		}
	}
	return best, len(coins) > 0
}
