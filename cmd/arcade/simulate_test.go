package main

import (
	"testing"

	"github.com/vovakirdan/feel-arcade/internal/registry"
	"github.com/vovakirdan/feel-arcade/internal/sim"
)

func TestSteerLeavesTitle(t *testing.T) {
	s, _, err := registry.NewSimulation("feel", 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Step(steer(s, 0), 1.0/60)
	if s.State() != sim.StatePlay {
		t.Errorf("state = %v, want play", s.State())
	}
}

func TestSteerCollectsCoins(t *testing.T) {
	s, _, err := registry.NewSimulation("loop", 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	var tl tally
	for i := range 600 {
		tl.add(s.Step(steer(s, i), 1.0/60).Events)
	}
	if tl.pickups == 0 {
		t.Error("autopilot collected nothing in 10s")
	}
}

func TestSteerIsDeterministic(t *testing.T) {
	run := func() uint64 {
		s, _, err := registry.NewSimulation("walls", 11, nil)
		if err != nil {
			t.Fatal(err)
		}
		for i := range 300 {
			s.Step(steer(s, i), 1.0/60)
		}
		return s.Snapshot().Hash()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("hash %x != %x", a, b)
	}
}

func TestTally(t *testing.T) {
	var tl tally
	tl.add([]sim.Event{
		{Kind: sim.EventPickup, Count: 2},
		{Kind: sim.EventHit},
		{Kind: sim.EventStateChanged, State: sim.StateWin},
		{Kind: sim.EventStateChanged, State: sim.StateGameOver},
	})
	if tl.pickups != 2 || tl.hits != 1 || tl.wins != 1 || tl.gameOvers != 1 {
		t.Errorf("tally = %+v", tl)
	}
}
