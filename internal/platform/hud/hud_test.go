package hud

import (
	"strings"
	"testing"

	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/sim"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

func newSim(t *testing.T, opts sim.Options) *sim.Simulation {
	t.Helper()
	s, err := sim.New(world.LevelSpec{Arena: core.NewAABB(0, 0, 900, 500)}, opts)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestStats(t *testing.T) {
	opts := sim.DefaultOptions()
	opts.TimeLimit = 30
	s := newSim(t, opts)
	s.Player().Score = 7

	got := Stats(s)
	for _, want := range []string{"HP ♥♥♥", "Score 7", "Level 1", "Time 30.0"} {
		if !strings.Contains(got, want) {
			t.Errorf("Stats() = %q, missing %q", got, want)
		}
	}

	s = newSim(t, sim.DefaultOptions())
	if strings.Contains(Stats(s), "Time") {
		t.Error("untimed level should not show a countdown")
	}
}

func TestModes(t *testing.T) {
	s := newSim(t, sim.DefaultOptions())
	got := Modes(s, "WASD")
	for _, want := range []string{"[1] clamp", "[2] topdown", "[Tab] WASD", "[3] shake on", "[6] particles on"} {
		if !strings.Contains(got, want) {
			t.Errorf("Modes() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(Modes(s, ""), "[Tab]") {
		t.Error("empty scheme should be omitted")
	}
}

func TestBanner(t *testing.T) {
	tests := []struct {
		state sim.GameState
		first string
	}{
		{sim.StateTitle, "Bounds"},
		{sim.StateWin, "YOU WIN"},
		{sim.StateLose, "TIME UP"},
		{sim.StateGameOver, "GAME OVER"},
	}
	for _, tt := range tests {
		lines := Banner(tt.state, "Bounds", "reach the goal")
		if len(lines) == 0 || lines[0] != tt.first {
			t.Errorf("Banner(%v) = %v, want first line %q", tt.state, lines, tt.first)
		}
	}
	if Banner(sim.StatePlay, "x", "y") != nil {
		t.Error("play state should have no banner")
	}
}
