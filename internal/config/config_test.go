package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/physics"
	"github.com/vovakirdan/feel-arcade/internal/sim"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

func TestEmbeddedDefaultMatchesBuiltIn(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	def := Default()

	if len(cfg.Feels) != len(def.Feels) {
		t.Fatalf("feels = %d, want %d", len(cfg.Feels), len(def.Feels))
	}
	for i := range def.Feels {
		if cfg.Feels[i] != def.Feels[i] {
			t.Errorf("feels[%d] = %+v, want %+v", i, cfg.Feels[i], def.Feels[i])
		}
	}
	if cfg.Feedback != def.Feedback {
		t.Errorf("feedback = %+v, want %+v", cfg.Feedback, def.Feedback)
	}
	if cfg.Player != def.Player {
		t.Errorf("player = %+v, want %+v", cfg.Player, def.Player)
	}
	if cfg.Runtime != def.Runtime {
		t.Errorf("runtime = %+v, want %+v", cfg.Runtime, def.Runtime)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("boundary: wrap\nfeedback:\n  channels:\n    shake: false\nplayer:\n  hp: 5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Boundary != "wrap" {
		t.Errorf("boundary = %q, want wrap", cfg.Boundary)
	}
	if cfg.Feedback.Channels.Shake {
		t.Error("shake should be off")
	}
	if !cfg.Feedback.Channels.Flash {
		t.Error("flash should keep its default")
	}
	if cfg.Player.HP != 5 || cfg.Player.Size != 28 {
		t.Errorf("player = %+v, want hp 5 size 28", cfg.Player)
	}
	if len(cfg.Feels) != len(physics.DefaultFeels()) {
		t.Errorf("feels = %d, want the default list", len(cfg.Feels))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"bad boundary", "boundary: teleport\n", physics.ErrUnknownBoundaryMode},
		{"bad control", "control: racing\n", physics.ErrUnknownControlMode},
		{"bad feel", "feel: bouncy\n", ErrUnknownFeel},
		{"bad player", "player:\n  size: 0\n", world.ErrInvalidBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("feels: [{name: a}, {name: A}]\n")); err == nil {
		t.Error("duplicate preset names should fail")
	}
	if _, err := Parse([]byte("boundary: [\n")); err == nil {
		t.Error("malformed yaml should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("feel: heavy\ncontrol: platformer\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, from, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if from != path {
		t.Errorf("source = %q, want %q", from, path)
	}
	if i, _ := cfg.FeelIndex(); cfg.Feels[i].Name != "heavy" {
		t.Errorf("feel = %q, want heavy", cfg.Feels[i].Name)
	}

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestApplyOptions(t *testing.T) {
	opts := sim.DefaultOptions()
	opts.Feels = physics.DefaultFeels()
	opts.Feel = 3 // classic, as a scenario would pick it
	opts.Boundary = physics.BoundaryBounce

	cfg := Default()
	cfg.Feedback.Channels.Particles = false
	if err := cfg.ApplyOptions(&opts); err != nil {
		t.Fatalf("ApplyOptions: %v", err)
	}
	if opts.Boundary != physics.BoundaryBounce {
		t.Errorf("boundary = %v, empty config value should keep bounce", opts.Boundary)
	}
	if got := opts.Feels[opts.Feel].Name; got != "classic" {
		t.Errorf("feel = %q, scenario choice should survive", got)
	}
	if opts.Toggles.Particles {
		t.Error("particles should be off")
	}

	cfg.Feel = "floaty"
	cfg.Boundary = "wrap"
	if err := cfg.ApplyOptions(&opts); err != nil {
		t.Fatalf("ApplyOptions: %v", err)
	}
	if got := opts.Feels[opts.Feel].Name; got != "floaty" {
		t.Errorf("feel = %q, want floaty", got)
	}
	if opts.Boundary != physics.BoundaryWrap {
		t.Errorf("boundary = %v, want wrap", opts.Boundary)
	}
}

func TestApplyToRunningSimulation(t *testing.T) {
	s, err := sim.New(world.LevelSpec{Arena: core.NewAABB(0, 0, 900, 500)}, sim.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	s.Player().Score = 4

	cfg := Default()
	cfg.Boundary = "bounce"
	cfg.Feel = "heavy"
	cfg.Feedback.Channels.Hitstop = false
	if err := cfg.Apply(s); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.Boundary() != physics.BoundaryBounce {
		t.Errorf("boundary = %v, want bounce", s.Boundary())
	}
	if s.Feel().Name != "heavy" {
		t.Errorf("feel = %q, want heavy", s.Feel().Name)
	}
	if s.Toggles().Hitstop {
		t.Error("hitstop should be off")
	}
	if s.Player().Score != 4 {
		t.Error("reload must not reset the run")
	}
}

func TestRuntimeFor(t *testing.T) {
	cfg := Default()
	cfg.Runtime = RuntimeConfig{TickRate: 30, MaxDeltaMS: 100, Seed: 9}
	rc := cfg.RuntimeFor(core.DefaultConfig())
	if rc.TickRate != 30 || rc.MaxDelta != 100*time.Millisecond || rc.Seed != 9 {
		t.Errorf("runtime = %+v", rc)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("boundary: clamp\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("boundary: wrap\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Boundary != "wrap" {
			t.Errorf("boundary = %q, want wrap", cfg.Boundary)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}
