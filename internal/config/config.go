// Package config provides YAML configuration for the arcade: boundary and
// control modes, feel presets, feedback channels and tuning, the player and
// the runtime clock.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/feedback"
	"github.com/vovakirdan/feel-arcade/internal/physics"
	"github.com/vovakirdan/feel-arcade/internal/sim"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

// ErrUnknownFeel is returned when the selected feel is not in the preset list.
var ErrUnknownFeel = errors.New("config: unknown feel preset")

// Config contains all configuration for a run.
// Empty Boundary, Control and Feel leave the scenario's choice in place.
type Config struct {
	Boundary string         `yaml:"boundary"`
	Control  string         `yaml:"control"`
	Feel     string         `yaml:"feel"`
	Feels    []FeelConfig   `yaml:"feels"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Player   PlayerConfig   `yaml:"player"`
	Runtime  RuntimeConfig  `yaml:"runtime"`
}

// FeelConfig defines one movement preset.
type FeelConfig struct {
	Name      string  `yaml:"name"`
	Accel     float64 `yaml:"accel"`
	MaxSpeed  float64 `yaml:"max_speed"`
	Friction  float64 `yaml:"friction"`
	Gravity   float64 `yaml:"gravity"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

// FeedbackConfig defines which feedback channels are on and how strong they are.
type FeedbackConfig struct {
	Channels feedback.Toggles `yaml:"channels"`
	Tuning   feedback.Tuning  `yaml:"tuning"`
}

// PlayerConfig defines player parameters.
type PlayerConfig = world.PlayerSpec

// RuntimeConfig defines clock parameters.
type RuntimeConfig struct {
	TickRate   int   `yaml:"tick_rate"`
	MaxDeltaMS int   `yaml:"max_delta_ms"`
	Seed       int64 `yaml:"seed"` // 0 picks a seed from the clock
}

// Validate checks that every named mode and preset exists.
func (c Config) Validate() error {
	if _, err := c.boundary(); err != nil {
		return err
	}
	if _, err := c.control(); err != nil {
		return err
	}
	if len(c.Feels) == 0 {
		return fmt.Errorf("config: feels: at least one preset is required")
	}
	seen := make(map[string]bool, len(c.Feels))
	for i, f := range c.Feels {
		name := strings.ToLower(strings.TrimSpace(f.Name))
		if name == "" {
			return fmt.Errorf("config: feels[%d]: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("config: feels[%d]: duplicate preset %q", i, f.Name)
		}
		seen[name] = true
		if f.Accel < 0 || f.MaxSpeed < 0 || f.Friction < 0 || f.Gravity < 0 || f.JumpSpeed < 0 {
			return fmt.Errorf("config: feels[%d]: values must not be negative", i)
		}
	}
	if c.Feel != "" {
		if _, err := c.FeelIndex(); err != nil {
			return err
		}
	}
	if c.Player.Size <= 0 {
		return fmt.Errorf("config: player: %w", world.ErrInvalidBounds)
	}
	if c.Player.HP <= 0 {
		return fmt.Errorf("config: player: hp must be positive")
	}
	if c.Runtime.TickRate < 0 || c.Runtime.MaxDeltaMS < 0 {
		return fmt.Errorf("config: runtime: values must not be negative")
	}
	return nil
}

func (c Config) boundary() (physics.BoundaryMode, error) {
	if c.Boundary == "" {
		return physics.BoundaryClamp, nil
	}
	m, err := physics.ParseBoundaryMode(c.Boundary)
	if err != nil {
		return 0, fmt.Errorf("config: boundary: %w", err)
	}
	return m, nil
}

func (c Config) control() (physics.ControlMode, error) {
	if c.Control == "" {
		return physics.ControlTopDown, nil
	}
	m, err := physics.ParseControlMode(c.Control)
	if err != nil {
		return 0, fmt.Errorf("config: control: %w", err)
	}
	return m, nil
}

// PhysicsFeels converts the preset list for the simulation.
func (c Config) PhysicsFeels() []physics.Feel {
	out := make([]physics.Feel, len(c.Feels))
	for i, f := range c.Feels {
		out[i] = physics.Feel{
			Name:      f.Name,
			Accel:     f.Accel,
			MaxSpeed:  f.MaxSpeed,
			Friction:  f.Friction,
			Gravity:   f.Gravity,
			JumpSpeed: f.JumpSpeed,
		}
	}
	return out
}

// FeelIndex returns the position of the selected preset. An empty selection is 0.
func (c Config) FeelIndex() (int, error) {
	if c.Feel == "" {
		return 0, nil
	}
	if i := indexOf(c.PhysicsFeels(), c.Feel); i >= 0 {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFeel, c.Feel)
}

func indexOf(feels []physics.Feel, name string) int {
	for i, f := range feels {
		if strings.EqualFold(f.Name, strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// ApplyOptions writes the configured values over opts. Modes and the feel
// selection are only written when set; a scenario's preferred feel survives
// the preset list swap when it exists under the same name.
func (c Config) ApplyOptions(opts *sim.Options) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Boundary != "" {
		opts.Boundary, _ = c.boundary()
	}
	if c.Control != "" {
		opts.Control, _ = c.control()
	}

	preferred := ""
	if opts.Feel >= 0 && opts.Feel < len(opts.Feels) {
		preferred = opts.Feels[opts.Feel].Name
	}
	opts.Feels = c.PhysicsFeels()
	opts.Feel = 0
	if c.Feel != "" {
		opts.Feel, _ = c.FeelIndex()
	} else if i := indexOf(opts.Feels, preferred); i >= 0 {
		opts.Feel = i
	}

	opts.Toggles = c.Feedback.Channels
	opts.Tuning = c.Feedback.Tuning
	opts.Player = c.Player
	if c.Runtime.Seed != 0 {
		opts.Seed = c.Runtime.Seed
	}
	return nil
}

// Apply pushes a reloaded configuration into a running simulation without
// resetting it. A control change respawns the level, as the in-game toggle does.
func (c Config) Apply(s *sim.Simulation) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Boundary != "" {
		m, _ := c.boundary()
		s.SetBoundary(m)
	}
	if c.Control != "" {
		m, _ := c.control()
		s.SetControl(m)
	}

	feels := c.PhysicsFeels()
	idx := indexOf(feels, s.Feel().Name)
	if c.Feel != "" {
		idx, _ = c.FeelIndex()
	}
	if idx < 0 {
		idx = 0
	}
	s.SetFeels(feels, idx)

	s.SetToggles(c.Feedback.Channels)
	s.SetTuning(c.Feedback.Tuning)
	return nil
}

// RuntimeFor returns base with the configured tick rate, delta cap and seed applied.
func (c Config) RuntimeFor(base core.RuntimeConfig) core.RuntimeConfig {
	if c.Runtime.TickRate > 0 {
		base.TickRate = c.Runtime.TickRate
	}
	if c.Runtime.MaxDeltaMS > 0 {
		base.MaxDelta = time.Duration(c.Runtime.MaxDeltaMS) * time.Millisecond
	}
	if c.Runtime.Seed != 0 {
		base.Seed = c.Runtime.Seed
	}
	return base
}
