package config

import (
	_ "embed"

	"github.com/vovakirdan/feel-arcade/internal/feedback"
	"github.com/vovakirdan/feel-arcade/internal/physics"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultArcadeYAML...)
}

// Default returns the built-in configuration.
func Default() Config {
	feels := physics.DefaultFeels()
	cfg := Config{
		Feels: make([]FeelConfig, len(feels)),
		Feedback: FeedbackConfig{
			Channels: feedback.AllOn(),
			Tuning:   feedback.DefaultTuning(),
		},
		Player: world.DefaultPlayerSpec(),
		Runtime: RuntimeConfig{
			TickRate:   60,
			MaxDeltaMS: 50,
		},
	}
	for i, f := range feels {
		cfg.Feels[i] = FeelConfig{
			Name:      f.Name,
			Accel:     f.Accel,
			MaxSpeed:  f.MaxSpeed,
			Friction:  f.Friction,
			Gravity:   f.Gravity,
			JumpSpeed: f.JumpSpeed,
		}
	}
	return cfg
}
