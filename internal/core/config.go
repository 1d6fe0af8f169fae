package core

import "time"

// Logical screen size in arena units. The window front end draws one pixel
// per unit; the terminal scales it to the cell grid.
const (
	ArenaWidth  = 960
	ArenaHeight = 540
)

// RuntimeConfig contains configuration passed to the front ends at startup.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters (terminal) or pixels (window)
	ScreenH  int           // Screen height in characters (terminal) or pixels (window)
	TickRate int           // Simulation ticks per second (default 60)
	MaxDelta time.Duration // Upper bound on a single tick's dt
	Seed     int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		MaxDelta: 50 * time.Millisecond,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Playfield returns the area left on the logical screen once a HUD strip of
// height hud is taken off the top and pad is left on every side.
func Playfield(hud, pad float64) AABB {
	return NewAABB(pad, hud+pad, ArenaWidth-2*pad, ArenaHeight-hud-2*pad)
}
