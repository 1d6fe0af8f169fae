// Package anim selects a visual state for an entity and times its frames.
package anim

import (
	"fmt"

	"github.com/vovakirdan/feel-arcade/internal/core"
)

// State is the visual state of an animated entity.
type State int

const (
	Idle State = iota
	Run
	Hurt
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Run:
		return "run"
	case Hurt:
		return "hurt"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RunThreshold is the squared speed (px²/s²) above which an entity counts as running.
const RunThreshold = 1.0

// Select picks the state for this tick. Hurt wins over movement.
func Select(invincibleFor float64, vel core.Vec2) State {
	switch {
	case invincibleFor > 0:
		return Hurt
	case vel.LenSq() > RunThreshold:
		return Run
	default:
		return Idle
	}
}

// Clip is a looping frame sequence played at a fixed rate.
type Clip struct {
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
}

// Stock clips.
var (
	IdleClip = Clip{Frames: 1, FPS: 1}
	RunClip  = Clip{Frames: 4, FPS: 10}
	HurtClip = Clip{Frames: 2, FPS: 8}
	CoinClip = Clip{Frames: 6, FPS: 10}
)

// Cursor is the playback position within a clip.
type Cursor struct {
	Frame   int
	Elapsed float64 // time accumulated toward the next frame
}

// Advance moves the cursor by dt, stepping (and wrapping) one frame for every
// full frame interval. Leftover time carries into the next call.
func (c *Cursor) Advance(clip Clip, dt float64) {
	if clip.Frames <= 0 || clip.FPS <= 0 || dt <= 0 {
		return
	}
	frameDT := 1 / clip.FPS
	c.Elapsed += dt
	for c.Elapsed >= frameDT {
		c.Elapsed -= frameDT
		c.Frame = (c.Frame + 1) % clip.Frames
	}
}

// Machine tracks an entity's visual state and its playback cursor.
type Machine struct {
	State  State
	Cursor Cursor
	Clips  map[State]Clip
}

// NewMachine creates a machine in Idle using the stock player clips.
func NewMachine() Machine {
	return Machine{
		State: Idle,
		Clips: map[State]Clip{Idle: IdleClip, Run: RunClip, Hurt: HurtClip},
	}
}

// Update switches to next (resetting playback on a change) and advances by dt.
func (m *Machine) Update(next State, dt float64) {
	if next != m.State {
		m.State = next
		m.Cursor = Cursor{}
	}
	m.Cursor.Advance(m.Clips[m.State], dt)
}

// Frame returns the current frame index for the renderer.
func (m *Machine) Frame() int {
	return m.Cursor.Frame
}
