package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/feel-arcade/internal/core"
)

// HoldWindow is how long a direction key counts as held after its last
// press. Terminals only report key repeats, never releases, so a direction
// decays once repeats stop arriving.
const HoldWindow = 180 * time.Millisecond

// Input turns terminal key messages into one Intent per tick.
type Input struct {
	keys   KeyMap
	scheme Scheme
	hold   time.Duration

	held     map[string]time.Time
	frame    core.InputFrame
	upPushed bool
}

// NewInput creates an input collaborator with the given bindings.
func NewInput(keys KeyMap) *Input {
	return &Input{
		keys:  keys,
		hold:  HoldWindow,
		held:  make(map[string]time.Time),
		frame: core.NewInputFrame(),
	}
}

// Scheme returns the active control scheme.
func (in *Input) Scheme() Scheme { return in.scheme }

// Press records a key message received at now and returns the action it
// maps to, or ActionNone for direction keys and unbound keys. Front-end
// actions (scheme, debug, quit) are returned but never reach the simulation.
func (in *Input) Press(msg tea.KeyMsg, now time.Time) core.Action {
	k := msg.String()
	if in.isDir(k) {
		in.held[k] = now
		if k == in.scheme.keys()[dirUp] || k == arrowKeys[dirUp] {
			in.upPushed = true
		}
		return core.ActionNone
	}

	action := in.match(msg)
	switch action {
	case core.ActionNone, core.ActionQuit, core.ActionToggleDebug:
	case core.ActionCycleScheme:
		in.scheme = in.scheme.Next()
		clear(in.held)
	default:
		in.frame.Set(action)
	}
	return action
}

func (in *Input) match(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, in.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, in.keys.Jump):
		return core.ActionJump
	case key.Matches(msg, in.keys.Dash):
		return core.ActionDash
	case key.Matches(msg, in.keys.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, in.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, in.keys.Boundary):
		return core.ActionCycleBoundary
	case key.Matches(msg, in.keys.Control):
		return core.ActionToggleControl
	case key.Matches(msg, in.keys.Feel):
		return core.ActionCycleFeel
	case key.Matches(msg, in.keys.Shake):
		return core.ActionToggleShake
	case key.Matches(msg, in.keys.Flash):
		return core.ActionToggleFlash
	case key.Matches(msg, in.keys.Hitstop):
		return core.ActionToggleHitstop
	case key.Matches(msg, in.keys.Particles):
		return core.ActionToggleParticles
	case key.Matches(msg, in.keys.Scheme):
		return core.ActionCycleScheme
	case key.Matches(msg, in.keys.Debug):
		return core.ActionToggleDebug
	}
	return core.ActionNone
}

func (in *Input) isDir(k string) bool {
	for _, d := range in.scheme.keys() {
		if d == k {
			return true
		}
	}
	for _, d := range arrowKeys {
		if d == k {
			return true
		}
	}
	return false
}

func (in *Input) down(now time.Time, dir int) bool {
	for _, k := range []string{in.scheme.keys()[dir], arrowKeys[dir]} {
		if t, ok := in.held[k]; ok && now.Sub(t) <= in.hold {
			return true
		}
	}
	return false
}

// Intent returns the intent for the tick at now and clears the one-shot
// actions. In platformer mode a fresh up press also jumps.
func (in *Input) Intent(now time.Time, platformer bool) core.Intent {
	var dx, dy float64
	if in.down(now, dirLeft) {
		dx--
	}
	if in.down(now, dirRight) {
		dx++
	}
	if in.down(now, dirUp) {
		dy--
	}
	if in.down(now, dirDown) {
		dy++
	}

	intent := core.NewIntent(dx, dy)
	intent.InputFrame = in.frame.Clone()
	if platformer && in.upPushed {
		intent.Set(core.ActionJump)
	}

	in.frame.Clear()
	in.upPushed = false
	return intent
}
