package core

// Action represents a discrete request, abstracted from physical key presses.
// Front ends debounce keys into actions; the simulation only sees actions.
type Action int

const (
	ActionNone Action = iota
	ActionJump        // Space, W/Up in platformer mode - one-shot jump
	ActionDash        // Shift - one-shot dash impulse
	ActionConfirm     // Enter - leave the title screen / continue after a win
	ActionRestart     // R - full reset from any state

	// Meta commands. Accepted in every game state.
	ActionCycleBoundary   // 1 - clamp -> wrap -> bounce
	ActionToggleControl   // 2 - top-down <-> platformer
	ActionCycleFeel       // F - next feel preset
	ActionToggleShake     // 3
	ActionToggleFlash     // 4
	ActionToggleHitstop   // 5
	ActionToggleParticles // 6

	// Front-end only. The simulation ignores these.
	ActionCycleScheme // Tab - WASD -> ARROWS -> IJKL
	ActionToggleDebug // F1 - hitbox overlay
	ActionQuit        // Q, Ctrl+C, Esc
)

var actionNames = map[Action]string{
	ActionNone:            "None",
	ActionJump:            "Jump",
	ActionDash:            "Dash",
	ActionConfirm:         "Confirm",
	ActionRestart:         "Restart",
	ActionCycleBoundary:   "CycleBoundary",
	ActionToggleControl:   "ToggleControl",
	ActionCycleFeel:       "CycleFeel",
	ActionToggleShake:     "ToggleShake",
	ActionToggleFlash:     "ToggleFlash",
	ActionToggleHitstop:   "ToggleHitstop",
	ActionToggleParticles: "ToggleParticles",
	ActionCycleScheme:     "CycleScheme",
	ActionToggleDebug:     "ToggleDebug",
	ActionQuit:            "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Intent is everything the simulation reads from the input collaborator for one tick:
// a movement direction and the one-shot actions pressed this tick.
type Intent struct {
	Move Vec2 // unit length or zero
	InputFrame
}

// NewIntent builds an intent from a raw direction. Any nonzero direction is
// normalized so diagonals are not faster than cardinals.
func NewIntent(dx, dy float64, actions ...Action) Intent {
	in := Intent{Move: V(dx, dy).Normalize(), InputFrame: NewInputFrame()}
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
