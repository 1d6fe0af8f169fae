package sim

import (
	"fmt"

	"github.com/vovakirdan/feel-arcade/internal/core"
)

// GameState is the top-level state of a simulation.
type GameState int

const (
	StateTitle GameState = iota
	StatePlay
	StateWin
	StateLose
	StateGameOver
)

var stateNames = map[GameState]string{
	StateTitle:    "title",
	StatePlay:     "play",
	StateWin:      "win",
	StateLose:     "lose",
	StateGameOver: "gameover",
}

func (s GameState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// Terminal reports whether the state waits for a continue or reset signal.
func (s GameState) Terminal() bool {
	return s == StateWin || s == StateLose || s == StateGameOver
}

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventPickup                 // Count coins collected, Pos is the first coin
	EventHit                    // Pos is the hazard center, Count the hp left
	EventJump
	EventDash
	EventBounce
	EventWrap
	EventLaunch      // Pos is where the player ended up
	EventGoal        // goal reached, Count is the repeats still required
	EventRespawn     // endless coin respawn
	EventToggle      // Detail names the channel and its new setting
	EventModeChanged // Detail names the boundary or control mode
	EventFeelChanged // Detail names the preset
)

var eventNames = map[EventKind]string{
	EventStateChanged: "state",
	EventPickup:       "pickup",
	EventHit:          "hit",
	EventJump:         "jump",
	EventDash:         "dash",
	EventBounce:       "bounce",
	EventWrap:         "wrap",
	EventLaunch:       "launch",
	EventGoal:         "goal",
	EventRespawn:      "respawn",
	EventToggle:       "toggle",
	EventModeChanged:  "mode",
	EventFeelChanged:  "feel",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one thing that happened during a tick. Front ends use events for
// logging and sound cues; the simulation has already applied their effects.
type Event struct {
	Kind   EventKind
	Pos    core.Vec2
	Count  int
	State  GameState // new state, for EventStateChanged
	Detail string
}

// StepResult is the outcome of one tick.
type StepResult struct {
	Events []Event
	State  GameState
}

// Has reports whether an event of kind k occurred.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
