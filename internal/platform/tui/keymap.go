package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// Scheme selects which keys steer the player. Arrow keys steer in every scheme.
type Scheme int

const (
	SchemeWASD Scheme = iota
	SchemeArrows
	SchemeIJKL
)

var schemeNames = [...]string{"WASD", "ARROWS", "IJKL"}

func (s Scheme) String() string {
	if s < 0 || int(s) >= len(schemeNames) {
		return "unknown"
	}
	return schemeNames[s]
}

// Next returns the following scheme, wrapping around.
func (s Scheme) Next() Scheme {
	return (s + 1) % Scheme(len(schemeNames))
}

// direction keys in up, down, left, right order
type dirKeys [4]string

const (
	dirUp = iota
	dirDown
	dirLeft
	dirRight
)

var arrowKeys = dirKeys{"up", "down", "left", "right"}

func (s Scheme) keys() dirKeys {
	switch s {
	case SchemeWASD:
		return dirKeys{"w", "s", "a", "d"}
	case SchemeIJKL:
		return dirKeys{"i", "k", "j", "l"}
	default:
		return arrowKeys
	}
}

// KeyMap defines the key bindings for a running scenario.
type KeyMap struct {
	Jump      key.Binding
	Dash      key.Binding
	Confirm   key.Binding
	Restart   key.Binding
	Boundary  key.Binding
	Control   key.Binding
	Feel      key.Binding
	Shake     key.Binding
	Flash     key.Binding
	Hitstop   key.Binding
	Particles key.Binding
	Scheme    key.Binding
	Debug     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Dash, k.Confirm, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Dash, k.Confirm, k.Restart},
		{k.Boundary, k.Control, k.Feel, k.Scheme},
		{k.Shake, k.Flash, k.Hitstop, k.Particles},
		{k.Debug, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. Terminals do not report a bare
// Shift, so dash sits on x.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		Dash: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dash"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/continue"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Boundary: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "boundary"),
		),
		Control: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "top-down/platformer"),
		),
		Feel: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "feel preset"),
		),
		Shake: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "shake"),
		),
		Flash: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "flash"),
		),
		Hitstop: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "hitstop"),
		),
		Particles: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "particles"),
		),
		Scheme: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "control scheme"),
		),
		Debug: key.NewBinding(
			key.WithKeys("f1", "`"),
			key.WithHelp("f1", "hitboxes"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings for the scenario picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
