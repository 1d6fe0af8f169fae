package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/feel-arcade/internal/config"
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/physics"
	"github.com/vovakirdan/feel-arcade/internal/registry"
	"github.com/vovakirdan/feel-arcade/internal/sim"
)

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Watcher *config.Watcher // nil disables hot reload
}

// configMsg carries a hot-reloaded configuration into the update loop.
type configMsg struct{ cfg config.Config }

// configErrMsg carries a failed reload.
type configErrMsg struct{ err error }

// Model is the Bubble Tea model for running a scenario.
type Model struct {
	sim      *sim.Simulation
	scenario registry.Scenario
	screen   *core.Screen
	clock    *sim.Clock
	input    *Input
	keys     KeyMap
	help     help.Model
	opts     Options
	log      *log.Logger

	width    int
	height   int
	debug    bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given simulation.
func NewModel(s *sim.Simulation, sc registry.Scenario, opts Options) *Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	return &Model{
		sim:      s,
		scenario: sc,
		screen:   core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
		clock:    sim.NewClock(opts.Runtime.MaxDelta),
		input:    NewInput(keys),
		keys:     keys,
		help:     help.New(),
		opts:     opts,
		log:      logger.With("scenario", sc.ID()),
	}
}

// Init starts the tick loop and, if enabled, the config watch.
func (m *Model) Init() tea.Cmd {
	m.log.Info("scenario started", "state", m.sim.State(), "feel", m.sim.Feel().Name)
	return tea.Batch(tickCmd(m.opts.Runtime.TickRate), m.waitConfig())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configMsg:
		m.applyConfig(msg.cfg)
		return m, m.waitConfig()

	case configErrMsg:
		m.log.Warn("config reload rejected", "err", msg.err)
		return m, m.waitConfig()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch m.input.Press(msg, time.Now()) {
	case core.ActionQuit:
		m.quitting = true
		m.log.Info("quit", "score", m.sim.Player().Score, "ticks", m.sim.Ticks())
		return m, tea.Quit
	case core.ActionToggleDebug:
		m.debug = !m.debug
	case core.ActionCycleScheme:
		m.log.Debug("control scheme", "scheme", m.input.Scheme())
	}
	return m, nil
}

// handleTick advances the simulation by the measured, capped delta.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick()
	intent := m.input.Intent(now, m.sim.Control() == physics.ControlPlatformer)
	res := m.sim.Step(intent, dt)
	logEvents(m.log, res.Events)
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// logEvents records the events worth a line in the session log.
func logEvents(l *log.Logger, events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventStateChanged:
			l.Info("state", "to", e.State)
		case sim.EventToggle, sim.EventModeChanged, sim.EventFeelChanged:
			l.Info(e.Kind.String(), "detail", e.Detail)
		case sim.EventHit:
			l.Debug("hit", "hp", e.Count)
		case sim.EventRespawn:
			l.Debug("coins respawned", "count", e.Count)
		case sim.EventGoal:
			l.Debug("goal reached", "remaining", e.Count)
		}
	}
}

func (m *Model) applyConfig(cfg config.Config) {
	if err := cfg.Apply(m.sim); err != nil {
		m.log.Warn("config reload rejected", "err", err)
		return
	}
	m.log.Info("config reloaded",
		"boundary", m.sim.Boundary(), "control", m.sim.Control(), "feel", m.sim.Feel().Name)
}

// waitConfig returns a command that blocks until the watcher reports.
func (m *Model) waitConfig() tea.Cmd {
	w := m.opts.Watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return nil
			}
			return configMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// saveScreenshot saves the current screen as plain text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.draw(0)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.scenario.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// draw renders into the screen buffer, leaving footer rows below the arena.
func (m *Model) draw(footer int) {
	m.screen.Resize(m.width, max(m.height-footer, 0))
	Draw(m.screen, m.sim, Frame{
		Title:       m.scenario.Title(),
		Description: m.scenario.Description(),
		Scheme:      m.input.Scheme(),
		Debug:       m.debug,
	})
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	footer := helpStyle.Render(m.help.View(m.keys))
	m.draw(lipgloss.Height(footer))
	return RenderScreen(m.screen) + "\n" + footer
}

// Simulation returns the running simulation.
func (m *Model) Simulation() *sim.Simulation { return m.sim }

// Run starts the Bubble Tea program for the given simulation.
func Run(s *sim.Simulation, sc registry.Scenario, opts Options) error {
	p := tea.NewProgram(
		NewModel(s, sc, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
