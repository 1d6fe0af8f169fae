package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/registry"
	"github.com/vovakirdan/feel-arcade/internal/sim"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

type testScenario struct{}

func (testScenario) ID() string          { return "tui-test" }
func (testScenario) Title() string       { return "Test Room" }
func (testScenario) Description() string { return "an empty room" }
func (testScenario) Level() world.LevelSpec {
	return world.LevelSpec{Arena: core.NewAABB(10, 60, 900, 460)}
}
func (testScenario) Configure(opts *sim.Options) { opts.StartInTitle = true }

func init() {
	registry.Register("tui-test", func() registry.Scenario { return testScenario{} })
}

func newModel(t *testing.T) *Model {
	t.Helper()
	s, sc, err := registry.NewSimulation("tui-test", 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = 96, 30
	return NewModel(s, sc, Options{Runtime: rc})
}

func TestModelTitleThenPlay(t *testing.T) {
	m := newModel(t)
	if !strings.Contains(m.View(), "Press Enter to start") {
		t.Error("title banner missing")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(TickMsg(time.Now()))
	if m.Simulation().State() != sim.StatePlay {
		t.Fatalf("state = %v, want play", m.Simulation().State())
	}
	if strings.Contains(m.View(), "Press Enter to start") {
		t.Error("title banner still shown while playing")
	}
}

func TestModelQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelDebugOverlay(t *testing.T) {
	m := newModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if !strings.Contains(m.View(), "pos ") {
		t.Error("debug line missing")
	}
}

func TestModelResizeKeepsFooter(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	view := m.View()
	if got := strings.Count(view, "\n") + 1; got != 20 {
		t.Errorf("view has %d lines, want 20", got)
	}
}

func TestDrawTinyScreen(t *testing.T) {
	s, _, err := registry.NewSimulation("tui-test", 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 3}} {
		scr := core.NewScreen(size[0], size[1])
		Draw(scr, s, Frame{Debug: true})
	}
}

func TestDrawPlacesPlayer(t *testing.T) {
	s, _, err := registry.NewSimulation("tui-test", 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	scr := core.NewScreen(96, 56)
	Draw(scr, s, Frame{})

	x, y := newProjection(scr, core.Vec2{}).point(s.Player().Pos)
	if got := scr.GetCell(x, y); got.Rune != '█' || got.Color != core.ColorPlayer {
		t.Errorf("cell at player = %+v", got)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(100, 30)
	if len(m.items) == 0 {
		t.Fatal("menu has no scenarios")
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	mm := next.(MenuModel)
	if mm.Selected() != m.items[0].ID {
		t.Errorf("selected = %q, want %q", mm.Selected(), m.items[0].ID)
	}
	if cmd == nil {
		t.Error("select should quit the picker")
	}
}

func TestDrawClipsParticlesToArena(t *testing.T) {
	s, _, err := registry.NewSimulation("tui-test", 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	fx := s.Feedback()
	fx.Burst(core.V(480, 20), 3, core.ColorYellow)
	fx.Burst(core.V(200, 300), 3, core.ColorYellow)
	if len(fx.Particles()) != 6 {
		t.Fatalf("particles = %d, want 6", len(fx.Particles()))
	}

	scr := core.NewScreen(96, 56)
	Draw(scr, s, Frame{})

	p := newProjection(scr, core.Vec2{})
	if x, y := p.point(core.V(480, 20)); scr.GetCell(x, y).Rune != ' ' {
		t.Errorf("particle above the arena drawn at (%d, %d)", x, y)
	}
	if x, y := p.point(core.V(200, 300)); scr.GetCell(x, y).Rune != '*' {
		t.Errorf("particle inside the arena missing at (%d, %d)", x, y)
	}
}
