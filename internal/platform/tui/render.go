package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/feel-arcade/internal/anim"
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/platform/hud"
	"github.com/vovakirdan/feel-arcade/internal/sim"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

// hudRows is the number of screen rows above the arena.
const hudRows = 2

// ansiCodes maps core.Color to 256-color terminal codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "240",
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of equally colored cells share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// projection maps arena units onto screen cells below the HUD.
type projection struct {
	scr    *core.Screen
	sx, sy float64
	offset core.Vec2
}

func newProjection(scr *core.Screen, offset core.Vec2) projection {
	rows := max(scr.Height()-hudRows, 1)
	return projection{
		scr:    scr,
		sx:     float64(scr.Width()) / core.ArenaWidth,
		sy:     float64(rows) / core.ArenaHeight,
		offset: offset,
	}
}

// cells returns the screen rectangle covering r. Anything visible is at
// least one cell wide and tall.
func (p projection) cells(r core.AABB) core.Rect {
	r = r.Translate(p.offset)
	x0 := int(math.Floor(r.Left() * p.sx))
	y0 := int(math.Floor(r.Top() * p.sy))
	x1 := max(int(math.Ceil(r.Right()*p.sx)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()*p.sy)), y0+1)
	return core.NewRect(x0, y0+hudRows, x1-x0, y1-y0)
}

func (p projection) point(v core.Vec2) (int, int) {
	v = v.Add(p.offset)
	return int(v.X * p.sx), int(v.Y*p.sy) + hudRows
}

func (p projection) fill(r core.AABB, ch rune, c core.Color) {
	p.scr.DrawRect(p.cells(r), ch, c)
}

// Frame describes what the model wants drawn besides the simulation.
type Frame struct {
	Title       string
	Description string
	Scheme      Scheme
	Debug       bool
}

var (
	coinFrames   = []rune{'○', '◔', '◑', '◕', '●', '◕'}
	hazardFrames = []rune{'|', '/', '-', '\\'}
)

// Draw renders the simulation into scr.
func Draw(scr *core.Screen, s *sim.Simulation, f Frame) {
	scr.Clear()
	fx := s.Feedback()
	p := newProjection(scr, fx.CameraOffset())
	w := s.World()

	if !w.Walled() {
		scr.DrawBox(p.cells(w.Arena), core.ColorWall)
	}
	for i := range w.Walls {
		p.fill(w.Walls[i].Bounds(), '█', core.ColorWall)
	}
	for i := range w.Pads {
		p.fill(w.Pads[i].Bounds(), '▒', core.ColorLauncher)
	}
	if w.Goal.Active {
		drawGoal(p, w.Goal)
	}
	for i := range w.Coins {
		c := &w.Coins[i]
		p.fill(c.Bounds(), coinFrames[c.Cursor.Frame%len(coinFrames)], c.Color)
	}
	for i := range w.Hazards {
		h := &w.Hazards[i]
		frame := int(h.Angle/45) % len(hazardFrames)
		p.fill(h.Bounds(), hazardFrames[frame], h.Color)
	}
	for _, pt := range fx.Particles() {
		// Stray sparks would otherwise land on the HUD rows.
		if !w.Arena.ContainsPoint(pt.Pos) {
			continue
		}
		ch := '.'
		if pt.Alpha() > 0.5 {
			ch = '*'
		}
		x, y := p.point(pt.Pos)
		scr.SetColored(x, y, ch, pt.Color)
	}
	drawPlayer(p, s.Player())

	if f.Debug {
		drawHitboxes(p, w, s.Player())
	}
	drawHUD(scr, s, f)
}

func drawGoal(p projection, g world.Goal) {
	box := core.CenteredAt(g.Pos, 2*g.Radius, 2*g.Radius)
	cells := p.cells(box)
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			p.scr.SetColored(x, y, 'o', core.ColorGoal)
		}
	}
	if g.Remaining > 0 {
		x, y := p.point(g.Pos)
		p.scr.SetColored(x, y, rune('0'+min(g.Remaining, 9)), core.ColorGoal)
	}
}

func drawPlayer(p projection, pl *world.Player) {
	// Blink at 10 Hz while invincible.
	if pl.Invincible() && int(pl.InvincibleFor*10)%2 == 0 {
		return
	}
	color := core.ColorPlayer
	ch := '█'
	switch pl.Anim.State {
	case anim.Run:
		if pl.Anim.Frame()%2 == 1 {
			ch = '▓'
		}
	case anim.Hurt:
		color = core.ColorHurt
	}
	if pl.FlashFor > 0 {
		color = core.ColorFlash
	}
	p.fill(pl.Bounds(), ch, color)
}

func drawHitboxes(p projection, w *world.World, pl *world.Player) {
	for _, list := range [][]world.Entity{w.Walls, w.Pads, w.Coins, w.Hazards} {
		for i := range list {
			p.scr.DrawBox(p.cells(list[i].Bounds()), core.ColorYellow)
		}
	}
	p.scr.DrawBox(p.cells(pl.Bounds()), core.ColorBrightGreen)
}

func drawHUD(scr *core.Screen, s *sim.Simulation, f Frame) {
	scr.DrawTextColored(0, 0, hud.Stats(s), core.ColorBrightWhite)
	second := hud.Modes(s, f.Scheme.String())
	if f.Debug {
		second = hud.Debug(s)
	}
	scr.DrawTextColored(0, 1, second, core.ColorGray)

	lines := hud.Banner(s.State(), f.Title, f.Description)
	top := hudRows + (scr.Height()-hudRows-len(lines))/2
	for i, line := range lines {
		scr.DrawTextCentered(top+i, line, core.ColorBrightYellow)
	}
}
