package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/feel-arcade/internal/anim"
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/platform/hud"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

var (
	background = color.RGBA{R: 14, G: 16, B: 24, A: 255}
	hitboxCol  = color.RGBA{R: 255, G: 230, B: 60, A: 255}
)

func rgba(c core.Color, alpha float64) color.RGBA {
	r, g, b := c.RGB()
	a := uint8(math.Round(255 * core.ClampF(alpha, 0, 1)))
	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(uint16(r) * uint16(a) / 255),
		G: uint8(uint16(g) * uint16(a) / 255),
		B: uint8(uint16(b) * uint16(a) / 255),
		A: a,
	}
}

func fillBox(dst *ebiten.Image, r core.AABB, off core.Vec2, c color.Color) {
	vector.FillRect(dst, float32(r.X+off.X), float32(r.Y+off.Y), float32(r.W), float32(r.H), c, false)
}

func strokeBox(dst *ebiten.Image, r core.AABB, off core.Vec2, c color.Color) {
	vector.StrokeRect(dst, float32(r.X+off.X), float32(r.Y+off.Y), float32(r.W), float32(r.H), 1, c, false)
}

// Draw renders the arena, then the HUD on top without camera shake.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	fx := g.sim.Feedback()
	off := fx.CameraOffset()
	w := g.sim.World()

	if !w.Walled() {
		strokeBox(screen, w.Arena, off, rgba(core.ColorWall, 1))
	}
	for i := range w.Walls {
		fillBox(screen, w.Walls[i].Bounds(), off, rgba(w.Walls[i].Color, 1))
	}
	for i := range w.Pads {
		fillBox(screen, w.Pads[i].Bounds(), off, rgba(w.Pads[i].Color, 0.8))
	}
	if goal := w.Goal; goal.Active {
		c := goal.Pos.Add(off)
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(goal.Radius), 3, rgba(core.ColorGoal, 1), true)
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(goal.Radius*0.45), 2, rgba(core.ColorGoal, 0.6), true)
	}
	for i := range w.Coins {
		drawCoin(screen, &w.Coins[i], off)
	}
	for i := range w.Hazards {
		drawHazard(screen, &w.Hazards[i], off)
	}
	for _, p := range fx.Particles() {
		r := core.CenteredAt(p.Pos, 2*p.Radius, 2*p.Radius)
		fillBox(screen, r, off, rgba(p.Color, p.Alpha()))
	}
	drawPlayer(screen, g.sim.Player(), off)

	if g.debug {
		for _, list := range [][]world.Entity{w.Walls, w.Pads, w.Coins, w.Hazards} {
			for i := range list {
				strokeBox(screen, list[i].Bounds(), off, hitboxCol)
			}
		}
		strokeBox(screen, g.sim.Player().Bounds(), off, rgba(core.ColorBrightGreen, 1))
	}

	g.drawHUD(screen)
}

// coinWidths squash the coin per frame so it reads as spinning.
var coinWidths = []float64{1, 0.75, 0.4, 0.15, 0.4, 0.75}

func drawCoin(dst *ebiten.Image, e *world.Entity, off core.Vec2) {
	b := e.Bounds()
	scale := coinWidths[e.Cursor.Frame%len(coinWidths)]
	r := core.CenteredAt(b.Center(), math.Max(2, b.W*scale), b.H)
	fillBox(dst, r, off, rgba(e.Color, 1))
}

// drawHazard outlines the hazard square rotated by its spin angle.
func drawHazard(dst *ebiten.Image, e *world.Entity, off core.Vec2) {
	b := e.Bounds()
	c := b.Center().Add(off)
	if e.Spin == 0 {
		fillBox(dst, b, off, rgba(e.Color, 1))
		return
	}
	a := e.Angle * math.Pi / 180
	half := b.W / 2
	var pts [4]core.Vec2
	for i := range pts {
		t := a + float64(i)*math.Pi/2 + math.Pi/4
		pts[i] = core.V(c.X+half*math.Sqrt2*math.Cos(t), c.Y+half*math.Sqrt2*math.Sin(t))
	}
	col := rgba(e.Color, 1)
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), 3, col, true)
	}
}

func drawPlayer(dst *ebiten.Image, p *world.Player, off core.Vec2) {
	// Blink at 10 Hz while invincible.
	if p.Invincible() && int(p.InvincibleFor*10)%2 == 0 {
		return
	}
	b := p.Bounds()
	col := core.ColorPlayer
	switch p.Anim.State {
	case anim.Run:
		// Alternate a slight squash on odd frames.
		if p.Anim.Frame()%2 == 1 {
			b = core.CenteredAt(b.Center(), b.W+2, b.H-2)
		}
	case anim.Hurt:
		col = core.ColorHurt
	}
	if p.FlashFor > 0 {
		col = core.ColorFlash
	}
	fillBox(dst, b, off, rgba(col, 1))
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, hud.Stats(g.sim), 12, 8)
	second := hud.Modes(g.sim, g.input.scheme.String())
	if g.debug {
		second = hud.Debug(g.sim)
	}
	ebitenutil.DebugPrintAt(screen, second, 12, 28)

	const glyphW, lineH = 6, 18
	lines := hud.Banner(g.sim.State(), g.scenario.Title(), g.scenario.Description())
	if len(lines) == 0 {
		return
	}
	vector.FillRect(screen, 0, core.ArenaHeight/2-40, core.ArenaWidth, float32(len(lines)*lineH+24), color.RGBA{A: 170}, false)
	for i, line := range lines {
		x := (core.ArenaWidth - len([]rune(line))*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, line, x, core.ArenaHeight/2-28+i*lineH)
	}
}
