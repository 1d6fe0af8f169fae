package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/feel-arcade/internal/core"
)

// Scheme selects which keys steer the player. Arrow keys steer in every scheme.
type Scheme int

const (
	SchemeWASD Scheme = iota
	SchemeArrows
	SchemeIJKL
)

func (s Scheme) String() string {
	switch s {
	case SchemeWASD:
		return "WASD"
	case SchemeArrows:
		return "ARROWS"
	case SchemeIJKL:
		return "IJKL"
	}
	return "unknown"
}

// Next returns the following scheme, wrapping around.
func (s Scheme) Next() Scheme { return (s + 1) % 3 }

// up, down, left, right
func (s Scheme) keys() [4]ebiten.Key {
	switch s {
	case SchemeWASD:
		return [4]ebiten.Key{ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD}
	case SchemeIJKL:
		return [4]ebiten.Key{ebiten.KeyI, ebiten.KeyK, ebiten.KeyJ, ebiten.KeyL}
	}
	return arrows
}

var arrows = [4]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight}

const stickDeadzone = 0.2

// oneShots maps edge-triggered keys to simulation actions.
var oneShots = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionJump},
	{[]ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}, core.ActionDash},
	{[]ebiten.Key{ebiten.KeyEnter}, core.ActionConfirm},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.Key1}, core.ActionCycleBoundary},
	{[]ebiten.Key{ebiten.Key2}, core.ActionToggleControl},
	{[]ebiten.Key{ebiten.KeyF}, core.ActionCycleFeel},
	{[]ebiten.Key{ebiten.Key3}, core.ActionToggleShake},
	{[]ebiten.Key{ebiten.Key4}, core.ActionToggleFlash},
	{[]ebiten.Key{ebiten.Key5}, core.ActionToggleHitstop},
	{[]ebiten.Key{ebiten.Key6}, core.ActionToggleParticles},
	{[]ebiten.Key{ebiten.KeyTab}, core.ActionCycleScheme},
	{[]ebiten.Key{ebiten.KeyF1}, core.ActionToggleDebug},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, core.ActionQuit},
}

// input polls the keyboard and the first gamepad once per Update.
type input struct {
	scheme Scheme
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// poll builds this tick's intent. In platformer mode the up key also jumps.
func (in *input) poll(platformer bool) core.Intent {
	k := in.scheme.keys()
	var dx, dy float64
	if anyPressed(k[2], arrows[2]) {
		dx--
	}
	if anyPressed(k[3], arrows[3]) {
		dx++
	}
	if anyPressed(k[0], arrows[0]) {
		dy--
	}
	if anyPressed(k[1], arrows[1]) {
		dy++
	}

	var padJump bool
	if pads := ebiten.AppendGamepadIDs(nil); len(pads) > 0 {
		id := pads[0]
		if x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal); math.Abs(x) > stickDeadzone {
			dx = x
		}
		if y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical); math.Abs(y) > stickDeadzone {
			dy = y
		}
		padJump = inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	intent := core.NewIntent(dx, dy)
	for _, o := range oneShots {
		if anyJustPressed(o.keys...) {
			intent.Set(o.action)
		}
	}
	if padJump || (platformer && anyJustPressed(k[0], arrows[0])) {
		intent.Set(core.ActionJump)
	}
	if intent.Has(core.ActionCycleScheme) {
		in.scheme = in.scheme.Next()
	}
	return intent
}
