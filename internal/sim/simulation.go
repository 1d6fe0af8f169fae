// Package sim runs one level: it owns the player, the world, the feedback
// controller and the top-level game state, and advances them one tick at a time
// in a fixed order.
package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/feel-arcade/internal/anim"
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/feedback"
	"github.com/vovakirdan/feel-arcade/internal/physics"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

// Options configures a simulation. The zero value plays a top-down, clamped
// level with the default feels, tuning and player and every feedback channel off.
type Options struct {
	Boundary physics.BoundaryMode
	Control  physics.ControlMode
	Feels    []physics.Feel // cycled by ActionCycleFeel; DefaultFeels if empty
	Feel     int            // index into Feels

	Toggles feedback.Toggles
	Tuning  feedback.Tuning // DefaultTuning if zero
	Player  world.PlayerSpec

	TimeLimit    float64 // seconds per attempt, 0 disables the countdown
	Endless      bool    // respawn coins instead of winning when they run out
	CoinsToWin   int     // score that wins the level, 0 to require every coin
	StartInTitle bool
	Seed         int64
}

// DefaultOptions returns options with every feedback channel enabled.
func DefaultOptions() Options {
	return Options{
		Feels:   physics.DefaultFeels(),
		Toggles: feedback.AllOn(),
		Tuning:  feedback.DefaultTuning(),
		Player:  world.DefaultPlayerSpec(),
	}
}

// Simulation is a single running level. It is not safe for concurrent use;
// front ends call Step from their update loop and read state between ticks.
type Simulation struct {
	opts Options
	spec world.LevelSpec
	rng  *rand.Rand

	world  *world.World
	player *world.Player
	fx     *feedback.Controller

	state    GameState
	boundary physics.BoundaryMode
	control  physics.ControlMode
	feels    []physics.Feel
	feel     int

	timeLeft float64
	level    int
	tick     uint64
	events   []Event
}

// New builds the level described by spec and places the player at its start.
func New(spec world.LevelSpec, opts Options) (*Simulation, error) {
	if len(opts.Feels) == 0 {
		opts.Feels = physics.DefaultFeels()
	}
	if opts.Tuning == (feedback.Tuning{}) {
		opts.Tuning = feedback.DefaultTuning()
	}
	if opts.Player == (world.PlayerSpec{}) {
		opts.Player = world.DefaultPlayerSpec()
	}
	if spec.PlayerSize == 0 {
		spec.PlayerSize = opts.Player.Size
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	s := &Simulation{
		opts:     opts,
		spec:     spec,
		rng:      rng,
		fx:       feedback.NewController(opts.Tuning, opts.Toggles, rng),
		boundary: opts.Boundary,
		control:  opts.Control,
		feels:    append([]physics.Feel(nil), opts.Feels...),
		events:   make([]Event, 0, 8),
	}
	s.feel = wrapIndex(opts.Feel, len(s.feels))

	if err := s.build(); err != nil {
		return nil, err
	}
	p, err := world.NewPlayer(opts.Player, s.world.PlayerStart())
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	s.player = p
	s.level = 1
	s.timeLeft = opts.TimeLimit

	s.state = StatePlay
	if opts.StartInTitle {
		s.state = StateTitle
	}
	return s, nil
}

func (s *Simulation) build() error {
	w, err := world.Build(s.spec, s.rng)
	if err != nil {
		return fmt.Errorf("sim: build level: %w", err)
	}
	s.world = w
	return nil
}

// respawn rebuilds the level and puts the player back at the start,
// keeping hp and score.
func (s *Simulation) respawn() {
	if err := s.build(); err != nil {
		// New built the same spec successfully.
		panic(err)
	}
	s.player.Respawn(s.world.PlayerStart())
	s.fx.Reset()
	s.timeLeft = s.opts.TimeLimit
}

// reset is a full restart: fresh level, fresh player, level counter back to 1.
func (s *Simulation) reset() {
	s.respawn()
	s.player.Reset(s.world.PlayerStart())
	s.level = 1
}

func (s *Simulation) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Simulation) setState(next GameState) {
	if next == s.state {
		return
	}
	s.state = next
	s.emit(Event{Kind: EventStateChanged, State: next, Detail: next.String()})
}

// Step advances the simulation by dt seconds. The returned events slice is
// reused by the next call.
//
// Order within a tick: meta commands, feedback timers, hitstop short-circuit,
// intent and motion, solid collision, boundary policy, triggers and damage,
// feedback for this tick's events, animation, then win and lose checks.
func (s *Simulation) Step(in core.Intent, dt float64) StepResult {
	s.events = s.events[:0]
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	s.tick++

	s.handleMeta(in)

	if s.fx.Tick(dt) {
		return s.result()
	}
	if s.state != StatePlay {
		s.world.Animate(dt)
		return s.result()
	}

	if s.opts.TimeLimit > 0 {
		s.timeLeft = math.Max(0, s.timeLeft-dt)
		if s.timeLeft == 0 {
			s.setState(StateLose)
			return s.result()
		}
	}

	p := s.player
	feel := s.Feel()
	p.TickTimers(dt)
	s.move(in, feel, dt)
	s.applyBounds(feel)

	s.world.Animate(dt)
	taken, hit, goalDone := s.interact(feel)

	if len(taken) > 0 {
		s.fx.OnPickup(taken[0].Center(), core.ColorCoin)
	}
	if hit {
		s.fx.OnHit(p.Bounds().Center(), core.ColorHurt, &p.FlashFor)
	}

	p.Anim.Update(anim.Select(p.InvincibleFor, p.Vel), dt)

	s.checkEnd(len(taken) > 0, goalDone)
	return s.result()
}

func (s *Simulation) result() StepResult {
	return StepResult{Events: s.events, State: s.state}
}

// handleMeta applies commands that are accepted in every state.
func (s *Simulation) handleMeta(in core.Intent) {
	if in.Has(core.ActionRestart) {
		s.reset()
		if s.state != StateTitle {
			s.setState(StatePlay)
		}
	}
	if in.Has(core.ActionConfirm) {
		switch {
		case s.state == StateTitle:
			s.setState(StatePlay)
		case s.state == StateGameOver, s.state == StateWin && s.opts.CoinsToWin > 0:
			// A score-threshold win starts the next attempt from zero.
			s.reset()
			s.setState(StatePlay)
		case s.state.Terminal():
			s.respawn()
			s.setState(StatePlay)
		}
	}

	if in.Has(core.ActionCycleBoundary) {
		s.boundary = s.boundary.Next()
		s.emit(Event{Kind: EventModeChanged, Detail: "boundary " + s.boundary.String()})
	}
	if in.Has(core.ActionToggleControl) {
		s.control = s.control.Toggle()
		s.respawn()
		s.emit(Event{Kind: EventModeChanged, Detail: "control " + s.control.String()})
	}
	if in.Has(core.ActionCycleFeel) {
		s.feel = (s.feel + 1) % len(s.feels)
		s.emit(Event{Kind: EventFeelChanged, Detail: s.Feel().Name})
	}

	for _, t := range []struct {
		action core.Action
		ch     feedback.Channel
	}{
		{core.ActionToggleShake, feedback.ChannelShake},
		{core.ActionToggleFlash, feedback.ChannelFlash},
		{core.ActionToggleHitstop, feedback.ChannelHitstop},
		{core.ActionToggleParticles, feedback.ChannelParticles},
	} {
		if in.Has(t.action) {
			on := s.fx.Toggles.Toggle(t.ch)
			s.emit(Event{Kind: EventToggle, Detail: fmt.Sprintf("%s %s", t.ch, onOff(on))})
		}
	}
}

// move integrates the player and resolves the displacement against solids.
// The dash impulse lands after integration so the speed cap cannot swallow it
// on the tick it fires.
func (s *Simulation) move(in core.Intent, feel physics.Feel, dt float64) {
	p := s.player
	p.Dash.Tick(dt)

	var delta core.Vec2
	if s.control == physics.ControlPlatformer {
		// Vertical keys never scale running speed or tilt the dash.
		dirX := horizontal(in.Move.X)
		p.Dash.Track(core.V(dirX, 0))
		d, jumped := physics.IntegratePlatformer(&p.Body, dirX, in.Has(core.ActionJump), feel, dt)
		delta = d
		if jumped {
			s.emit(Event{Kind: EventJump, Pos: p.Pos})
		}
	} else {
		p.Dash.Track(in.Move)
		delta = physics.IntegrateTopDown(&p.Body, in.Move, feel, dt)
	}

	if in.Has(core.ActionDash) {
		before := p.Vel
		if p.Dash.TryDash(&p.Body) {
			delta = delta.Add(p.Vel.Sub(before).Scale(dt))
			s.emit(Event{Kind: EventDash, Pos: p.Pos})
		}
	}

	physics.Move(&p.Body, delta, s.world.Solids())
}

// applyBounds runs the boundary policy. Walled levels are contained by their
// walls, so only a clamp runs there as a safety net.
func (s *Simulation) applyBounds(feel physics.Feel) {
	p := s.player
	arena := s.world.Arena

	mode := s.boundary
	if s.world.Walled() {
		mode = physics.BoundaryClamp
	}

	var c physics.Contact
	if s.control == physics.ControlPlatformer {
		c = physics.ApplyBoundary(&p.Body, arena, mode, physics.AxisX)
		if mode == physics.BoundaryBounce && c.Side() {
			p.Vel.Y = -feel.JumpSpeed
		}
		physics.ApplyPlatformerBounds(&p.Body, arena)
	} else {
		c = physics.ApplyBoundary(&p.Body, arena, mode, physics.AxesBoth)
	}

	switch {
	case c.Wrapped:
		s.emit(Event{Kind: EventWrap, Pos: p.Pos})
	case mode == physics.BoundaryBounce && c.Any():
		s.emit(Event{Kind: EventBounce, Pos: p.Pos})
	}
}

// interact checks the player's final rectangle against coins, pads, the goal
// and hazards. It returns the coins taken, whether a hazard landed a hit, and
// whether the goal was finished.
func (s *Simulation) interact(feel physics.Feel) (taken []world.Entity, hit, goalDone bool) {
	p := s.player

	taken = s.world.Collect(p.Bounds())
	if len(taken) > 0 {
		p.Score += len(taken)
		s.emit(Event{Kind: EventPickup, Pos: taken[0].Center(), Count: len(taken)})
	}

	if _, ok := s.world.PadTouching(p.Bounds()); ok {
		to := s.world.Launch(p, s.control, feel.JumpSpeed, s.rng)
		s.emit(Event{Kind: EventLaunch, Pos: to})
	}

	if s.world.GoalReached(p) {
		goalDone = s.world.AdvanceGoal(s.rng)
		s.emit(Event{Kind: EventGoal, Pos: p.Pos, Count: s.world.Goal.Remaining})
	}

	for _, i := range s.world.HazardsTouching(p.Bounds()) {
		from := s.world.Hazards[i].Center()
		if p.Hurt(from) {
			hit = true
			s.emit(Event{Kind: EventHit, Pos: from, Count: p.HP})
			break
		}
	}
	return taken, hit, goalDone
}

// checkEnd evaluates win and lose conditions after everything else has run.
func (s *Simulation) checkEnd(collected, goalDone bool) {
	p := s.player
	switch {
	case !p.Alive():
		s.setState(StateGameOver)
	case goalDone:
		s.level++
		s.setState(StateWin)
	case collected && s.opts.CoinsToWin > 0 && p.Score >= s.opts.CoinsToWin:
		s.setState(StateWin)
	case collected && len(s.world.Coins) == 0:
		if s.opts.Endless {
			s.world.SpawnCoins(s.rng, p.Bounds())
			s.emit(Event{Kind: EventRespawn, Count: len(s.world.Coins)})
			return
		}
		s.setState(StateWin)
	}
}

// SetBoundary switches the boundary policy without resetting anything.
func (s *Simulation) SetBoundary(m physics.BoundaryMode) { s.boundary = m }

// SetControl switches control mode. Like the toggle command, it respawns the
// level so the player does not start the new mode mid-air or mid-wall.
func (s *Simulation) SetControl(m physics.ControlMode) {
	if m == s.control {
		return
	}
	s.control = m
	s.respawn()
}

// SetFeels replaces the preset list and selects index i.
func (s *Simulation) SetFeels(feels []physics.Feel, i int) {
	if len(feels) == 0 {
		return
	}
	s.feels = append(s.feels[:0], feels...)
	s.feel = wrapIndex(i, len(s.feels))
}

// SetToggles replaces the feedback channel toggles.
func (s *Simulation) SetToggles(t feedback.Toggles) { s.fx.Toggles = t }

// SetTuning replaces the feedback tuning.
func (s *Simulation) SetTuning(t feedback.Tuning) { s.fx.Tuning = t }

// State returns the top-level game state.
func (s *Simulation) State() GameState { return s.state }

// Player returns the player. Callers outside the simulation should treat it as read-only.
func (s *Simulation) Player() *world.Player { return s.player }

// World returns the current level content. Callers should treat it as read-only.
func (s *Simulation) World() *world.World { return s.world }

// Feedback exposes the camera offset and particles for rendering.
func (s *Simulation) Feedback() *feedback.Controller { return s.fx }

// Boundary returns the active boundary policy.
func (s *Simulation) Boundary() physics.BoundaryMode { return s.boundary }

// Control returns the active control mode.
func (s *Simulation) Control() physics.ControlMode { return s.control }

// Feel returns the active movement preset.
func (s *Simulation) Feel() physics.Feel { return s.feels[s.feel] }

// Feels returns the preset list.
func (s *Simulation) Feels() []physics.Feel { return s.feels }

// Toggles returns the feedback channel toggles.
func (s *Simulation) Toggles() feedback.Toggles { return s.fx.Toggles }

// TimeLeft returns the countdown, or 0 when the level has no time limit.
func (s *Simulation) TimeLeft() float64 { return s.timeLeft }

// TimeLimited reports whether the level runs a countdown.
func (s *Simulation) TimeLimited() bool { return s.opts.TimeLimit > 0 }

// Level returns the 1-based level counter, advanced by finishing a goal.
func (s *Simulation) Level() int { return s.level }

// Ticks returns how many times Step has been called.
func (s *Simulation) Ticks() uint64 { return s.tick }

// Options returns the options the simulation was created with.
func (s *Simulation) Options() Options { return s.opts }

// horizontal reduces an x intent to -1, 0 or +1.
func horizontal(x float64) float64 {
	if x == 0 || math.IsNaN(x) {
		return 0
	}
	return math.Copysign(1, x)
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
