package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of the gameplay state. It uses primitive types only
// so two runs can be compared field by field or by Hash.
type Snapshot struct {
	Tick     uint64
	State    string
	Level    int
	Boundary string
	Control  string
	Feel     string

	HP            int
	Score         int
	PosX, PosY    float64
	VelX, VelY    float64
	OnGround      bool
	InvincibleFor float64

	TimeLeft float64

	// Coins and hazards are flattened to x, y pairs.
	CoinData   []float64
	HazardData []float64

	GoalActive    bool
	GoalX, GoalY  float64
	GoalRemaining int

	Particles int
}

// Snapshot returns the current state.
func (s *Simulation) Snapshot() Snapshot {
	p := s.player
	w := s.world

	coins := make([]float64, 0, len(w.Coins)*2)
	for i := range w.Coins {
		coins = append(coins, w.Coins[i].Body.Pos.X, w.Coins[i].Body.Pos.Y)
	}
	hazards := make([]float64, 0, len(w.Hazards)*2)
	for i := range w.Hazards {
		hazards = append(hazards, w.Hazards[i].Body.Pos.X, w.Hazards[i].Body.Pos.Y)
	}

	return Snapshot{
		Tick:          s.tick,
		State:         s.state.String(),
		Level:         s.level,
		Boundary:      s.boundary.String(),
		Control:       s.control.String(),
		Feel:          s.Feel().Name,
		HP:            p.HP,
		Score:         p.Score,
		PosX:          p.Pos.X,
		PosY:          p.Pos.Y,
		VelX:          p.Vel.X,
		VelY:          p.Vel.Y,
		OnGround:      p.OnGround,
		InvincibleFor: p.InvincibleFor,
		TimeLeft:      s.timeLeft,
		CoinData:      coins,
		HazardData:    hazards,
		GoalActive:    w.Goal.Active,
		GoalX:         w.Goal.Pos.X,
		GoalY:         w.Goal.Pos.Y,
		GoalRemaining: w.Goal.Remaining,
		Particles:     len(s.fx.Particles()),
	}
}

// Hash returns an FNV-1a digest of the snapshot. Equal seeds and inputs give
// equal hashes.
func (sn Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf []byte

	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	i := func(v int) { u(uint64(int64(v))) }
	f := func(v float64) { u(math.Float64bits(v)) }
	b := func(v bool) {
		if v {
			u(1)
		} else {
			u(0)
		}
	}
	str := func(v string) {
		i(len(v))
		buf = append(buf, v...)
	}

	u(sn.Tick)
	str(sn.State)
	i(sn.Level)
	str(sn.Boundary)
	str(sn.Control)
	str(sn.Feel)
	i(sn.HP)
	i(sn.Score)
	f(sn.PosX)
	f(sn.PosY)
	f(sn.VelX)
	f(sn.VelY)
	b(sn.OnGround)
	f(sn.InvincibleFor)
	f(sn.TimeLeft)
	i(len(sn.CoinData))
	for _, v := range sn.CoinData {
		f(v)
	}
	i(len(sn.HazardData))
	for _, v := range sn.HazardData {
		f(v)
	}
	b(sn.GoalActive)
	f(sn.GoalX)
	f(sn.GoalY)
	i(sn.GoalRemaining)
	i(sn.Particles)

	_, _ = h.Write(buf)
	return h.Sum64()
}
