package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockCapsDelta(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewClock(50 * time.Millisecond)
	c.now = func() time.Time { return now }

	assert.Equal(t, 0.0, c.Tick(), "first tick has no history")

	now = now.Add(16 * time.Millisecond)
	assert.InDelta(t, 0.016, c.Tick(), 1e-9)

	now = now.Add(500 * time.Millisecond)
	assert.InDelta(t, 0.05, c.Tick(), 1e-9, "slow frames are clamped, not subdivided")

	now = now.Add(-time.Second)
	assert.Equal(t, 0.0, c.Tick(), "time going backwards counts as zero")

	c.Reset()
	now = now.Add(time.Hour)
	assert.Equal(t, 0.0, c.Tick())
}

func TestNewClockDefaultsCap(t *testing.T) {
	c := NewClock(0)
	assert.Equal(t, DefaultMaxDelta, c.MaxDelta)
	assert.InDelta(t, 0.05, c.Cap(time.Second), 1e-9)
}
