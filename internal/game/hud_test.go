package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "00:00", formatUptime(0))
	assert.Equal(t, "00:00", formatUptime(-time.Second))
	assert.Equal(t, "01:05", formatUptime(65*time.Second))
	assert.Equal(t, "59:59", formatUptime(time.Hour-time.Second))
	assert.Equal(t, "1:01:01", formatUptime(time.Hour+61*time.Second))
}

func TestLayerAlpha(t *testing.T) {
	assert.Equal(t, float32(0), layerAlpha(-0.5))
	assert.Equal(t, float32(0.7), layerAlpha(0.7))
	assert.Equal(t, float32(1), layerAlpha(3))
}

func TestPeakAndMillis(t *testing.T) {
	assert.Equal(t, time.Duration(0), peak(nil))
	assert.Equal(t, 9*time.Millisecond, peak([]time.Duration{time.Millisecond, 9 * time.Millisecond, 3 * time.Millisecond}))
	assert.Equal(t, "1.25ms", formatMillis(1250*time.Microsecond))
}

func TestHUDText(t *testing.T) {
	g := newTestGame(t)
	g.ring.record(2 * time.Millisecond)
	g.ring.record(4 * time.Millisecond)
	g.lastStatus = "Saved out.svg"

	text := g.hudText()
	assert.Contains(t, text, "light running | 0x0 | particles 0 nodes 0 edges 0 (visible 0)")
	assert.Contains(t, text, "frame 3.00ms (peak 4.00ms)")
	assert.Contains(t, text, "Saved out.svg")
	assert.NotContains(t, text, "Error:")

	g.engine.SetPaused(true)
	assert.Contains(t, g.hudText(), "light paused")
}

func TestFrameRing(t *testing.T) {
	r := newFrameRing(4)
	assert.Equal(t, time.Duration(0), r.average())
	assert.Empty(t, r.snapshot(3))

	r.record(10 * time.Millisecond)
	r.record(20 * time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, r.average())
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, r.snapshot(5))

	for i := 3; i <= 6; i++ {
		r.record(time.Duration(i*10) * time.Millisecond)
	}
	// holds 30, 40, 50, 60
	assert.Equal(t, 45*time.Millisecond, r.average())
	assert.Equal(t, []time.Duration{50 * time.Millisecond, 60 * time.Millisecond}, r.snapshot(2))
	assert.Equal(t, []time.Duration{30 * time.Millisecond, 40 * time.Millisecond, 50 * time.Millisecond, 60 * time.Millisecond}, r.snapshot(4))
}
