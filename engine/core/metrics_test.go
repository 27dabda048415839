package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickMetricsUpdate(t *testing.T) {
	m := NewTickMetrics()
	m.Update(epoch)
	assert.Zero(t, m.FrameTime())

	m.Update(epoch.Add(500 * time.Millisecond))
	assert.InDelta(t, 500.0, m.FrameTime(), 1e-9)
	assert.Zero(t, m.TicksPerSecond())

	m.Update(epoch.Add(1000 * time.Millisecond))
	tps, avg := m.Frame()
	assert.Equal(t, 2.0, tps)
	assert.InDelta(t, 500.0, avg, 1e-9)
}

func TestTickMetricsAverageWindow(t *testing.T) {
	m := NewTickMetrics()
	now := epoch
	m.Update(now)
	for i := 0; i < AVG_COUNT; i++ {
		now = now.Add(100 * time.Millisecond)
		m.Update(now)
	}
	for i := 0; i < AVG_COUNT; i++ {
		now = now.Add(10 * time.Millisecond)
		m.Update(now)
	}
	assert.InDelta(t, 10.0, m.FrameTime(), 1e-9)
}

func TestTickMetricsAttach(t *testing.T) {
	clock, ts := newTestClock(t)
	m := NewTickMetrics()
	id := m.Attach(clock)

	clock.Tick()
	ts.Advance(250 * time.Millisecond)
	clock.Tick()
	assert.InDelta(t, 250.0, m.FrameTime(), 1e-9)

	assert.True(t, clock.OnTick.RemoveListener(id))
	ts.Advance(time.Second)
	clock.Tick()
	assert.InDelta(t, 250.0, m.FrameTime(), 1e-9)
}
