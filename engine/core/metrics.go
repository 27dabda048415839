package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/spaghettifunk/orbis/engine/containers"
)

const AVG_COUNT = 30

// TickMetrics tracks the wall time between clock ticks.
type TickMetrics struct {
	frameTimes  *containers.RingQueue[float64]
	msAvg       float64
	ticks       int32
	accumulated float64
	tps         float64
	last        time.Time
}

func NewTickMetrics() *TickMetrics {
	return &TickMetrics{
		frameTimes: containers.NewRingQueue[float64](AVG_COUNT),
	}
}

// Attach updates the metrics every time clock ticks and returns the listener handle.
func (m *TickMetrics) Attach(clock *Clock) uuid.UUID {
	return clock.OnTick.AddListener(func(c *Clock) {
		m.Update(c.lastSystemTime)
	})
}

// Update records a tick that happened at wall time now.
func (m *TickMetrics) Update(now time.Time) {
	if m.last.IsZero() {
		m.last = now
		return
	}
	frameMS := float64(now.Sub(m.last)) / float64(time.Millisecond)
	m.last = now

	m.frameTimes.Push(frameMS)
	sum := 0.0
	m.frameTimes.Each(func(v float64) {
		sum += v
	})
	m.msAvg = sum / float64(m.frameTimes.Len())

	// Ticks per second over the last full second.
	m.accumulated += frameMS
	m.ticks++
	if m.accumulated >= 1000 {
		m.tps = float64(m.ticks)
		m.accumulated -= 1000
		m.ticks = 0
	}
}

// TicksPerSecond returns the tick count of the last complete second.
func (m *TickMetrics) TicksPerSecond() float64 {
	return m.tps
}

// FrameTime returns the average milliseconds between the last AVG_COUNT ticks.
func (m *TickMetrics) FrameTime() float64 {
	return m.msAvg
}

func (m *TickMetrics) Frame() (float64, float64) {
	return m.tps, m.msAvg
}
