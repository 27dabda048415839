package platform

import "time"

// TimeSource reports the current wall-clock time. The simulated clock reads it once
// per tick; tests substitute a manual implementation.
type TimeSource interface {
	Now() time.Time
}

// SystemTimeSource reads the operating system clock.
type SystemTimeSource struct{}

func (SystemTimeSource) Now() time.Time {
	return time.Now()
}

// ManualTimeSource only moves when told to.
type ManualTimeSource struct {
	Current time.Time
}

func NewManualTimeSource(start time.Time) *ManualTimeSource {
	return &ManualTimeSource{Current: start}
}

func (m *ManualTimeSource) Now() time.Time {
	return m.Current
}

// Advance moves the manual clock forward by d.
func (m *ManualTimeSource) Advance(d time.Duration) {
	m.Current = m.Current.Add(d)
}
