package core

import (
	"math"
	"time"

	"github.com/spaghettifunk/orbis/engine/platform"
)

const secondsPerDay = 86400

// Clock is a simulated time cursor advanced by Tick, typically once per frame.
type Clock struct {
	// StartTime is the start of the clock's bounded range.
	StartTime time.Time
	// StopTime is the end of the clock's bounded range.
	StopTime time.Time
	// ClockRange decides what happens when the current time leaves [StartTime, StopTime].
	ClockRange ClockRange
	// CanAnimate is an external gate, e.g. false while data is still buffering.
	CanAnimate bool

	// OnTick is raised at the end of every Tick.
	OnTick *Event[*Clock]
	// OnStop is raised whenever the stop time is reached in a bounded range.
	OnStop *Event[*Clock]

	state          ClockState
	lastSystemTime time.Time
	timeSource     platform.TimeSource
}

type clockOptions struct {
	startTime     *time.Time
	stopTime      *time.Time
	currentTime   *time.Time
	multiplier    float64
	clockStep     ClockStep
	clockRange    ClockRange
	canAnimate    bool
	shouldAnimate bool
	timeSource    platform.TimeSource
}

type ClockOption func(*clockOptions)

func WithStartTime(t time.Time) ClockOption {
	return func(o *clockOptions) {
		o.startTime = &t
	}
}

func WithStopTime(t time.Time) ClockOption {
	return func(o *clockOptions) {
		o.stopTime = &t
	}
}

func WithCurrentTime(t time.Time) ClockOption {
	return func(o *clockOptions) {
		o.currentTime = &t
	}
}

func WithMultiplier(m float64) ClockOption {
	return func(o *clockOptions) {
		o.multiplier = m
	}
}

func WithClockStep(step ClockStep) ClockOption {
	return func(o *clockOptions) {
		o.clockStep = step
	}
}

func WithClockRange(r ClockRange) ClockOption {
	return func(o *clockOptions) {
		o.clockRange = r
	}
}

func WithCanAnimate(animate bool) ClockOption {
	return func(o *clockOptions) {
		o.canAnimate = animate
	}
}

func WithShouldAnimate(animate bool) ClockOption {
	return func(o *clockOptions) {
		o.shouldAnimate = animate
	}
}

func WithTimeSource(ts platform.TimeSource) ClockOption {
	return func(o *clockOptions) {
		o.timeSource = ts
	}
}

/**
 * Creates a clock. Missing times are defaulted in order: the current time from the
 * start time, else one day before the stop time, else now; the start time from the
 * current time; the stop time one day after the start time.
 * @returns A DeveloperError if the start time comes after the stop time.
 */
func NewClock(options ...ClockOption) (*Clock, error) {
	opts := &clockOptions{
		multiplier: 1.0,
		clockStep:  ClockStepSystemClockMultiplier,
		clockRange: ClockRangeUnbounded,
		canAnimate: true,
		timeSource: platform.SystemTimeSource{},
	}
	for _, o := range options {
		o(opts)
	}

	now := opts.timeSource.Now()

	var currentTime time.Time
	switch {
	case opts.currentTime != nil:
		currentTime = *opts.currentTime
	case opts.startTime != nil:
		currentTime = *opts.startTime
	case opts.stopTime != nil:
		currentTime = opts.stopTime.Add(-secondsPerDay * time.Second)
	default:
		currentTime = now
	}

	startTime := currentTime
	if opts.startTime != nil {
		startTime = *opts.startTime
	}
	stopTime := startTime.Add(secondsPerDay * time.Second)
	if opts.stopTime != nil {
		stopTime = *opts.stopTime
	}

	if startTime.After(stopTime) {
		return nil, NewDeveloperError("startTime must come before stopTime.")
	}

	c := &Clock{
		StartTime:      startTime,
		StopTime:       stopTime,
		ClockRange:     opts.clockRange,
		CanAnimate:     opts.canAnimate,
		OnTick:         NewEvent[*Clock](),
		OnStop:         NewEvent[*Clock](),
		lastSystemTime: now,
		timeSource:     opts.timeSource,
		state: ClockState{
			CurrentTime: currentTime,
			Multiplier:  opts.multiplier,
			ClockStep:   ClockStepSystemClockMultiplier,
		},
	}
	c.state = c.state.Apply(SetShouldAnimate(opts.shouldAnimate), now)
	// Applied last so that a system clock step overrides the other fields.
	c.state = c.state.Apply(SetClockStep(opts.clockStep), now)
	return c, nil
}

// State returns a copy of the coupled clock fields.
func (c *Clock) State() ClockState {
	return c.state
}

// Apply routes a field change through the clock's transition function.
func (c *Clock) Apply(change ClockChange) {
	c.state = c.state.Apply(change, c.timeSource.Now())
}

func (c *Clock) CurrentTime() time.Time {
	return c.state.CurrentTime
}

// SetCurrentTime moves the clock. Following the system clock switches to
// ClockStepSystemClockMultiplier.
func (c *Clock) SetCurrentTime(t time.Time) {
	c.Apply(SetCurrentTime(t))
}

func (c *Clock) Multiplier() float64 {
	return c.state.Multiplier
}

// SetMultiplier changes the rate; negative values run the clock backwards.
func (c *Clock) SetMultiplier(m float64) {
	c.Apply(SetMultiplier(m))
}

func (c *Clock) ClockStep() ClockStep {
	return c.state.ClockStep
}

func (c *Clock) SetClockStep(step ClockStep) {
	c.Apply(SetClockStep(step))
}

func (c *Clock) ShouldAnimate() bool {
	return c.state.ShouldAnimate
}

func (c *Clock) SetShouldAnimate(animate bool) {
	c.Apply(SetShouldAnimate(animate))
}

// Animating reports whether a tick will advance the time.
func (c *Clock) Animating() bool {
	return c.CanAnimate && c.state.ShouldAnimate
}

/**
 * Advances the clock from the current time according to the step and range
 * settings, raises OnTick and returns the new current time. OnTick is raised
 * even when the clock is not animating.
 */
func (c *Clock) Tick() time.Time {
	currentSystemTime := c.timeSource.Now()
	currentTime := c.state.CurrentTime

	if c.Animating() {
		if c.state.ClockStep == ClockStepSystemClock {
			currentTime = currentSystemTime
		} else {
			var seconds float64
			if c.state.ClockStep == ClockStepTickDependent {
				seconds = c.state.Multiplier
			} else {
				elapsed := currentSystemTime.Sub(c.lastSystemTime).Seconds()
				seconds = c.state.Multiplier * elapsed
			}
			currentTime = addSeconds(currentTime, seconds)
			currentTime = c.applyRange(currentTime)
		}
	}

	c.state.CurrentTime = currentTime
	c.lastSystemTime = currentSystemTime
	c.OnTick.Raise(c)
	return currentTime
}

func (c *Clock) applyRange(currentTime time.Time) time.Time {
	switch c.ClockRange {
	case ClockRangeClamped:
		if currentTime.Before(c.StartTime) {
			currentTime = c.StartTime
		} else if currentTime.After(c.StopTime) {
			currentTime = c.StopTime
			c.OnStop.Raise(c)
		}
	case ClockRangeLoopStop:
		if currentTime.Before(c.StartTime) {
			currentTime = c.StartTime
		}
		if !c.StopTime.After(c.StartTime) {
			// Zero length range: there is nothing to loop over.
			if currentTime.After(c.StopTime) {
				currentTime = c.StopTime
				c.OnStop.Raise(c)
			}
			return currentTime
		}
		for currentTime.After(c.StopTime) {
			currentTime = c.StartTime.Add(currentTime.Sub(c.StopTime))
			LogDebug("clock looped back to %s", currentTime.Format(time.RFC3339))
			c.OnStop.Raise(c)
		}
	}
	return currentTime
}

// Offsets beyond this many seconds do not fit in a time.Duration.
const maxDurationSeconds = float64(math.MaxInt64 / int64(time.Second))

// Whole seconds are clamped to this so that t.Unix()+whole stays inside int64.
const maxOffsetSeconds = 1 << 62

// addSeconds offsets t by a possibly huge number of seconds. Whole seconds go
// through Unix time when a Duration would overflow.
func addSeconds(t time.Time, seconds float64) time.Time {
	if math.IsNaN(seconds) {
		return t
	}
	if math.Abs(seconds) < maxDurationSeconds {
		return t.Add(time.Duration(seconds * float64(time.Second)))
	}
	whole, frac := math.Modf(seconds)
	if math.IsInf(seconds, 0) {
		frac = 0
	}
	whole = max(min(whole, maxOffsetSeconds), -maxOffsetSeconds)
	shifted := time.Unix(t.Unix()+int64(whole), int64(t.Nanosecond())).In(t.Location())
	return shifted.Add(time.Duration(frac * float64(time.Second)))
}
