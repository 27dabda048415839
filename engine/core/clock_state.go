package core

import (
	"fmt"
	"strings"
	"time"
)

// ClockStep governs how the simulated time advances on each tick.
type ClockStep uint8

const (
	// Advance by Multiplier times the wall-clock seconds elapsed since the last tick.
	ClockStepSystemClockMultiplier ClockStep = iota
	// Advance by Multiplier simulated seconds per tick, whatever the wall time.
	ClockStepTickDependent
	// Track the wall clock exactly.
	ClockStepSystemClock
)

func (s ClockStep) String() string {
	switch s {
	case ClockStepSystemClockMultiplier:
		return "system_clock_multiplier"
	case ClockStepTickDependent:
		return "tick_dependent"
	case ClockStepSystemClock:
		return "system_clock"
	}
	return fmt.Sprintf("ClockStep(%d)", uint8(s))
}

func ParseClockStep(s string) (ClockStep, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "system_clock_multiplier", "":
		return ClockStepSystemClockMultiplier, nil
	case "tick_dependent":
		return ClockStepTickDependent, nil
	case "system_clock":
		return ClockStepSystemClock, nil
	}
	return 0, fmt.Errorf("unknown clock step %q", s)
}

// ClockRange governs the behaviour of the clock at its start and stop bounds.
type ClockRange uint8

const (
	ClockRangeUnbounded ClockRange = iota
	// Stop at the bounds. OnStop is raised whenever a tick overshoots StopTime.
	ClockRangeClamped
	// Wrap back to StartTime, raising OnStop on every wrap.
	ClockRangeLoopStop
)

func (r ClockRange) String() string {
	switch r {
	case ClockRangeUnbounded:
		return "unbounded"
	case ClockRangeClamped:
		return "clamped"
	case ClockRangeLoopStop:
		return "loop_stop"
	}
	return fmt.Sprintf("ClockRange(%d)", uint8(r))
}

func ParseClockRange(s string) (ClockRange, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unbounded", "":
		return ClockRangeUnbounded, nil
	case "clamped":
		return ClockRangeClamped, nil
	case "loop_stop":
		return ClockRangeLoopStop, nil
	}
	return 0, fmt.Errorf("unknown clock range %q", s)
}

// ClockState holds the four coupled fields of a Clock. They only change through
// Apply, so no combination of them is ever self-contradictory.
type ClockState struct {
	CurrentTime   time.Time
	Multiplier    float64
	ClockStep     ClockStep
	ShouldAnimate bool
}

type ClockField uint8

const (
	ClockFieldCurrentTime ClockField = iota
	ClockFieldMultiplier
	ClockFieldShouldAnimate
	ClockFieldClockStep
)

func (f ClockField) String() string {
	switch f {
	case ClockFieldCurrentTime:
		return "current_time"
	case ClockFieldMultiplier:
		return "multiplier"
	case ClockFieldShouldAnimate:
		return "should_animate"
	case ClockFieldClockStep:
		return "clock_step"
	}
	return fmt.Sprintf("ClockField(%d)", uint8(f))
}

// ClockChange is a tagged update of a single ClockState field.
type ClockChange struct {
	Field         ClockField
	CurrentTime   time.Time
	Multiplier    float64
	ShouldAnimate bool
	ClockStep     ClockStep
}

func SetCurrentTime(t time.Time) ClockChange {
	return ClockChange{Field: ClockFieldCurrentTime, CurrentTime: t}
}

func SetMultiplier(m float64) ClockChange {
	return ClockChange{Field: ClockFieldMultiplier, Multiplier: m}
}

func SetShouldAnimate(animate bool) ClockChange {
	return ClockChange{Field: ClockFieldShouldAnimate, ShouldAnimate: animate}
}

func SetClockStep(step ClockStep) ClockChange {
	return ClockChange{Field: ClockFieldClockStep, ClockStep: step}
}

/**
 * Applies a single field change and returns the resulting state.
 * Manually assigning the time, the multiplier or the animate flag while following the
 * system clock demotes the step to ClockStepSystemClockMultiplier. Selecting
 * ClockStepSystemClock resets the multiplier to 1, starts animating and jumps to now.
 * Assigning a value equal to the current one is a no-op.
 */
func (s ClockState) Apply(change ClockChange, now time.Time) ClockState {
	switch change.Field {
	case ClockFieldCurrentTime:
		if s.CurrentTime.Equal(change.CurrentTime) {
			return s
		}
		s.demote()
		s.CurrentTime = change.CurrentTime
	case ClockFieldMultiplier:
		if s.Multiplier == change.Multiplier {
			return s
		}
		s.demote()
		s.Multiplier = change.Multiplier
	case ClockFieldShouldAnimate:
		if s.ShouldAnimate == change.ShouldAnimate {
			return s
		}
		s.demote()
		s.ShouldAnimate = change.ShouldAnimate
	case ClockFieldClockStep:
		if change.ClockStep == ClockStepSystemClock {
			s.Multiplier = 1.0
			s.ShouldAnimate = true
			s.CurrentTime = now
		}
		s.ClockStep = change.ClockStep
	default:
		panic(NewDeveloperError("unknown clock field %d", change.Field))
	}
	return s
}

func (s *ClockState) demote() {
	if s.ClockStep == ClockStepSystemClock {
		s.ClockStep = ClockStepSystemClockMultiplier
	}
}
