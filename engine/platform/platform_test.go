package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualTimeSource(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := NewManualTimeSource(start)
	assert.Equal(t, start, ts.Now())

	ts.Advance(1500 * time.Millisecond)
	assert.Equal(t, start.Add(1500*time.Millisecond), ts.Now())
	// Reading does not move the clock.
	assert.Equal(t, ts.Now(), ts.Now())
}

func TestSystemTimeSource(t *testing.T) {
	var ts TimeSource = SystemTimeSource{}
	before := time.Now()
	now := ts.Now()
	assert.False(t, now.Before(before))
}
