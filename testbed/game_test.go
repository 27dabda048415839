package testbed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/orbis/engine"
	"github.com/spaghettifunk/orbis/engine/config"
	"github.com/spaghettifunk/orbis/engine/math"
	"github.com/spaghettifunk/orbis/engine/platform"
)

func newGroundTrack(t *testing.T, toml string) (*TestGame, *engine.Engine) {
	t.Helper()
	cfg, err := config.Parse([]byte(toml))
	require.NoError(t, err)

	ts := platform.NewManualTimeSource(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	tb := NewTestGame("", ts)
	e, err := engine.New(tb.Game, cfg)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	return tb, e
}

func TestGroundTrackAdvances(t *testing.T) {
	tb, e := newGroundTrack(t, `
[clock]
start_time = 2024-06-01T00:00:00Z
multiplier = 900.0
step = "tick_dependent"
should_animate = true
`)

	// A quarter of an hour covers 60 degrees of longitude.
	require.NoError(t, e.Step())
	position, cartesian := tb.Position()
	assert.InDelta(t, 60.0, math.ToDegrees(position.Longitude), 1e-9)
	assert.InDelta(t, 51.6, math.ToDegrees(position.Latitude), 1e-9)
	assert.Equal(t, 420000.0, position.Height)

	back, ok := math.CartographicFromCartesian(cartesian, math.EllipsoidWGS84)
	require.True(t, ok)
	assert.InDelta(t, position.Longitude, back.Longitude, math.Epsilon10)
	assert.InDelta(t, position.Latitude, back.Latitude, math.Epsilon10)
	assert.InDelta(t, position.Height, back.Height, 1e-4)

	// Four more ticks reach 300 degrees, which wraps to -60.
	for i := 0; i < 4; i++ {
		require.NoError(t, e.Step())
	}
	position, _ = tb.Position()
	assert.InDelta(t, -60.0, math.ToDegrees(position.Longitude), 1e-9)

	require.NoError(t, e.Shutdown())
}

func TestGroundTrackCountsLoops(t *testing.T) {
	tb, e := newGroundTrack(t, `
[clock]
start_time = 2024-06-01T00:00:00Z
stop_time = 2024-06-01T01:00:00Z
multiplier = 1800.0
step = "tick_dependent"
range = "loop_stop"
should_animate = true
`)

	for i := 0; i < 3; i++ {
		require.NoError(t, e.Step())
	}
	assert.Equal(t, 1, tb.Stops())

	position, _ := tb.Position()
	assert.InDelta(t, 120.0, math.ToDegrees(position.Longitude), 1e-9)
}

func TestNewTestGameWatchesOnlyWithPath(t *testing.T) {
	assert.False(t, NewTestGame("", nil).ApplicationConfig.WatchConfig)
	withPath := NewTestGame("orbis.toml", nil)
	assert.True(t, withPath.ApplicationConfig.WatchConfig)
	assert.Equal(t, "orbis.toml", withPath.ApplicationConfig.ConfigPath)
}
