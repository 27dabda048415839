package testbed

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/orbis/engine"
	"github.com/spaghettifunk/orbis/engine/core"
	"github.com/spaghettifunk/orbis/engine/math"
	"github.com/spaghettifunk/orbis/engine/platform"
)

// Degrees of longitude the tracked point covers per simulated hour. Roughly
// a low earth orbit.
const degreesPerHour = 360.0 / 1.5

type TestGame struct {
	*engine.Game
}

type gameState struct {
	ellipsoid math.Ellipsoid
	epoch     time.Time
	start     math.Cartographic
	altitude  float64

	position  math.Cartographic
	cartesian math.Cartesian3
	stops     int

	logEvery int
	ticks    int
}

func NewTestGame(configPath string, ts platform.TimeSource) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				Name:        "Orbis Ground Track",
				ConfigPath:  configPath,
				WatchConfig: configPath != "",
				TimeSource:  ts,
			},
			State: &gameState{
				start:    math.CartographicFromDegrees(0, 51.6, 0),
				altitude: 420000,
				logEvery: 60,
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Initialize(e *engine.Engine) error {
	core.LogDebug("TestGame Initialize fn....")

	state := g.State.(*gameState)
	state.ellipsoid = e.Ellipsoid()
	state.epoch = e.Clock().CurrentTime()
	state.start.Height = state.altitude
	state.position = state.start

	e.Clock().OnStop.AddListener(func(c *core.Clock) {
		state.stops++
		core.LogInfo("ground track reached the end of its window (%d) at %s", state.stops, c.CurrentTime().Format(time.RFC3339))
	})
	return nil
}

// Update advances the tracked point to the clock's current time and checks
// that the geodetic round trip holds.
func (g *TestGame) Update(clock *core.Clock) error {
	state := g.State.(*gameState)

	hours := clock.CurrentTime().Sub(state.epoch).Hours()
	lon := state.start.Longitude + math.ToRadians(degreesPerHour*hours)
	state.position = math.Cartographic{
		Longitude: math.NegativePiToPi(lon),
		Latitude:  state.start.Latitude,
		Height:    state.altitude,
	}

	state.cartesian = state.position.ToCartesian(state.ellipsoid)
	back, ok := math.CartographicFromCartesian(state.cartesian, state.ellipsoid)
	if !ok {
		return fmt.Errorf("position %s has no geodetic equivalent", state.cartesian)
	}
	if !back.ToCartesian(state.ellipsoid).EqualsEpsilon(state.cartesian, math.Epsilon9, math.Epsilon3) {
		core.LogWarn("geodetic round trip drifted: %s -> %s", state.position, back)
	}

	state.ticks++
	if state.logEvery > 0 && state.ticks%state.logEvery == 0 {
		core.LogInfo("t=%s lon=%.3f° lat=%.3f° xyz=%s",
			clock.CurrentTime().Format(time.RFC3339),
			math.ToDegrees(state.position.Longitude),
			math.ToDegrees(state.position.Latitude),
			state.cartesian)
	}
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.State.(*gameState)
	core.LogInfo("ground track finished after %d ticks, %d stop events", state.ticks, state.stops)
	return nil
}

// Position returns the last computed geodetic and Cartesian positions.
func (g *TestGame) Position() (math.Cartographic, math.Cartesian3) {
	state := g.State.(*gameState)
	return state.position, state.cartesian
}

func (g *TestGame) Stops() int {
	return g.State.(*gameState).stops
}
