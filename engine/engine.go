package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spaghettifunk/orbis/engine/config"
	"github.com/spaghettifunk/orbis/engine/core"
	"github.com/spaghettifunk/orbis/engine/math"
	"github.com/spaghettifunk/orbis/engine/platform"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

var ErrInvalidStage = errors.New("engine is not in the expected stage")

type Engine struct {
	currentStage Stage
	gameInstance *Game
	config       *config.Config
	timeSource   platform.TimeSource
	ellipsoid    math.Ellipsoid
	clock        *core.Clock
	metrics      *core.TickMetrics
	watcher      *config.Watcher
	ticker       *time.Ticker
}

func New(g *Game, cfg *config.Config) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, errors.New("a game with an application config is required")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	ts := g.ApplicationConfig.TimeSource
	if ts == nil {
		ts = platform.SystemTimeSource{}
	}

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		config:       cfg,
		timeSource:   ts,
		metrics:      core.NewTickMetrics(),
	}, nil
}

// Initialize builds the ellipsoid, the clock and the config watcher, then runs the
// game's initialize hook. On failure the engine is left uninitialized with no
// watcher running.
func (e *Engine) Initialize() (err error) {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("%w: cannot initialize while %s", ErrInvalidStage, e.currentStage)
	}
	e.setStage(EngineStageInitializing)
	defer func() {
		if err == nil {
			return
		}
		if e.watcher != nil {
			if cerr := e.watcher.Close(); cerr != nil {
				core.LogWarn("failed to close config watcher: %s", cerr)
			}
			e.watcher = nil
		}
		e.setStage(EngineStageUninitialized)
	}()

	e.applyLogConfig(e.config)
	core.LogInfo("initializing %s", e.gameInstance.ApplicationConfig.Name)

	ellipsoid, err := e.config.Ellipsoid.Build()
	if err != nil {
		return err
	}
	e.ellipsoid = ellipsoid

	opts, err := e.config.Clock.Options()
	if err != nil {
		return err
	}
	clock, err := core.NewClock(append(opts, core.WithTimeSource(e.timeSource))...)
	if err != nil {
		return err
	}
	e.clock = clock
	e.metrics.Attach(clock)
	clock.OnStop.AddListener(func(c *core.Clock) {
		core.LogDebug("clock reached stop time %s", c.StopTime.Format(time.RFC3339))
	})

	app := e.gameInstance.ApplicationConfig
	if app.WatchConfig && app.ConfigPath != "" {
		w, err := config.NewWatcher(app.ConfigPath)
		if err != nil {
			return err
		}
		e.watcher = w
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e); err != nil {
			return err
		}
	}

	e.setStage(EngineStageInitialized)
	return nil
}

// Run ticks the clock at the configured rate until ctx is cancelled or the
// game update fails. Cancellation is not an error.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("%w: cannot run while %s", ErrInvalidStage, e.currentStage)
	}
	e.setStage(EngineStageRunning)

	e.ticker = time.NewTicker(e.config.TickInterval())
	defer e.ticker.Stop()

	var changes <-chan *config.Config
	if e.watcher != nil {
		changes = e.watcher.Changes()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-e.ticker.C:
			if err := e.Step(); err != nil {
				core.LogError("Game update failed, shutting down: %s", err)
				return err
			}
		case cfg, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			e.ApplyConfig(cfg)
		}
	}
}

// Step performs a single tick: advances the clock and updates the game.
func (e *Engine) Step() error {
	e.clock.Tick()
	if e.gameInstance.FnUpdate != nil {
		return e.gameInstance.FnUpdate(e.clock)
	}
	return nil
}

// ApplyConfig moves the running engine to cfg. Clock multiplier, step and
// animation changes go through the clock's transition function; the
// ellipsoid and clock bounds only take effect on restart.
func (e *Engine) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	previous := e.config
	e.applyLogConfig(cfg)

	for _, change := range cfg.Clock.Changes(previous.Clock) {
		core.LogInfo("applying clock change: %s", change.Field)
		e.clock.Apply(change)
	}

	if cfg.Engine.TickRate != previous.Engine.TickRate && e.ticker != nil {
		e.ticker.Reset(cfg.TickInterval())
		core.LogInfo("tick rate set to %d/s", cfg.Engine.TickRate)
	}

	if next, err := cfg.Ellipsoid.Build(); err == nil && !next.Equals(e.ellipsoid) {
		core.LogWarn("ellipsoid changed to %s; restart to apply", next)
	}

	e.config = cfg
}

func (e *Engine) Shutdown() error {
	e.setStage(EngineStageShuttingDown)

	var errs []error
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		e.watcher = nil
	}
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			errs = append(errs, err)
		}
	}

	e.setStage(EngineStageUninitialized)
	return errors.Join(errs...)
}

func (e *Engine) Stage() Stage               { return e.currentStage }
func (e *Engine) Config() *config.Config     { return e.config }
func (e *Engine) Ellipsoid() math.Ellipsoid  { return e.ellipsoid }
func (e *Engine) Clock() *core.Clock         { return e.clock }
func (e *Engine) Metrics() *core.TickMetrics { return e.metrics }

func (e *Engine) applyLogConfig(cfg *config.Config) {
	if level, err := cfg.LogLevel(); err == nil {
		core.SetLogLevel(level)
	}
	if cfg.Log.Prefix != "" {
		core.SetLogPrefix(cfg.Log.Prefix)
	}
}

func (e *Engine) setStage(s Stage) {
	core.LogDebug("engine %s -> %s", e.currentStage, s)
	e.currentStage = s
}
