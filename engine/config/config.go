package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/orbis/engine/core"
	"github.com/spaghettifunk/orbis/engine/math"
)

var (
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrInvalidEllipsoid  = errors.New("invalid ellipsoid")
	ErrInvalidClockStep  = errors.New("invalid clock step")
	ErrInvalidClockRange = errors.New("invalid clock range")
	ErrInvalidTickRate   = errors.New("invalid tick rate")
)

const (
	EllipsoidPresetWGS84      = "wgs84"
	EllipsoidPresetUnitSphere = "unit_sphere"

	DefaultTickRate = 60
	// MaxTickRate keeps TickInterval well above zero.
	MaxTickRate = 10000
)

type LogConfig struct {
	Level  string `toml:"level"`
	Prefix string `toml:"prefix"`
}

// EllipsoidConfig selects the reference ellipsoid either by preset name or
// by explicit radii. Setting both is an error.
type EllipsoidConfig struct {
	Preset string    `toml:"preset"`
	Radii  []float64 `toml:"radii"`
}

type ClockConfig struct {
	StartTime     *time.Time `toml:"start_time"`
	StopTime      *time.Time `toml:"stop_time"`
	CurrentTime   *time.Time `toml:"current_time"`
	Multiplier    *float64   `toml:"multiplier"`
	Step          string     `toml:"step"`
	Range         string     `toml:"range"`
	ShouldAnimate bool       `toml:"should_animate"`
	CanAnimate    *bool      `toml:"can_animate"`
}

type EngineConfig struct {
	TickRate int `toml:"tick_rate"`
}

type Config struct {
	Log       LogConfig       `toml:"log"`
	Ellipsoid EllipsoidConfig `toml:"ellipsoid"`
	Clock     ClockConfig     `toml:"clock"`
	Engine    EngineConfig    `toml:"engine"`
}

// Default is a WGS84 (empty ellipsoid section), real-time, unbounded configuration ticking at 60Hz.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Engine: EngineConfig{TickRate: DefaultTickRate},
	}
}

// Load reads and validates the TOML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over Default. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown configuration keys:\n%s", strict.String())
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.Ellipsoid.Build(); err != nil {
		return err
	}
	if _, err := c.Clock.Options(); err != nil {
		return err
	}
	if c.Engine.TickRate <= 0 || c.Engine.TickRate > MaxTickRate {
		return fmt.Errorf("%w: %d, must be in [1, %d]", ErrInvalidTickRate, c.Engine.TickRate, MaxTickRate)
	}
	return nil
}

func (c *Config) LogLevel() (core.LogLevel, error) {
	if c.Log.Level == "" {
		return core.LogLevelInfo, nil
	}
	level, err := core.ParseLogLevel(c.Log.Level)
	if err != nil {
		return level, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return level, nil
}

// TickInterval is the wall time between two engine ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Engine.TickRate)
}

// Build returns the configured ellipsoid. An empty section yields WGS84.
func (e EllipsoidConfig) Build() (math.Ellipsoid, error) {
	if e.Preset != "" && len(e.Radii) > 0 {
		return math.Ellipsoid{}, fmt.Errorf("%w: preset and radii are mutually exclusive", ErrInvalidEllipsoid)
	}
	if len(e.Radii) > 0 {
		if len(e.Radii) != 3 {
			return math.Ellipsoid{}, fmt.Errorf("%w: expected 3 radii, got %d", ErrInvalidEllipsoid, len(e.Radii))
		}
		for i, r := range e.Radii {
			if r < 0 {
				return math.Ellipsoid{}, fmt.Errorf("%w: radius %d is negative (%v)", ErrInvalidEllipsoid, i, r)
			}
		}
		return math.NewEllipsoid(e.Radii[0], e.Radii[1], e.Radii[2]), nil
	}
	switch strings.ToLower(e.Preset) {
	case EllipsoidPresetWGS84, "":
		return math.EllipsoidWGS84, nil
	case EllipsoidPresetUnitSphere:
		return math.EllipsoidUnitSphere, nil
	}
	return math.Ellipsoid{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidEllipsoid, e.Preset)
}

// Options converts the clock section to clock options. Unset times are left
// to the clock's own defaulting.
func (c ClockConfig) Options() ([]core.ClockOption, error) {
	step, err := core.ParseClockStep(c.Step)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClockStep, c.Step)
	}
	clockRange, err := core.ParseClockRange(c.Range)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClockRange, c.Range)
	}
	if c.StartTime != nil && c.StopTime != nil && c.StartTime.After(*c.StopTime) {
		return nil, fmt.Errorf("clock start_time %s is after stop_time %s", c.StartTime, c.StopTime)
	}

	opts := []core.ClockOption{
		core.WithClockStep(step),
		core.WithClockRange(clockRange),
		core.WithShouldAnimate(c.ShouldAnimate),
	}
	if c.StartTime != nil {
		opts = append(opts, core.WithStartTime(*c.StartTime))
	}
	if c.StopTime != nil {
		opts = append(opts, core.WithStopTime(*c.StopTime))
	}
	if c.CurrentTime != nil {
		opts = append(opts, core.WithCurrentTime(*c.CurrentTime))
	}
	if c.Multiplier != nil {
		opts = append(opts, core.WithMultiplier(*c.Multiplier))
	}
	if c.CanAnimate != nil {
		opts = append(opts, core.WithCanAnimate(*c.CanAnimate))
	}
	return opts, nil
}

// Changes lists the transitions that take a running clock from the
// previous clock section to c. Times and range bounds are not hot reloaded.
func (c ClockConfig) Changes(previous ClockConfig) []core.ClockChange {
	var changes []core.ClockChange
	if c.Multiplier != nil && (previous.Multiplier == nil || *previous.Multiplier != *c.Multiplier) {
		changes = append(changes, core.SetMultiplier(*c.Multiplier))
	}
	if c.ShouldAnimate != previous.ShouldAnimate {
		changes = append(changes, core.SetShouldAnimate(c.ShouldAnimate))
	}
	// Step goes last so that a switch to the system clock wins.
	if step, err := core.ParseClockStep(c.Step); err == nil {
		if prev, err := core.ParseClockStep(previous.Step); err != nil || prev != step {
			changes = append(changes, core.SetClockStep(step))
		}
	}
	return changes
}
