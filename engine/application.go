package engine

import (
	"github.com/spaghettifunk/orbis/engine/platform"
)

type ApplicationConfig struct {
	// The application name, used in log output.
	Name string
	// Path of the TOML file the configuration was loaded from, if any.
	ConfigPath string
	// Reload the configuration file whenever it changes on disk.
	WatchConfig bool
	// Wall-clock source for the simulated clock. Defaults to the system clock.
	TimeSource platform.TimeSource
}
