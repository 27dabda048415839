package engine

import (
	"github.com/spaghettifunk/orbis/engine/core"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnShutdown        Shutdown
}

// Initialize is called once the engine has built its ellipsoid and clock.
type Initialize func(e *Engine) error

// Update is called after every clock tick.
type Update func(clock *core.Clock) error

type Shutdown func() error
