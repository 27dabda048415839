/*
Runs the ground track testbed on top of the orbis engine. The optional first
argument is the path of a TOML configuration file, which is watched for
changes while the engine runs.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/orbis/engine"
	"github.com/spaghettifunk/orbis/engine/config"
	"github.com/spaghettifunk/orbis/engine/core"
	"github.com/spaghettifunk/orbis/testbed"
)

func main() {
	cfg := config.Default()
	var configPath string
	if len(os.Args) > 1 {
		configPath = os.Args[1]
		c, err := config.Load(configPath)
		if err != nil {
			core.LogFatal(err.Error())
		}
		cfg = c
	}

	tb := testbed.NewTestGame(configPath, nil)

	engine, err := engine.New(tb.Game, cfg)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := engine.Initialize(); err != nil {
		core.LogFatal(err.Error())
	}

	// cancel the run loop on sigterm and other system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	runErr := engine.Run(ctx)
	if err := engine.Shutdown(); err != nil {
		core.LogError(err.Error())
	}
	if runErr != nil {
		core.LogFatal(runErr.Error())
	}
}
