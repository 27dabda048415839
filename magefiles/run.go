//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

const sampleConfig = "orbis.toml"

type Run mg.Namespace

// Runs the ground track testbed with the sample configuration, reloading it on change.
func (Run) Engine() error {
	fmt.Printf("Run engine with %s...\n", sampleConfig)
	return goCmd([]string{"run", ".", sampleConfig})
}

// Builds the release binary first and runs it against the sample configuration.
func (Run) Release() error {
	mg.Deps(Build.Release)
	_, err := executeCmd(binary, withArgs(sampleConfig), withStream())
	return err
}
