//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

const binary = "bin/orbis"

type Build mg.Namespace

// Builds the orbis binary into ./bin.
func (Build) Binary() error {
	return goCmd([]string{"build", "-o", binary, "."})
}

// Builds a static orbis binary with contract checks compiled out.
func (Build) Release() error {
	return goCmd([]string{"build", "-tags", "release", "-trimpath", "-o", binary, "."}, withEnv("CGO_ENABLED", "0"))
}

type Test mg.Namespace

// Runs the unit tests with contract checks enabled.
func (Test) Unit() error {
	return goCmd([]string{"test", "-race", "./..."})
}

// Runs the unit tests against the release build, where contract checks are no-ops.
func (Test) Release() error {
	return goCmd([]string{"test", "-tags", "release", "./..."})
}

// Runs go vet over every package.
func Vet() error {
	return goCmd([]string{"vet", "./..."})
}

// Tidies go.mod and go.sum.
func Tidy() error {
	if err := goCmd([]string{"mod", "tidy"}); err != nil {
		return fmt.Errorf("failed to run go mod tidy: %w", err)
	}
	return nil
}
