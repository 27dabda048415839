//go:build mage

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type cmdOptions struct {
	args   []string
	env    map[string]string
	stream bool
}

type cmdOption func(*cmdOptions)

func withArgs(args ...string) cmdOption {
	return func(o *cmdOptions) {
		o.args = args
	}
}

func withEnv(key, value string) cmdOption {
	return func(o *cmdOptions) {
		if o.env == nil {
			o.env = map[string]string{}
		}
		o.env[key] = value
	}
}

func withStream() cmdOption {
	return func(o *cmdOptions) {
		o.stream = true
	}
}

// executeCmd runs command and returns its combined output. Output is echoed
// live when streaming or when mage runs with -v; otherwise it is only printed
// if the command fails.
func executeCmd(command string, options ...cmdOption) (string, error) {
	opts := &cmdOptions{}
	for _, o := range options {
		o(opts)
	}

	fmt.Printf("Executing: %s %s\n", command, strings.Join(opts.args, " "))

	streamOutput := mg.Verbose() || opts.stream

	var b bytes.Buffer
	var stdout, stderr io.Writer = &b, &b
	if streamOutput {
		stdout = io.MultiWriter(&b, os.Stdout)
		stderr = io.MultiWriter(&b, os.Stderr)
	}

	ran, err := sh.Exec(opts.env, stdout, stderr, command, opts.args...)
	if err != nil {
		if !ran {
			return "", fmt.Errorf("could not start %s: %w", command, err)
		}
		if !streamOutput {
			fmt.Println("... failed command output:")
			fmt.Println(b.String())
		}
		return "", fmt.Errorf("%s exited with status %d: %w", command, sh.ExitStatus(err), err)
	}
	return b.String(), nil
}

// goCmd runs the go tool mage was configured with, streaming its output.
func goCmd(args []string, options ...cmdOption) error {
	_, err := executeCmd(mg.GoCmd(), append([]cmdOption{withArgs(args...), withStream()}, options...)...)
	return err
}
