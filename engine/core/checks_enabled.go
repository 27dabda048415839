//go:build !release

package core

// ChecksEnabled reports whether contract checks run. Build with -tags release to strip them.
const ChecksEnabled = true
