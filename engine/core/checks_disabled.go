//go:build release

package core

const ChecksEnabled = false
