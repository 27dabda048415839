package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDeveloper classifies contract violations: the caller broke a documented precondition.
	ErrDeveloper = errors.New("developer error")
	// ErrRuntime classifies failures that can legitimately happen during correct execution.
	ErrRuntime = errors.New("runtime error")

	ErrZeroLength = NewRuntimeError("vector has zero length and cannot be normalized")
	ErrSingular   = NewRuntimeError("matrix is not invertible")
)

// DeveloperError is raised (as a panic value) when a caller passes a malformed argument.
// It is never meant to be recovered from in normal control flow.
type DeveloperError struct {
	Message string
}

func NewDeveloperError(format string, args ...interface{}) *DeveloperError {
	return &DeveloperError{Message: fmt.Sprintf(format, args...)}
}

func (e *DeveloperError) Error() string {
	return "DeveloperError: " + e.Message
}

func (e *DeveloperError) Is(target error) bool {
	return target == ErrDeveloper
}

// RuntimeError signals a mathematically undefined result or another condition the
// caller is expected to handle.
type RuntimeError struct {
	Message string
}

func NewRuntimeError(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	return "RuntimeError: " + e.Message
}

func (e *RuntimeError) Is(target error) bool {
	return target == ErrRuntime
}
