package core

import (
	"fmt"
	"math"
	"reflect"
)

// The Check functions guard the preconditions of public operations. Each one is a
// no-op when its condition holds and panics with a *DeveloperError otherwise.

// Defined panics when value is nil, including typed nil pointers, maps, slices and funcs.
func Defined(name string, value interface{}) {
	if !ChecksEnabled {
		return
	}
	if isNil(value) {
		panic(NewDeveloperError("%s is required, actual value was undefined", name))
	}
}

// TypeOf panics unless value holds a T.
func TypeOf[T any](name string, value interface{}) {
	if !ChecksEnabled {
		return
	}
	if _, ok := value.(T); !ok {
		var zero T
		panic(NewDeveloperError("Expected %s to be typeof %T, actual typeof was %T", name, zero, value))
	}
}

// Finite panics when value is NaN or infinite.
func Finite(name string, value float64) {
	if !ChecksEnabled {
		return
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(NewDeveloperError("Expected %s to be a finite number, actual value was %v", name, value))
	}
}

func NumberLessThan(name string, test, limit float64) {
	if !ChecksEnabled {
		return
	}
	if !(test < limit) {
		panic(NewDeveloperError("Expected %s to be less than %v, actual value was %v", name, limit, test))
	}
}

func NumberLessThanOrEquals(name string, test, limit float64) {
	if !ChecksEnabled {
		return
	}
	if !(test <= limit) {
		panic(NewDeveloperError("Expected %s to be less than or equal to %v, actual value was %v", name, limit, test))
	}
}

func NumberGreaterThan(name string, test, limit float64) {
	if !ChecksEnabled {
		return
	}
	if !(test > limit) {
		panic(NewDeveloperError("Expected %s to be greater than %v, actual value was %v", name, limit, test))
	}
}

func NumberGreaterThanOrEquals(name string, test, limit float64) {
	if !ChecksEnabled {
		return
	}
	if !(test >= limit) {
		panic(NewDeveloperError("Expected %s to be greater than or equal to %v, actual value was %v", name, limit, test))
	}
}

// NumberEquals panics unless test1 and test2 are the same number.
func NumberEquals(name1, name2 string, test1, test2 float64) {
	if !ChecksEnabled {
		return
	}
	if test1 != test2 {
		panic(NewDeveloperError("%s must be equal to %s, the actual values are %v and %v", name1, name2, test1, test2))
	}
}

// IndexInRange panics unless 0 <= index < length.
func IndexInRange(name string, index, length int) {
	if !ChecksEnabled {
		return
	}
	if index < 0 || index >= length {
		panic(NewDeveloperError("%s must be in the range [0, %d], actual value was %d", name, length-1, index))
	}
}

// Assert panics with the formatted message when condition is false.
func Assert(condition bool, format string, args ...interface{}) {
	if !ChecksEnabled {
		return
	}
	if !condition {
		panic(&DeveloperError{Message: fmt.Sprintf(format, args...)})
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
