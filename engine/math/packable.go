package math

import "github.com/spaghettifunk/orbis/engine/core"

// Packer is implemented by value types that can be stored in a flat float64 buffer,
// e.g. for bulk upload to GPU buffers.
type Packer interface {
	// PackedLength is the number of elements used to pack the value.
	PackedLength() int
	// Pack stores the value into array starting at startingIndex, growing the slice
	// when it is too short, and returns the (possibly reallocated) slice.
	Pack(array []float64, startingIndex int) []float64
}

// ensureLength grows array so that array[n-1] is addressable.
func ensureLength(array []float64, n int) []float64 {
	if len(array) >= n {
		return array
	}
	if cap(array) >= n {
		return array[:n]
	}
	grown := make([]float64, n, n+n/2)
	copy(grown, array)
	return grown
}

func checkUnpack(array []float64, startingIndex, length int) {
	core.Defined("array", array)
	core.NumberGreaterThanOrEquals("startingIndex", float64(startingIndex), 0)
	core.NumberLessThanOrEquals("startingIndex + packedLength", float64(startingIndex+length), float64(len(array)))
}

// PackArray packs every value one after the other starting at index 0.
func PackArray[T Packer](values []T, array []float64) []float64 {
	offset := 0
	for _, v := range values {
		array = v.Pack(array, offset)
		offset += v.PackedLength()
	}
	return array
}

// unpackArray splits array into consecutive chunks of length elements.
func unpackArray[T any](array []float64, length int, unpack func([]float64, int) T) []T {
	core.Assert(len(array)%length == 0, "array length must be a multiple of %d", length)
	result := make([]T, 0, len(array)/length)
	for i := 0; i < len(array); i += length {
		result = append(result, unpack(array, i))
	}
	return result
}
