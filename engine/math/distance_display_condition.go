package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/orbis/engine/core"
)

// DistanceDisplayCondition is the interval of camera distances, in metres, at which
// an object is visible. Near <= Far is expected but not enforced.
type DistanceDisplayCondition struct {
	Near float64
	Far  float64
}

const DistanceDisplayConditionPackedLength = 2

// DefaultDistanceDisplayCondition is visible at every distance.
var DefaultDistanceDisplayCondition = DistanceDisplayCondition{Near: 0.0, Far: m.MaxFloat64}

func NewDistanceDisplayCondition(near, far float64) DistanceDisplayCondition {
	return DistanceDisplayCondition{Near: near, Far: far}
}

// Contains reports whether distance falls in [Near, Far].
func (d DistanceDisplayCondition) Contains(distance float64) bool {
	return distance >= d.Near && distance <= d.Far
}

func (d DistanceDisplayCondition) PackedLength() int {
	return DistanceDisplayConditionPackedLength
}

func (d DistanceDisplayCondition) Pack(array []float64, startingIndex int) []float64 {
	core.NumberGreaterThanOrEquals("startingIndex", float64(startingIndex), 0)
	array = ensureLength(array, startingIndex+DistanceDisplayConditionPackedLength)
	array[startingIndex] = d.Near
	array[startingIndex+1] = d.Far
	return array
}

func UnpackDistanceDisplayCondition(array []float64, startingIndex int) DistanceDisplayCondition {
	checkUnpack(array, startingIndex, DistanceDisplayConditionPackedLength)
	return DistanceDisplayCondition{array[startingIndex], array[startingIndex+1]}
}

func (d DistanceDisplayCondition) Equals(other DistanceDisplayCondition) bool {
	return d.Near == other.Near && d.Far == other.Far
}

// EqualsEpsilon compares Near and Far with an absolute tolerance.
func (d DistanceDisplayCondition) EqualsEpsilon(other DistanceDisplayCondition, epsilon float64) bool {
	return m.Abs(d.Near-other.Near) <= epsilon && m.Abs(d.Far-other.Far) <= epsilon
}

func (d DistanceDisplayCondition) String() string {
	return fmt.Sprintf("DistanceDisplayCondition(%v, %v)", d.Near, d.Far)
}
