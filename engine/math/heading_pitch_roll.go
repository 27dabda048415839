package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/orbis/engine/core"
)

// HeadingPitchRoll is a rotation expressed as heading (about the negative z axis),
// pitch (about the negative y axis) and roll (about the positive x axis), in radians.
type HeadingPitchRoll struct {
	Heading float64
	Pitch   float64
	Roll    float64
}

const HeadingPitchRollPackedLength = 3

func NewHeadingPitchRoll(heading, pitch, roll float64) HeadingPitchRoll {
	return HeadingPitchRoll{heading, pitch, roll}
}

func HeadingPitchRollFromDegrees(heading, pitch, roll float64) HeadingPitchRoll {
	return HeadingPitchRoll{
		Heading: ToRadians(heading),
		Pitch:   ToRadians(pitch),
		Roll:    ToRadians(roll),
	}
}

// HeadingPitchRollFromQuaternion extracts the angles from a rotation quaternion.
func HeadingPitchRollFromQuaternion(q Quaternion) HeadingPitchRoll {
	test := 2 * (q.W*q.Y - q.Z*q.X)
	denominatorRoll := 1 - 2*(q.X*q.X+q.Y*q.Y)
	numeratorRoll := 2 * (q.W*q.X + q.Y*q.Z)
	denominatorHeading := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	numeratorHeading := 2 * (q.W*q.Z + q.X*q.Y)
	return HeadingPitchRoll{
		Heading: -m.Atan2(numeratorHeading, denominatorHeading),
		Pitch:   -AsinClamped(test),
		Roll:    m.Atan2(numeratorRoll, denominatorRoll),
	}
}

func (hpr HeadingPitchRoll) ToQuaternion() Quaternion {
	return QuaternionFromHeadingPitchRoll(hpr)
}

func (hpr HeadingPitchRoll) PackedLength() int {
	return HeadingPitchRollPackedLength
}

func (hpr HeadingPitchRoll) Pack(array []float64, startingIndex int) []float64 {
	core.NumberGreaterThanOrEquals("startingIndex", float64(startingIndex), 0)
	array = ensureLength(array, startingIndex+HeadingPitchRollPackedLength)
	array[startingIndex] = hpr.Heading
	array[startingIndex+1] = hpr.Pitch
	array[startingIndex+2] = hpr.Roll
	return array
}

func UnpackHeadingPitchRoll(array []float64, startingIndex int) HeadingPitchRoll {
	checkUnpack(array, startingIndex, HeadingPitchRollPackedLength)
	return HeadingPitchRoll{array[startingIndex], array[startingIndex+1], array[startingIndex+2]}
}

func (hpr HeadingPitchRoll) Equals(other HeadingPitchRoll) bool {
	return hpr == other
}

func (hpr HeadingPitchRoll) EqualsEpsilon(other HeadingPitchRoll, relativeEpsilon, absoluteEpsilon float64) bool {
	return EqualsEpsilon(hpr.Heading, other.Heading, relativeEpsilon, absoluteEpsilon) &&
		EqualsEpsilon(hpr.Pitch, other.Pitch, relativeEpsilon, absoluteEpsilon) &&
		EqualsEpsilon(hpr.Roll, other.Roll, relativeEpsilon, absoluteEpsilon)
}

func (hpr HeadingPitchRoll) String() string {
	return fmt.Sprintf("(%v, %v, %v)", hpr.Heading, hpr.Pitch, hpr.Roll)
}
