package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/orbis/engine/core"
)

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion struct {
	X, Y, Z, W float64
}

const QuaternionPackedLength = 4

var (
	QuaternionZero     = Quaternion{0.0, 0.0, 0.0, 0.0}
	QuaternionIdentity = Quaternion{0.0, 0.0, 0.0, 1.0}
)

func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

/**
 * @brief Creates a quaternion representing a rotation around an axis.
 * @param axis The axis of rotation; it is normalized first.
 * @param angle The angle in radians to rotate around the axis.
 */
func QuaternionFromAxisAngle(axis Cartesian3, angle float64) Quaternion {
	halfAngle := angle / 2.0
	s := m.Sin(halfAngle)
	a := axis.Normalize()
	return Quaternion{
		X: a.X * s,
		Y: a.Y * s,
		Z: a.Z * s,
		W: m.Cos(halfAngle),
	}
}

// QuaternionFromHeadingPitchRoll computes the rotation heading about the negative z
// axis, pitch about the negative y axis and roll about the positive x axis.
func QuaternionFromHeadingPitchRoll(hpr HeadingPitchRoll) Quaternion {
	roll := QuaternionFromAxisAngle(Cartesian3UnitX, hpr.Roll)
	pitch := QuaternionFromAxisAngle(Cartesian3UnitY, -hpr.Pitch)
	heading := QuaternionFromAxisAngle(Cartesian3UnitZ, -hpr.Heading)
	return heading.Multiply(pitch.Multiply(roll))
}

func (q Quaternion) PackedLength() int {
	return QuaternionPackedLength
}

func (q Quaternion) Pack(array []float64, startingIndex int) []float64 {
	core.NumberGreaterThanOrEquals("startingIndex", float64(startingIndex), 0)
	array = ensureLength(array, startingIndex+QuaternionPackedLength)
	array[startingIndex] = q.X
	array[startingIndex+1] = q.Y
	array[startingIndex+2] = q.Z
	array[startingIndex+3] = q.W
	return array
}

func UnpackQuaternion(array []float64, startingIndex int) Quaternion {
	checkUnpack(array, startingIndex, QuaternionPackedLength)
	return Quaternion{array[startingIndex], array[startingIndex+1], array[startingIndex+2], array[startingIndex+3]}
}

func (q Quaternion) MagnitudeSquared() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

func (q Quaternion) Magnitude() float64 {
	return m.Sqrt(q.MagnitudeSquared())
}

func (q Quaternion) Normalize() Quaternion {
	inverseMagnitude := 1.0 / q.Magnitude()
	return Quaternion{
		q.X * inverseMagnitude,
		q.Y * inverseMagnitude,
		q.Z * inverseMagnitude,
		q.W * inverseMagnitude,
	}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

func (q Quaternion) Inverse() Quaternion {
	magnitudeSquared := q.MagnitudeSquared()
	c := q.Conjugate()
	return Quaternion{
		c.X / magnitudeSquared,
		c.Y / magnitudeSquared,
		c.Z / magnitudeSquared,
		c.W / magnitudeSquared,
	}
}

/**
 * @brief Computes the Hamilton product q * other.
 */
func (q Quaternion) Multiply(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

func (q Quaternion) Dot(other Quaternion) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

func (q Quaternion) Equals(other Quaternion) bool {
	return q == other
}

func (q Quaternion) EqualsEpsilon(other Quaternion, epsilon float64) bool {
	return m.Abs(q.X-other.X) <= epsilon &&
		m.Abs(q.Y-other.Y) <= epsilon &&
		m.Abs(q.Z-other.Z) <= epsilon &&
		m.Abs(q.W-other.W) <= epsilon
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}
