package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/orbis/engine/core"
)

// Cartesian3 is a 3D Cartesian point or direction.
type Cartesian3 struct {
	X, Y, Z float64
}

const Cartesian3PackedLength = 3

var (
	Cartesian3Zero  = Cartesian3{0.0, 0.0, 0.0}
	Cartesian3One   = Cartesian3{1.0, 1.0, 1.0}
	Cartesian3UnitX = Cartesian3{1.0, 0.0, 0.0}
	Cartesian3UnitY = Cartesian3{0.0, 1.0, 0.0}
	Cartesian3UnitZ = Cartesian3{0.0, 0.0, 1.0}
)

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewCartesian3(x, y, z float64) Cartesian3 {
	return Cartesian3{x, y, z}
}

// Cartesian3FromArray reads the first three elements of array.
func Cartesian3FromArray(array []float64) Cartesian3 {
	return UnpackCartesian3(array, 0)
}

// Cartesian3FromSpherical converts spherical coordinates (clock, cone, magnitude) to Cartesian.
func Cartesian3FromSpherical(clock, cone, magnitude float64) Cartesian3 {
	sinCone := m.Sin(cone)
	return Cartesian3{
		magnitude * sinCone * m.Cos(clock),
		magnitude * sinCone * m.Sin(clock),
		magnitude * m.Cos(cone),
	}
}

func (v Cartesian3) PackedLength() int {
	return Cartesian3PackedLength
}

func (v Cartesian3) Pack(array []float64, startingIndex int) []float64 {
	core.NumberGreaterThanOrEquals("startingIndex", float64(startingIndex), 0)
	array = ensureLength(array, startingIndex+Cartesian3PackedLength)
	array[startingIndex] = v.X
	array[startingIndex+1] = v.Y
	array[startingIndex+2] = v.Z
	return array
}

func UnpackCartesian3(array []float64, startingIndex int) Cartesian3 {
	checkUnpack(array, startingIndex, Cartesian3PackedLength)
	return Cartesian3{array[startingIndex], array[startingIndex+1], array[startingIndex+2]}
}

func UnpackCartesian3Array(array []float64) []Cartesian3 {
	return unpackArray(array, Cartesian3PackedLength, UnpackCartesian3)
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Cartesian3) Add(other Cartesian3) Cartesian3 {
	return Cartesian3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Cartesian3) Subtract(other Cartesian3) Cartesian3 {
	return Cartesian3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

func (v Cartesian3) MultiplyByScalar(scalar float64) Cartesian3 {
	return Cartesian3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

func (v Cartesian3) DivideByScalar(scalar float64) Cartesian3 {
	return Cartesian3{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

func (v Cartesian3) MultiplyComponents(other Cartesian3) Cartesian3 {
	return Cartesian3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

func (v Cartesian3) DivideComponents(other Cartesian3) Cartesian3 {
	return Cartesian3{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

func (v Cartesian3) Dot(other Cartesian3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Cartesian3) Cross(other Cartesian3) Cartesian3 {
	return Cartesian3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

func (v Cartesian3) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Cartesian3) Magnitude() float64 {
	return m.Sqrt(v.MagnitudeSquared())
}

func (v Cartesian3) Distance(other Cartesian3) float64 {
	return v.Subtract(other).Magnitude()
}

func (v Cartesian3) DistanceSquared(other Cartesian3) float64 {
	return v.Subtract(other).MagnitudeSquared()
}

// Normalize returns the unit vector in the direction of v. A zero vector panics
// with a RuntimeError when checks are enabled; otherwise the result is NaN.
// Callers that cannot rule out a zero vector should use TryNormalize.
func (v Cartesian3) Normalize() Cartesian3 {
	magnitude := v.Magnitude()
	result := Cartesian3{v.X / magnitude, v.Y / magnitude, v.Z / magnitude}
	if core.ChecksEnabled && (m.IsNaN(result.X) || m.IsNaN(result.Y) || m.IsNaN(result.Z)) {
		panic(core.NewRuntimeError("normalized result is not a number"))
	}
	return result
}

func (v Cartesian3) TryNormalize() (Cartesian3, error) {
	magnitude := v.Magnitude()
	if magnitude == 0 || m.IsNaN(magnitude) {
		return Cartesian3{}, core.ErrZeroLength
	}
	return v.DivideByScalar(magnitude), nil
}

func (v Cartesian3) Negate() Cartesian3 {
	return Cartesian3{-v.X, -v.Y, -v.Z}
}

func (v Cartesian3) Abs() Cartesian3 {
	return Cartesian3{m.Abs(v.X), m.Abs(v.Y), m.Abs(v.Z)}
}

// Lerp interpolates between v (t = 0) and end (t = 1).
func (v Cartesian3) Lerp(end Cartesian3, t float64) Cartesian3 {
	return v.MultiplyByScalar(1.0 - t).Add(end.MultiplyByScalar(t))
}

// AngleBetween returns the angle in radians between v and other.
func (v Cartesian3) AngleBetween(other Cartesian3) float64 {
	a := v.Normalize()
	b := other.Normalize()
	cosine := a.Dot(b)
	sine := a.Cross(b).Magnitude()
	return m.Atan2(sine, cosine)
}

func (v Cartesian3) MaximumComponent() float64 {
	return m.Max(v.X, m.Max(v.Y, v.Z))
}

func (v Cartesian3) MinimumComponent() float64 {
	return m.Min(v.X, m.Min(v.Y, v.Z))
}

func (v Cartesian3) MinimumByComponent(other Cartesian3) Cartesian3 {
	return Cartesian3{m.Min(v.X, other.X), m.Min(v.Y, other.Y), m.Min(v.Z, other.Z)}
}

func (v Cartesian3) MaximumByComponent(other Cartesian3) Cartesian3 {
	return Cartesian3{m.Max(v.X, other.X), m.Max(v.Y, other.Y), m.Max(v.Z, other.Z)}
}

// MostOrthogonalAxis returns the unit axis most orthogonal to v.
func (v Cartesian3) MostOrthogonalAxis() Cartesian3 {
	f := v.Normalize().Abs()
	if f.X <= f.Y {
		if f.X <= f.Z {
			return Cartesian3UnitX
		}
		return Cartesian3UnitZ
	}
	if f.Y <= f.Z {
		return Cartesian3UnitY
	}
	return Cartesian3UnitZ
}

// ProjectVector projects v onto other.
func (v Cartesian3) ProjectVector(other Cartesian3) Cartesian3 {
	scalar := v.Dot(other) / other.Dot(other)
	return other.MultiplyByScalar(scalar)
}

func (v Cartesian3) Equals(other Cartesian3) bool {
	return v == other
}

/**
 * @brief Compares all elements of v and other using EqualsEpsilon.
 * @param relativeEpsilon The relative tolerance, 0 for an exact test.
 * @param absoluteEpsilon The absolute tolerance, 0 for an exact test.
 */
func (v Cartesian3) EqualsEpsilon(other Cartesian3, relativeEpsilon, absoluteEpsilon float64) bool {
	return EqualsEpsilon(v.X, other.X, relativeEpsilon, absoluteEpsilon) &&
		EqualsEpsilon(v.Y, other.Y, relativeEpsilon, absoluteEpsilon) &&
		EqualsEpsilon(v.Z, other.Z, relativeEpsilon, absoluteEpsilon)
}

func (v Cartesian3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
