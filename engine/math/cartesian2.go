package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/orbis/engine/core"
)

// Cartesian2 is a 2D Cartesian point or direction.
type Cartesian2 struct {
	X, Y float64
}

const Cartesian2PackedLength = 2

var (
	Cartesian2Zero  = Cartesian2{0.0, 0.0}
	Cartesian2One   = Cartesian2{1.0, 1.0}
	Cartesian2UnitX = Cartesian2{1.0, 0.0}
	Cartesian2UnitY = Cartesian2{0.0, 1.0}
)

func NewCartesian2(x, y float64) Cartesian2 {
	return Cartesian2{X: x, Y: y}
}

// Cartesian2FromArray reads the first two elements of array.
func Cartesian2FromArray(array []float64) Cartesian2 {
	return UnpackCartesian2(array, 0)
}

func (v Cartesian2) PackedLength() int {
	return Cartesian2PackedLength
}

func (v Cartesian2) Pack(array []float64, startingIndex int) []float64 {
	core.NumberGreaterThanOrEquals("startingIndex", float64(startingIndex), 0)
	array = ensureLength(array, startingIndex+Cartesian2PackedLength)
	array[startingIndex] = v.X
	array[startingIndex+1] = v.Y
	return array
}

func UnpackCartesian2(array []float64, startingIndex int) Cartesian2 {
	checkUnpack(array, startingIndex, Cartesian2PackedLength)
	return Cartesian2{array[startingIndex], array[startingIndex+1]}
}

func UnpackCartesian2Array(array []float64) []Cartesian2 {
	return unpackArray(array, Cartesian2PackedLength, UnpackCartesian2)
}

func (v Cartesian2) Add(other Cartesian2) Cartesian2 {
	return Cartesian2{v.X + other.X, v.Y + other.Y}
}

func (v Cartesian2) Subtract(other Cartesian2) Cartesian2 {
	return Cartesian2{v.X - other.X, v.Y - other.Y}
}

func (v Cartesian2) MultiplyByScalar(scalar float64) Cartesian2 {
	return Cartesian2{v.X * scalar, v.Y * scalar}
}

func (v Cartesian2) DivideByScalar(scalar float64) Cartesian2 {
	return Cartesian2{v.X / scalar, v.Y / scalar}
}

func (v Cartesian2) MultiplyComponents(other Cartesian2) Cartesian2 {
	return Cartesian2{v.X * other.X, v.Y * other.Y}
}

func (v Cartesian2) DivideComponents(other Cartesian2) Cartesian2 {
	return Cartesian2{v.X / other.X, v.Y / other.Y}
}

func (v Cartesian2) Dot(other Cartesian2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Cartesian2) Cross(other Cartesian2) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Cartesian2) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Cartesian2) Magnitude() float64 {
	return m.Sqrt(v.MagnitudeSquared())
}

func (v Cartesian2) Distance(other Cartesian2) float64 {
	return v.Subtract(other).Magnitude()
}

func (v Cartesian2) DistanceSquared(other Cartesian2) float64 {
	return v.Subtract(other).MagnitudeSquared()
}

// Normalize returns the unit vector in the direction of v. A zero vector panics
// with a RuntimeError when checks are enabled; otherwise the result is NaN.
func (v Cartesian2) Normalize() Cartesian2 {
	magnitude := v.Magnitude()
	result := Cartesian2{v.X / magnitude, v.Y / magnitude}
	if core.ChecksEnabled && (m.IsNaN(result.X) || m.IsNaN(result.Y)) {
		panic(core.NewRuntimeError("normalized result is not a number"))
	}
	return result
}

// TryNormalize is Normalize reporting a zero length vector as an error.
func (v Cartesian2) TryNormalize() (Cartesian2, error) {
	magnitude := v.Magnitude()
	if magnitude == 0 || m.IsNaN(magnitude) {
		return Cartesian2{}, core.ErrZeroLength
	}
	return Cartesian2{v.X / magnitude, v.Y / magnitude}, nil
}

func (v Cartesian2) Negate() Cartesian2 {
	return Cartesian2{-v.X, -v.Y}
}

func (v Cartesian2) Abs() Cartesian2 {
	return Cartesian2{m.Abs(v.X), m.Abs(v.Y)}
}

// Lerp interpolates between v (t = 0) and end (t = 1).
func (v Cartesian2) Lerp(end Cartesian2, t float64) Cartesian2 {
	return v.MultiplyByScalar(1.0 - t).Add(end.MultiplyByScalar(t))
}

// AngleBetween returns the angle in radians between v and other.
func (v Cartesian2) AngleBetween(other Cartesian2) float64 {
	a := v.Normalize()
	b := other.Normalize()
	return AcosClamped(a.Dot(b))
}

func (v Cartesian2) MaximumComponent() float64 {
	return m.Max(v.X, v.Y)
}

func (v Cartesian2) MinimumComponent() float64 {
	return m.Min(v.X, v.Y)
}

func (v Cartesian2) MinimumByComponent(other Cartesian2) Cartesian2 {
	return Cartesian2{m.Min(v.X, other.X), m.Min(v.Y, other.Y)}
}

func (v Cartesian2) MaximumByComponent(other Cartesian2) Cartesian2 {
	return Cartesian2{m.Max(v.X, other.X), m.Max(v.Y, other.Y)}
}

// MostOrthogonalAxis returns the unit axis most orthogonal to v.
func (v Cartesian2) MostOrthogonalAxis() Cartesian2 {
	f := v.Normalize().Abs()
	if f.X <= f.Y {
		return Cartesian2UnitX
	}
	return Cartesian2UnitY
}

func (v Cartesian2) Equals(other Cartesian2) bool {
	return v == other
}

// EqualsEpsilon compares componentwise with EqualsEpsilon.
func (v Cartesian2) EqualsEpsilon(other Cartesian2, relativeEpsilon, absoluteEpsilon float64) bool {
	return EqualsEpsilon(v.X, other.X, relativeEpsilon, absoluteEpsilon) &&
		EqualsEpsilon(v.Y, other.Y, relativeEpsilon, absoluteEpsilon)
}

func (v Cartesian2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
