package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/orbis/engine/core"
)

// Plane in Hessian normal form: Normal·x + Distance = 0.
// The normal is expected to be unit length; this is not verified.
type Plane struct {
	Normal   Cartesian3
	Distance float64
}

const PlanePackedLength = 4

var (
	PlaneOriginXYPlane = Plane{Cartesian3UnitZ, 0.0}
	PlaneOriginYZPlane = Plane{Cartesian3UnitX, 0.0}
	PlaneOriginZXPlane = Plane{Cartesian3UnitY, 0.0}
)

func NewPlane(normal Cartesian3, distance float64) Plane {
	core.Finite("distance", distance)
	return Plane{Normal: normal, Distance: distance}
}

// PlaneFromPointNormal creates the plane through point with the given unit normal.
func PlaneFromPointNormal(point, normal Cartesian3) Plane {
	return Plane{Normal: normal, Distance: -normal.Dot(point)}
}

// GetPointDistance is the signed distance from the plane to point; positive values
// lie in the half-space the normal points into.
func (p Plane) GetPointDistance(point Cartesian3) float64 {
	return p.Normal.Dot(point) + p.Distance
}

func (p Plane) ProjectPointOntoPlane(point Cartesian3) Cartesian3 {
	pointDistance := p.GetPointDistance(point)
	return point.Subtract(p.Normal.MultiplyByScalar(pointDistance))
}

func (p Plane) PackedLength() int {
	return PlanePackedLength
}

func (p Plane) Pack(array []float64, startingIndex int) []float64 {
	array = ensureLength(p.Normal.Pack(array, startingIndex), startingIndex+PlanePackedLength)
	array[startingIndex+3] = p.Distance
	return array
}

func UnpackPlane(array []float64, startingIndex int) Plane {
	checkUnpack(array, startingIndex, PlanePackedLength)
	return Plane{UnpackCartesian3(array, startingIndex), array[startingIndex+3]}
}

func (p Plane) Equals(other Plane) bool {
	return p == other
}

func (p Plane) EqualsEpsilon(other Plane, epsilon float64) bool {
	return p.Normal.EqualsEpsilon(other.Normal, 0, epsilon) && m.Abs(p.Distance-other.Distance) <= epsilon
}

func (p Plane) String() string {
	return fmt.Sprintf("Plane(%s, %v)", p.Normal, p.Distance)
}
