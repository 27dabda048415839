package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/orbis/engine/core"
)

// Ellipsoid is a quadratic surface x²/a² + y²/b² + z²/c² = 1 in Cartesian coordinates,
// used as the reference shape of a planet. Its derived quantities are computed once.
type Ellipsoid struct {
	radii                  Cartesian3
	radiiSquared           Cartesian3
	radiiToTheFourth       Cartesian3
	oneOverRadii           Cartesian3
	oneOverRadiiSquared    Cartesian3
	minimumRadius          float64
	maximumRadius          float64
	centerToleranceSquared float64
}

const EllipsoidPackedLength = Cartesian3PackedLength

var (
	// EllipsoidWGS84 approximates the Earth using the WGS84 radii.
	EllipsoidWGS84 = NewEllipsoid(6378137.0, 6378137.0, 6356752.3142451793)
	// EllipsoidUnitSphere has all radii equal to 1.
	EllipsoidUnitSphere = NewEllipsoid(1.0, 1.0, 1.0)
)

/**
 * @brief Creates an ellipsoid from its radii in the x, y and z directions.
 * All radii must be greater than or equal to zero.
 */
func NewEllipsoid(x, y, z float64) Ellipsoid {
	core.NumberGreaterThanOrEquals("x", x, 0.0)
	core.NumberGreaterThanOrEquals("y", y, 0.0)
	core.NumberGreaterThanOrEquals("z", z, 0.0)

	return Ellipsoid{
		radii:                  Cartesian3{x, y, z},
		radiiSquared:           Cartesian3{x * x, y * y, z * z},
		radiiToTheFourth:       Cartesian3{x * x * x * x, y * y * y * y, z * z * z * z},
		oneOverRadii:           Cartesian3{inverse(x), inverse(y), inverse(z)},
		oneOverRadiiSquared:    Cartesian3{inverse(x * x), inverse(y * y), inverse(z * z)},
		minimumRadius:          m.Min(x, m.Min(y, z)),
		maximumRadius:          m.Max(x, m.Max(y, z)),
		centerToleranceSquared: Epsilon1,
	}
}

// EllipsoidFromCartesian3 creates an ellipsoid from a radii vector.
func EllipsoidFromCartesian3(radii Cartesian3) Ellipsoid {
	return NewEllipsoid(radii.X, radii.Y, radii.Z)
}

func inverse(v float64) float64 {
	if v == 0.0 {
		return 0.0
	}
	return 1.0 / v
}

func (e Ellipsoid) Radii() Cartesian3 {
	return e.radii
}

func (e Ellipsoid) RadiiSquared() Cartesian3 {
	return e.radiiSquared
}

func (e Ellipsoid) RadiiToTheFourth() Cartesian3 {
	return e.radiiToTheFourth
}

func (e Ellipsoid) OneOverRadii() Cartesian3 {
	return e.oneOverRadii
}

func (e Ellipsoid) OneOverRadiiSquared() Cartesian3 {
	return e.oneOverRadiiSquared
}

func (e Ellipsoid) MinimumRadius() float64 {
	return e.minimumRadius
}

func (e Ellipsoid) MaximumRadius() float64 {
	return e.maximumRadius
}

// CenterToleranceSquared is the scaled squared distance from the center under which
// a position has no unique geodetic projection.
func (e Ellipsoid) CenterToleranceSquared() float64 {
	return e.centerToleranceSquared
}

// GeocentricSurfaceNormal is the unit vector from the center through position.
func (e Ellipsoid) GeocentricSurfaceNormal(position Cartesian3) Cartesian3 {
	return position.Normalize()
}

// GeodeticSurfaceNormalCartographic is the surface normal at the given geodetic position.
func (e Ellipsoid) GeodeticSurfaceNormalCartographic(c Cartographic) Cartesian3 {
	cosLatitude := m.Cos(c.Latitude)
	return Cartesian3{
		cosLatitude * m.Cos(c.Longitude),
		cosLatitude * m.Sin(c.Longitude),
		m.Sin(c.Latitude),
	}.Normalize()
}

/**
 * @brief Computes the normal of the plane tangent to the surface at position.
 * @returns false when position is the ellipsoid center.
 */
func (e Ellipsoid) GeodeticSurfaceNormal(position Cartesian3) (Cartesian3, bool) {
	if position.EqualsEpsilon(Cartesian3Zero, 0, Epsilon14) {
		return Cartesian3{}, false
	}
	return position.MultiplyComponents(e.oneOverRadiiSquared).Normalize(), true
}

// CartographicToCartesian converts a geodetic position to Cartesian coordinates.
func (e Ellipsoid) CartographicToCartesian(c Cartographic) Cartesian3 {
	n := e.GeodeticSurfaceNormalCartographic(c)
	k := e.radiiSquared.MultiplyComponents(n)
	gamma := m.Sqrt(n.Dot(k))
	k = k.DivideByScalar(gamma)
	return k.Add(n.MultiplyByScalar(c.Height))
}

// CartesianToCartographic converts a Cartesian position to geodetic coordinates.
// It reports false for positions within the center tolerance, where no unique
// geodetic projection exists.
func (e Ellipsoid) CartesianToCartographic(position Cartesian3) (Cartographic, bool) {
	if e.scaledNormSquared(position) < e.centerToleranceSquared {
		return Cartographic{}, false
	}
	p, ok := e.ScaleToGeodeticSurface(position)
	if !ok {
		return Cartographic{}, false
	}

	n := p.MultiplyComponents(e.oneOverRadiiSquared).Normalize()
	h := position.Subtract(p)

	return Cartographic{
		Longitude: m.Atan2(n.Y, n.X),
		Latitude:  m.Asin(n.Z),
		Height:    Sign(h.Dot(position)) * h.Magnitude(),
	}, true
}

func (e Ellipsoid) scaledNormSquared(position Cartesian3) float64 {
	x := position.X * e.oneOverRadii.X
	y := position.Y * e.oneOverRadii.Y
	z := position.Z * e.oneOverRadii.Z
	return x*x + y*y + z*z
}

// Newton's method converges in a handful of steps from the radial estimate;
// the cap only bounds pathological inputs.
const maxGeodeticIterations = 100

/**
 * @brief Scales position along the geodetic surface normal so that it lies on the surface.
 * Inside the center tolerance the position is scaled radially instead. Newton's method
 * runs until the surface equation is satisfied to Epsilon12.
 * @returns false when position is the exact center or when its scaled norm is not finite.
 */
func (e Ellipsoid) ScaleToGeodeticSurface(position Cartesian3) (Cartesian3, bool) {
	oneOverRadii := e.oneOverRadii
	oneOverRadiiSquared := e.oneOverRadiiSquared

	x2 := position.X * position.X * oneOverRadii.X * oneOverRadii.X
	y2 := position.Y * position.Y * oneOverRadii.Y * oneOverRadii.Y
	z2 := position.Z * position.Z * oneOverRadii.Z * oneOverRadii.Z

	squaredNorm := x2 + y2 + z2
	if m.IsNaN(squaredNorm) || m.IsInf(squaredNorm, 0) {
		return Cartesian3{}, false
	}
	ratio := m.Sqrt(1.0 / squaredNorm)

	// Initial approximation: the radial intersection with the surface.
	intersection := position.MultiplyByScalar(ratio)

	if squaredNorm < e.centerToleranceSquared {
		if m.IsInf(ratio, 0) || m.IsNaN(ratio) {
			return Cartesian3{}, false
		}
		return intersection, true
	}

	gradient := Cartesian3{
		intersection.X * oneOverRadiiSquared.X * 2.0,
		intersection.Y * oneOverRadiiSquared.Y * 2.0,
		intersection.Z * oneOverRadiiSquared.Z * 2.0,
	}

	lambda := ((1.0 - ratio) * position.Magnitude()) / (0.5 * gradient.Magnitude())
	correction := 0.0

	var fn, xMultiplier, yMultiplier, zMultiplier float64
	for i := 0; i < maxGeodeticIterations; i++ {
		lambda -= correction

		xMultiplier = 1.0 / (1.0 + lambda*oneOverRadiiSquared.X)
		yMultiplier = 1.0 / (1.0 + lambda*oneOverRadiiSquared.Y)
		zMultiplier = 1.0 / (1.0 + lambda*oneOverRadiiSquared.Z)

		xMultiplier2 := xMultiplier * xMultiplier
		yMultiplier2 := yMultiplier * yMultiplier
		zMultiplier2 := zMultiplier * zMultiplier

		xMultiplier3 := xMultiplier2 * xMultiplier
		yMultiplier3 := yMultiplier2 * yMultiplier
		zMultiplier3 := zMultiplier2 * zMultiplier

		fn = x2*xMultiplier2 + y2*yMultiplier2 + z2*zMultiplier2 - 1.0

		denominator := x2*xMultiplier3*oneOverRadiiSquared.X +
			y2*yMultiplier3*oneOverRadiiSquared.Y +
			z2*zMultiplier3*oneOverRadiiSquared.Z

		derivative := -2.0 * denominator
		correction = fn / derivative

		// Written so that a NaN residual also ends the iteration.
		if !(m.Abs(fn) > Epsilon12) {
			break
		}
	}
	if m.IsNaN(fn) {
		return Cartesian3{}, false
	}

	return Cartesian3{
		position.X * xMultiplier,
		position.Y * yMultiplier,
		position.Z * zMultiplier,
	}, true
}

// ScaleToGeocentricSurface scales position along the geocentric normal onto the surface.
func (e Ellipsoid) ScaleToGeocentricSurface(position Cartesian3) Cartesian3 {
	beta := 1.0 / m.Sqrt(e.scaledNormSquared(position))
	return position.MultiplyByScalar(beta)
}

func (e Ellipsoid) PackedLength() int {
	return EllipsoidPackedLength
}

func (e Ellipsoid) Pack(array []float64, startingIndex int) []float64 {
	return e.radii.Pack(array, startingIndex)
}

func UnpackEllipsoid(array []float64, startingIndex int) Ellipsoid {
	return EllipsoidFromCartesian3(UnpackCartesian3(array, startingIndex))
}

func (e Ellipsoid) Equals(other Ellipsoid) bool {
	return e.radii == other.radii
}

func (e Ellipsoid) String() string {
	return fmt.Sprintf("Ellipsoid%s", e.radii)
}
