package math

import (
	"fmt"

	"github.com/spaghettifunk/orbis/engine/core"
)

// Cartographic is a position given by longitude and latitude in radians and height
// in metres above a reference ellipsoid. Angles are not wrapped to a canonical range.
type Cartographic struct {
	Longitude float64
	Latitude  float64
	Height    float64
}

const CartographicPackedLength = 3

var CartographicZero = Cartographic{}

func CartographicFromRadians(longitude, latitude, height float64) Cartographic {
	return Cartographic{longitude, latitude, height}
}

func CartographicFromDegrees(longitude, latitude, height float64) Cartographic {
	return Cartographic{ToRadians(longitude), ToRadians(latitude), height}
}

/**
 * @brief Computes the geodetic position of a Cartesian point on the given ellipsoid.
 * @returns false when the point lies inside the ellipsoid's center tolerance, where
 * the projection onto the surface is not unique.
 */
func CartographicFromCartesian(position Cartesian3, ellipsoid Ellipsoid) (Cartographic, bool) {
	return ellipsoid.CartesianToCartographic(position)
}

// ToCartesian converts c to Cartesian coordinates on the given ellipsoid.
func (c Cartographic) ToCartesian(ellipsoid Ellipsoid) Cartesian3 {
	return ellipsoid.CartographicToCartesian(c)
}

// Cartesian3FromRadians converts a geodetic position given in radians.
func Cartesian3FromRadians(longitude, latitude, height float64, ellipsoid Ellipsoid) Cartesian3 {
	return ellipsoid.CartographicToCartesian(CartographicFromRadians(longitude, latitude, height))
}

// Cartesian3FromDegrees converts a geodetic position given in degrees.
func Cartesian3FromDegrees(longitude, latitude, height float64, ellipsoid Ellipsoid) Cartesian3 {
	return ellipsoid.CartographicToCartesian(CartographicFromDegrees(longitude, latitude, height))
}

// Cartesian3ArrayFromDegrees converts a flat list of longitude, latitude pairs at height 0.
func Cartesian3ArrayFromDegrees(coordinates []float64, ellipsoid Ellipsoid) []Cartesian3 {
	core.Assert(len(coordinates)%2 == 0, "the number of coordinates must be a multiple of 2 and at least 2")
	positions := make([]Cartesian3, 0, len(coordinates)/2)
	for i := 0; i < len(coordinates); i += 2 {
		positions = append(positions, Cartesian3FromDegrees(coordinates[i], coordinates[i+1], 0, ellipsoid))
	}
	return positions
}

func (c Cartographic) PackedLength() int {
	return CartographicPackedLength
}

func (c Cartographic) Pack(array []float64, startingIndex int) []float64 {
	core.NumberGreaterThanOrEquals("startingIndex", float64(startingIndex), 0)
	array = ensureLength(array, startingIndex+CartographicPackedLength)
	array[startingIndex] = c.Longitude
	array[startingIndex+1] = c.Latitude
	array[startingIndex+2] = c.Height
	return array
}

func UnpackCartographic(array []float64, startingIndex int) Cartographic {
	checkUnpack(array, startingIndex, CartographicPackedLength)
	return Cartographic{array[startingIndex], array[startingIndex+1], array[startingIndex+2]}
}

func (c Cartographic) Equals(other Cartographic) bool {
	return c == other
}

// EqualsEpsilon compares the components with an absolute tolerance.
func (c Cartographic) EqualsEpsilon(other Cartographic, epsilon float64) bool {
	return EqualsEpsilon(c.Longitude, other.Longitude, 0, epsilon) &&
		EqualsEpsilon(c.Latitude, other.Latitude, 0, epsilon) &&
		EqualsEpsilon(c.Height, other.Height, 0, epsilon)
}

func (c Cartographic) String() string {
	return fmt.Sprintf("(%v, %v, %v)", c.Longitude, c.Latitude, c.Height)
}
