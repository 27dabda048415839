package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/orbis/engine/core"
)

// Rectangle is a geographic region bounded by longitudes and latitudes, in radians.
// East may be less than West when the region crosses the anti-meridian.
type Rectangle struct {
	West  float64
	South float64
	East  float64
	North float64
}

const RectanglePackedLength = 4

// RectangleMaxValue covers the whole globe.
var RectangleMaxValue = Rectangle{-Pi, -PiOverTwo, Pi, PiOverTwo}

func NewRectangle(west, south, east, north float64) Rectangle {
	return Rectangle{west, south, east, north}
}

func RectangleFromDegrees(west, south, east, north float64) Rectangle {
	return Rectangle{ToRadians(west), ToRadians(south), ToRadians(east), ToRadians(north)}
}

// RectangleFromCartographicArray returns the smallest rectangle enclosing the positions.
func RectangleFromCartographicArray(cartographics []Cartographic) Rectangle {
	west := m.MaxFloat64
	east := -m.MaxFloat64
	westOverIDL := m.MaxFloat64
	eastOverIDL := -m.MaxFloat64
	south := m.MaxFloat64
	north := -m.MaxFloat64

	for _, position := range cartographics {
		west = m.Min(west, position.Longitude)
		east = m.Max(east, position.Longitude)
		south = m.Min(south, position.Latitude)
		north = m.Max(north, position.Latitude)

		lonAdjusted := position.Longitude
		if position.Longitude < 0 {
			lonAdjusted += TwoPi
		}
		westOverIDL = m.Min(westOverIDL, lonAdjusted)
		eastOverIDL = m.Max(eastOverIDL, lonAdjusted)
	}

	if east-west > eastOverIDL-westOverIDL {
		west = westOverIDL
		east = eastOverIDL
		if east > Pi {
			east -= TwoPi
		}
		if west > Pi {
			west -= TwoPi
		}
	}
	return Rectangle{west, south, east, north}
}

// Width is the angular width, accounting for the anti-meridian.
func (r Rectangle) Width() float64 {
	east := r.East
	if east < r.West {
		east += TwoPi
	}
	return east - r.West
}

func (r Rectangle) Height() float64 {
	return r.North - r.South
}

func (r Rectangle) Southwest() Cartographic {
	return Cartographic{Longitude: r.West, Latitude: r.South}
}

func (r Rectangle) Northwest() Cartographic {
	return Cartographic{Longitude: r.West, Latitude: r.North}
}

func (r Rectangle) Northeast() Cartographic {
	return Cartographic{Longitude: r.East, Latitude: r.North}
}

func (r Rectangle) Southeast() Cartographic {
	return Cartographic{Longitude: r.East, Latitude: r.South}
}

func (r Rectangle) Center() Cartographic {
	east := r.East
	if east < r.West {
		east += TwoPi
	}
	return Cartographic{
		Longitude: NegativePiToPi((r.West + east) * 0.5),
		Latitude:  (r.South + r.North) * 0.5,
	}
}

// Contains reports whether c lies inside r, inclusive of the edges.
func (r Rectangle) Contains(c Cartographic) bool {
	longitude := c.Longitude
	latitude := c.Latitude
	west := r.West
	east := r.East

	if east < west {
		east += TwoPi
		if longitude < 0.0 {
			longitude += TwoPi
		}
	}
	return (longitude > west || EqualsEpsilon(longitude, west, Epsilon14, Epsilon14)) &&
		(longitude < east || EqualsEpsilon(longitude, east, Epsilon14, Epsilon14)) &&
		latitude >= r.South &&
		latitude <= r.North
}

func (r Rectangle) PackedLength() int {
	return RectanglePackedLength
}

func (r Rectangle) Pack(array []float64, startingIndex int) []float64 {
	core.NumberGreaterThanOrEquals("startingIndex", float64(startingIndex), 0)
	array = ensureLength(array, startingIndex+RectanglePackedLength)
	array[startingIndex] = r.West
	array[startingIndex+1] = r.South
	array[startingIndex+2] = r.East
	array[startingIndex+3] = r.North
	return array
}

func UnpackRectangle(array []float64, startingIndex int) Rectangle {
	checkUnpack(array, startingIndex, RectanglePackedLength)
	return Rectangle{array[startingIndex], array[startingIndex+1], array[startingIndex+2], array[startingIndex+3]}
}

func (r Rectangle) Equals(other Rectangle) bool {
	return r == other
}

func (r Rectangle) EqualsEpsilon(other Rectangle, absoluteEpsilon float64) bool {
	return m.Abs(r.West-other.West) <= absoluteEpsilon &&
		m.Abs(r.South-other.South) <= absoluteEpsilon &&
		m.Abs(r.East-other.East) <= absoluteEpsilon &&
		m.Abs(r.North-other.North) <= absoluteEpsilon
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", r.West, r.South, r.East, r.North)
}
